package domain

import "time"

type PaytrPaymentStatus string

const (
	PaytrStatusCreated PaytrPaymentStatus = "created"
	PaytrStatusPaid    PaytrPaymentStatus = "paid"
	PaytrStatusFailed  PaytrPaymentStatus = "failed"
)

// PaytrPayment records one token-exchange attempt against the PayTR gateway
// and the callback outcome, keyed by the merchant order reference.
type PaytrPayment struct {
	ID              int64              `json:"id"`
	ReservationID   int64              `json:"reservation_id"`
	MerchantOID     string             `json:"merchant_oid" gorm:"uniqueIndex;column:merchant_oid"`
	Amount          float64            `json:"amount"`
	Token           string             `json:"token,omitempty"`
	PaymentURL      string             `json:"payment_url,omitempty"`
	Status          PaytrPaymentStatus `json:"status"`
	CallbackRawBody string             `json:"-" gorm:"type:text"`
	FailureReason   string             `json:"failure_reason,omitempty"`
	PaidAt          *time.Time         `json:"paid_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
