package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/reservation"

	"github.com/google/uuid"
)

var (
	ErrInvalidHash    = errors.New("invalid callback hash")
	ErrAmountMismatch = errors.New("amount mismatch")
	ErrGatewayDenied  = errors.New("gateway rejected token request")
)

const iframeBase = "https://www.paytr.com/odeme/guvenli/"

// Service drives the PayTR server-to-server token exchange and verifies the
// asynchronous notification callback. Everything merchant-secret related
// stays on this side; the client only ever sees the redirect URL.
type Service struct {
	payments     paymentRepo
	reservations reservationWriter
	cfg          *config.RuntimeConfig
	client       *http.Client
	loggerf      func(format string, args ...interface{})
}

func NewService(payments paymentRepo, reservations reservationWriter, cfg *config.RuntimeConfig, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		payments:     payments,
		reservations: reservations,
		cfg:          cfg,
		client:       &http.Client{Timeout: cfg.PaymentTimeout},
		loggerf:      loggerf,
	}
}

// Charge exchanges reservation details for a PayTR payment token and returns
// the hosted payment page URL. A timeout or non-success answer is an error;
// the caller decides what failing open means.
func (s *Service) Charge(ctx context.Context, res *domain.Reservation, amount float64, userEmail string) (*reservation.ChargeResult, error) {
	if s.cfg.PaytrMerchantID == "" || s.cfg.PaytrMerchantKey == "" || s.cfg.PaytrMerchantSalt == "" {
		return nil, fmt.Errorf("paytr credentials are not configured")
	}

	merchantOID := newMerchantOID()
	amountKurus := strconv.FormatInt(int64(math.Round(amount*100)), 10)
	if userEmail == "" {
		userEmail = "guest@example.com"
	}

	basketRaw, _ := json.Marshal([][]interface{}{{res.Code, amountKurus, 1}})
	basket := base64.StdEncoding.EncodeToString(basketRaw)

	testMode := "0"
	if s.cfg.PaytrTestMode {
		testMode = "1"
	}

	form := url.Values{}
	form.Set("merchant_id", s.cfg.PaytrMerchantID)
	form.Set("user_ip", "127.0.0.1")
	form.Set("merchant_oid", merchantOID)
	form.Set("email", userEmail)
	form.Set("payment_amount", amountKurus)
	form.Set("user_basket", basket)
	form.Set("no_installment", "0")
	form.Set("max_installment", "0")
	form.Set("currency", "TL")
	form.Set("test_mode", testMode)
	form.Set("user_name", strconv.FormatInt(res.UserID, 10))
	form.Set("user_address", "-")
	form.Set("user_phone", "-")
	form.Set("merchant_ok_url", s.cfg.PaytrOKURL)
	form.Set("merchant_fail_url", s.cfg.PaytrFailURL)
	form.Set("paytr_token", s.tokenHash(merchantOID, userEmail, amountKurus, basket, testMode))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.PaytrBaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paytr token exchange: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tr.Status != "success" || tr.Token == "" {
		s.loggerf("level=error msg=paytr token denied merchant_oid=%s reason=%s", merchantOID, tr.Reason)
		return nil, fmt.Errorf("%w: %s", ErrGatewayDenied, tr.Reason)
	}

	redirectURL := iframeBase + tr.Token
	p := &domain.PaytrPayment{
		ReservationID: res.ID,
		MerchantOID:   merchantOID,
		Amount:        amount,
		Token:         tr.Token,
		PaymentURL:    redirectURL,
		Status:        domain.PaytrStatusCreated,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("save payment attempt: %w", err)
	}

	s.loggerf("level=info msg=paytr token issued reservation_id=%d merchant_oid=%s", res.ID, merchantOID)
	return &reservation.ChargeResult{
		MerchantOID: merchantOID,
		Token:       tr.Token,
		RedirectURL: redirectURL,
	}, nil
}

// HandleCallback processes PayTR's notification. The hash must verify before
// anything is trusted; paid marking is idempotent because the gateway
// retries until it receives the literal body "OK".
func (s *Service) HandleCallback(ctx context.Context, form CallbackForm, rawBody string) error {
	expected := s.callbackHash(form.MerchantOID, form.Status, form.TotalAmount)
	if !hmac.Equal([]byte(expected), []byte(form.Hash)) {
		s.loggerf("level=error msg=paytr callback hash mismatch merchant_oid=%s", form.MerchantOID)
		return ErrInvalidHash
	}

	p, err := s.payments.GetByMerchantOID(ctx, form.MerchantOID)
	if err != nil {
		return err
	}

	if form.Status != "success" {
		if err := s.payments.MarkFailed(ctx, form.MerchantOID, rawBody, "gateway reported failure"); err != nil {
			return err
		}
		if err := s.reservations.UpdatePaymentOutcome(ctx, p.ReservationID, domain.PayCreditCard, domain.PaymentFailed, form.MerchantOID); err != nil {
			s.loggerf("level=error msg=failed to mark reservation payment failed reservation_id=%d err=%v", p.ReservationID, err)
		}
		return nil
	}

	if !amountEqual(form.TotalAmount, strconv.FormatInt(int64(math.Round(p.Amount*100)), 10)) {
		reason := fmt.Sprintf("amount mismatch callback=%s expected=%.2f", form.TotalAmount, p.Amount)
		if err := s.payments.MarkFailed(ctx, form.MerchantOID, rawBody, reason); err != nil {
			s.loggerf("level=error msg=failed to record amount mismatch merchant_oid=%s err=%v", form.MerchantOID, err)
		}
		return ErrAmountMismatch
	}

	changed, err := s.payments.MarkPaidIdempotent(ctx, form.MerchantOID, rawBody, time.Now().UTC())
	if err != nil {
		return err
	}
	if !changed {
		s.loggerf("level=info msg=idempotent callback already paid merchant_oid=%s", form.MerchantOID)
		return nil
	}

	if err := s.reservations.UpdatePaymentOutcome(ctx, p.ReservationID, domain.PayCreditCard, domain.PaymentPaid, form.MerchantOID); err != nil {
		s.loggerf("level=error msg=failed to mark reservation paid reservation_id=%d err=%v", p.ReservationID, err)
	}
	if err := s.reservations.UpdateStatus(ctx, p.ReservationID, domain.ReservationConfirmed); err != nil {
		s.loggerf("level=error msg=failed to confirm reservation after payment reservation_id=%d err=%v", p.ReservationID, err)
	}
	return nil
}

func (s *Service) tokenHash(merchantOID, email, amountKurus, basket, testMode string) string {
	payload := s.cfg.PaytrMerchantID + "127.0.0.1" + merchantOID + email + amountKurus +
		basket + "0" + "0" + "TL" + testMode
	return s.hmacBase64(payload + s.cfg.PaytrMerchantSalt)
}

func (s *Service) callbackHash(merchantOID, status, totalAmount string) string {
	return s.hmacBase64(merchantOID + s.cfg.PaytrMerchantSalt + status + totalAmount)
}

func (s *Service) hmacBase64(payload string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.PaytrMerchantKey))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func amountEqual(a, b string) bool {
	ai, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	if err != nil {
		return false
	}
	bi, err := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if err != nil {
		return false
	}
	return ai == bi
}

func newMerchantOID() string {
	// PayTR forbids non-alphanumeric characters in merchant_oid
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
