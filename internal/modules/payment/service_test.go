package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelbooking/internal/config"
	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.PaytrPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetByMerchantOID(ctx context.Context, oid string) (*domain.PaytrPayment, error) {
	args := m.Called(ctx, oid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaytrPayment), args.Error(1)
}

func (m *MockPaymentRepo) MarkPaidIdempotent(ctx context.Context, oid, rawBody string, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, oid, rawBody, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepo) MarkFailed(ctx context.Context, oid, rawBody, reason string) error {
	args := m.Called(ctx, oid, rawBody, reason)
	return args.Error(0)
}

type MockReservationWriter struct {
	mock.Mock
}

func (m *MockReservationWriter) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationWriter) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReservationWriter) UpdatePaymentOutcome(ctx context.Context, id int64, method domain.PaymentMethod, status domain.PaymentStatus, ref string) error {
	args := m.Called(ctx, id, method, status, ref)
	return args.Error(0)
}

func testConfig(baseURL string) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		PaytrMerchantID:   "merchant-1",
		PaytrMerchantKey:  "key",
		PaytrMerchantSalt: "salt",
		PaytrBaseURL:      baseURL,
		PaytrTestMode:     true,
		PaymentTimeout:    2 * time.Second,
	}
}

func signCallback(cfg *config.RuntimeConfig, merchantOID, status, totalAmount string) string {
	mac := hmac.New(sha256.New, []byte(cfg.PaytrMerchantKey))
	mac.Write([]byte(merchantOID + cfg.PaytrMerchantSalt + status + totalAmount))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestService_Charge_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "merchant-1", r.PostFormValue("merchant_id"))
		assert.Equal(t, "350000", r.PostFormValue("payment_amount")) // kurus
		assert.NotEmpty(t, r.PostFormValue("paytr_token"))
		w.Write([]byte(`{"status":"success","token":"tok123"}`))
	}))
	defer srv.Close()

	payments := new(MockPaymentRepo)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	reservations := new(MockReservationWriter)

	service := NewService(payments, reservations, testConfig(srv.URL), nil)

	res := &domain.Reservation{ID: 9, UserID: 42, Code: "HB-AAAA1111"}
	result, err := service.Charge(context.Background(), res, 3500, "asel@mail.kz")

	assert.NoError(t, err)
	assert.Equal(t, "tok123", result.Token)
	assert.Contains(t, result.RedirectURL, "tok123")
	assert.NotEmpty(t, result.MerchantOID)
	payments.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Charge_GatewayDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failed","reason":"invalid merchant"}`))
	}))
	defer srv.Close()

	payments := new(MockPaymentRepo)
	service := NewService(payments, new(MockReservationWriter), testConfig(srv.URL), nil)

	_, err := service.Charge(context.Background(), &domain.Reservation{ID: 9}, 3500, "a@b.c")

	assert.ErrorIs(t, err, ErrGatewayDenied)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Charge_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"status":"success","token":"tok123"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.PaymentTimeout = 50 * time.Millisecond
	service := NewService(new(MockPaymentRepo), new(MockReservationWriter), cfg, nil)

	_, err := service.Charge(context.Background(), &domain.Reservation{ID: 9}, 3500, "a@b.c")
	assert.Error(t, err)
}

func TestService_HandleCallback_Success(t *testing.T) {
	cfg := testConfig("http://unused")
	payments := new(MockPaymentRepo)
	reservations := new(MockReservationWriter)
	service := NewService(payments, reservations, cfg, nil)

	payments.On("GetByMerchantOID", mock.Anything, "oid1").Return(&domain.PaytrPayment{
		ID: 1, ReservationID: 9, MerchantOID: "oid1", Amount: 3500,
	}, nil)
	payments.On("MarkPaidIdempotent", mock.Anything, "oid1", mock.Anything, mock.Anything).Return(true, nil)
	reservations.On("UpdatePaymentOutcome", mock.Anything, int64(9), domain.PayCreditCard, domain.PaymentPaid, "oid1").Return(nil)
	reservations.On("UpdateStatus", mock.Anything, int64(9), domain.ReservationConfirmed).Return(nil)

	form := CallbackForm{
		MerchantOID: "oid1",
		Status:      "success",
		TotalAmount: "350000",
		Hash:        signCallback(cfg, "oid1", "success", "350000"),
	}

	err := service.HandleCallback(context.Background(), form, "raw-body")

	assert.NoError(t, err)
	reservations.AssertExpectations(t)
}

func TestService_HandleCallback_InvalidHash(t *testing.T) {
	cfg := testConfig("http://unused")
	payments := new(MockPaymentRepo)
	service := NewService(payments, new(MockReservationWriter), cfg, nil)

	form := CallbackForm{
		MerchantOID: "oid1",
		Status:      "success",
		TotalAmount: "350000",
		Hash:        "not-a-valid-signature",
	}

	err := service.HandleCallback(context.Background(), form, "raw-body")

	assert.ErrorIs(t, err, ErrInvalidHash)
	payments.AssertNotCalled(t, "GetByMerchantOID", mock.Anything, mock.Anything)
}

func TestService_HandleCallback_ReplayIsNoop(t *testing.T) {
	cfg := testConfig("http://unused")
	payments := new(MockPaymentRepo)
	reservations := new(MockReservationWriter)
	service := NewService(payments, reservations, cfg, nil)

	payments.On("GetByMerchantOID", mock.Anything, "oid1").Return(&domain.PaytrPayment{
		ID: 1, ReservationID: 9, MerchantOID: "oid1", Amount: 3500,
	}, nil)
	// already paid: the idempotent mark reports no change
	payments.On("MarkPaidIdempotent", mock.Anything, "oid1", mock.Anything, mock.Anything).Return(false, nil)

	form := CallbackForm{
		MerchantOID: "oid1",
		Status:      "success",
		TotalAmount: "350000",
		Hash:        signCallback(cfg, "oid1", "success", "350000"),
	}

	err := service.HandleCallback(context.Background(), form, "raw-body")

	assert.NoError(t, err)
	reservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	reservations.AssertNotCalled(t, "UpdatePaymentOutcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleCallback_AmountMismatch(t *testing.T) {
	cfg := testConfig("http://unused")
	payments := new(MockPaymentRepo)
	reservations := new(MockReservationWriter)
	service := NewService(payments, reservations, cfg, nil)

	payments.On("GetByMerchantOID", mock.Anything, "oid1").Return(&domain.PaytrPayment{
		ID: 1, ReservationID: 9, MerchantOID: "oid1", Amount: 3500,
	}, nil)
	payments.On("MarkFailed", mock.Anything, "oid1", mock.Anything, mock.Anything).Return(nil)

	form := CallbackForm{
		MerchantOID: "oid1",
		Status:      "success",
		TotalAmount: "100",
		Hash:        signCallback(cfg, "oid1", "success", "100"),
	}

	err := service.HandleCallback(context.Background(), form, "raw-body")

	assert.ErrorIs(t, err, ErrAmountMismatch)
	payments.AssertNotCalled(t, "MarkPaidIdempotent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleCallback_GatewayFailure(t *testing.T) {
	cfg := testConfig("http://unused")
	payments := new(MockPaymentRepo)
	reservations := new(MockReservationWriter)
	service := NewService(payments, reservations, cfg, nil)

	payments.On("GetByMerchantOID", mock.Anything, "oid1").Return(&domain.PaytrPayment{
		ID: 1, ReservationID: 9, MerchantOID: "oid1", Amount: 3500,
	}, nil)
	payments.On("MarkFailed", mock.Anything, "oid1", mock.Anything, mock.Anything).Return(nil)
	reservations.On("UpdatePaymentOutcome", mock.Anything, int64(9), domain.PayCreditCard, domain.PaymentFailed, "oid1").Return(nil)

	form := CallbackForm{
		MerchantOID: "oid1",
		Status:      "failed",
		TotalAmount: "350000",
		Hash:        signCallback(cfg, "oid1", "failed", "350000"),
	}

	err := service.HandleCallback(context.Background(), form, "raw-body")

	assert.NoError(t, err)
	payments.AssertCalled(t, "MarkFailed", mock.Anything, "oid1", mock.Anything, mock.Anything)
}
