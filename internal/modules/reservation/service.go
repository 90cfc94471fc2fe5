package reservation

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/policy"
	"hotelbooking/internal/modules/quota"
	"hotelbooking/internal/pkg/dates"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const codeRetries = 3

type Service struct {
	reservations ReservationRepository
	rooms        RoomReader
	hotels       HotelReader
	users        UserReader
	policies     PolicyReader
	prices       PriceQuoter
	ledger       QuotaLedger
	gateway      PaymentGateway
	events       EventSink

	now func() time.Time
}

func NewService(
	reservations ReservationRepository,
	rooms RoomReader,
	hotels HotelReader,
	users UserReader,
	policies PolicyReader,
	prices PriceQuoter,
	ledger QuotaLedger,
	gateway PaymentGateway,
	events EventSink,
) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		hotels:       hotels,
		users:        users,
		policies:     policies,
		prices:       prices,
		ledger:       ledger,
		gateway:      gateway,
		events:       events,
		now:          time.Now,
	}
}

// Create runs the full booking sequence: validate, price, commit quota,
// persist, charge. The quota commit happens before the insert; if the insert
// then fails, the committed nights are released so no decrement ever exists
// without a reservation row.
//
// Payment is deliberately fail-open: a gateway error or timeout keeps the
// reservation and its inventory, downgrades the method to pay-on-site and
// flags the failure in the result instead of failing the request.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReservationRequest) (*CreateReservationResult, error) {
	checkIn, err := dates.Parse(req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := dates.Parse(req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	if req.Guests <= 0 {
		return nil, ErrValidation
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if method != domain.PayOnSite && method != domain.PayCreditCard {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if req.Guests > room.Capacity {
		return nil, ErrValidation
	}

	// defensive: referential integrity should make this unreachable
	hotel, err := s.hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	ok, err := s.ledger.CheckAvailability(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoAvailability
	}

	qt, err := s.prices.QuoteStay(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	// the commit is the serialization point; losing the race here is a
	// normal availability failure, not a system error
	nights, err := s.ledger.Commit(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		var exceeded *quota.QuotaExceededError
		if errors.As(err, &exceeded) {
			return nil, ErrNoAvailability
		}
		return nil, err
	}

	res := &domain.Reservation{
		Code:          newCode(),
		UserID:        userID,
		HotelID:       hotel.ID,
		RoomID:        room.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		TotalPrice:    qt.Total,
		Status:        domain.ReservationPending,
		PaymentMethod: method,
		PaymentStatus: domain.PaymentPending,
	}
	if err := s.persistWithFreshCode(ctx, res); err != nil {
		if rerr := s.ledger.Release(ctx, room.ID, nights); rerr != nil {
			log.Printf("level=error msg=failed to release quota after persist failure room_id=%d err=%v", room.ID, rerr)
		}
		return nil, err
	}

	result := &CreateReservationResult{Reservation: res}

	if method == domain.PayCreditCard {
		email := ""
		if u, uerr := s.users.GetByID(ctx, userID); uerr == nil && u != nil {
			email = u.Email
		}
		charge, err := s.gateway.Charge(ctx, res, qt.Total, email)
		if err != nil {
			log.Printf("level=error msg=payment charge failed reservation_id=%d err=%v", res.ID, err)
			res.PaymentMethod = domain.PayOnSite
			res.PaymentStatus = domain.PaymentPending
			if uerr := s.reservations.UpdatePaymentOutcome(ctx, res.ID, domain.PayOnSite, domain.PaymentPending, ""); uerr != nil {
				log.Printf("level=error msg=failed to downgrade payment method reservation_id=%d err=%v", res.ID, uerr)
			}
			result.PaymentFailed = true
		} else {
			res.PaymentRef = charge.MerchantOID
			result.PaymentURL = charge.RedirectURL
			if uerr := s.reservations.UpdatePaymentOutcome(ctx, res.ID, domain.PayCreditCard, domain.PaymentPending, charge.MerchantOID); uerr != nil {
				log.Printf("level=error msg=failed to store payment reference reservation_id=%d err=%v", res.ID, uerr)
			}
		}
	}

	if s.events != nil {
		s.events.ReservationCreated(res)
	}

	return result, nil
}

func (s *Service) persistWithFreshCode(ctx context.Context, res *domain.Reservation) error {
	var err error
	for i := 0; i < codeRetries; i++ {
		err = s.reservations.Create(ctx, res)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateCode) {
			return err
		}
		res.Code = newCode()
	}
	return err
}

func newCode() string {
	return "HB-" + strings.ToUpper(uuid.NewString()[:8])
}

// Cancel is owner-only; administrators use ForceStatus instead. The policy
// decision is made against the injected clock, and quota is intentionally
// not restored ("no automatic resale").
func (s *Service) Cancel(ctx context.Context, userID, reservationID int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if res.UserID != userID {
		return nil, ErrForbidden
	}

	pol, err := s.policies.GetByHotelID(ctx, res.HotelID)
	if err != nil {
		return nil, err
	}

	decision := policy.Evaluate(res, pol, s.now())
	if !decision.Allowed {
		return nil, &CancellationDeniedError{Decision: decision}
	}

	if err := s.reservations.Cancel(ctx, reservationID, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.ReservationCancelled(updated)
	}
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, userID, reservationID int64, isAdmin bool) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isAdmin && res.UserID != userID {
		return nil, ErrForbidden
	}
	return res, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID, limit, offset)
}

// ForceStatus is the admin transition path. It still refuses to resurrect
// terminal reservations.
func (s *Service) ForceStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !validForcedTransition(res.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	if status == domain.ReservationCancelled {
		if err := s.reservations.Cancel(ctx, reservationID, s.now()); err != nil {
			return nil, err
		}
	} else {
		if err := s.reservations.UpdateStatus(ctx, reservationID, status); err != nil {
			return nil, err
		}
	}
	return s.reservations.GetByID(ctx, reservationID)
}

func validForcedTransition(from, to domain.ReservationStatus) bool {
	switch to {
	case domain.ReservationConfirmed:
		return from == domain.ReservationPending
	case domain.ReservationCompleted:
		return from == domain.ReservationConfirmed
	case domain.ReservationCancelled:
		return from == domain.ReservationPending || from == domain.ReservationConfirmed
	}
	return false
}
