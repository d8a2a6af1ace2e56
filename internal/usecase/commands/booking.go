package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour
)

var (
	ErrBookingNotFound       = shared.ErrBookingNotFound
	ErrRoomUnavailable       = errs.Class("room is not available for the whole stay", errs.ErrConflict)
	ErrDuplicateBooking      = errs.Class("idempotency key reused with a different request", errs.ErrConflict)
	ErrIdempotencyInProgress = errs.Class("request with this idempotency key is in progress", errs.ErrConflict)
)

type CreateBookingRequest struct {
	RoomID    uuid.UUID
	Stay      calendar.DateRange
	GuestName string
	PartySize int
	Note      string
}

type CreateBookingResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, actorID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	calculator pricing.PriceCalculator
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, calculator pricing.PriceCalculator) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, calculator: calculator}
}

type bookingEvent struct {
	RoomID    uuid.UUID `json:"roomId"`
	BookingID uuid.UUID `json:"bookingId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	State     string    `json:"state"`
}

// CreateBooking claims the idempotency key, checks every night of the stay
// is open and stores the priced booking, all in one transaction under the
// room lock. A completed key with the same request replays its booking.
func (uc *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
	actorID, idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	guest, err := booking.NewGuestName(req.GuestName)
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(req)

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed, ierr := uc.claimIdempotencyKey(ctx, tx, idempotencyKey, actorID, requestHash)
		if ierr != nil {
			return ierr
		}
		if replayed != nil {
			result = &CreateBookingResult{BookingID: *replayed, IsReplayed: true}
			return nil
		}

		b, berr := uc.createBooking(ctx, tx, req, guest)
		if berr != nil {
			return berr
		}

		if ierr = tx.Idempotency().Complete(ctx, idempotencyKey, actorID, b.ID()); ierr != nil {
			return ierr
		}
		result = &CreateBookingResult{BookingID: b.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) createBooking(
	ctx context.Context,
	tx shared.Tx,
	req CreateBookingRequest,
	guest booking.GuestName,
) (*booking.Booking, error) {
	rm, err := tx.Rooms().LockByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	roomIDs := []uuid.UUID{req.RoomID}
	bookings, err := tx.Bookings().ListOverlapping(ctx, roomIDs, req.Stay)
	if err != nil {
		return nil, err
	}
	blocks, err := tx.BlockRanges().ListOverlapping(ctx, roomIDs, req.Stay)
	if err != nil {
		return nil, err
	}

	idx := availability.NewIndex(booking.Occupancies(bookings), blocks)
	if day, state, taken := idx.FirstUnavailable(req.RoomID, req.Stay); taken {
		return nil, errs.Mark(errs.Newf("%s is %s", day, state), ErrRoomUnavailable)
	}

	prices, err := tx.PriceRanges().ListOverlapping(ctx, roomIDs, req.Stay)
	if err != nil {
		return nil, err
	}
	daily := pricing.ExpandToDaily(prices)[req.RoomID]

	services := &booking.Services{Clock: uc.clock, PriceCalculator: uc.calculator}
	spec := booking.RoomSpec{ID: rm.ID(), Capacity: rm.Capacity()}
	b, _, err := booking.NewBooking(services, spec, req.Stay, guest, req.PartySize, daily, booking.NewNote(req.Note))
	if err != nil {
		return nil, err
	}

	if err := tx.Bookings().Create(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindExclusionViolated) {
			return nil, errs.Mark(err, ErrRoomUnavailable)
		}
		return nil, err
	}

	err = enqueueChannelEvent(ctx, tx, uc.clock, shared.KindAvailabilityUpdated, b.RoomID(), bookingEvent{
		RoomID:    b.RoomID(),
		BookingID: b.ID(),
		StartDate: b.Stay().Start().String(),
		EndDate:   b.Stay().End().String(),
		State:     availability.StateBooked.String(),
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// claimIdempotencyKey returns the stored booking ID when the key already
// completed for an identical request.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
) (*uuid.UUID, error) {
	now := uc.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, userID, createBookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, key, userID)
	if err != nil {
		return nil, err
	}

	if existing.ExpiresAt.Before(now) {
		reclaimed, rerr := tx.Idempotency().ReclaimExpired(ctx, key, userID, requestHash, expiresAt, now)
		if rerr != nil {
			return nil, rerr
		}
		if reclaimed {
			return nil, nil
		}
	}

	if existing.RequestHash != requestHash {
		return nil, ErrDuplicateBooking
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultID == nil {
			return nil, errs.New("completed idempotency key has no result")
		}
		return existing.ResultID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err = lockRoom(ctx, tx, b.RoomID()); err != nil {
			return err
		}
		// re-read under the room lock
		if b, err = findBooking(ctx, tx, bookingID); err != nil {
			return err
		}

		if err = b.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		if err = tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}

		return enqueueChannelEvent(ctx, tx, uc.clock, shared.KindAvailabilityUpdated, b.RoomID(), bookingEvent{
			RoomID:    b.RoomID(),
			BookingID: b.ID(),
			StartDate: b.Stay().Start().String(),
			EndDate:   b.Stay().End().String(),
			State:     availability.StateOpen.String(),
		})
	})
}

func findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func calculateRequestHash(req CreateBookingRequest) string {
	data, _ := json.Marshal(struct {
		RoomID    uuid.UUID     `json:"roomId"`
		StartDate calendar.Date `json:"startDate"`
		EndDate   calendar.Date `json:"endDate"`
		GuestName string        `json:"guestName"`
		PartySize int           `json:"partySize"`
		Note      string        `json:"note"`
	}{req.RoomID, req.Stay.Start(), req.Stay.End(), req.GuestName, req.PartySize, req.Note})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
