package shared

import (
	"context"
	"time"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/rangeset"
	"pms-calendar/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	PriceRanges() PriceRangeRepository
	BlockRanges() BlockRangeRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// LockByID takes a row lock on the room until the transaction ends. Every
	// writer of a room's ranges or bookings goes through it first.
	LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	List(ctx context.Context) ([]*room.Room, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*room.Room, error)
}

// RangeRepository stores one kind of reconciled range.
type RangeRepository[P comparable] interface {
	ListOverlapping(ctx context.Context, roomIDs []uuid.UUID, span calendar.DateRange) ([]rangeset.Range[P], error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]rangeset.Range[P], error)
	FindByID(ctx context.Context, id uuid.UUID) (rangeset.Range[P], error)
	Create(ctx context.Context, r rangeset.Range[P]) error
	Update(ctx context.Context, r rangeset.Range[P]) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type (
	PriceRangeRepository = RangeRepository[pricing.Rate]
	BlockRangeRepository = RangeRepository[availability.BlockReason]
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ListOverlapping returns bookings of any status; availability filters canceled ones.
	ListOverlapping(ctx context.Context, roomIDs []uuid.UUID, span calendar.DateRange) ([]*booking.Booking, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID, after *Keyset, limit int) ([]*booking.Booking, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, userID, resultID uuid.UUID) error
	// ReclaimExpired restarts an expired key for a new request. It reports
	// false if the key was not expired at now.
	ReclaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// NotificationRepository is the transactional outbox. Use cases only
// enqueue; the relay claims, publishes and settles jobs.
type NotificationRepository interface {
	Enqueue(ctx context.Context, job NotificationJob) error
	// ClaimDue locks up to limit queued jobs whose run time has passed. Other
	// relays skip them until the transaction ends.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]QueuedJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, lastErr string, runAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error
}

// PriceRangeCache holds each room's full list of price ranges between writes.
type PriceRangeCache interface {
	Get(ctx context.Context, roomID uuid.UUID) ([]pricing.PriceRange, bool, error)
	Set(ctx context.Context, roomID uuid.UUID, ranges []pricing.PriceRange) error
	Invalidate(ctx context.Context, roomIDs ...uuid.UUID) error
}
