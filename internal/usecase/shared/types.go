package shared

import (
	"time"

	"pms-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound    = errs.Class("room not found", errs.ErrNotFound)
	ErrRangeNotFound   = errs.Class("date range not found", errs.ErrNotFound)
	ErrBookingNotFound = errs.Class("booking not found", errs.ErrNotFound)
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

// Notification kinds published to the channel manager.
const (
	KindPriceUpdated        = "channel.price_updated"
	KindPriceRemoved        = "channel.price_removed"
	KindAvailabilityUpdated = "channel.availability_updated"
)

const TopicChannelManager = "channel-manager"

// NotificationJob is an outbox row. PartitionKey keeps one room's events in
// order on the broker.
type NotificationJob struct {
	Kind         string
	Topic        string
	PartitionKey string
	Payload      []byte
	RunAt        time.Time
}

// QueuedJob is a claimed outbox row on its way to the broker.
type QueuedJob struct {
	ID       uuid.UUID
	Attempts int
	NotificationJob
}

// Keyset is a position in a created_at DESC, id DESC listing.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}
