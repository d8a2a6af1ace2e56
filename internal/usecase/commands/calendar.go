package commands

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/commands/calendar.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/rangeset"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/pkg/ptr"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound  = shared.ErrRoomNotFound
	ErrRangeNotFound = shared.ErrRangeNotFound

	// ErrConcurrencyConflict is returned when the store rejected an
	// overlapping write that slipped past the room lock.
	ErrConcurrencyConflict = errs.Class("range write conflicted with a concurrent write", errs.ErrConcurrencyConflict)
)

type SetPriceRequest struct {
	RoomID           uuid.UUID
	Span             calendar.DateRange
	PriceCents       int64
	PercentIncrement float64
}

type BlockDatesRequest struct {
	RoomID uuid.UUID
	Span   calendar.DateRange
	Reason string
}

// RangeWriteResult summarizes the edits one write made to a room's ranges.
type RangeWriteResult struct {
	Updated int
	Created int
	Deleted int
}

func (r RangeWriteResult) Changed() bool {
	return r.Updated+r.Created+r.Deleted > 0
}

type CalendarCommands interface {
	SetPrice(ctx context.Context, req SetPriceRequest) (*RangeWriteResult, error)
	BlockDates(ctx context.Context, req BlockDatesRequest) (*RangeWriteResult, error)
	DeletePriceRange(ctx context.Context, roomID, rangeID uuid.UUID) error
	DeleteBlockRange(ctx context.Context, roomID, rangeID uuid.UUID) error
}

type calendarUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.PriceRangeCache
	clock clock.Clock
}

func NewCalendarUseCase(uow shared.UnitOfWork, cache shared.PriceRangeCache, clk clock.Clock) CalendarCommands {
	return &calendarUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

type rangeEvent struct {
	RoomID           uuid.UUID  `json:"roomId"`
	RangeID          *uuid.UUID `json:"rangeId,omitempty"`
	StartDate        string     `json:"startDate"`
	EndDate          string     `json:"endDate"`
	PriceCents       *int64     `json:"priceCents,omitempty"`
	PercentIncrement *float64   `json:"percentIncrement,omitempty"`
	State            string     `json:"state,omitempty"`
}

func (uc *calendarUseCaseImpl) SetPrice(ctx context.Context, req SetPriceRequest) (*RangeWriteResult, error) {
	rate, err := pricing.NewRate(req.PriceCents, req.PercentIncrement)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	var result RangeWriteResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plan, werr := writeRange(ctx, tx, tx.PriceRanges(), req.RoomID, req.Span, rate)
		if werr != nil {
			return werr
		}
		result = summarize(plan)
		if !result.Changed() {
			return nil
		}

		cents, pct := rate.Price.Cents(), rate.PercentIncrement
		return uc.enqueue(ctx, tx, shared.KindPriceUpdated, rangeEvent{
			RoomID:           req.RoomID,
			StartDate:        req.Span.Start().String(),
			EndDate:          req.Span.End().String(),
			PriceCents:       &cents,
			PercentIncrement: &pct,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.invalidatePrices(ctx, req.RoomID)
	return &result, nil
}

func (uc *calendarUseCaseImpl) BlockDates(ctx context.Context, req BlockDatesRequest) (*RangeWriteResult, error) {
	reason := availability.NewBlockReason(req.Reason)

	var result RangeWriteResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plan, werr := writeRange(ctx, tx, tx.BlockRanges(), req.RoomID, req.Span, reason)
		if werr != nil {
			return werr
		}
		result = summarize(plan)
		if !result.Changed() {
			return nil
		}

		return uc.enqueue(ctx, tx, shared.KindAvailabilityUpdated, rangeEvent{
			RoomID:    req.RoomID,
			StartDate: req.Span.Start().String(),
			EndDate:   req.Span.End().String(),
			State:     availability.StateBlocked.String(),
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *calendarUseCaseImpl) DeletePriceRange(ctx context.Context, roomID, rangeID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, derr := deleteRange(ctx, tx, tx.PriceRanges(), roomID, rangeID)
		if derr != nil {
			return derr
		}
		return uc.enqueue(ctx, tx, shared.KindPriceRemoved, rangeEvent{
			RoomID:    roomID,
			RangeID:   ptr.Of(removed.ID),
			StartDate: removed.Span.Start().String(),
			EndDate:   removed.Span.End().String(),
		})
	})
	if err != nil {
		return err
	}

	uc.invalidatePrices(ctx, roomID)
	return nil
}

func (uc *calendarUseCaseImpl) DeleteBlockRange(ctx context.Context, roomID, rangeID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, derr := deleteRange(ctx, tx, tx.BlockRanges(), roomID, rangeID)
		if derr != nil {
			return derr
		}
		return uc.enqueue(ctx, tx, shared.KindAvailabilityUpdated, rangeEvent{
			RoomID:    roomID,
			RangeID:   ptr.Of(removed.ID),
			StartDate: removed.Span.Start().String(),
			EndDate:   removed.Span.End().String(),
			State:     availability.StateOpen.String(),
		})
	})
}

// writeRange reconciles payload over span for roomID and applies the plan
// inside tx. The room row is locked first, so two writers of the same room
// never reconcile against the same snapshot.
func writeRange[P comparable](
	ctx context.Context,
	tx shared.Tx,
	repo shared.RangeRepository[P],
	roomID uuid.UUID,
	span calendar.DateRange,
	payload P,
) (rangeset.Plan[P], error) {
	if err := lockRoom(ctx, tx, roomID); err != nil {
		return rangeset.Plan[P]{}, err
	}

	existing, err := repo.ListOverlapping(ctx, []uuid.UUID{roomID}, span)
	if err != nil {
		return rangeset.Plan[P]{}, err
	}

	plan, err := rangeset.Reconcile(roomID, span, payload, existing)
	if err != nil {
		return rangeset.Plan[P]{}, err
	}

	if err := applyPlan(ctx, repo, plan); err != nil {
		return rangeset.Plan[P]{}, err
	}
	return plan, nil
}

func applyPlan[P comparable](ctx context.Context, repo shared.RangeRepository[P], plan rangeset.Plan[P]) error {
	for _, id := range plan.Deletes {
		if err := repo.Delete(ctx, id); err != nil {
			return mapRangeWriteErr(err)
		}
	}
	for _, r := range plan.Updates {
		if err := repo.Update(ctx, r); err != nil {
			return mapRangeWriteErr(err)
		}
	}
	for _, r := range plan.Creates {
		if err := repo.Create(ctx, r); err != nil {
			return mapRangeWriteErr(err)
		}
	}
	return nil
}

func deleteRange[P comparable](
	ctx context.Context,
	tx shared.Tx,
	repo shared.RangeRepository[P],
	roomID, rangeID uuid.UUID,
) (rangeset.Range[P], error) {
	if err := lockRoom(ctx, tx, roomID); err != nil {
		return rangeset.Range[P]{}, err
	}

	existing, err := repo.FindByID(ctx, rangeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return rangeset.Range[P]{}, ErrRangeNotFound
		}
		return rangeset.Range[P]{}, err
	}
	if existing.RoomID != roomID {
		return rangeset.Range[P]{}, ErrRangeNotFound
	}

	if err := repo.Delete(ctx, rangeID); err != nil {
		return rangeset.Range[P]{}, err
	}
	return existing, nil
}

func lockRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID) error {
	if _, err := tx.Rooms().LockByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

func mapRangeWriteErr(err error) error {
	if infra.IsKind(err, infra.KindExclusionViolated) {
		return errs.Mark(err, ErrConcurrencyConflict)
	}
	return err
}

func summarize[P comparable](plan rangeset.Plan[P]) RangeWriteResult {
	return RangeWriteResult{
		Updated: len(plan.Updates),
		Created: len(plan.Creates),
		Deleted: len(plan.Deletes),
	}
}

func (uc *calendarUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, ev rangeEvent) error {
	return enqueueChannelEvent(ctx, tx, uc.clock, kind, ev.RoomID, ev)
}

// invalidatePrices runs after commit. A stale entry expires on its own TTL,
// so a failure here is only logged.
func (uc *calendarUseCaseImpl) invalidatePrices(ctx context.Context, roomID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, roomID); err != nil {
		slog.Warn("failed to invalidate price cache", "room_id", roomID.String(), "error", err.Error())
	}
}

func enqueueChannelEvent(ctx context.Context, tx shared.Tx, clk clock.Clock, kind string, roomID uuid.UUID, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal channel event")
	}
	return tx.Notifications().Enqueue(ctx, shared.NotificationJob{
		Kind:         kind,
		Topic:        shared.TopicChannelManager,
		PartitionKey: roomID.String(),
		Payload:      data,
		RunAt:        clk.Now(),
	})
}
