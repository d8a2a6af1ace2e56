//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Within runs one transaction at a time on a copy of the state and keeps the
// copy only when fn succeeds, so a failing use case leaves nothing behind.
package memstore

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/rangeset"
	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	rooms         map[uuid.UUID]*room.Room
	prices        map[uuid.UUID]pricing.PriceRange
	blocks        map[uuid.UUID]availability.BlockRange
	bookings      map[uuid.UUID]booking.Booking
	idempotency   map[[2]uuid.UUID]shared.IdempotencyRecord
	notifications []JobRecord
}

// JobRecord is an outbox row with its delivery state.
type JobRecord struct {
	shared.QueuedJob
	Status    string
	LastError string
}

func (s *state) clone() *state {
	return &state{
		rooms:         maps.Clone(s.rooms),
		prices:        maps.Clone(s.prices),
		blocks:        maps.Clone(s.blocks),
		bookings:      maps.Clone(s.bookings),
		idempotency:   maps.Clone(s.idempotency),
		notifications: append([]JobRecord(nil), s.notifications...),
	}
}

type Store struct {
	mu    sync.Mutex
	state *state

	// FailEnqueue makes every notification insert fail, to test rollback.
	FailEnqueue error
	Locks       []uuid.UUID
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: &state{
		rooms:       map[uuid.UUID]*room.Room{},
		prices:      map[uuid.UUID]pricing.PriceRange{},
		blocks:      map[uuid.UUID]availability.BlockRange{},
		bookings:    map[uuid.UUID]booking.Booking{},
		idempotency: map[[2]uuid.UUID]shared.IdempotencyRecord{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &tx{store: s, st: work}); err != nil {
		return err
	}
	// mirrors the deferred exclusion constraints checked at commit
	if a, b, overlap := rangeset.FindOverlap(values(work.prices)); overlap {
		return errs.Mark(infra.WrapRepoErr("price ranges "+a.Span.String()+" and "+b.Span.String()+" overlap", nil, infra.KindExclusionViolated), errs.ErrConcurrencyConflict)
	}
	if a, b, overlap := rangeset.FindOverlap(values(work.blocks)); overlap {
		return errs.Mark(infra.WrapRepoErr("block ranges "+a.Span.String()+" and "+b.Span.String()+" overlap", nil, infra.KindExclusionViolated), errs.ErrConcurrencyConflict)
	}
	s.state = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &tx{store: s, st: s.state.clone(), readOnly: true})
}

// AddRoom seeds a room directly.
func (s *Store) AddRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rooms[r.ID()] = r
}

func (s *Store) AddPriceRange(r pricing.PriceRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.prices[r.ID] = r
}

func (s *Store) AddBlockRange(r availability.BlockRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.blocks[r.ID] = r
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[b.ID()] = *b
}

// PriceRanges returns the committed price ranges of roomID sorted by start.
func (s *Store) PriceRanges(roomID uuid.UUID) []pricing.PriceRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return byRoom(s.state.prices, roomID)
}

func (s *Store) BlockRanges(roomID uuid.UUID) []availability.BlockRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return byRoom(s.state.blocks, roomID)
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.state.bookings))
	for _, b := range s.state.bookings {
		out = append(out, &b)
	}
	return out
}

func (s *Store) Notifications() []shared.NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.NotificationJob, 0, len(s.state.notifications))
	for _, j := range s.state.notifications {
		out = append(out, j.NotificationJob)
	}
	return out
}

// Jobs returns the committed outbox rows in insertion order.
func (s *Store) Jobs() []JobRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]JobRecord(nil), s.state.notifications...)
}

// IdempotencyKeys counts the stored keys.
func (s *Store) IdempotencyKeys() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.idempotency)
}

type tx struct {
	store    *Store
	st       *state
	readOnly bool
}

func (t *tx) Rooms() shared.RoomRepository                 { return roomRepo{t} }
func (t *tx) PriceRanges() shared.PriceRangeRepository     { return &rangeRepo[pricing.Rate]{t: t, m: t.st.prices} }
func (t *tx) BlockRanges() shared.BlockRangeRepository     { return &rangeRepo[availability.BlockReason]{t: t, m: t.st.blocks} }
func (t *tx) Bookings() shared.BookingRepository           { return bookingRepo{t} }
func (t *tx) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t} }
func (t *tx) Notifications() shared.NotificationRepository { return notificationRepo{t} }

func (t *tx) checkWritable() error {
	if t.readOnly {
		return infra.WrapRepoErr("write in read-only transaction", nil, infra.KindDBFailure)
	}
	return nil
}

type roomRepo struct{ t *tx }

func (r roomRepo) Create(_ context.Context, rm *room.Room) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.t.st.rooms[rm.ID()]; ok {
		return infra.WrapRepoErr("room exists", nil, infra.KindDuplicateKey)
	}
	r.t.st.rooms[rm.ID()] = rm
	return nil
}

func (r roomRepo) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.t.st.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

func (r roomRepo) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	rm, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.t.store.Locks = append(r.t.store.Locks, id)
	return rm, nil
}

func (r roomRepo) List(_ context.Context) ([]*room.Room, error) {
	out := make([]*room.Room, 0, len(r.t.st.rooms))
	for _, rm := range r.t.st.rooms {
		out = append(out, rm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (r roomRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*room.Room, error) {
	var out []*room.Room
	for _, id := range ids {
		if rm, ok := r.t.st.rooms[id]; ok {
			out = append(out, rm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

type rangeRepo[P comparable] struct {
	t *tx
	m map[uuid.UUID]rangeset.Range[P]
}

func (r *rangeRepo[P]) ListOverlapping(_ context.Context, roomIDs []uuid.UUID, span calendar.DateRange) ([]rangeset.Range[P], error) {
	var out []rangeset.Range[P]
	for _, id := range roomIDs {
		out = append(out, rangeset.Filter(values(r.m), id, span)...)
	}
	rangeset.SortByStart(out)
	return out, nil
}

func (r *rangeRepo[P]) ListByRoom(_ context.Context, roomID uuid.UUID) ([]rangeset.Range[P], error) {
	return byRoom(r.m, roomID), nil
}

func (r *rangeRepo[P]) FindByID(_ context.Context, id uuid.UUID) (rangeset.Range[P], error) {
	got, ok := r.m[id]
	if !ok {
		return rangeset.Range[P]{}, infra.WrapRepoErr("range not found", nil, infra.KindNotFound)
	}
	return got, nil
}

func (r *rangeRepo[P]) Create(_ context.Context, rg rangeset.Range[P]) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.t.st.rooms[rg.RoomID]; !ok {
		return infra.WrapRepoErr("unknown room", nil, infra.KindForeignKeyViolated)
	}
	r.m[rg.ID] = rg
	return nil
}

func (r *rangeRepo[P]) Update(_ context.Context, rg rangeset.Range[P]) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.m[rg.ID]; !ok {
		return infra.WrapRepoErr("range not found", nil, infra.KindNotFound)
	}
	r.m[rg.ID] = rg
	return nil
}

func (r *rangeRepo[P]) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.m[id]; !ok {
		return infra.WrapRepoErr("range not found", nil, infra.KindNotFound)
	}
	delete(r.m, id)
	return nil
}

type bookingRepo struct{ t *tx }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	r.t.st.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.t.st.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.t.st.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.t.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &b, nil
}

func (r bookingRepo) ListOverlapping(_ context.Context, roomIDs []uuid.UUID, span calendar.DateRange) ([]*booking.Booking, error) {
	wanted := make(map[uuid.UUID]bool, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = true
	}
	var out []*booking.Booking
	for _, b := range r.t.st.bookings {
		if wanted[b.RoomID()] && b.Stay().Overlaps(span) {
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r bookingRepo) ListByRoom(_ context.Context, roomID uuid.UUID, after *shared.Keyset, limit int) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.t.st.bookings {
		if b.RoomID() == roomID {
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().After(out[j].CreatedAt())
		}
		return out[i].ID().String() > out[j].ID().String()
	})
	if after != nil {
		for i, b := range out {
			if b.CreatedAt().Before(after.CreatedAt) ||
				(b.CreatedAt().Equal(after.CreatedAt) && b.ID().String() < after.ID.String()) {
				out = out[i:]
				break
			}
			if i == len(out)-1 {
				out = nil
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type idempotencyRepo struct{ t *tx }

func (r idempotencyRepo) TryInsert(_ context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	if err := r.t.checkWritable(); err != nil {
		return false, err
	}
	k := [2]uuid.UUID{key, userID}
	if _, ok := r.t.st.idempotency[k]; ok {
		return false, nil
	}
	r.t.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) Get(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.t.st.idempotency[[2]uuid.UUID{key, userID}]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func (r idempotencyRepo) Complete(_ context.Context, key, userID, resultID uuid.UUID) error {
	k := [2]uuid.UUID{key, userID}
	rec, ok := r.t.st.idempotency[k]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultID = &resultID
	r.t.st.idempotency[k] = rec
	return nil
}

func (r idempotencyRepo) ReclaimExpired(_ context.Context, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error) {
	k := [2]uuid.UUID{key, userID}
	rec, ok := r.t.st.idempotency[k]
	if !ok || !rec.ExpiresAt.Before(now) {
		return false, nil
	}
	rec.Status = shared.IdempotencyStatusProcessing
	rec.RequestHash = requestHash
	rec.ResultID = nil
	rec.ExpiresAt = expiresAt
	r.t.st.idempotency[k] = rec
	return true, nil
}

func (r idempotencyRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	if err := r.t.checkWritable(); err != nil {
		return 0, err
	}
	var n int64
	for k, rec := range r.t.st.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(r.t.st.idempotency, k)
			n++
		}
	}
	return n, nil
}

type notificationRepo struct{ t *tx }

func (r notificationRepo) Enqueue(_ context.Context, job shared.NotificationJob) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	if r.t.store.FailEnqueue != nil {
		return infra.WrapRepoErr("failed to create notification job", r.t.store.FailEnqueue)
	}
	r.t.st.notifications = append(r.t.st.notifications, JobRecord{
		QueuedJob: shared.QueuedJob{ID: uuid.New(), NotificationJob: job},
		Status:    "queued",
	})
	return nil
}

func (r notificationRepo) ClaimDue(_ context.Context, now time.Time, limit int) ([]shared.QueuedJob, error) {
	var out []shared.QueuedJob
	for _, j := range r.t.st.notifications {
		if len(out) == limit {
			break
		}
		if j.Status == "queued" && !j.RunAt.After(now) {
			out = append(out, j.QueuedJob)
		}
	}
	return out, nil
}

func (r notificationRepo) MarkSent(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(j *JobRecord) {
		j.Status = "sent"
		j.Attempts++
		j.LastError = ""
	})
}

func (r notificationRepo) Reschedule(_ context.Context, id uuid.UUID, lastErr string, runAt time.Time) error {
	return r.update(id, func(j *JobRecord) {
		j.Attempts++
		j.LastError = lastErr
		j.RunAt = runAt
	})
}

func (r notificationRepo) MarkFailed(_ context.Context, id uuid.UUID, lastErr string) error {
	return r.update(id, func(j *JobRecord) {
		j.Status = "failed"
		j.Attempts++
		j.LastError = lastErr
	})
}

func (r notificationRepo) update(id uuid.UUID, mutate func(*JobRecord)) error {
	if err := r.t.checkWritable(); err != nil {
		return err
	}
	for i := range r.t.st.notifications {
		if r.t.st.notifications[i].ID == id {
			mutate(&r.t.st.notifications[i])
			return nil
		}
	}
	return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
}

func values[P comparable](m map[uuid.UUID]rangeset.Range[P]) []rangeset.Range[P] {
	out := make([]rangeset.Range[P], 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	return out
}

func byRoom[P comparable](m map[uuid.UUID]rangeset.Range[P], roomID uuid.UUID) []rangeset.Range[P] {
	var out []rangeset.Range[P]
	for _, r := range m {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	rangeset.SortByStart(out)
	return out
}
