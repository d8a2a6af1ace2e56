// Package outbox relays queued notification jobs to the broker. Jobs are
// claimed inside a transaction, so concurrent relays never publish the same
// row twice at once; delivery is at least once.
package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"pms-calendar/internal/infra/broker"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/config"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/shared"
)

const (
	eventSource          = "app://pms-calendar"
	defaultPollInterval  = 500 * time.Millisecond
	defaultPurgeInterval = time.Hour
	defaultRetryDelay    = 5 * time.Second
)

var (
	ErrUpstreamIntegration = errs.Class("channel manager notification failed", errs.ErrUpstreamIntegration)
	ErrWorkerNotConfigured = errs.New("outbox: worker missing dependencies")
)

type Worker struct {
	uow       shared.UnitOfWork
	publisher broker.Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	// topics maps a job's logical topic to a broker topic.
	topics        map[string]string
	purgeInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWorker(uow shared.UnitOfWork, publisher broker.Publisher, clk clock.Clock, cfg config.OutboxConfig, kafka config.KafkaConfig) *Worker {
	return &Worker{
		uow:           uow,
		publisher:     publisher,
		clock:         clk,
		cfg:           cfg,
		topics:        map[string]string{shared.TopicChannelManager: kafka.ChannelTopic},
		purgeInterval: defaultPurgeInterval,
	}
}

// Start runs the relay in the background until Stop.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		if err := w.Run(ctx); err != nil && !errs.Is(err, context.Canceled) {
			slog.Error("outbox worker stopped", "error", err.Error())
		}
	}()
}

// Stop cancels the relay and waits for the current batch to settle or ctx to expire.
func (w *Worker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run relays due jobs and purges expired idempotency keys until ctx ends.
// Without a publisher only the purge runs and jobs stay queued.
func (w *Worker) Run(ctx context.Context) error {
	if w.uow == nil || w.clock == nil {
		return ErrWorkerNotConfigured
	}

	var pollC <-chan time.Time
	if w.publisher != nil {
		poll := time.NewTicker(w.pollInterval())
		defer poll.Stop()
		pollC = poll.C
	} else {
		slog.Info("no broker configured, notification jobs stay queued")
	}
	purge := time.NewTicker(w.purgeInterval)
	defer purge.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pollC:
			if _, err := w.ProcessOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("outbox batch failed", "error", err.Error())
			}
		case <-purge.C:
			if _, err := w.PurgeIdempotencyKeys(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("idempotency key purge failed", "error", err.Error())
			}
		}
	}
}

// ProcessOnce publishes one batch of due jobs and reports how many were sent.
// A publish failure is recorded on its job and does not fail the batch.
func (w *Worker) ProcessOnce(ctx context.Context) (int, error) {
	if w.publisher == nil {
		return 0, ErrWorkerNotConfigured
	}
	sent := 0
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimDue(ctx, w.clock.Now(), w.batchSize())
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if perr := w.publish(ctx, job); perr != nil {
				if serr := w.settleFailure(ctx, tx, job, perr); serr != nil {
					return serr
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to relay notification jobs")
	}
	return sent, nil
}

func (w *Worker) publish(ctx context.Context, job shared.QueuedJob) error {
	payload, err := w.envelope(job)
	if err != nil {
		return err
	}
	return w.publisher.Publish(ctx, broker.Message{
		Topic: w.topicFor(job.Topic),
		Key:   job.PartitionKey,
		Value: payload,
		Headers: map[string]string{
			"content-type": "application/cloudevents+json",
			"ce-type":      job.Kind,
		},
	})
}

func (w *Worker) settleFailure(ctx context.Context, tx shared.Tx, job shared.QueuedJob, cause error) error {
	err := errs.Mark(cause, ErrUpstreamIntegration)
	attempt := job.Attempts + 1

	if attempt >= w.maxAttempts() {
		slog.Error("notification job gave up",
			"job_id", job.ID.String(),
			"kind", job.Kind,
			"attempts", attempt,
			"error", err.Error())
		return tx.Notifications().MarkFailed(ctx, job.ID, err.Error())
	}

	runAt := w.clock.Now().Add(w.retryDelay(job.Attempts))
	slog.Warn("notification job publish failed",
		"job_id", job.ID.String(),
		"kind", job.Kind,
		"attempts", attempt,
		"next_run_at", runAt,
		"error", err.Error())
	return tx.Notifications().Reschedule(ctx, job.ID, err.Error(), runAt)
}

// envelope wraps the job payload in a CloudEvents 1.0 JSON document. The job
// ID doubles as the event ID so consumers can drop redeliveries.
func (w *Worker) envelope(job shared.QueuedJob) ([]byte, error) {
	if !json.Valid(job.Payload) {
		return nil, errs.Newf("job %s has a malformed payload", job.ID)
	}
	evt := struct {
		SpecVersion     string          `json:"specversion"`
		ID              string          `json:"id"`
		Type            string          `json:"type"`
		Source          string          `json:"source"`
		Subject         string          `json:"subject"`
		Time            time.Time       `json:"time"`
		DataContentType string          `json:"datacontenttype"`
		Data            json.RawMessage `json:"data"`
	}{
		SpecVersion:     "1.0",
		ID:              job.ID.String(),
		Type:            job.Kind + ".v1",
		Source:          eventSource,
		Subject:         job.PartitionKey,
		Time:            job.RunAt.UTC(),
		DataContentType: "application/json",
		Data:            job.Payload,
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode event envelope")
	}
	return data, nil
}

// PurgeIdempotencyKeys drops idempotency keys whose replay window has passed.
func (w *Worker) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var n int64
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Idempotency().DeleteExpired(ctx, w.clock.Now())
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to purge idempotency keys")
	}
	if n > 0 {
		slog.Info("purged expired idempotency keys", "count", n)
	}
	return n, nil
}

func (w *Worker) topicFor(logical string) string {
	if t, ok := w.topics[logical]; ok && t != "" {
		return t
	}
	return logical
}

func (w *Worker) retryDelay(attempts int) time.Duration {
	backoff := w.cfg.RetryBackoff
	switch {
	case attempts < len(backoff):
		return backoff[attempts]
	case len(backoff) > 0:
		return backoff[len(backoff)-1]
	default:
		return defaultRetryDelay
	}
}

func (w *Worker) pollInterval() time.Duration {
	if w.cfg.PollInterval <= 0 {
		return defaultPollInterval
	}
	return w.cfg.PollInterval
}

func (w *Worker) batchSize() int {
	if w.cfg.BatchSize <= 0 {
		return 20
	}
	return w.cfg.BatchSize
}

func (w *Worker) maxAttempts() int {
	if w.cfg.MaxAttempts <= 0 {
		return 1
	}
	return w.cfg.MaxAttempts
}
