package bootstrap

import (
	"context"
	"log/slog"

	"pms-calendar/internal/infra/broker"
	"pms-calendar/internal/infra/outbox"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/config"
	"pms-calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Provide(
		NewPublisher,
		NewOutboxWorker,
	),
	fx.Invoke(startOutboxWorker),
)

// NewPublisher returns a nil publisher when no brokers are configured.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (broker.Publisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Warn("kafka disabled, channel manager notifications stay queued")
		return nil, nil
	}

	publisher, err := broker.NewKafkaPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewOutboxWorker(uow shared.UnitOfWork, publisher broker.Publisher, clk clock.Clock, cfg config.Config) *outbox.Worker {
	return outbox.NewWorker(uow, publisher, clk, cfg.Outbox, cfg.Kafka)
}

func startOutboxWorker(lc fx.Lifecycle, w *outbox.Worker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: w.Stop,
	})
}
