package events_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecoquest/internal/config"
	"ecoquest/internal/events"
	"ecoquest/internal/infra"
)

var Module = fx.Provide(providePublisher)

func providePublisher(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (events.Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		log.Info("AMQP_URL not set, domain events are only logged")
		return events.NewLogPublisher(log), nil
	}

	conn, err := infra.DialRabbitMQ(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return conn.Close()
		},
	})
	return events.NewAMQPPublisher(conn, cfg.RabbitMQ.Exchange), nil
}
