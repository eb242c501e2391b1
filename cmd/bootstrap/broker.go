package bootstrap

import (
	"log/slog"

	"coworking-booking/internal/infra/broker"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) commands.Notifier {
	if !cfg.Broker.Enabled() {
		logger.Info("notifications go to the log", "reason", "AMQP_URL not set")
		return broker.NewLogNotifier(logger)
	}
	logger.Info("notifications go to AMQP", "queue", cfg.Broker.Queue)
	return broker.NewAMQPNotifier(cfg.Broker.URL, cfg.Broker.Queue, cfg.Broker.PublishTimeout, logger)
}
