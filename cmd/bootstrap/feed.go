package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"compras-service/internal/infra/feed"
	"compras-service/internal/pkg/config"
	"compras-service/internal/usecase/shared"
)

var FeedModule = fx.Module("feed",
	fx.Provide(
		fx.Annotate(
			NewFeedPublisher,
			fx.As(new(shared.ChangeFeed)),
		),
	),
	fx.Invoke(StartNotifier),
)

func NewFeedPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *feed.Publisher {
	publisher := feed.NewPublisher(cfg.Feed, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}

// StartNotifier runs the change notifier for the life of the process. When
// the feed is disabled (local development without a broker) nothing starts.
func StartNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	if !cfg.Feed.Enabled {
		logger.Info("change feed disabled; notifier not started")
		return
	}

	notifier := feed.NewNotifier(cfg.Feed, logger)
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go notifier.Run(runCtx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return notifier.Close()
		},
	})
}
