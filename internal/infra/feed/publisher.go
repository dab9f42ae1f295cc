package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"compras-service/internal/pkg/config"
	"compras-service/internal/usecase/shared"
)

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher emits change events after a commit. It is strictly best-effort:
// a publish failure is logged and never surfaces to the request.
type Publisher struct {
	writer  kafkaWriter
	timeout time.Duration
	logger  *slog.Logger
}

func NewPublisher(cfg config.FeedConfig, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &kafka.LeastBytes{},
		},
		timeout: cfg.PublishTimeout,
		logger:  logger,
	}
}

func (p *Publisher) PublishInsert(ctx context.Context, after shared.CompraSnapshot) {
	ev := Event{
		Kind:       EventInsert,
		After:      snapshotFrom(after),
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(ev)
	if err != nil {
		p.logger.Warn("failed to encode change event", "error", err, "compra_id", after.CompraID)
		return
	}

	// Detached from the request context: the record is already committed, a
	// canceled caller must not lose the event.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	go func() {
		defer cancel()
		if err := p.writer.WriteMessages(publishCtx, kafka.Message{
			Key:   []byte(partitionKey(after)),
			Value: value,
			Time:  time.Now(),
		}); err != nil {
			p.logger.Warn("failed to publish change event",
				"error", err,
				"compra_id", after.CompraID,
				"tenant_id", after.TenantID,
			)
		}
	}()
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
