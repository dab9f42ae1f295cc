package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"compras-service/internal/pkg/config"
)

type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier consumes change-feed batches and records them for observability.
// No business logic acts on events yet; this is the hook point for future
// reactive behavior (cache invalidation, notification dispatch).
//
// A failure while handling a batch is logged and the batch is committed as
// drained, so one bad payload never blocks subsequent batches.
type Notifier struct {
	reader      kafkaReader
	logger      *slog.Logger
	batchSize   int
	batchWindow time.Duration
}

func NewNotifier(cfg config.FeedConfig, logger *slog.Logger) *Notifier {
	return &Notifier{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
			GroupID: cfg.GroupID,
		}),
		logger:      logger,
		batchSize:   cfg.BatchSize,
		batchWindow: cfg.BatchWindow,
	}
}

func newNotifierWithReader(reader kafkaReader, logger *slog.Logger, batchSize int, batchWindow time.Duration) *Notifier {
	return &Notifier{reader: reader, logger: logger, batchSize: batchSize, batchWindow: batchWindow}
}

// Run blocks until ctx is canceled or the reader is closed.
func (n *Notifier) Run(ctx context.Context) {
	n.logger.Info("change notifier started")
	for {
		batch, err := n.fetchBatch(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				n.logger.Info("change notifier stopped")
				return
			}
			n.logger.Error("failed to fetch change batch", "error", err)
			continue
		}
		if len(batch) == 0 {
			continue
		}

		n.handleBatch(batch)

		if err := n.reader.CommitMessages(ctx, batch...); err != nil {
			// At-least-once feed: the batch will be redelivered.
			n.logger.Warn("failed to commit change batch", "error", err)
		}
	}
}

func (n *Notifier) Close() error {
	return n.reader.Close()
}

// fetchBatch blocks for the first message, then drains up to batchSize within
// the batch window.
func (n *Notifier) fetchBatch(ctx context.Context) ([]kafka.Message, error) {
	first, err := n.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}

	batch := []kafka.Message{first}
	drainCtx, cancel := context.WithTimeout(ctx, n.batchWindow)
	defer cancel()

	for len(batch) < n.batchSize {
		msg, err := n.reader.FetchMessage(drainCtx)
		if err != nil {
			break
		}
		batch = append(batch, msg)
	}

	return batch, nil
}

// handleBatch never raises past its own boundary.
func (n *Notifier) handleBatch(batch []kafka.Message) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("recovered from panic while handling change batch", "panic", r)
		}
	}()

	for _, msg := range batch {
		n.handleMessage(msg)
	}
}

func (n *Notifier) handleMessage(msg kafka.Message) {
	ev, err := decodeEvent(msg.Value)
	if err != nil {
		n.logger.Warn("skipping undecodable change event",
			"error", err,
			"partition", msg.Partition,
			"offset", msg.Offset,
		)
		return
	}

	attrs := []any{
		"kind", ev.Kind,
		"partition", msg.Partition,
		"offset", msg.Offset,
	}
	if ev.After != nil {
		attrs = append(attrs,
			"compra_id", ev.After.CompraID,
			"tenant_id", ev.After.TenantID,
			"usuario_id", ev.After.UsuarioID,
			"monto_pagado", string(ev.After.MontoPagado),
		)
	}
	if ev.Before != nil {
		attrs = append(attrs, "before_compra_id", ev.Before.CompraID)
	}

	n.logger.Info("change event", attrs...)
}
