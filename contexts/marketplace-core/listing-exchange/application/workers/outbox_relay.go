package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

// OutboxRelay publishes persisted outbox records to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

// RunOnce publishes a bounded batch of pending outbox rows and marks each row
// sent only after broker publish succeeds. It stops on the first failure so
// the retry loop can reprocess remaining rows safely.
func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("exchange outbox list failed",
			"event", "exchange_outbox_list_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if len(pending) == 0 {
		logger.Debug("exchange outbox relay found no pending rows",
			"event", "exchange_outbox_relay_noop",
			"module", "marketplace-core/listing-exchange",
			"layer", "worker",
			"batch_size", limit,
		)
		return nil
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var event ports.EventEnvelope
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			logger.Error("exchange outbox decode failed",
				"event", "exchange_outbox_decode_failed",
				"module", "marketplace-core/listing-exchange",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		topic := event.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, event); err != nil {
			logger.Error("exchange outbox publish failed",
				"event", "exchange_outbox_publish_failed",
				"module", "marketplace-core/listing-exchange",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"event_id", event.EventID,
				"event_type", event.EventType,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxSent(ctx, row.OutboxID, now); err != nil {
			logger.Error("exchange outbox mark sent failed",
				"event", "exchange_outbox_mark_sent_failed",
				"module", "marketplace-core/listing-exchange",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
	}

	logger.Info("exchange outbox relay cycle completed",
		"event", "exchange_outbox_relay_completed",
		"module", "marketplace-core/listing-exchange",
		"layer", "worker",
		"published_count", len(pending),
	)
	return nil
}
