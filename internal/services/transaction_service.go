package services

import (
	"context"
	"fmt"
	"log/slog"

	"finmon/internal/core"
	"finmon/internal/store"
)

// EventPublisher notifies external consumers that a transaction was recorded.
type EventPublisher interface {
	PublishTransactionRecorded(ctx context.Context, id int64, kind string) error
}

// TransactionService validates and persists transactions, then publishes a
// recorded event when a publisher is wired. Publishing is best effort: the
// transaction is durable once the store insert succeeds.
type TransactionService struct {
	writer    store.TransactionWriter
	publisher EventPublisher
}

func NewTransactionService(writer store.TransactionWriter, publisher EventPublisher) *TransactionService {
	return &TransactionService{
		writer:    writer,
		publisher: publisher,
	}
}

// Record validates the transaction and inserts it into the store.
func (s *TransactionService) Record(ctx context.Context, t core.Transaction) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	id, err := s.writer.Insert(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionRecorded(ctx, id, string(t.Kind)); err != nil {
			// The insert already succeeded; losing the event must not fail the request.
			slog.ErrorContext(ctx, "Failed to publish transaction recorded event",
				"id", id, "error", err)
		}
	}

	return id, nil
}
