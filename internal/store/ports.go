package store

import (
	"context"

	"finmon/internal/core"
)

// Ports for outbound adapters.
type (
	TransactionWriter interface {
		// Insert persists a validated transaction and returns its assigned id.
		Insert(ctx context.Context, t core.Transaction) (id int64, err error)
	}

	// TransactionLister returns a consistent snapshot of all stored
	// transactions, newest first (date DESC, id DESC).
	TransactionLister interface {
		ListAll(ctx context.Context) ([]core.Transaction, error)
	}
)
