package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finmon/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists transactions in a local SQLite database.
// It implements store.TransactionWriter and store.TransactionLister.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements store.TransactionWriter.
func (r *SQLiteRepository) Insert(ctx context.Context, t core.Transaction) (int64, error) {
	row, err := r.queries.CreateTransaction(ctx, CreateTransactionParams{
		Description: t.Description,
		Kind:        string(t.Kind),
		AmountCents: t.Amount.Cents,
		Date:        t.Date.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", row.ID,
		"description", row.Description,
		"kind", row.Kind,
		"amount_cents", row.AmountCents,
		"date", row.Date)

	return row.ID, nil
}

// ListAll implements store.TransactionLister.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	txs := make([]core.Transaction, len(rows))
	for i, row := range rows {
		t, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode transaction %d: %w", row.ID, err)
		}
		txs[i] = t
	}
	return txs, nil
}

// Count returns the number of stored transactions.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountTransactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

func fromRow(row Row) (core.Transaction, error) {
	kind, err := core.ParseKind(row.Kind)
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := core.ParseDate(row.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		ID:          row.ID,
		Description: row.Description,
		Kind:        kind,
		Amount:      core.Money{Cents: row.AmountCents},
		Date:        date,
	}, nil
}
