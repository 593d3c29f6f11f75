package storage

import (
	"context"
	"database/sql"
)

// Queries wraps raw SQL access to the transactions table.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// Row is the database shape of a transaction.
type Row struct {
	ID          int64
	Description string
	Kind        string
	AmountCents int64
	Date        string
}

type CreateTransactionParams struct {
	Description string
	Kind        string
	AmountCents int64
	Date        string
}

const createTransaction = `
INSERT INTO transactions (description, kind, amount_cents, date)
VALUES (?, ?, ?, ?)
RETURNING id, description, kind, amount_cents, date
`

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Row, error) {
	var r Row
	err := q.db.QueryRowContext(ctx, createTransaction,
		arg.Description, arg.Kind, arg.AmountCents, arg.Date,
	).Scan(&r.ID, &r.Description, &r.Kind, &r.AmountCents, &r.Date)
	return r, err
}

const listTransactions = `
SELECT id, description, kind, amount_cents, date
FROM transactions
ORDER BY date DESC, id DESC
`

func (q *Queries) ListTransactions(ctx context.Context) ([]Row, error) {
	rows, err := q.db.QueryContext(ctx, listTransactions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Description, &r.Kind, &r.AmountCents, &r.Date); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const countTransactions = `SELECT COUNT(*) FROM transactions`

func (q *Queries) CountTransactions(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countTransactions).Scan(&n)
	return n, err
}
