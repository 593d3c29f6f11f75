package memory

import (
	"context"
	"testing"

	"finmon/internal/core"
)

func newTx(desc string, kind core.Kind, cents int64, date core.Date) core.Transaction {
	return core.Transaction{
		Description: desc,
		Kind:        kind,
		Amount:      core.Money{Cents: cents},
		Date:        date,
	}
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		id, err := s.Insert(ctx, newTx("salary", core.Income, 100000, core.NewDate(2023, 1, 1)))
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if id != want {
			t.Fatalf("Insert assigned id %d, want %d", id, want)
		}
	}
}

func TestInsertRejectsInvalid(t *testing.T) {
	s := New()
	_, err := s.Insert(context.Background(), newTx("", core.Income, 100, core.NewDate(2023, 1, 1)))
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	txs, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("invalid transaction was stored: %+v", txs)
	}
}

func TestListAllNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	dates := []core.Date{
		core.NewDate(2023, 1, 10),
		core.NewDate(2023, 3, 5),
		core.NewDate(2023, 2, 1),
		core.NewDate(2023, 3, 5),
	}
	for _, d := range dates {
		if _, err := s.Insert(ctx, newTx("tx", core.Expense, 500, d)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	txs, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(txs) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(txs))
	}
	// Same-date rows order by descending id.
	wantIDs := []int64{4, 2, 3, 1}
	for i, want := range wantIDs {
		if txs[i].ID != want {
			t.Fatalf("position %d: got id %d, want %d (order %v)", i, txs[i].ID, want, ids(txs))
		}
	}
}

func TestListAllReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Insert(ctx, newTx("rent", core.Expense, 120000, core.NewDate(2023, 1, 1))); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	first, _ := s.ListAll(ctx)
	first[0].Description = "mutated"

	second, _ := s.ListAll(ctx)
	if second[0].Description != "rent" {
		t.Fatal("ListAll exposed internal storage")
	}
}

func ids(txs []core.Transaction) []int64 {
	out := make([]int64, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}
