package core

// Totals holds the aggregate view over all stored transactions.
// NetProfit is always Income minus Expense; it is derived on construction
// and never persisted.
type Totals struct {
	Income    Money
	Expense   Money
	NetProfit Money
}

// NewTotals derives the net profit from the two partition sums.
func NewTotals(income, expense Money) Totals {
	return Totals{
		Income:    income,
		Expense:   expense,
		NetProfit: income.Sub(expense),
	}
}

// Aggregate partitions transactions by kind and sums the amounts of each
// partition. A kind with no transactions sums to zero. Summation runs on
// integer cents, so the result is independent of input order.
func Aggregate(txs []Transaction) Totals {
	var income, expense Money
	for _, t := range txs {
		switch t.Kind {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return NewTotals(income, expense)
}
