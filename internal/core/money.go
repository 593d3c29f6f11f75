// Package core provides the transaction domain model and money handling.
//
// Monetary amounts are held as integer cents. Request payloads carry decimal
// amounts; parsing goes through shopspring/decimal so that values like 0.1
// survive the trip into cents without binary floating point drift.
package core

import (
	"github.com/shopspring/decimal"
)

var centsFactor = decimal.NewFromInt(100)

// ParseAmount converts a decimal amount string into Money with half-up
// rounding on fractional cents. Negative amounts are rejected.
//
// Examples:
//
//	ParseAmount("12.34")  -> Money{Cents: 1234}, nil
//	ParseAmount("12.345") -> Money{Cents: 1235}, nil
//	ParseAmount("-1")     -> Money{}, ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Mul(centsFactor).Round(0)
	if !cents.IsInteger() || !cents.BigInt().IsInt64() {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

// Decimal returns the amount as a decimal value in whole currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.Cents).Div(centsFactor)
}

// Float returns the amount in whole currency units for JSON payloads.
// Calculations should stay on cents; this is a presentation conversion.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

// Sub returns m minus other. Totals may go negative (net loss).
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}
