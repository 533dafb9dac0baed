package models

import "github.com/shopspring/decimal"

// Money is a currency amount in minor units (cents).
type Money int64

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// MoneyFromDecimal rounds a major-unit amount half away from zero to cents.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Shift(2).Round(0).IntPart())
}
