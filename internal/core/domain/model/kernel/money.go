package kernel

import "fmt"

// Money is a monetary amount held in hundredths of a currency unit (poisha).
// Keeping the amount integral makes tariff accumulation exact: a per-kilogram
// surcharge applied to a gram-precise weight always lands on a whole number
// of hundredths.
//
// Money is a value object: operations return new values, the original is
// never mutated. The zero value is a valid amount of zero.
//
// Example:
//
//	base := kernel.NewMoneyFromUnits(110)
//	extra := kernel.NewMoneyFromHundredths(40) // 0.40
//	total := base.Add(extra)
//	fmt.Println(total) // "110.4"
type Money struct {
	hundredths int64
}

// NewMoneyFromUnits creates a Money from whole currency units.
func NewMoneyFromUnits(units int64) Money {
	return Money{hundredths: units * 100}
}

// NewMoneyFromHundredths creates a Money from hundredths of a currency unit.
func NewMoneyFromHundredths(hundredths int64) Money {
	return Money{hundredths: hundredths}
}

// Hundredths returns the amount in hundredths of a currency unit.
func (m Money) Hundredths() int64 {
	return m.hundredths
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{hundredths: m.hundredths + other.hundredths}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.hundredths == 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.hundredths == other.hundredths
}

// String renders the amount with the shortest exact decimal representation:
// "110" for whole units, "110.4" for forty hundredths, "110.45" otherwise.
func (m Money) String() string {
	units := m.hundredths / 100
	rem := m.hundredths % 100
	if rem < 0 {
		rem = -rem
	}
	switch {
	case rem == 0:
		return fmt.Sprintf("%d", units)
	case rem%10 == 0:
		return fmt.Sprintf("%d.%d", units, rem/10)
	default:
		return fmt.Sprintf("%d.%02d", units, rem)
	}
}
