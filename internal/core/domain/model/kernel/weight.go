package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"parcel/internal/pkg/errs"
)

// Weight is a parcel weight held in whole grams. Gram precision keeps the
// tariff comparison against the 3kg threshold and all surcharge arithmetic
// exact, no matter what decimal the customer typed into the form.
//
// The zero value is a valid weight of zero grams; the tariff treats missing
// or unparseable weights as zero, so there is no "not constructed" state.
type Weight struct {
	grams int64
}

// NewWeightFromGrams creates a Weight from a gram count.
// Negative weights are rejected.
func NewWeightFromGrams(grams int64) (Weight, error) {
	if grams < 0 {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", grams, 0, math.MaxInt64)
	}
	return Weight{grams: grams}, nil
}

// ParseWeight converts form input such as "3.01" into a Weight. Missing,
// unparseable, or negative input coerces to zero grams, mirroring the
// tariff's flat-tier fallback; this function never fails.
func ParseWeight(input string) Weight {
	input = strings.TrimSpace(input)
	if input == "" {
		return Weight{}
	}

	kilograms, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(kilograms) || math.IsInf(kilograms, 0) || kilograms < 0 {
		return Weight{}
	}

	// Rounding happens once at the input boundary; every computation after
	// this point is integer arithmetic on grams.
	return Weight{grams: int64(math.Round(kilograms * 1000))}
}

// Grams returns the weight in grams.
func (w Weight) Grams() int64 {
	return w.grams
}

// IsZero reports whether the weight is zero grams.
func (w Weight) IsZero() bool {
	return w.grams == 0
}

// AtMost reports whether the weight does not exceed the given gram threshold.
func (w Weight) AtMost(grams int64) bool {
	return w.grams <= grams
}

// Sub returns the difference of two weights, floored at zero grams.
func (w Weight) Sub(other Weight) Weight {
	if other.grams >= w.grams {
		return Weight{}
	}
	return Weight{grams: w.grams - other.grams}
}

// String renders the weight in kilograms with one decimal place, the way the
// cost breakdown presents extra weight ("2.0", "0.5").
func (w Weight) String() string {
	whole := w.grams / 1000
	tenths := (w.grams % 1000) / 100
	return fmt.Sprintf("%d.%d", whole, tenths)
}
