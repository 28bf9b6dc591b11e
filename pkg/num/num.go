package num

import (
	"fmt"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// SumExact adds decimal strings without binary floating-point error.
func SumExact(values []string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, raw := range values {
		d, err := decimal.Parse(raw)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("num: parse %q: %w", raw, err)
		}
		sum, err = sum.Add(d)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("num: sum overflow at %q: %w", raw, err)
		}
	}
	return sum, nil
}

// MeanExact returns the exact decimal mean of the values.
func MeanExact(values []string) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Decimal{}, fmt.Errorf("num: mean of empty input")
	}

	sum, err := SumExact(values)
	if err != nil {
		return decimal.Decimal{}, err
	}

	count, err := decimal.New(int64(len(values)), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}

	mean, err := sum.Quo(count)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("num: mean: %w", err)
	}
	return mean, nil
}
