package parcel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks measurements outside the physically meaningful
// domain (negative or non-finite values).
var ErrInvalidInput = errors.New("invalid input")

// Validate reports whether every measurement is finite and non-negative.
//
// Sorting itself is total over all float64 values and never calls this;
// it exists as a fail-fast pre-check for callers that want to refuse
// nonsense measurements before accepting a parcel.
func (p Package) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"width", float64(p.Width)},
		{"height", float64(p.Height)},
		{"length", float64(p.Length)},
		{"mass", float64(p.Mass)},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidInput, f.name, f.value)
		}
	}
	return nil
}
