package sorter

import (
	"strings"
	"time"

	"package-sorter/internal/parcel"

	"github.com/google/uuid"
)

// Sort classifies a package by its measurements.
//
// A package is bulky when its volume reaches 1,000,000 cm³ or any single
// dimension reaches 150 cm, and heavy when its mass reaches 20 kg. Bulky
// and heavy together mean the package is rejected; either one alone makes
// it special; otherwise it is standard. Thresholds are inclusive.
//
// Sort is pure: no state, no side effects, safe to call from any number
// of goroutines without synchronization.
func Sort(width, height, length, mass float64) parcel.Category {
	return SortPackage(parcel.New(width, height, length, mass))
}

// SortPackage classifies an already-constructed package.
func SortPackage(p parcel.Package) parcel.Category {
	return decide(parcel.ExtractSignals(p))
}

// decide maps the predicate pair onto a category
func decide(s parcel.Signals) parcel.Category {
	switch {
	case s.IsBulky && s.IsHeavy:
		return parcel.Rejected
	case s.IsBulky || s.IsHeavy:
		return parcel.Special
	default:
		return parcel.Standard
	}
}

// Sorter wraps the pure decision in a SortResult envelope for callers
// that want a traceable record per package.
type Sorter struct{}

// New creates a new sorter
func New() *Sorter {
	return &Sorter{}
}

// Process sorts a package and returns the full result envelope
func (s *Sorter) Process(p parcel.Package) parcel.SortResult {
	signals := parcel.ExtractSignals(p)
	category := decide(signals)

	return parcel.SortResult{
		RequestID: uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Package:   p,
		Signals:   signals,
		Category:  category,
		Reason:    reason(signals, category),
	}
}

// reason generates an explanation of which limits the package tripped
func reason(s parcel.Signals, c parcel.Category) string {
	if c == parcel.Standard {
		return "within all limits"
	}

	var parts []string
	if s.BulkyByVolume {
		parts = append(parts, "bulky by volume")
	}
	if s.BulkyByDimension {
		parts = append(parts, "bulky by dimension")
	}
	if s.IsHeavy {
		parts = append(parts, "over the mass limit")
	}
	return strings.Join(parts, ", ")
}
