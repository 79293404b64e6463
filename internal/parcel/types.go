package parcel

import (
	"encoding/json"
	"fmt"
	"time"
)

// Dimension is a single package edge length in centimeters.
type Dimension float64

// Mass is a package mass in kilograms.
type Mass float64

// Sorting thresholds. A package is bulky once its volume or any single
// dimension reaches these limits, and heavy once its mass does. All
// comparisons against them are inclusive.
const (
	BulkyVolumeThreshold              = 1_000_000.0 // cm³
	BulkyDimensionThreshold Dimension = 150         // cm
	HeavyMassThreshold      Mass      = 20          // kg
)

// Package holds the measurements of a single parcel presented for
// sorting. It is a plain value: built once per request, never mutated,
// never retained by the sorter.
type Package struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Length Dimension `json:"length"`
	Mass   Mass      `json:"mass"`
}

// New builds a Package from raw measurements.
func New(width, height, length, mass float64) Package {
	return Package{
		Width:  Dimension(width),
		Height: Dimension(height),
		Length: Dimension(length),
		Mass:   Mass(mass),
	}
}

// Volume returns width*height*length in cubic centimeters.
func (p Package) Volume() float64 {
	return float64(p.Width) * float64(p.Height) * float64(p.Length)
}

// Category is the sorting outcome. Exactly three variants exist.
type Category int

const (
	Standard Category = iota
	Special
	Rejected
)

// String returns the canonical display form of the category.
func (c Category) String() string {
	switch c {
	case Standard:
		return "STANDARD"
	case Special:
		return "SPECIAL"
	case Rejected:
		return "REJECTED"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MarshalJSON serializes the category as its display string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a display string back into a Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "STANDARD":
		*c = Standard
	case "SPECIAL":
		*c = Special
	case "REJECTED":
		*c = Rejected
	default:
		return fmt.Errorf("unknown category %q", s)
	}
	return nil
}

// Signals contains the predicates extracted from a package
type Signals struct {
	Volume           float64 `json:"volume"`             // width*height*length in cm³
	BulkyByVolume    bool    `json:"bulky_by_volume"`    // volume >= 1,000,000 cm³
	BulkyByDimension bool    `json:"bulky_by_dimension"` // any dimension >= 150 cm
	IsBulky          bool    `json:"is_bulky"`
	IsHeavy          bool    `json:"is_heavy"` // mass >= 20 kg
}

// SortResult contains the final outcome for one sorted package
type SortResult struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Package   Package   `json:"package"`
	Signals   Signals   `json:"signals"`
	Category  Category  `json:"category"` // "STANDARD", "SPECIAL" or "REJECTED"
	Reason    string    `json:"reason"`
}
