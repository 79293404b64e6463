package unit

import (
	"math"
	"testing"

	"package-sorter/internal/parcel"
)

func TestExtractSignals_Flags(t *testing.T) {
	testCases := []struct {
		name             string
		pkg              parcel.Package
		bulkyByVolume    bool
		bulkyByDimension bool
		heavy            bool
	}{
		{"small", parcel.New(50, 50, 50, 10), false, false, false},
		{"volume_at_threshold", parcel.New(100, 100, 100, 10), true, false, false},
		{"volume_just_under", parcel.New(99.9999, 100, 100, 10), false, false, false},
		{"width_at_threshold", parcel.New(150, 10, 10, 10), false, true, false},
		{"mass_at_threshold", parcel.New(10, 10, 10, 20), false, false, true},
		{"mass_just_under", parcel.New(10, 10, 10, 19.999), false, false, false},
		{"everything_over", parcel.New(200, 200, 200, 50), true, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := parcel.ExtractSignals(tc.pkg)

			if s.BulkyByVolume != tc.bulkyByVolume {
				t.Errorf("BulkyByVolume = %v, want %v", s.BulkyByVolume, tc.bulkyByVolume)
			}
			if s.BulkyByDimension != tc.bulkyByDimension {
				t.Errorf("BulkyByDimension = %v, want %v", s.BulkyByDimension, tc.bulkyByDimension)
			}
			if s.IsBulky != (tc.bulkyByVolume || tc.bulkyByDimension) {
				t.Errorf("IsBulky = %v, inconsistent with components", s.IsBulky)
			}
			if s.IsHeavy != tc.heavy {
				t.Errorf("IsHeavy = %v, want %v", s.IsHeavy, tc.heavy)
			}
		})
	}
}

func TestExtractSignals_Volume(t *testing.T) {
	s := parcel.ExtractSignals(parcel.New(2, 3, 4, 1))
	if s.Volume != 24 {
		t.Errorf("Volume = %g, want 24", s.Volume)
	}
}

func TestExtractSignals_NaNNeverTriggers(t *testing.T) {
	nan := math.NaN()

	s := parcel.ExtractSignals(parcel.New(nan, 10, 10, nan))
	if s.IsBulky {
		t.Error("NaN width should not make the package bulky")
	}
	if s.IsHeavy {
		t.Error("NaN mass should not make the package heavy")
	}
	if !math.IsNaN(s.Volume) {
		t.Errorf("Volume = %g, want NaN", s.Volume)
	}

	// An independent over-limit dimension still fires
	s = parcel.ExtractSignals(parcel.New(nan, 160, 10, 10))
	if !s.BulkyByDimension {
		t.Error("height over the limit should make the package bulky despite NaN width")
	}
}
