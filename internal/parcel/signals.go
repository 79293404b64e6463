package parcel

// ExtractSignals computes the bulky and heavy predicates for a package.
//
// Arithmetic and comparisons are plain float64. NaN never satisfies >=,
// so a NaN measurement contributes nothing to either predicate; another
// field at or over its threshold can still trigger the flag on its own.
func ExtractSignals(p Package) Signals {
	s := Signals{Volume: p.Volume()}

	s.BulkyByVolume = s.Volume >= BulkyVolumeThreshold
	s.BulkyByDimension = p.Width >= BulkyDimensionThreshold ||
		p.Height >= BulkyDimensionThreshold ||
		p.Length >= BulkyDimensionThreshold
	s.IsBulky = s.BulkyByVolume || s.BulkyByDimension

	s.IsHeavy = p.Mass >= HeavyMassThreshold

	return s
}
