package orbitmath

// ClampOptional clamps v to whichever of the optional bounds are set. Nil
// bounds are ignored; with both nil the value passes through unchanged.
// The lower bound is applied first, so if a caller configures lower > upper
// the upper bound wins. Callers are expected to keep lower <= upper.
func ClampOptional(v float32, lower, upper *float32) float32 {
	if lower != nil && v < *lower {
		v = *lower
	}
	if upper != nil && v > *upper {
		v = *upper
	}
	return v
}
