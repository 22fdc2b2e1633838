package scene

import "math"

// NiceStep returns a grid spacing of 1, 2 or 5 times a power of ten that yields
// roughly ten divisions across span. Non-positive spans return 1.
func NiceStep(span float64) float64 {
	if !(span > 0) || math.IsInf(span, 0) {
		return 1
	}
	raw := span / 10
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / pow; {
	case f < 1.5:
		return pow
	case f < 3.5:
		return 2 * pow
	case f < 7.5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// GridLines returns the multiples of step inside [lo, hi].
func GridLines(lo, hi, step float64) []float64 {
	if !(step > 0) || hi < lo {
		return nil
	}
	var out []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		// Snap to an exact multiple of step.
		out = append(out, math.Round(v/step)*step)
	}
	return out
}
