package core

import "math"

// Abs returns the absolute value of every valid position.
func Abs(a Price) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) { return Scalar(math.Abs(float64(v))), ok })
}

// Log returns the natural logarithm; non-positive inputs go invalid.
func Log(a Price) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if !ok || v <= 0 {
			return 0, false
		}
		return Scalar(math.Log(float64(v))), true
	})
}

// Log10 is Log's base-10 counterpart.
func Log10(a Price) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if !ok || v <= 0 {
			return 0, false
		}
		return Scalar(math.Log10(float64(v))), true
	})
}

// Exp returns e raised to every valid position.
func Exp(a Price) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) { return Scalar(math.Exp(float64(v))), ok })
}

// Pow raises every valid position to an integer power.
func Pow(a Price, n Period) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) { return Scalar(math.Pow(float64(v), float64(n))), ok })
}

// Sign returns -1/0/1 according to the sign of every valid position.
func Sign(a Price) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		switch {
		case v > 0:
			return 1, ok
		case v < 0:
			return -1, ok
		default:
			return 0, ok
		}
	})
}

// Sqrt returns the square root; negative inputs go invalid.
func Sqrt(a Price) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if !ok || v < 0 {
			return 0, false
		}
		return Scalar(math.Sqrt(float64(v))), true
	})
}

// Round rounds every valid position to the given number of decimal places.
func Round(a Price, places int) Price {
	mult := math.Pow(10, float64(places))
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		return Scalar(math.Round(float64(v)*mult) / mult), ok
	})
}

// Cumsum returns the running total across valid positions; an invalid
// position resets nothing and simply carries no output of its own.
func Cumsum(a Price) Price {
	sum := Scalar(0)
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if !ok {
			return 0, false
		}
		sum += v
		return sum, true
	})
}

// ChangeF returns a - a.Shift(period), the building block for momentum and
// rate-of-change style indicators.
func ChangeF(a Price, period Period) Price {
	return Sub(a, a.Shift(period))
}
