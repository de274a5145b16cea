package core

import "math"

// Add performs element-wise addition, invalid if either side is invalid.
func Add(a, b Price) Price {
	return ZipWith(a, b, func(av Scalar, aok bool, bv Scalar, bok bool) (Scalar, bool) {
		if aok && bok {
			return av + bv, true
		}
		return 0, false
	})
}

// Sub performs element-wise subtraction.
func Sub(a, b Price) Price {
	return ZipWith(a, b, func(av Scalar, aok bool, bv Scalar, bok bool) (Scalar, bool) {
		if aok && bok {
			return av - bv, true
		}
		return 0, false
	})
}

// Mul performs element-wise multiplication.
func Mul(a, b Price) Price {
	return ZipWith(a, b, func(av Scalar, aok bool, bv Scalar, bok bool) (Scalar, bool) {
		if aok && bok {
			return av * bv, true
		}
		return 0, false
	})
}

// Div performs element-wise division. Division by zero yields signed
// infinity when the numerator is non-zero and invalid when both are zero,
// matching the reference's div_series.
func Div(a, b Price) Price {
	return ZipWith(a, b, func(av Scalar, aok bool, bv Scalar, bok bool) (Scalar, bool) {
		if !aok || !bok {
			return 0, false
		}
		if bv == 0 {
			switch {
			case av > 0:
				return Scalar(math.Inf(1)), true
			case av < 0:
				return Scalar(math.Inf(-1)), true
			default:
				return 0, false
			}
		}
		return av / bv, true
	})
}

// AddScalar adds a constant to every valid position.
func AddScalar(a Price, c Scalar) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) { return v + c, ok })
}

// SubScalar subtracts a constant from every valid position.
func SubScalar(a Price, c Scalar) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) { return v - c, ok })
}

// MulScalar multiplies every valid position by a constant.
func MulScalar(a Price, c Scalar) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) { return v * c, ok })
}

// DivScalar divides every valid position by a constant.
func DivScalar(a Price, c Scalar) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if !ok {
			return 0, false
		}
		if c == 0 {
			return 0, false
		}
		return v / c, true
	})
}

// Neg negates every valid position, leaving exact zero untouched.
func Neg(a Price) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if v == 0 {
			return v, ok
		}
		return -v, ok
	})
}

// MulRule zeroes out positions where the rule is false or invalid,
// otherwise passes the price through.
func MulRule(r Rule, a Price) Price {
	return ZipWith(r, a, func(rv bool, rok bool, av Scalar, aok bool) (Scalar, bool) {
		if !rok || !aok {
			return 0, false
		}
		if rv {
			return av, true
		}
		return 0, true
	})
}
