package core

// MaxScalar returns the element-wise maximum against a constant; a
// missing position is treated as the constant itself rather than
// propagated, matching the reference's Option::or(Some(scalar)).
func MaxScalar(a Price, c Scalar) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if !ok {
			return c, true
		}
		if v > c {
			return v, true
		}
		return c, true
	})
}

// MinScalar is MaxScalar's minimum counterpart.
func MinScalar(a Price, c Scalar) Price {
	return FMap(a, func(v Scalar, ok bool) (Scalar, bool) {
		if !ok {
			return c, true
		}
		if v < c {
			return v, true
		}
		return c, true
	})
}

// Clip bounds every value to [lo, hi].
func Clip(a Price, lo, hi Scalar) Price {
	return MaxScalar(MinScalar(a, hi), lo)
}

// Max takes the element-wise maximum of two series; if exactly one side
// is missing the other's value passes through instead of the pair going
// missing.
func Max(a, b Price) Price {
	return ZipWith(a, b, func(av Scalar, aok bool, bv Scalar, bok bool) (Scalar, bool) {
		switch {
		case aok && bok:
			if av > bv {
				return av, true
			}
			return bv, true
		case aok:
			return av, true
		case bok:
			return bv, true
		default:
			return 0, false
		}
	})
}

// Min is Max's minimum counterpart.
func Min(a, b Price) Price {
	return ZipWith(a, b, func(av Scalar, aok bool, bv Scalar, bok bool) (Scalar, bool) {
		switch {
		case aok && bok:
			if av < bv {
				return av, true
			}
			return bv, true
		case aok:
			return av, true
		case bok:
			return bv, true
		default:
			return 0, false
		}
	})
}

// ClipSeries bounds a against the element-wise [lo, hi] series pair.
func ClipSeries(a, lo, hi Price) Price {
	return Max(Min(a, hi), lo)
}
