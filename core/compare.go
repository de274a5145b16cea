package core

import "math"

// compareScalar applies comparator to each valid position against a
// constant; the reference system treats an invalid position as NaN for
// scalar comparisons, so the comparator still fires (and ordinarily
// evaluates false, since NaN compares false against anything).
func compareScalar(a Price, c Scalar, cmp func(Scalar, Scalar) bool) Rule {
	return FMap(a, func(v Scalar, ok bool) (bool, bool) {
		if !ok {
			v = Scalar(math.NaN())
		}
		return cmp(v, c), true
	})
}

func compareSeries(a, b Price, cmp func(Scalar, Scalar) bool) Rule {
	return ZipWith(a, b, func(av Scalar, aok bool, bv Scalar, bok bool) (bool, bool) {
		if !aok && !bok {
			return false, false
		}
		if !aok {
			av = Scalar(math.NaN())
		}
		if !bok {
			bv = Scalar(math.NaN())
		}
		return cmp(av, bv), true
	})
}

// Seq, Sne, Sgt, Sge, Slt, Sle compare a series against a scalar.
func Seq(a Price, c Scalar) Rule { return compareScalar(a, c, func(x, y Scalar) bool { return x == y }) }
func Sne(a Price, c Scalar) Rule { return compareScalar(a, c, func(x, y Scalar) bool { return x != y }) }
func Sgt(a Price, c Scalar) Rule { return compareScalar(a, c, func(x, y Scalar) bool { return x > y }) }
func Sge(a Price, c Scalar) Rule { return compareScalar(a, c, func(x, y Scalar) bool { return x >= y }) }
func Slt(a Price, c Scalar) Rule { return compareScalar(a, c, func(x, y Scalar) bool { return x < y }) }
func Sle(a Price, c Scalar) Rule { return compareScalar(a, c, func(x, y Scalar) bool { return x <= y }) }

// Eq, Ne, Gt, Ge, Lt, Le compare two series position-wise.
func Eq(a, b Price) Rule { return compareSeries(a, b, func(x, y Scalar) bool { return x == y }) }
func Ne(a, b Price) Rule { return compareSeries(a, b, func(x, y Scalar) bool { return x != y }) }
func Gt(a, b Price) Rule { return compareSeries(a, b, func(x, y Scalar) bool { return x > y }) }
func Ge(a, b Price) Rule { return compareSeries(a, b, func(x, y Scalar) bool { return x >= y }) }
func Lt(a, b Price) Rule { return compareSeries(a, b, func(x, y Scalar) bool { return x < y }) }
func Le(a, b Price) Rule { return compareSeries(a, b, func(x, y Scalar) bool { return x <= y }) }
