package core

// Price is a series of floating point market values: closes, highs, any
// derived numeric line.
type Price = Series[Scalar]

// Rule is a series of booleans produced by comparisons, crosses, and role
// evaluations; a Rule with an invalid position represents "no opinion",
// which the boolean algebra in bool.go resolves to false rather than
// propagating, per the design notes in SPEC_FULL.md.
type Rule = Series[bool]

// NewPrice is a convenience constructor normalizing float32 NaN inputs
// (which may arrive from a decimal-to-float32 boundary conversion) to
// invalid positions instead of storing a live NaN.
func NewPrice(values ...Scalar) Price {
	out := Empty[Scalar](len(values))
	for i, v := range values {
		if v == v { // false only for NaN
			out.Set(i, v)
		}
	}
	return out
}

// NewRule is the boolean analogue of NewPrice.
func NewRule(values ...bool) Rule {
	return Of(values...)
}

// Fill returns a Price of the given length where every position holds v.
func Fill(v Scalar, length int) Price {
	out := Empty[Scalar](length)
	for i := 0; i < length; i++ {
		out.Set(i, v)
	}
	return out
}

// ZeroSeries returns a Price of the given length filled with zero.
func ZeroSeries(length int) Price {
	return Fill(0, length)
}

// OneSeries returns a Price of the given length filled with one.
func OneSeries(length int) Price {
	return Fill(1, length)
}

// RuleFill returns a Rule of the given length where every position holds v.
func RuleFill(v bool, length int) Rule {
	out := Empty[bool](length)
	for i := 0; i < length; i++ {
		out.Set(i, v)
	}
	return out
}

// TrueSeries returns a Rule of the given length filled with true.
func TrueSeries(length int) Rule {
	return RuleFill(true, length)
}

// FalseSeries returns a Rule of the given length filled with false.
func FalseSeries(length int) Rule {
	return RuleFill(false, length)
}

// Nz replaces invalid positions with replacement (0 if nil).
func Nz(s Price, replacement *Scalar) Price {
	r := Scalar(0)
	if replacement != nil {
		r = *replacement
	}
	return FMap(s, func(v Scalar, ok bool) (Scalar, bool) {
		if ok {
			return v, true
		}
		return r, true
	})
}

// NzSeries replaces invalid positions in a with the corresponding value
// from seed, mirroring the reference's nz!(x, seed) macro used inside
// recurrence relations.
func NzSeries(a, seed Price) Price {
	return ZipWith(a, seed, func(av Scalar, aok bool, sv Scalar, sok bool) (Scalar, bool) {
		if aok {
			return av, true
		}
		return sv, sok
	})
}

// Na reports, position-wise, whether a value is missing.
func Na(s Price) Rule {
	return FMap(s, func(_ Scalar, ok bool) (bool, bool) {
		return !ok, true
	})
}
