package core

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// windowValues collects the valid values inside [lo, hi) of a, used by the
// reducers that only care about the present values in a window (highest,
// lowest, median, mad); it returns ok=false when none are valid.
func windowValues(a Price, lo, hi int) ([]Scalar, bool) {
	vals := make([]Scalar, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if v, ok := a.At(i); ok {
			vals = append(vals, v)
		}
	}
	return vals, len(vals) > 0
}

func reduceWindow(a Price, period Period, f func(lo, hi int) (Scalar, bool)) Price {
	bounds := a.Window(period)
	out := Empty[Scalar](a.Len())
	for i, b := range bounds {
		if v, ok := f(b[0], b[1]); ok {
			out.Set(i, v)
		}
	}
	return out
}

// Sum returns the windowed sum, dividing by nothing: an all-invalid window
// yields an invalid position, otherwise missing members inside the window
// are simply skipped (skip-on-None, not zero-fill).
func Sum(a Price, period Period) Price {
	return reduceWindow(a, period, func(lo, hi int) (Scalar, bool) {
		vals, ok := windowValues(a, lo, hi)
		if !ok {
			return 0, false
		}
		var s Scalar
		for _, v := range vals {
			s += v
		}
		return s, true
	})
}

// MA returns the windowed mean, dividing the valid-value sum by the full
// window length (not the count of valid values) — the reference's wmean.
func MA(a Price, period Period) Price {
	bounds := a.Window(period)
	out := Empty[Scalar](a.Len())
	for i, b := range bounds {
		vals, ok := windowValues(a, b[0], b[1])
		if !ok {
			continue
		}
		var s Scalar
		for _, v := range vals {
			s += v
		}
		width := Scalar(b[1] - b[0])
		out.Set(i, s/width)
	}
	return out
}

// percentile implements the reference's linear-interpolation percentile,
// applied over the window's present values only.
func percentile(values []Scalar, pct Scalar) Scalar {
	sorted := append([]Scalar(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	idx := (pct / Scale) * Scalar(n-1)
	lo := int(math.Floor(float64(idx)))
	hi := int(math.Ceil(float64(idx)))
	if hi >= n {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - Scalar(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Percentile returns the windowed percentile (0-100 scale) over present
// values in each window.
func Percentile(a Price, period Period, pct Scalar) Price {
	return reduceWindow(a, period, func(lo, hi int) (Scalar, bool) {
		vals, ok := windowValues(a, lo, hi)
		if !ok {
			return 0, false
		}
		return percentile(vals, pct), true
	})
}

// Median is Percentile at the 50th percentile.
func Median(a Price, period Period) Price {
	return Percentile(a, period, Neutrality)
}

// MAD returns the windowed mean absolute deviation from the window mean,
// divided by the full window width like MA.
func MAD(a Price, period Period) Price {
	bounds := a.Window(period)
	out := Empty[Scalar](a.Len())
	for i, b := range bounds {
		vals, ok := windowValues(a, b[0], b[1])
		if !ok {
			continue
		}
		var s Scalar
		for _, v := range vals {
			s += v
		}
		width := Scalar(b[1] - b[0])
		mean := s / width
		var dev Scalar
		for _, v := range vals {
			d := v - mean
			if d < 0 {
				d = -d
			}
			dev += d
		}
		out.Set(i, dev/width)
	}
	return out
}

// Var returns the windowed population variance, computed via gonum's
// sample variance (Bessel-corrected) and rescaled by (n-1)/n back to the
// population convention the reference's pow(2).ma() - ma().pow(2)
// identity uses.
func Var(a Price, period Period) Price {
	bounds := a.Window(period)
	out := Empty[Scalar](a.Len())
	for i, b := range bounds {
		vals, ok := windowValues(a, b[0], b[1])
		if !ok {
			continue
		}
		n := len(vals)
		if n == 1 {
			out.Set(i, 0)
			continue
		}
		xs := make([]float64, n)
		for j, v := range vals {
			xs[j] = float64(v)
		}
		_, sampleVar := stat.MeanVariance(xs, nil)
		popVar := sampleVar * float64(n-1) / float64(n)
		out.Set(i, Scalar(popVar))
	}
	return out
}

// Std is the square root of Var.
func Std(a Price, period Period) Price {
	return Sqrt(Var(a, period))
}

// ZScore standardizes a against its own rolling mean and standard
// deviation.
func ZScore(a Price, period Period) Price {
	return Div(Sub(a, MA(a, period)), Std(a, period))
}

// Slope returns the per-bar rate of change over a window, normalized by
// period+1 to approximate a linear-regression slope without fitting one.
func Slope(a Price, period Period) Price {
	return DivScalar(ChangeF(a, period), Scalar(period+1))
}

// Highest returns the windowed maximum of present values.
func Highest(a Price, period Period) Price {
	return reduceWindow(a, period, func(lo, hi int) (Scalar, bool) {
		vals, ok := windowValues(a, lo, hi)
		if !ok {
			return 0, false
		}
		m := vals[0]
		for _, v := range vals[1:] {
			if v > m {
				m = v
			}
		}
		return m, true
	})
}

// Lowest returns the windowed minimum of present values.
func Lowest(a Price, period Period) Price {
	return reduceWindow(a, period, func(lo, hi int) (Scalar, bool) {
		vals, ok := windowValues(a, lo, hi)
		if !ok {
			return 0, false
		}
		m := vals[0]
		for _, v := range vals[1:] {
			if v < m {
				m = v
			}
		}
		return m, true
	})
}

// RangeF returns Highest - Lowest over the window.
func RangeF(a Price, period Period) Price {
	return Sub(Highest(a, period), Lowest(a, period))
}

// Normalize rescales a into [0, scale] relative to its rolling low/high.
func Normalize(a Price, period Period, scale Scalar) Price {
	lo := Lowest(a, period)
	hi := Highest(a, period)
	return MulScalar(Div(Sub(a, lo), Sub(hi, lo)), scale)
}

// Correlation returns the rolling Pearson correlation between a and b,
// delegating to gonum/stat.Correlation over each window's jointly-present
// values.
func Correlation(a, b Price, period Period) Price {
	bounds := a.Window(period)
	out := Empty[Scalar](a.Len())
	for i, bnd := range bounds {
		lo, hi := bnd[0], bnd[1]
		var xs, ys []float64
		for j := lo; j < hi; j++ {
			av, aok := a.At(j)
			bv, bok := b.At(j)
			if aok && bok {
				xs = append(xs, float64(av))
				ys = append(ys, float64(bv))
			}
		}
		if len(xs) < 2 {
			continue
		}
		out.Set(i, Scalar(stat.Correlation(xs, ys, nil)))
	}
	return out
}
