// Package indicators implements the oscillator, band, and trend library
// built on top of the core Series kernel.
package indicators

import "barstream/core"

// RSI is Wilder's relative strength index under the requested smoother:
// a flat downside (down == 0) reads as maximally overbought, 100.
func RSI(source core.Price, smooth core.Smooth, period core.Period) core.Price {
	mom := core.ChangeF(source, 1)
	up := core.Apply(core.MaxScalar(mom, 0), smooth, period)
	down := core.Apply(core.Neg(core.MinScalar(mom, 0)), smooth, period)

	return core.ZipWith(up, down, func(u core.Scalar, uok bool, d core.Scalar, dok bool) (core.Scalar, bool) {
		if !uok || !dok {
			return 0, false
		}
		if d == 0 {
			return 100, true
		}
		return 100 - 100/(1+u/d), true
	})
}

// MACD returns the fast/slow spread line under the requested smoother,
// its signal line, and their difference (the histogram).
func MACD(source core.Price, smooth core.Smooth, fast, slow, signal core.Period) (line, sig, hist core.Price) {
	line = core.Spread(source, smooth, fast, slow)
	sig = core.Apply(line, smooth, signal)
	hist = core.Sub(line, sig)
	return
}

// PPO is the percentage price oscillator: the MACD spread expressed as a
// percentage of the slow line, generalized to any Smooth family.
func PPO(source core.Price, smooth core.Smooth, fast, slow core.Period) core.Price {
	return core.SpreadPct(source, smooth, fast, slow)
}

// Stoch is the raw stochastic %K: where close sits within the rolling
// high/low range, scaled to 0-100.
func Stoch(source, high, low core.Price, period core.Period) core.Price {
	hh := core.Highest(high, period)
	ll := core.Lowest(low, period)
	return core.MulScalar(core.Div(core.Sub(source, ll), core.Sub(hh, ll)), core.Scale)
}

// StochOsc is the smoothed stochastic oscillator: %K and %D, each an
// `smooth`-family moving average of the line below it.
func StochOsc(source, high, low core.Price, smooth core.Smooth, period, kPeriod, dPeriod core.Period) (k, d core.Price) {
	raw := Stoch(source, high, low, period)
	k = core.Apply(raw, smooth, kPeriod)
	d = core.Apply(k, smooth, dPeriod)
	return
}

// DSO is the double-smoothed stochastic: %K of an already-smoothed close
// against itself, then smoothed again into %K/%D lines.
func DSO(close core.Price, smooth core.Smooth, smoothPeriod, kPeriod, dPeriod core.Period) (k, d core.Price) {
	closeSmooth := core.Apply(close, smooth, kPeriod)
	raw := Stoch(closeSmooth, closeSmooth, closeSmooth, smoothPeriod)
	k = core.Apply(raw, smooth, kPeriod)
	d = core.Apply(k, smooth, dPeriod)
	return
}

// SSO is the stochastic variant that smooths the high/low/source legs
// before the %K ratio rather than after it.
func SSO(source, high, low core.Price, smooth core.Smooth, kPeriod, dPeriod core.Period) (k, d core.Price) {
	highSmooth := core.Apply(high, smooth, kPeriod)
	lowSmooth := core.Apply(low, smooth, kPeriod)
	sourceSmooth := core.Apply(source, smooth, kPeriod)
	k = Stoch(sourceSmooth, highSmooth, lowSmooth, kPeriod)
	d = core.Apply(k, smooth, dPeriod)
	return
}

// STC is the Schaff trend cycle: a double stochastic of a MACD-style
// spread, compressing cyclical turns the raw oscillator lags on. Each
// stochastic is geometrically averaged at factor rather than smoothed
// with a fixed-period moving average: d[i] = k[i] where the prior average
// is missing, else d[i-1] + factor*(k[i]-d[i-1]).
func STC(source core.Price, smooth core.Smooth, fast, slow, period core.Period, factor core.Scalar) core.Price {
	macdLine := core.Spread(source, smooth, fast, slow)
	k := Stoch(macdLine, macdLine, macdLine, period)
	d := geometricAverage(k, factor)

	kd := Stoch(d, d, d, period)
	return geometricAverage(kd, factor)
}

// geometricAverage applies the recursive blend
// out[i] = out[i-1] + factor*(x[i]-out[i-1]), seeded by x at the first
// valid position, the "iterate to a fixed point" recurrence STC needs.
func geometricAverage(x core.Price, factor core.Scalar) core.Price {
	n := x.Len()
	out := core.Empty[core.Scalar](n)
	var prev core.Scalar
	havePrev := false
	for i := 0; i < n; i++ {
		xv, ok := x.At(i)
		if !ok {
			continue
		}
		if !havePrev {
			out.Set(i, xv)
			prev = xv
			havePrev = true
			continue
		}
		v := prev + factor*(xv-prev)
		out.Set(i, v)
		prev = v
	}
	return out
}

// CCI is the commodity channel index: distance of source from its moving
// average, normalized by mean absolute deviation and a scale factor.
func CCI(source core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) core.Price {
	ma := core.Apply(source, smooth, period)
	mad := core.MAD(source, period)
	return core.Div(core.Sub(source, ma), core.MulScalar(mad, factor))
}

// ROC is the n-bar percentage rate of change.
func ROC(source core.Price, period core.Period) core.Price {
	return core.MulScalar(core.Div(core.ChangeF(source, period), source.Shift(period)), core.Scale)
}

// DI is the disparity index: percentage distance of source from its own
// moving average.
func DI(source core.Price, smooth core.Smooth, period core.Period) core.Price {
	ma := core.Apply(source, smooth, period)
	return core.MulScalar(core.Div(core.Sub(source, ma), ma), core.Scale)
}

// MAD is the moving average difference oscillator: the percentage spread
// between a fast and slow simple moving average of source. (Distinct
// from core.MAD, the windowed mean-absolute-deviation reducer.)
func MAD(source core.Price, fast, slow core.Period) core.Price {
	fad := core.MA(source, fast)
	sad := core.MA(source, slow)
	return core.MulScalar(core.Div(core.Sub(fad, sad), sad), core.Scale)
}

// AO is the awesome oscillator: the spread between a fast and slow
// simple moving average of the bar midpoint.
func AO(hl2 core.Price, fast, slow core.Period) core.Price {
	return core.Sub(core.MA(hl2, fast), core.MA(hl2, slow))
}

// WPR is Williams %R: the stochastic ratio flipped to the -100..0 range.
func WPR(source, high, low core.Price, period core.Period) core.Price {
	hh := core.Highest(high, period)
	ll := core.Lowest(low, period)
	return core.MulScalar(core.Div(core.Sub(hh, source), core.Sub(hh, ll)), -core.Scale)
}

// REX smooths 3*source - (open + high + low), a measure of where the
// close sits relative to the rest of the bar.
func REX(source, open, high, low core.Price, smooth core.Smooth, period core.Period) core.Price {
	value := core.Sub(core.MulScalar(source, 3), core.Add(core.Add(open, high), low))
	return core.Apply(value, smooth, period)
}

// TII is the trend intensity index: the share of upside deviations from
// a major moving average, smoothed over a minor period and scaled 0-100.
func TII(source core.Price, smooth core.Smooth, majorPeriod, minorPeriod core.Period) core.Price {
	diff := core.Sub(source, core.Apply(source, smooth, majorPeriod))

	positive := core.Apply(core.MaxScalar(diff, 0), smooth, minorPeriod)
	negative := core.Apply(core.Abs(core.MinScalar(diff, 0)), smooth, minorPeriod)

	return core.MulScalar(core.Div(positive, core.Add(positive, negative)), core.Scale)
}

// TDFI is the trend direction force index: a smoothed-price force term
// normalized by its own rolling extreme into the -1..1 range.
func TDFI(source core.Price, smooth core.Smooth, period core.Period, n int) core.Price {
	ma := core.Apply(core.MulScalar(source, 1000), smooth, period)
	sma := core.Apply(ma, smooth, period)

	force := core.MulScalar(core.Add(core.ChangeF(ma, 1), core.ChangeF(sma, 1)), 0.5)
	tdf := core.Mul(core.Abs(core.Sub(ma, sma)), core.Pow(force, core.Period(n)))

	return core.Div(tdf, core.Highest(core.Abs(tdf), period*core.Period(n)))
}

// TRIX is the 1-bar rate of change of a triple-smoothed source, scaled
// to a percentage.
func TRIX(source core.Price, smooth core.Smooth, period core.Period) core.Price {
	e1 := core.Apply(source, smooth, period)
	e2 := core.Apply(e1, smooth, period)
	e3 := core.Apply(e2, smooth, period)
	return core.MulScalar(core.Div(core.ChangeF(e3, 1), e3.Shift(1)), core.Scale)
}

// TSI is the true strength index: a doubly-smoothed momentum ratio.
func TSI(source core.Price, smooth core.Smooth, fast, slow core.Period) core.Price {
	mom := core.ChangeF(source, 1)
	absMom := core.Abs(mom)
	doubleSmoothed := core.Apply(core.Apply(mom, smooth, slow), smooth, fast)
	doubleSmoothedAbs := core.Apply(core.Apply(absMom, smooth, slow), smooth, fast)
	return core.MulScalar(core.Div(doubleSmoothed, doubleSmoothedAbs), core.Scale)
}

// UO is Williams' ultimate oscillator blending three buying-pressure/true-
// range ratios over short/medium/long windows, weighted 4:2:1.
func UO(high, low, close core.Price, fast, mid, slow core.Period) core.Price {
	prevClose := close.Shift(1)
	bp := core.Sub(close, core.Min(low, prevClose))
	tr := TR(high, low, close)

	avg := func(period core.Period) core.Price {
		return core.Div(core.Sum(bp, period), core.Sum(tr, period))
	}

	return core.MulScalar(core.DivScalar(
		core.Add(core.Add(core.MulScalar(avg(fast), 4), core.MulScalar(avg(mid), 2)), avg(slow)),
		7,
	), core.Scale)
}

// KST is Pring's know-sure-thing: a weighted sum of four smoothed rate-
// of-change lines.
func KST(source core.Price, rocPeriods, smaPeriods [4]core.Period, weights [4]core.Scalar) core.Price {
	var out core.Price
	for i := 0; i < 4; i++ {
		rocLine := ROC(source, rocPeriods[i])
		smoothed := core.MA(rocLine, smaPeriods[i])
		term := core.MulScalar(smoothed, weights[i])
		if i == 0 {
			out = term
		} else {
			out = core.Add(out, term)
		}
	}
	return out
}
