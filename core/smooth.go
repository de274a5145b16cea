package core

import "math"

// Smooth names one of the engine's recurrent moving-average families.
type Smooth int

const (
	SmoothEMA Smooth = iota
	SmoothSMA
	SmoothSMMA
	SmoothKAMA
	SmoothHMA
	SmoothWMA
	SmoothZLEMA
	SmoothLSMA
	SmoothTEMA
	SmoothDEMA
	SmoothT3
	SmoothULTS
)

// Ew computes the forward exponential-weighted recurrence
// out[0] = seed[0]; out[i] = alpha[i]*x[i] + (1-alpha[i])*out[i-1]. A
// missing value in x, alpha, or seed reads as 0 for the update but
// propagates nothing: every output position is valid. The reference
// computes this by iterating a fixed-point relation `len` times over
// lazily-evaluated series; a single left-to-right scalar pass lands on
// the same values.
func Ew(x, alpha, seed Price) Price {
	n := x.Len()
	out := Empty[Scalar](n)
	if n == 0 {
		return out
	}
	read := func(s Price, i int) Scalar {
		if v, ok := s.At(i); ok {
			return v
		}
		return 0
	}
	prev := read(seed, 0)
	out.Set(0, prev)
	for i := 1; i < n; i++ {
		a := read(alpha, i)
		v := a*read(x, i) + (1-a)*prev
		out.Set(i, v)
		prev = v
	}
	return out
}

// Wg applies a fixed set of lag weights (most recent first, i.e. weight[0]
// applies to the current bar) and normalizes by their sum.
func Wg(x Price, weights []Scalar) Price {
	n := x.Len()
	sum := ZeroSeries(n)
	var norm Scalar
	for _, w := range weights {
		norm += w
	}
	for i, w := range weights {
		sum = Add(sum, MulScalar(x.Shift(i), w))
	}
	return DivScalar(sum, norm)
}

// EMA is the classic exponential moving average, alpha = 2/(period+1).
func EMA(x Price, period Period) Price {
	alpha := Fill(2/(Scalar(period)+1), x.Len())
	return Ew(x, alpha, x)
}

// SMMA is Wilder's smoothed moving average, alpha = 1/period, seeded by
// the simple moving average.
func SMMA(x Price, period Period) Price {
	alpha := Fill(1/Scalar(period), x.Len())
	seed := MA(x, period)
	return Ew(x, alpha, seed)
}

// DEMA is the double exponential moving average.
func DEMA(x Price, period Period) Price {
	ema := EMA(x, period)
	return Sub(MulScalar(ema, 2), EMA(ema, period))
}

// TEMA is the triple exponential moving average.
func TEMA(x Price, period Period) Price {
	ema1 := EMA(x, period)
	ema2 := EMA(ema1, period)
	ema3 := EMA(ema2, period)
	return Add(MulScalar(Sub(ema1, ema2), 3), ema3)
}

// WMA is the linearly-weighted moving average, heaviest weight on the
// current bar.
func WMA(x Price, period Period) Price {
	weights := make([]Scalar, period)
	for i := range weights {
		weights[i] = Scalar(period - i)
	}
	return Wg(x, weights)
}

// SWMA is the fixed 4-tap symmetric weighted moving average
// (1,2,2,1)/6 used by some TradingView built-ins.
func SWMA(x Price) Price {
	x1 := x.Shift(1)
	x2 := x.Shift(2)
	x3 := x.Shift(3)
	return Add(Add(MulScalar(x3, 1.0/6), MulScalar(x2, 2.0/6)), Add(MulScalar(x1, 2.0/6), MulScalar(x, 1.0/6)))
}

// HMA is the Hull moving average: WMA of (2*WMA(period/2) - WMA(period))
// over sqrt(period) bars, trading lag for responsiveness.
func HMA(x Price, period Period) Price {
	lag := int(math.Round(0.5 * float64(period)))
	sqrtPeriod := int(math.Sqrt(float64(period)))
	diff := Sub(MulScalar(WMA(x, lag), 2), WMA(x, period))
	return WMA(diff, sqrtPeriod)
}

// LSMA is the least-squares (linear regression) moving average: the
// windowed OLS fit of x against bar index, evaluated at the current bar.
func LSMA(x Price, period Period) Price {
	n := x.Len()
	idx := Empty[Scalar](n)
	for i := 0; i < n; i++ {
		idx.Set(i, Scalar(i))
	}
	xMean := MA(idx, period)
	yMean := MA(x, period)
	xy := Mul(idx, x)
	xx := Pow(idx, 2)
	xyMA := MA(xy, period)
	xxMA := MA(xx, period)
	slope := Div(Sub(xyMA, Mul(xMean, yMean)), Sub(xxMA, Mul(xMean, xMean)))
	intercept := Sub(yMean, Mul(slope, xMean))
	return Add(intercept, Mul(slope, idx))
}

// KAMA is Kaufman's adaptive moving average: an EMA whose alpha tracks
// the efficiency ratio of directional movement to total movement.
func KAMA(x Price, period Period) Price {
	mom := Abs(ChangeF(x, period))
	volatility := Sum(Abs(ChangeF(x, 1)), period)
	er := ZipWith(mom, volatility, func(m Scalar, mok bool, v Scalar, vok bool) (Scalar, bool) {
		if !mok || !vok {
			return 0, false
		}
		if v == 0 {
			return 0, true
		}
		return m / v, true
	})
	alpha := Pow(MulScalar(er, 2.0/3.0), 2)
	return Ew(x, alpha, x)
}

// ZLEMA is the zero-lag EMA: an EMA of a de-lagged series
// x + (x - x.shift(lag)).
func ZLEMA(x Price, period Period) Price {
	lag := int(0.5 * (float64(period) - 1))
	deLagged := Add(x, Sub(x, x.Shift(lag)))
	return EMA(deLagged, period)
}

// T3 is Tillson's T3: a six-pole recursive EMA cascade with the standard
// volume factor of 0.618, DEMA'd at each stage.
func T3(x Price, period Period) Price {
	const vf = 0.618
	e1 := EMA(x, period)
	e2 := EMA(e1, period)
	e3 := EMA(e2, period)
	e4 := EMA(e3, period)
	e5 := EMA(e4, period)
	e6 := EMA(e5, period)

	c1 := Scalar(-vf * vf * vf)
	c2 := Scalar(3*vf*vf + 3*vf*vf*vf)
	c3 := Scalar(-6*vf*vf - 3*vf - 3*vf*vf*vf)
	c4 := Scalar(1 + 3*vf + vf*vf*vf + 3*vf*vf)

	return Add(Add(MulScalar(e6, c1), MulScalar(e5, c2)), Add(MulScalar(e4, c3), MulScalar(e3, c4)))
}

// ULTS is John Ehlers' Ultimate Smoother, a two-pole high-pass-derived
// IIR filter that tracks price with near-zero lag above its cutoff
// period. The reference recomputes the whole series len(x) times to
// reach its fixed point; a single forward pass over the same recurrence
// converges immediately and is what this implementation does instead.
func ULTS(x Price, period Period) Price {
	n := x.Len()
	f := float64(period)
	a1 := math.Exp(-1.414 * math.Pi / f)
	c2 := Scalar(2.0 * a1 * math.Cos(1.414*math.Pi/f))
	c3 := Scalar(-a1 * a1)
	c1 := Scalar(0.25) * (1 + c2 - c3)

	out := Empty[Scalar](n)
	for i := 0; i < n && i < 3; i++ {
		if v, ok := x.At(i); ok {
			out.Set(i, v)
		}
	}
	for i := 3; i < n; i++ {
		xv, xok := x.At(i)
		x1, x1ok := x.At(i - 1)
		x2, x2ok := x.At(i - 2)
		u1, u1ok := out.At(i - 1)
		u2, u2ok := out.At(i - 2)
		if !u1ok {
			u1, u1ok = xv, xok
		}
		if !u2ok {
			u2, u2ok = xv, xok
		}
		if !xok || !x1ok || !x2ok || !u1ok || !u2ok {
			continue
		}
		v := (1-c1)*xv + (2*c1-c2)*x1 - (c1+c3)*x2 + c2*u1 + c3*u2
		out.Set(i, v)
	}
	return out
}

// Apply dispatches to the named smoother.
func Apply(x Price, smooth Smooth, period Period) Price {
	switch smooth {
	case SmoothEMA:
		return EMA(x, period)
	case SmoothSMA:
		return MA(x, period)
	case SmoothSMMA:
		return SMMA(x, period)
	case SmoothKAMA:
		return KAMA(x, period)
	case SmoothHMA:
		return HMA(x, period)
	case SmoothWMA:
		return WMA(x, period)
	case SmoothZLEMA:
		return ZLEMA(x, period)
	case SmoothLSMA:
		return LSMA(x, period)
	case SmoothTEMA:
		return TEMA(x, period)
	case SmoothDEMA:
		return DEMA(x, period)
	case SmoothT3:
		return T3(x, period)
	case SmoothULTS:
		return ULTS(x, period)
	default:
		return MA(x, period)
	}
}

// Spread returns the difference between a fast and slow application of
// the same smoother, the common building block for MACD-style oscillators.
func Spread(x Price, smooth Smooth, fast, slow Period) Price {
	return Sub(Apply(x, smooth, fast), Apply(x, smooth, slow))
}

// SpreadPct expresses Spread as a percentage of the slow line.
func SpreadPct(x Price, smooth Smooth, fast, slow Period) Price {
	fsm := Apply(x, smooth, fast)
	ssm := Apply(x, smooth, slow)
	return MulScalar(Div(Sub(fsm, ssm), ssm), Scale)
}

// SpreadDiff is the n-bar change in Spread, used by STC-style double
// stochastics of a MACD-like oscillator.
func SpreadDiff(x Price, smooth Smooth, fast, slow Period, n int) Price {
	sp := Spread(x, smooth, fast, slow)
	return Sub(sp, Spread(x.Shift(n), smooth, fast, slow))
}
