package indicators

import "barstream/core"

// TR is the classic true range: max(high-low, |high-prevClose|, |low-prevClose|).
func TR(high, low, close core.Price) core.Price {
	prevClose := close.Shift(1)
	hl := core.Sub(high, low)
	hc := core.Abs(core.Sub(high, prevClose))
	lc := core.Abs(core.Sub(low, prevClose))
	return core.Max(core.Max(hl, hc), lc)
}

// ATR is the average true range under the requested smoother; Wilder's
// original uses SMMA.
func ATR(high, low, close core.Price, smooth core.Smooth, period core.Period) core.Price {
	return core.Apply(TR(high, low, close), smooth, period)
}

// BBands returns the Bollinger upper/middle/lower bands: a moving average
// of source plus/minus factor standard deviations.
func BBands(source core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) (upper, middle, lower core.Price) {
	middle = core.Apply(source, smooth, period)
	stdMul := core.MulScalar(core.Std(source, period), factor)
	upper = core.Add(middle, stdMul)
	lower = core.Sub(middle, stdMul)
	return
}

// BBP is Bollinger %B: where source sits within its own bands, 0 at the
// lower band and 1 at the upper.
func BBP(source core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) core.Price {
	upper, _, lower := BBands(source, smooth, period, factor)
	return core.Div(core.Sub(source, lower), core.Sub(upper, lower))
}

// BBW is the Bollinger bandwidth: total band spread relative to the
// middle line, scaled to a percentage.
func BBW(source core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) core.Price {
	upper, middle, lower := BBands(source, smooth, period, factor)
	return core.MulScalar(core.Div(core.Sub(upper, lower), middle), core.Scale)
}

// Keltner returns Keltner channel upper/middle/lower bands: a smoothed
// midline of source plus/minus a multiple of the supplied ATR line.
func Keltner(source, atr core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) (upper, middle, lower core.Price) {
	middle = core.Apply(source, smooth, period)
	band := core.MulScalar(atr, factor)
	upper = core.Add(middle, band)
	lower = core.Sub(middle, band)
	return
}

// KeltnerP is the Keltner analogue of Bollinger %B: where source sits
// within its channel.
func KeltnerP(source, atr core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) core.Price {
	upper, _, lower := Keltner(source, atr, smooth, period, factor)
	return core.Div(core.Sub(source, lower), core.Sub(upper, lower))
}

// KeltnerW is the Keltner channel width relative to its midline, scaled
// to a percentage.
func KeltnerW(source, atr core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) core.Price {
	upper, middle, lower := Keltner(source, atr, smooth, period, factor)
	return core.MulScalar(core.Div(core.Sub(upper, lower), middle), core.Scale)
}

// PPB returns pivot-point bands: a smoothed midline offset upward by the
// rolling peak of high-side dispersion and downward by the rolling
// trough of low-side dispersion.
func PPB(source, high, low core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) (upper, middle, lower core.Price) {
	ppvih := core.MulScalar(core.Highest(core.Std(high, period), period), factor)
	ppvil := core.MulScalar(core.Lowest(core.Std(low, period), period), factor)

	middle = core.Apply(source, smooth, period)
	upper = core.Add(middle, ppvih)
	lower = core.Sub(middle, ppvil)
	return
}

// PPBP is the %B analogue for pivot-point bands.
func PPBP(source, high, low core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) core.Price {
	upper, _, lower := PPB(source, high, low, smooth, period, factor)
	return core.Div(core.Sub(source, lower), core.Sub(upper, lower))
}

// PPBW is the width analogue for pivot-point bands, scaled to a
// percentage of the midline.
func PPBW(source, high, low core.Price, smooth core.Smooth, period core.Period, factor core.Scalar) core.Price {
	upper, middle, lower := PPB(source, high, low, smooth, period, factor)
	return core.MulScalar(core.Div(core.Sub(upper, lower), middle), core.Scale)
}

// Donchian returns the Donchian channel upper/lower bands: the rolling
// high/low extremes, and their midline.
func Donchian(high, low core.Price, period core.Period) (upper, middle, lower core.Price) {
	upper = core.Highest(high, period)
	lower = core.Lowest(low, period)
	middle = core.DivScalar(core.Add(upper, lower), 2)
	return
}

// ChandelierExit is the ATR-trailing exit line: the rolling extreme
// offset by a multiple of ATR, used as a long or short stop.
func ChandelierExit(high, low, close core.Price, period core.Period, factor core.Scalar, long bool) core.Price {
	atr := ATR(high, low, close, core.SmoothSMMA, period)
	if long {
		return core.Sub(core.Highest(high, period), core.MulScalar(atr, factor))
	}
	return core.Add(core.Lowest(low, period), core.MulScalar(atr, factor))
}

// SNATR is the stochastic-normalized ATR: where ATR sits within its own
// rolling range, the range itself softened by a WMA.
func SNATR(high, low, close core.Price, atrPeriod, period core.Period) core.Price {
	atr := ATR(high, low, close, core.SmoothSMMA, atrPeriod)
	lowest := core.Lowest(atr, atrPeriod)
	spread := core.Sub(core.Highest(atr, atrPeriod), lowest)
	return core.Div(core.Sub(atr, lowest), core.WMA(spread, period))
}

// ChaikinVolatility measures the rate of change of the high-low spread's
// EMA, exposing volatility expansion/contraction as a percentage.
func ChaikinVolatility(high, low core.Price, emaPeriod, rocPeriod core.Period) core.Price {
	spread := core.EMA(core.Sub(high, low), emaPeriod)
	return core.MulScalar(core.Div(core.ChangeF(spread, rocPeriod), spread.Shift(rocPeriod)), core.Scale)
}

// Vortex returns the positive/negative vortex lines: normalized sums of
// directional movement relative to true range, used to spot trend
// reversals where VI+ and VI- cross.
func Vortex(high, low, close core.Price, period core.Period) (viPlus, viMinus core.Price) {
	vmPlus := core.Abs(core.Sub(high, low.Shift(1)))
	vmMinus := core.Abs(core.Sub(low, high.Shift(1)))
	trSum := core.Sum(TR(high, low, close), period)
	viPlus = core.Div(core.Sum(vmPlus, period), trSum)
	viMinus = core.Div(core.Sum(vmMinus, period), trSum)
	return
}

// GKYZ is the Garman-Klass-Yang-Zhang volatility estimator, combining
// overnight, Parkinson, and intraday range terms.
func GKYZ(open, high, low, close core.Price, period core.Period) core.Price {
	gkyzl := core.Log(core.Div(open, close.Shift(1)))
	pkl := core.Log(core.Div(high, low))
	gkl := core.Log(core.Div(close, open))
	gm := core.Scalar(2.0*0.6931471805599453 - 1.0)

	gkyzs := core.MulScalar(core.Sum(core.Pow(gkyzl, 2), period), 1/core.Scalar(period))
	pks := core.MulScalar(core.Sum(core.Pow(pkl, 2), period), 1/(2*core.Scalar(period)))
	gs := core.MulScalar(core.Sum(core.Pow(gkl, 2), period), gm/core.Scalar(period))

	return core.Sqrt(core.Add(core.Sub(gkyzs, gs), pks))
}

// rogersSatchell is the Rogers-Satchell volatility estimator, a drift-
// independent component of Yang-Zhang.
func rogersSatchell(open, high, low, close core.Price, period core.Period) core.Price {
	hc := core.Log(core.Div(high, close))
	ho := core.Log(core.Div(high, open))
	lc := core.Log(core.Div(low, close))
	lo := core.Log(core.Div(low, open))
	sum := core.Add(core.Mul(hc, ho), core.Mul(lc, lo))
	return core.Sqrt(core.MA(sum, period))
}

// YZ is the Yang-Zhang volatility estimator, blending overnight,
// open-to-close, and Rogers-Satchell variance terms.
func YZ(open, high, low, close core.Price, period core.Period) core.Price {
	zero := core.Scalar(0)
	oc := core.Log(core.Div(open, core.Nz(close.Shift(1), &zero)))
	ochat := core.MA(oc, period)

	co := core.Log(core.Div(close, open))
	cohat := core.MA(co, period)

	factor := core.Scalar(1) / core.Scalar(period-1)

	ov := core.MulScalar(core.Sum(core.Pow(core.Sub(oc, ochat), 2), period), factor)
	cv := core.MulScalar(core.Sum(core.Pow(core.Sub(co, cohat), 2), period), factor)

	k := core.Scalar(0.34) / (1.34 + core.Scalar(period+1)/core.Scalar(period-1))
	rs := core.Pow(rogersSatchell(open, high, low, close, period), 2)

	return core.Sqrt(core.Add(core.Add(ov, core.MulScalar(cv, k)), core.MulScalar(rs, 1-k)))
}
