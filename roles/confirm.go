package roles

import (
	"barstream/core"
	"barstream/indicators"
	"barstream/timeseries"
)

// MACDSignalLineConfirm gates entries on the sign of the MACD histogram:
// only permit longs while momentum is building above the signal line and
// shorts while it is building below, the confirmation half of a
// divergence-trading strategy once the divergence detection itself is
// left to a dedicated Signal.
type MACDSignalLineConfirm struct {
	Smooth             core.Smooth
	Fast, Slow, Signal core.Period
	Source             timeseries.SourceType
}

func (c MACDSignalLineConfirm) Lookback() int { return c.Slow }

// Filter permits longs where the histogram is positive and rising, shorts
// where it is negative and falling.
func (c MACDSignalLineConfirm) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	_, _, hist := indicators.MACD(ohlcv.Source(c.Source), c.Smooth, c.Fast, c.Slow, c.Signal)
	long = core.And(core.Sgt(hist, 0), core.Gt(hist, hist.Shift(1)))
	short = core.And(core.Slt(hist, 0), core.Lt(hist, hist.Shift(1)))
	return
}

// CorrelationConfirm gates entries on price-volume agreement: a move is
// only confirmed when the rolling correlation between price and volume
// exceeds MinCorrelation, generalizing the minimum-correlation gate a
// pairs-trading strategy applies to its two legs down to the single-
// instrument case of price confirmed by its own volume.
type CorrelationConfirm struct {
	Period         core.Period
	MinCorrelation core.Scalar
	Source         timeseries.SourceType
}

func (c CorrelationConfirm) Lookback() int { return c.Period }

// Filter permits both directions wherever the price/volume correlation is
// strong enough; it does not distinguish long from short on its own, that
// is the Signal's job.
func (c CorrelationConfirm) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	corr := core.Correlation(ohlcv.Source(c.Source), ohlcv.Volume(), c.Period)
	gate := core.Sgt(corr, c.MinCorrelation)
	return gate, gate
}

// DSOConfirm gates entries on the double-smoothed stochastic: longs
// while %K leads %D, shorts while it trails.
type DSOConfirm struct {
	Smooth       core.Smooth
	SmoothPeriod core.Period
	KPeriod      core.Period
	DPeriod      core.Period
}

func (c DSOConfirm) Lookback() int {
	return maxPeriod(c.SmoothPeriod, c.KPeriod, c.DPeriod)
}

// Filter permits longs where %K sits above %D and shorts below.
func (c DSOConfirm) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	k, d := indicators.DSO(ohlcv.Close(), c.Smooth, c.SmoothPeriod, c.KPeriod, c.DPeriod)
	long = core.Gt(k, d)
	short = core.Lt(k, d)
	return
}

// VortexConfirm gates entries on the vortex lines: longs while VI+
// leads VI-, shorts while it trails.
type VortexConfirm struct {
	Period core.Period
}

func (c VortexConfirm) Lookback() int { return c.Period }

// Filter permits longs where VI+ sits above VI- and shorts below.
func (c VortexConfirm) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	viPlus, viMinus := indicators.Vortex(ohlcv.High(), ohlcv.Low(), ohlcv.Close(), c.Period)
	long = core.Gt(viPlus, viMinus)
	short = core.Lt(viPlus, viMinus)
	return
}

// WPRConfirm gates entries on Williams %R against its own smoothed
// signal line.
type WPRConfirm struct {
	Period       core.Period
	SmoothSignal core.Smooth
	PeriodSignal core.Period
	Source       timeseries.SourceType
}

func (c WPRConfirm) Lookback() int {
	return maxPeriod(c.Period, c.PeriodSignal)
}

// Filter permits longs where %R sits above its signal line and shorts
// below.
func (c WPRConfirm) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	wpr := indicators.WPR(ohlcv.Source(c.Source), ohlcv.High(), ohlcv.Low(), c.Period)
	signal := core.Apply(wpr, c.SmoothSignal, c.PeriodSignal)
	long = core.Gt(wpr, signal)
	short = core.Lt(wpr, signal)
	return
}

// BraidConfirm gates entries on the braid filter: three staggered moving
// averages whose spread must exceed an ATR-scaled strength floor while
// the fast pair orders bullishly or bearishly.
type BraidConfirm struct {
	Smooth      core.Smooth
	PeriodOne   core.Period
	PeriodTwo   core.Period
	PeriodThree core.Period
	Strength    core.Scalar
	ATRPeriod   core.Period
}

func (c BraidConfirm) Lookback() int {
	return maxPeriod(c.PeriodOne, c.PeriodTwo, c.PeriodThree, c.ATRPeriod)
}

// Filter permits longs while the close-MA leads the open-MA with the
// braid spread wide enough, and symmetrically short.
func (c BraidConfirm) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	maOne := core.Apply(ohlcv.Close(), c.Smooth, c.PeriodOne)
	maTwo := core.Apply(ohlcv.Open(), c.Smooth, c.PeriodTwo)
	maThree := core.Apply(ohlcv.Close(), c.Smooth, c.PeriodThree)
	filter := core.MulScalar(ohlcv.ATR(core.SmoothSMMA, c.ATRPeriod), c.Strength/core.Scale)

	max := core.Max(core.Max(maOne, maTwo), maThree)
	min := core.Min(core.Min(maOne, maTwo), maThree)
	diff := core.Sub(max, min)

	wide := core.Gt(diff, filter)
	long = core.And(core.Gt(maOne, maTwo), wide)
	short = core.And(core.Lt(maOne, maTwo), wide)
	return
}
