// Package roles implements concrete, pluggable role objects for the five
// strategy capability contracts (Signal, Confirm, Pulse, BaseLine, Exit).
// Each one adapts a single strategy's entry/exit logic into a pure
// function of an OHLCVSeries snapshot instead of a live order-placement
// loop: no broker client, no position state, no sleeping goroutine.
package roles

import (
	"barstream/core"
	"barstream/indicators"
	"barstream/timeseries"
)

// MACrossSignal triggers on a fast/slow moving-average crossover: the
// golden-cross/death-cross entry from a trend-following strategy.
type MACrossSignal struct {
	Smooth core.Smooth
	Fast   core.Period
	Slow   core.Period
	Source timeseries.SourceType
}

func (s MACrossSignal) Lookback() int { return s.Slow }

// Trigger fires long on a golden cross (fast over slow) and short on a
// death cross (fast under slow).
func (s MACrossSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	src := ohlcv.Source(s.Source)
	fast := core.Apply(src, s.Smooth, s.Fast)
	slow := core.Apply(src, s.Smooth, s.Slow)
	long = core.CrossOver(fast, slow)
	short = core.CrossUnder(fast, slow)
	return
}

// RSIReversalSignal triggers when RSI reverses out of its oversold or
// overbought extreme, the mean-reversion entry.
type RSIReversalSignal struct {
	Smooth     core.Smooth
	Period     core.Period
	Oversold   core.Scalar
	Overbought core.Scalar
	Source     timeseries.SourceType
}

func (s RSIReversalSignal) Lookback() int { return s.Period }

// Trigger fires long when RSI crosses back above the oversold level and
// short when it crosses back below the overbought level.
func (s RSIReversalSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	rsi := indicators.RSI(ohlcv.Source(s.Source), s.Smooth, s.Period)
	long = core.CrossOverScalar(rsi, s.Oversold)
	short = core.CrossUnderScalar(rsi, s.Overbought)
	return
}

// BollingerBreakoutSignal triggers when price breaks through its own
// Bollinger band, the squeeze-breakout entry.
type BollingerBreakoutSignal struct {
	Smooth core.Smooth
	Period core.Period
	Factor core.Scalar
	Source timeseries.SourceType
}

func (s BollingerBreakoutSignal) Lookback() int { return s.Period }

// Trigger fires long on an upper-band breakout and short on a lower-band
// breakdown.
func (s BollingerBreakoutSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	src := ohlcv.Source(s.Source)
	upper, _, lower := indicators.BBands(src, s.Smooth, s.Period, s.Factor)
	long = core.CrossOver(src, upper)
	short = core.CrossUnder(src, lower)
	return
}

// MACDZeroCrossSignal triggers when the MACD line changes sign: the
// zero-cross entry family.
type MACDZeroCrossSignal struct {
	Smooth             core.Smooth
	Fast, Slow, Signal core.Period
	Source             timeseries.SourceType
}

func (s MACDZeroCrossSignal) Lookback() int {
	return maxPeriod(s.Fast, s.Slow, s.Signal)
}

// Trigger fires long when the MACD line crosses above zero and short
// when it crosses below.
func (s MACDZeroCrossSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	line, _, _ := indicators.MACD(ohlcv.Source(s.Source), s.Smooth, s.Fast, s.Slow, s.Signal)
	long = core.CrossOverScalar(line, 0)
	short = core.CrossUnderScalar(line, 0)
	return
}

// SupertrendFlipSignal triggers on the supertrend direction flipping
// sides: the flip entry family.
type SupertrendFlipSignal struct {
	SmoothATR core.Smooth
	PeriodATR core.Period
	Factor    core.Scalar
	Source    timeseries.SourceType
}

func (s SupertrendFlipSignal) Lookback() int { return s.PeriodATR }

// Trigger fires long when the latched direction crosses up through zero
// and short when it crosses down.
func (s SupertrendFlipSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	direction, _ := indicators.Supertrend(
		ohlcv.Source(s.Source),
		ohlcv.Close(),
		ohlcv.ATR(s.SmoothATR, s.PeriodATR),
		s.Factor,
	)
	long = core.CrossOverScalar(direction, 0)
	short = core.CrossUnderScalar(direction, 0)
	return
}

// SupertrendPullbackSignal triggers when the bar's low tags the supertrend
// line while its close holds on the trend's side of it, after two closes
// on the other side: the pullback entry family.
type SupertrendPullbackSignal struct {
	SmoothATR core.Smooth
	PeriodATR core.Period
	Factor    core.Scalar
}

func (s SupertrendPullbackSignal) Lookback() int { return s.PeriodATR }

// Trigger fires long when the bar's low tags the trendline while the
// close holds above it after two bars below, and symmetrically short.
func (s SupertrendPullbackSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	close := ohlcv.Close()
	direction, trendline := indicators.Supertrend(
		ohlcv.Source(timeseries.SourceHL2),
		close,
		ohlcv.ATR(s.SmoothATR, s.PeriodATR),
		s.Factor,
	)

	above := core.Gt(close, trendline)
	below := core.Lt(close, trendline)

	long = core.And(
		core.And(core.Le(ohlcv.Low(), trendline), core.Gt(close, trendline)),
		core.And(core.And(below.Shift(1), below.Shift(2)), core.Seq(direction, 1)),
	)
	short = core.And(
		core.And(core.Ge(ohlcv.High(), trendline), core.Lt(close, trendline)),
		core.And(core.And(above.Shift(1), above.Shift(2)), core.Seq(direction, -1)),
	)
	return
}

// DonchianBreakoutSignal triggers when close clears the previous
// Donchian band while a fast/slow moving-average pair agrees: the
// channel-breakout entry family.
type DonchianBreakoutSignal struct {
	DchPeriod core.Period
	Smooth    core.Smooth
	Fast      core.Period
	Slow      core.Period
	Source    timeseries.SourceType
}

func (s DonchianBreakoutSignal) Lookback() int {
	return maxPeriod(s.DchPeriod, s.Fast, s.Slow)
}

// Trigger fires long on a close above the prior upper band with the MA
// pair bullish, and short on a close below the prior lower band with the
// pair bearish.
func (s DonchianBreakoutSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	upper, _, lower := indicators.Donchian(ohlcv.High(), ohlcv.Low(), s.DchPeriod)

	src := ohlcv.Source(s.Source)
	maFast := core.Apply(src, s.Smooth, s.Fast)
	maSlow := core.Apply(src, s.Smooth, s.Slow)
	close := ohlcv.Close()

	long = core.And(core.Gt(close, upper.Shift(1)), core.Gt(maFast, maSlow))
	short = core.And(core.Lt(close, lower.Shift(1)), core.Lt(maFast, maSlow))
	return
}

// RSINeutralitySignal triggers when RSI pushes away from its 50 midline
// after several bars on the other side: the neutrality-cross entry
// family.
type RSINeutralitySignal struct {
	Smooth    core.Smooth
	Period    core.Period
	Threshold core.Scalar
	Source    timeseries.SourceType
}

func (s RSINeutralitySignal) Lookback() int { return s.Period }

// Trigger fires long once RSI clears 50+threshold with the prior bar
// above 50 and the three before it below, and symmetrically short.
func (s RSINeutralitySignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	rsi := indicators.RSI(ohlcv.Source(s.Source), s.Smooth, s.Period)

	long = core.And(
		core.And(core.Sgt(rsi, core.Neutrality+s.Threshold), core.Sgt(rsi.Shift(1), core.Neutrality)),
		core.And(
			core.Slt(rsi.Shift(2), core.Neutrality),
			core.And(core.Slt(rsi.Shift(3), core.Neutrality), core.Slt(rsi.Shift(4), core.Neutrality)),
		),
	)
	short = core.And(
		core.And(core.Slt(rsi, core.Neutrality-s.Threshold), core.Slt(rsi.Shift(1), core.Neutrality)),
		core.And(
			core.Sgt(rsi.Shift(2), core.Neutrality),
			core.And(core.Sgt(rsi.Shift(3), core.Neutrality), core.Sgt(rsi.Shift(4), core.Neutrality)),
		),
	)
	return
}

// StochExtremeSignal triggers when the stochastic %K line snaps back
// from a hard extreme: the contrarian entry family.
type StochExtremeSignal struct {
	Smooth    core.Smooth
	Period    core.Period
	KPeriod   core.Period
	DPeriod   core.Period
	Threshold core.Scalar
	Source    timeseries.SourceType
}

const (
	stochUpperBarrier = core.Scalar(95)
	stochLowerBarrier = core.Scalar(5)
)

func (s StochExtremeSignal) Lookback() int {
	return maxPeriod(s.Period, s.KPeriod, s.DPeriod)
}

// Trigger fires long once %K lifts out of the lower barrier and short
// once it drops out of the upper.
func (s StochExtremeSignal) Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	k, _ := indicators.StochOsc(
		ohlcv.Source(s.Source), ohlcv.High(), ohlcv.Low(),
		s.Smooth, s.Period, s.KPeriod, s.DPeriod,
	)

	lower := stochLowerBarrier + s.Threshold
	upper := stochUpperBarrier - s.Threshold
	prevK := k.Shift(1)

	long = core.And(core.Sgt(k, lower), core.Slt(prevK, lower))
	short = core.And(core.Slt(k, upper), core.Sgt(prevK, upper))
	return
}

// maxPeriod returns the widest of the given lookbacks.
func maxPeriod(periods ...core.Period) core.Period {
	max := core.Period(0)
	for _, p := range periods {
		if p > max {
			max = p
		}
	}
	return max
}
