package roles

import (
	"barstream/core"
	"barstream/indicators"
	"barstream/timeseries"
)

// ChandelierExit closes a position once price trades back through its
// own ATR-trailing stop: the long stop trails below the rolling high,
// the short stop trails above the rolling low, both offset by Factor
// multiples of ATR.
type ChandelierExit struct {
	Period core.Period
	Factor core.Scalar
}

func (e ChandelierExit) Lookback() int { return e.Period }

// Close fires long-exit once close drops through the long stop and
// short-exit once it rises through the short stop.
func (e ChandelierExit) Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	high, low, close := ohlcv.High(), ohlcv.Low(), ohlcv.Close()
	longStop := indicators.ChandelierExit(high, low, close, e.Period, e.Factor, true)
	shortStop := indicators.ChandelierExit(high, low, close, e.Period, e.Factor, false)
	long = core.CrossUnder(close, longStop)
	short = core.CrossOver(close, shortStop)
	return
}

// CCIExit closes positions once CCI retreats from its overbought or
// oversold band back toward the midline.
type CCIExit struct {
	Smooth    core.Smooth
	Period    core.Period
	Factor    core.Scalar
	Threshold core.Scalar
	Source    timeseries.SourceType
}

const (
	cciOverbought = core.Scalar(100)
	cciOversold   = core.Scalar(-100)
)

func (e CCIExit) Lookback() int { return e.Period }

// Close fires long-exit when CCI drops back through its upper bound and
// short-exit when it rises back through its lower bound.
func (e CCIExit) Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	cci := indicators.CCI(ohlcv.Source(e.Source), e.Smooth, e.Period, e.Factor)
	long = core.CrossUnderScalar(cci, cciOverbought-e.Threshold)
	short = core.CrossOverScalar(cci, cciOversold+e.Threshold)
	return
}

// RexExit closes positions when the REX oscillator crosses its own
// smoothed signal line against the position.
type RexExit struct {
	Smooth       core.Smooth
	Period       core.Period
	SmoothSignal core.Smooth
	PeriodSignal core.Period
	Source       timeseries.SourceType
}

func (e RexExit) Lookback() int { return maxPeriod(e.Period, e.PeriodSignal) }

// Close fires long-exit on REX crossing under its signal line and
// short-exit on crossing over.
func (e RexExit) Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	rex := indicators.REX(
		ohlcv.Source(e.Source), ohlcv.Open(), ohlcv.High(), ohlcv.Low(),
		e.Smooth, e.Period,
	)
	signal := core.Apply(rex, e.SmoothSignal, e.PeriodSignal)
	long = core.CrossUnder(rex, signal)
	short = core.CrossOver(rex, signal)
	return
}

// TrixExit closes positions when the TRIX oscillator crosses its own
// signal line against the position.
type TrixExit struct {
	Smooth       core.Smooth
	Period       core.Period
	PeriodSignal core.Period
	Source       timeseries.SourceType
}

func (e TrixExit) Lookback() int { return maxPeriod(e.Period, e.PeriodSignal) }

// Close fires long-exit on TRIX crossing under its signal line and
// short-exit on crossing over.
func (e TrixExit) Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	trix := indicators.TRIX(ohlcv.Source(e.Source), e.Smooth, e.Period)
	signal := core.Apply(trix, e.Smooth, e.PeriodSignal)
	long = core.CrossUnder(trix, signal)
	short = core.CrossOver(trix, signal)
	return
}
