package roles

import (
	"barstream/core"
	"barstream/indicators"
	"barstream/timeseries"
)

// VWAPBaseLine gates entries on the bar's position relative to a rolling
// volume-weighted average price: only permit longs below VWAP by at
// least DeviationPct and shorts above it by the same margin, the entry
// filter half of a VWAP mean-reversion strategy. Close fires the
// opposite crossover, flattening once price reverts back through VWAP.
type VWAPBaseLine struct {
	Period       core.Period
	DeviationPct core.Scalar
	Source       timeseries.SourceType
}

func (b VWAPBaseLine) Lookback() int { return b.Period }

func (b VWAPBaseLine) vwap(ohlcv timeseries.OHLCVSeries) (src, vwap core.Price) {
	src = ohlcv.Source(b.Source)
	pv := core.Mul(src, ohlcv.Volume())
	vwap = core.Div(core.Sum(pv, b.Period), core.Sum(ohlcv.Volume(), b.Period))
	return
}

// Filter permits longs once price sits DeviationPct below VWAP and
// shorts once it sits DeviationPct above.
func (b VWAPBaseLine) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	src, vwap := b.vwap(ohlcv)
	dev := core.MulScalar(core.Div(core.Sub(src, vwap), vwap), core.Scale)
	long = core.Slt(dev, -b.DeviationPct)
	short = core.Sgt(dev, b.DeviationPct)
	return
}

// Close fires once price reverts back across VWAP from the side Filter
// admitted it on.
func (b VWAPBaseLine) Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	src, vwap := b.vwap(ohlcv)
	long = core.CrossOver(src, vwap)
	short = core.CrossUnder(src, vwap)
	return
}

// SupertrendBaseLine gates entries on the ATR-trailing trend line's
// side: only permit longs while price sits above the band and shorts
// while below, the regime gate a trend-following strategy overlays on
// top of its own entry signal. Close fires on the band flipping sides.
type SupertrendBaseLine struct {
	Period core.Period
	Factor core.Scalar
}

func (b SupertrendBaseLine) Lookback() int { return b.Period }

func (b SupertrendBaseLine) band(ohlcv timeseries.OHLCVSeries) (close, band core.Price) {
	hl2 := ohlcv.Source(timeseries.SourceHL2)
	close = ohlcv.Close()
	atr := ohlcv.ATR(core.SmoothSMMA, b.Period)
	_, band = indicators.Supertrend(hl2, close, atr, b.Factor)
	return
}

// Filter permits longs while close sits above the trailing band and
// shorts while it sits below.
func (b SupertrendBaseLine) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	close, band := b.band(ohlcv)
	long = core.Gt(close, band)
	short = core.Lt(close, band)
	return
}

// Close fires the moment price crosses back through the trailing band,
// the side flip that ends the regime Filter admitted.
func (b SupertrendBaseLine) Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	close, band := b.band(ohlcv)
	long = core.CrossUnder(close, band)
	short = core.CrossOver(close, band)
	return
}

// MABaseLine gates entries on price's side of a single moving-average
// regime line under any Smooth family, and closes positions when price
// crosses back through it.
type MABaseLine struct {
	Smooth core.Smooth
	Period core.Period
	Source timeseries.SourceType
}

func (b MABaseLine) Lookback() int { return b.Period }

func (b MABaseLine) line(ohlcv timeseries.OHLCVSeries) (src, ma core.Price) {
	src = ohlcv.Source(b.Source)
	ma = core.Apply(src, b.Smooth, b.Period)
	return
}

// Filter permits longs while price holds above the regime line and
// shorts while below.
func (b MABaseLine) Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	src, ma := b.line(ohlcv)
	long = core.Gt(src, ma)
	short = core.Lt(src, ma)
	return
}

// Close fires when price crosses back through the regime line.
func (b MABaseLine) Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	src, ma := b.line(ohlcv)
	long = core.CrossUnder(src, ma)
	short = core.CrossOver(src, ma)
	return
}
