package indicators

import "barstream/core"

// OBV is on-balance volume: a running total of volume signed by the
// direction of the source's change.
func OBV(source, volume core.Price) core.Price {
	signed := core.Mul(core.Sign(core.ChangeF(source, 1)), volume)
	return core.Cumsum(signed)
}

// VO is the percentage volume oscillator: the spread between a fast and
// slow EMA of volume, expressed relative to the slow line.
func VO(volume core.Price, smooth core.Smooth, fast, slow core.Period) core.Price {
	return core.SpreadPct(volume, smooth, fast, slow)
}

// NVOL is normalized volume: the current bar's volume relative to its own
// moving average, scaled to 100 at parity.
func NVOL(volume core.Price, smooth core.Smooth, period core.Period) core.Price {
	return core.MulScalar(core.Div(volume, core.Apply(volume, smooth, period)), core.Scale)
}

// MFI is the money flow index: an RSI-style oscillator built on typical-
// price-weighted volume instead of price alone.
func MFI(typicalPrice, volume core.Price, period core.Period) core.Price {
	changes := core.ChangeF(typicalPrice, 1)
	volumeTP := core.Mul(volume, typicalPrice)

	positive := core.MulRule(core.Sgt(changes, 0), volumeTP)
	negative := core.MulRule(core.Slt(changes, 0), volumeTP)

	upper := core.Sum(positive, period)
	lower := core.Sum(negative, period)

	moneyRatio := core.Div(upper, lower)

	return core.FMap(moneyRatio, func(ratio core.Scalar, ok bool) (core.Scalar, bool) {
		if !ok {
			return 50, true
		}
		return 100 - 100/(1+ratio), true
	})
}

// CMF is the Chaikin money flow: the sum of close-location-weighted volume
// over period, normalized by total volume. A bar whose high equals its low
// contributes zero money flow volume rather than dividing by a zero range.
func CMF(high, low, close, volume core.Price, period core.Period) core.Price {
	flat := core.Or(core.And(core.Eq(close, high), core.Eq(close, low)), core.Eq(high, low))
	mfv := core.Iff(flat, core.ZeroSeries(close.Len()),
		core.Mul(core.Div(core.Sub(core.Sub(core.MulScalar(close, 2), low), high), core.Sub(high, low)), volume))

	return core.Div(core.Sum(mfv, period), core.Sum(volume, period))
}

// VWAP is the cumulative volume-weighted average price anchored at the
// start of the snapshot.
func VWAP(hlc3, volume core.Price) core.Price {
	return core.Div(core.Cumsum(core.Mul(hlc3, volume)), core.Cumsum(volume))
}

// EOM is Arms' ease of movement: the bar's price change scaled by its
// range-per-volume, smoothed over period.
func EOM(hl2, high, low, volume core.Price, period core.Period, divisor core.Scalar) core.Price {
	boxRatio := core.Div(core.Sub(high, low), volume)
	term := core.MulScalar(core.Mul(core.ChangeF(hl2, 1), boxRatio), divisor)
	return core.MA(term, period)
}
