package indicators

import (
	"math"

	"barstream/core"
)

// PP is the classic floor-trader pivot, support and resistance reflected
// around (high+low+close)/3.
func PP(high, low, close core.Price) (support, resistance core.Price) {
	pp := core.DivScalar(core.Add(core.Add(high, low), close), 3)
	support = core.Sub(core.MulScalar(pp, 2), high)
	resistance = core.Sub(core.MulScalar(pp, 2), low)
	return
}

// FibonacciPP offsets the classic pivot by Fibonacci ratios of the day's
// range instead of the raw high/low.
func FibonacciPP(high, low, close core.Price) (support, resistance core.Price) {
	pp := core.DivScalar(core.Add(core.Add(high, low), close), 3)
	hl := core.MulScalar(core.Sub(high, low), 0.382)
	support = core.Sub(pp, hl)
	resistance = core.Add(pp, hl)
	return
}

// WoodiePP weights the pivot toward the open rather than the close.
func WoodiePP(open, high, low core.Price) (support, resistance core.Price) {
	pp := core.DivScalar(core.Add(core.Add(high, low), core.MulScalar(open, 2)), 4)
	support = core.Sub(core.MulScalar(pp, 2), high)
	resistance = core.Sub(core.MulScalar(pp, 2), low)
	return
}

// CamarillaPP derives tight support/resistance bands directly from the
// day's range around the close.
func CamarillaPP(high, low, close core.Price) (support, resistance core.Price) {
	hl := core.MulScalar(core.DivScalar(core.Sub(high, low), 12), 1.1)
	support = core.Sub(close, hl)
	resistance = core.Add(close, hl)
	return
}

// DemarkPP picks one of three pivot formulas depending on whether the bar
// closed above, below, or level with its open.
func DemarkPP(open, high, low, close core.Price) (support, resistance core.Price) {
	upPP := core.Add(core.Add(core.MulScalar(high, 2), low), close)
	evenPP := core.Add(core.Add(high, low), core.MulScalar(close, 2))
	downPP := core.Add(core.Add(high, core.MulScalar(low, 2)), close)

	n := close.Len()
	pp := core.Empty[core.Scalar](n)
	for i := 0; i < n; i++ {
		c, cok := close.At(i)
		o, ook := open.At(i)
		if !cok || !ook {
			continue
		}
		var src core.Price
		switch {
		case c > o:
			src = upPP
		case c < o:
			src = downPP
		default:
			src = evenPP
		}
		if v, ok := src.At(i); ok {
			pp.Set(i, v)
		}
	}

	support = core.Sub(core.MulScalar(pp, 0.5), high)
	resistance = core.Sub(core.MulScalar(pp, 0.5), low)
	return
}

// SmoothedPP builds the classic pivot from the rolling high/low extremes
// and a smoothed close, then reflects the rolling extreme of that pivot
// around them, trading reactivity for stability.
func SmoothedPP(high, low, close core.Price, smooth core.Smooth, period core.Period) (support, resistance core.Price) {
	hh := core.Highest(high, period)
	ll := core.Lowest(low, period)
	smoothedClose := core.Apply(close, smooth, period)

	pp := core.DivScalar(core.Add(core.Add(hh, ll), smoothedClose), 3)

	support = core.Sub(core.MulScalar(core.Lowest(pp, period), 2), hh)
	resistance = core.Sub(core.MulScalar(core.Highest(pp, period), 2), ll)
	return
}

// DMI returns ADX and the +DI/-DI directional lines.
func DMI(high, low, atr core.Price, adxPeriod, diPeriod core.Period) (adx, diPlus, diMinus core.Price) {
	up := core.ChangeF(high, 1)
	down := core.Neg(core.ChangeF(low, 1))

	zero := core.ZeroSeries(high.Len())
	dmPlus := core.Iff(core.And(core.Gt(up, down), core.Sgt(up, 0)), up, zero)
	dmMinus := core.Iff(core.And(core.Gt(down, up), core.Sgt(down, 0)), down, zero)

	diPlus = core.MulScalar(core.Div(core.SMMA(dmPlus, diPeriod), atr), 100)
	diMinus = core.MulScalar(core.Div(core.SMMA(dmMinus, diPeriod), atr), 100)

	sum := core.Add(diPlus, diMinus)
	one := core.OneSeries(high.Len())
	denom := core.Iff(core.Seq(sum, 0), one, sum)

	adx = core.MulScalar(core.SMMA(core.Div(core.Abs(core.Sub(diPlus, diMinus)), denom), adxPeriod), 100)
	return
}

// Supertrend is the ATR-trailing trend line that flips sides when price
// closes through its own latched band: the lower band ratchets up under
// price while the trend is long, the upper band ratchets down over price
// while short. Direction is +1 riding the lower band and -1 the upper;
// the returned trendline is whichever band the trend currently rides.
func Supertrend(hl2, close, atr core.Price, factor core.Scalar) (direction, trendline core.Price) {
	n := close.Len()
	band := core.MulScalar(atr, factor)
	upperBand := core.Add(hl2, band)
	lowerBand := core.Sub(hl2, band)

	direction = core.Empty[core.Scalar](n)
	trendline = core.Empty[core.Scalar](n)

	var fub, flb, dir, prevClose core.Scalar
	latched := false
	for i := 0; i < n; i++ {
		ub, ubok := upperBand.At(i)
		lb, lbok := lowerBand.At(i)
		c, cok := close.At(i)
		if !ubok || !lbok || !cok {
			continue
		}
		if !latched {
			fub, flb = ub, lb
			if c < flb {
				dir = -1
			} else {
				dir = 1
			}
		} else {
			if ub < fub || prevClose > fub {
				fub = ub
			}
			if lb > flb || prevClose < flb {
				flb = lb
			}
			if dir > 0 && c < flb {
				dir = -1
			} else if dir < 0 && c > fub {
				dir = 1
			}
		}
		direction.Set(i, dir)
		if dir > 0 {
			trendline.Set(i, flb)
		} else {
			trendline.Set(i, fub)
		}
		prevClose = c
		latched = true
	}
	return
}

// AST is the adaptive supertrend: an ATR band latched bar-by-bar against
// the previous trend value, with a latched direction line.
func AST(close, atr core.Price, factor core.Scalar) (direction, trend core.Price) {
	n := close.Len()
	atrMulti := core.MulScalar(atr, factor)
	up := core.Sub(close, atrMulti)
	dn := core.Add(close, atrMulti)

	trend = core.Empty[core.Scalar](n)
	var prevTrend, prevClose core.Scalar
	havePrev := false
	for i := 0; i < n; i++ {
		c, cok := close.At(i)
		dnV, dnOK := dn.At(i)
		upV, upOK := up.At(i)
		if !cok || !dnOK || !upOK {
			continue
		}
		var t core.Scalar
		if !havePrev {
			t = dnV
		} else {
			if c > prevTrend {
				t = upV
			} else {
				t = dnV
			}
			if c < prevTrend && prevClose < prevTrend {
				t = prevTrend
				if dnV < t {
					t = dnV
				}
			}
			if c > prevTrend && prevClose > prevTrend {
				t = prevTrend
				if upV > t {
					t = upV
				}
			}
		}
		trend.Set(i, t)
		prevTrend, prevClose = t, c
		havePrev = true
	}

	direction = latchDirection(close, trend)
	return
}

// latchDirection walks close against the previous trend value and holds
// +1/-1 from the most recent cross, 0 before the first.
func latchDirection(close, trend core.Price) core.Price {
	n := close.Len()
	direction := core.Empty[core.Scalar](n)
	prevTrend := trend.Shift(1)
	prevClose := close.Shift(1)

	var dir core.Scalar
	for i := 0; i < n; i++ {
		c, cok := close.At(i)
		pc, pcok := prevClose.At(i)
		pt, ptok := prevTrend.At(i)
		if cok && pcok && ptok {
			if pc > pt && c < pt {
				dir = -1
			} else if pc < pt && c > pt {
				dir = 1
			}
		}
		direction.Set(i, dir)
	}
	return direction
}

// CAMA is Chande's adaptive moving average: an exponential recurrence
// whose alpha is the ratio of the rolling high-low range to the summed
// true range.
func CAMA(source, high, low, tr core.Price, period core.Period) core.Price {
	hh := core.Highest(high, period)
	ll := core.Lowest(low, period)
	alpha := core.Div(core.Sub(hh, ll), core.Sum(tr, period))
	return core.Ew(source, alpha, source)
}

// CHOP is the choppiness index: how range-bound the last period bars are,
// 100 at pure chop and 0 in a straight-line trend.
func CHOP(high, low, atr core.Price, period core.Period) core.Price {
	ratio := core.Div(core.Sum(atr, period), core.Sub(core.Highest(high, period), core.Lowest(low, period)))
	scale := core.Scale / core.Scalar(math.Log10(float64(period)))
	return core.MulScalar(core.Log10(ratio), scale)
}

// FRAMA is the fractal adaptive moving average: an exponential recurrence
// whose alpha follows the estimated fractal dimension of the price path,
// falling back to a plain EMA alpha while the dimension is undefined.
func FRAMA(high, low, close core.Price, period core.Period) core.Price {
	hh1 := core.Highest(high, 2*period).Shift(int(period))
	ll1 := core.Lowest(low, 2*period).Shift(int(period))
	n1 := core.DivScalar(core.Sub(hh1, ll1), core.Scalar(period))

	hh2 := core.Highest(high, period)
	ll2 := core.Lowest(low, period)
	n2 := core.DivScalar(core.Sub(hh2, ll2), core.Scalar(period))

	hh3 := core.Max(hh1, hh2)
	ll3 := core.Min(ll1, ll2)
	n3 := core.DivScalar(core.Sub(hh3, ll3), 2*core.Scalar(period))

	ln2 := core.Scalar(math.Ln2)
	d := core.DivScalar(core.Sub(core.Log(core.Add(n1, n2)), core.Log(n3)), ln2)

	fallback := core.Fill(2/(core.Scalar(period)+1), close.Len())
	alpha := core.Iff(core.Na(d), fallback, core.Exp(core.MulScalar(core.SubScalar(d, 1), -4.6)))

	return core.Ew(close, alpha, close)
}

// ZLSMA is the zero-lag least-squares moving average: the regression fit
// reflected through its own second fit to cancel lag.
func ZLSMA(source core.Price, period core.Period) core.Price {
	lsma := core.LSMA(source, period)
	return core.Sub(core.MulScalar(lsma, 2), core.LSMA(lsma, period))
}
