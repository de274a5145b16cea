package timeseries

import (
	"barstream/core"
	"barstream/indicators"
)

// taPeriods and taFactors are the fixed parameter set every TechAnalysis
// snapshot is computed with: {2,14,12,26,9,5,10,1,3,11} and {1.8,0.015}.
var (
	taPeriods = [10]core.Period{2, 14, 12, 26, 9, 5, 10, 1, 3, 11}
	taFactors = [2]core.Scalar{1.8, 0.015}
)

// TechAnalysis is the fixed per-bar technical snapshot: 23 named dense
// vectors over the bounded window ending at the requested bar, missing
// positions flattened to zero.
type TechAnalysis struct {
	Frsi       []core.Scalar
	Srsi       []core.Scalar
	Fma        []core.Scalar
	Sma        []core.Scalar
	Froc       []core.Scalar
	Sroc       []core.Scalar
	Macd       []core.Scalar
	Ppo        []core.Scalar
	Cci        []core.Scalar
	Obv        []core.Scalar
	Vo         []core.Scalar
	Nvol       []core.Scalar
	Mfi        []core.Scalar
	Tr         []core.Scalar
	Gkyz       []core.Scalar
	Yz         []core.Scalar
	Bbp        []core.Scalar
	K          []core.Scalar
	D          []core.Scalar
	Hh         []core.Scalar
	Ll         []core.Scalar
	Support    []core.Scalar
	Resistance []core.Scalar
}

// ComputeTechAnalysis evaluates the fixed indicator set over a bar
// snapshot, field by field against the fixed period/factor table.
func ComputeTechAnalysis(series OHLCVSeries) TechAnalysis {
	open := series.Open()
	high := series.High()
	low := series.Low()
	source := series.Close()
	volume := series.Volume()
	hlc3 := series.Source(SourceHLC3)

	frsi := indicators.RSI(source, core.SmoothSMMA, taPeriods[0])
	srsi := indicators.RSI(source, core.SmoothSMMA, taPeriods[1])
	fma := core.EMA(source, taPeriods[5])
	sma := core.EMA(source, taPeriods[9])
	froc := indicators.ROC(source, taPeriods[4])
	sroc := indicators.ROC(source, taPeriods[1])

	_, _, macdHist := indicators.MACD(source, core.SmoothEMA, taPeriods[2], taPeriods[3], taPeriods[4])
	ppo := indicators.PPO(source, core.SmoothEMA, taPeriods[2], taPeriods[3])
	cci := indicators.CCI(hlc3, core.SmoothSMA, taPeriods[5], taFactors[1])

	obv := indicators.OBV(source, volume)
	vo := indicators.VO(volume, core.SmoothEMA, taPeriods[5], taPeriods[6])
	nvol := indicators.NVOL(volume, core.SmoothSMA, taPeriods[4])
	mfi := indicators.MFI(hlc3, volume, taPeriods[1])

	tr := indicators.TR(high, low, source)
	gkyz := indicators.GKYZ(open, high, low, source, taPeriods[3])
	yz := indicators.YZ(open, high, low, source, taPeriods[3])

	bbp := indicators.BBP(source, core.SmoothSMA, taPeriods[5], taFactors[0])
	k, d := indicators.StochOsc(source, high, low, core.SmoothSMA, taPeriods[1], taPeriods[7], taPeriods[8])

	hh := core.Highest(high, taPeriods[5])
	ll := core.Lowest(low, taPeriods[5])
	support, resistance := indicators.SmoothedPP(high, low, source, core.SmoothSMA, taPeriods[2])

	return TechAnalysis{
		Frsi:       flatten(frsi),
		Srsi:       flatten(srsi),
		Fma:        flatten(fma),
		Sma:        flatten(sma),
		Froc:       flatten(froc),
		Sroc:       flatten(sroc),
		Macd:       flatten(macdHist),
		Ppo:        flatten(ppo),
		Cci:        flatten(cci),
		Obv:        flatten(obv),
		Vo:         flatten(vo),
		Nvol:       flatten(nvol),
		Mfi:        flatten(mfi),
		Tr:         flatten(tr),
		Gkyz:       flatten(gkyz),
		Yz:         flatten(yz),
		Bbp:        flatten(bbp),
		K:          flatten(k),
		D:          flatten(d),
		Hh:         flatten(hh),
		Ll:         flatten(ll),
		Support:    flatten(support),
		Resistance: flatten(resistance),
	}
}

// MaxTaPeriod is the widest lookback any TechAnalysis field needs; the
// store starts its bounded window this many bars before the target.
func MaxTaPeriod() core.Period {
	max := taPeriods[0]
	for _, p := range taPeriods[1:] {
		if p > max {
			max = p
		}
	}
	return max
}

// flatten densifies a Price, mapping missing positions to zero.
func flatten(p core.Price) []core.Scalar {
	return append([]core.Scalar(nil), p.Values()...)
}
