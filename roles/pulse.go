package roles

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"barstream/core"
	"barstream/indicators"
	"barstream/timeseries"
)

// MomentumPulse stacks a minimum-momentum gate alongside Confirm: a
// rotation strategy only rotates into assets whose rate of change clears
// MinMomentum, generalized here from a cross-sectional basket ranking to
// a single instrument's own ROC.
type MomentumPulse struct {
	Period      core.Period
	MinMomentum core.Scalar
	Source      timeseries.SourceType
}

func (p MomentumPulse) Lookback() int { return p.Period }

// Assess permits longs once ROC clears MinMomentum and shorts once it
// falls below -MinMomentum.
func (p MomentumPulse) Assess(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	roc := indicators.ROC(ohlcv.Source(p.Source), p.Period)
	long = core.Sgt(roc, p.MinMomentum)
	short = core.Slt(roc, -p.MinMomentum)
	return
}

// ONNXFeatures is the fixed six-feature vector an ONNXPulse model reads,
// one row per bar in the window: RSI, MACD histogram, Bollinger %B,
// normalized volume, rate of change, and true range — the same feature
// set a neural predictive strategy extracts before inference.
type ONNXFeatures struct {
	RSI      core.Period
	MACD     [3]core.Period // fast, slow, signal
	BB       core.Period
	BBFactor core.Scalar
	Vol      core.Period
	ROC      core.Period
}

// ONNXPulse wraps a loaded ONNX Runtime session and turns its output
// probability into a (long, short) rule pair, gating entries on model
// confidence the way a predictive strategy gates on BuyThreshold/
// SellThreshold. The session is long-lived: callers build one ONNXPulse
// per strategy instance and reuse it across bars.
type ONNXPulse struct {
	Session       *ort.DynamicAdvancedSession
	SequenceLen   int
	Features      ONNXFeatures
	BuyThreshold  core.Scalar
	SellThreshold core.Scalar
	Source        timeseries.SourceType
}

func (p ONNXPulse) Lookback() int {
	return p.SequenceLen + p.Features.MACD[1]
}

// featureMatrix builds the [sequence][feature] input the model expects
// from the raw OHLCV snapshot, flattening the window's last SequenceLen
// bars into row-major float32 order.
func (p ONNXPulse) featureMatrix(ohlcv timeseries.OHLCVSeries) []float32 {
	src := ohlcv.Source(p.Source)
	rsi := indicators.RSI(src, core.SmoothSMMA, p.Features.RSI)
	_, _, hist := indicators.MACD(src, core.SmoothEMA, p.Features.MACD[0], p.Features.MACD[1], p.Features.MACD[2])
	bbp := indicators.BBP(src, core.SmoothSMA, p.Features.BB, p.Features.BBFactor)
	nvol := indicators.NVOL(ohlcv.Volume(), core.SmoothSMA, p.Features.Vol)
	roc := indicators.ROC(src, p.Features.ROC)
	tr := ohlcv.TR()

	n := ohlcv.Len()
	start := n - p.SequenceLen
	if start < 0 {
		start = 0
	}
	out := make([]float32, 0, p.SequenceLen*6)
	read := func(s core.Price, i int) float32 {
		if v, ok := s.At(i); ok {
			return v
		}
		return 0
	}
	for i := start; i < n; i++ {
		out = append(out, read(rsi, i), read(hist, i), read(bbp, i), read(nvol, i), read(roc, i), read(tr, i))
	}
	return out
}

// Assess runs the loaded ONNX session over the window's feature matrix
// and thresholds the resulting probability into long/short permission at
// the snapshot's final position; every earlier position stays invalid,
// mirroring the reference strategy's single-step-ahead inference.
func (p ONNXPulse) Assess(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	n := ohlcv.Len()
	long = core.Empty[bool](n)
	short = core.Empty[bool](n)
	if p.Session == nil || n == 0 || n < p.SequenceLen {
		return
	}

	features := p.featureMatrix(ohlcv)
	inputShape := []int64{1, int64(p.SequenceLen), 6}
	inputTensor, err := ort.NewTensor(inputShape, features)
	if err != nil {
		return
	}
	defer inputTensor.Destroy()

	outputShape := []int64{1, 1}
	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		return
	}
	defer outputTensor.Destroy()

	if err := p.Session.Run([]ort.Value{inputTensor}, []ort.Value{outputTensor}); err != nil {
		return
	}

	probs := outputTensor.GetData()
	if len(probs) == 0 {
		return
	}
	prob := core.Scalar(probs[0])

	last := n - 1
	if prob >= p.BuyThreshold {
		long.Set(last, true)
	}
	if prob <= p.SellThreshold {
		short.Set(last, true)
	}
	return
}

// LoadONNXSession opens an ONNX model file and returns a session wired
// for the single-input/single-output shape ONNXPulse expects, matching
// the reference strategy's model-loading sequence.
func LoadONNXSession(modelPath string) (*ort.DynamicAdvancedSession, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx runtime: %w", err)
	}
	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create onnx session options: %w", err)
	}
	defer options.Destroy()
	options.SetGraphOptimizationLevel(1)

	session, err := ort.NewDynamicAdvancedSession(modelPath, []string{"input"}, []string{"output"}, options)
	if err != nil {
		return nil, fmt.Errorf("create onnx session: %w", err)
	}
	return session, nil
}

// ADXPulse gates entries on trend strength: ADX must clear the classic
// 25 trend floor (plus threshold) and still be rising. Both directions
// share the gate; ADX carries no sign of its own.
type ADXPulse struct {
	ADXPeriod core.Period
	DIPeriod  core.Period
	Threshold core.Scalar
}

const adxTrend = core.Scalar(25)

func (p ADXPulse) Lookback() int {
	return maxPeriod(p.ADXPeriod, p.DIPeriod)
}

// Assess permits both directions while ADX is above the floor and rising.
func (p ADXPulse) Assess(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	adx, _, _ := indicators.DMI(
		ohlcv.High(), ohlcv.Low(),
		ohlcv.ATR(core.SmoothSMMA, p.DIPeriod),
		p.ADXPeriod, p.DIPeriod,
	)
	gate := core.And(core.Sgt(adx, adxTrend+p.Threshold), core.Gt(adx, adx.Shift(1)))
	return gate, gate
}

// SqueezePulse gates entries on a volatility squeeze release: the
// Bollinger bands must sit outside the Keltner channel, the expansion
// that follows a compression.
type SqueezePulse struct {
	Smooth    core.Smooth
	Period    core.Period
	SmoothATR core.Smooth
	PeriodATR core.Period
	FactorBB  core.Scalar
	FactorKCH core.Scalar
	Source    timeseries.SourceType
}

func (p SqueezePulse) Lookback() int {
	return maxPeriod(p.Period, p.PeriodATR)
}

// Assess permits both directions while the Bollinger bands envelop the
// Keltner channel.
func (p SqueezePulse) Assess(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	src := ohlcv.Source(p.Source)

	upBB, _, lowBB := indicators.BBands(src, p.Smooth, p.Period, p.FactorBB)
	upKCH, _, lowKCH := indicators.Keltner(
		src, ohlcv.ATR(p.SmoothATR, p.PeriodATR),
		p.Smooth, p.Period, p.FactorKCH,
	)

	gate := core.And(core.Gt(upBB, upKCH), core.Lt(lowBB, lowKCH))
	return gate, gate
}

// TDFIPulse gates entries on the trend direction force index clearing a
// symmetric threshold around zero.
type TDFIPulse struct {
	Smooth    core.Smooth
	Period    core.Period
	N         int
	Threshold core.Scalar
	Source    timeseries.SourceType
}

func (p TDFIPulse) Lookback() int { return p.Period * core.Period(p.N) }

// Assess permits longs while force is above +threshold and shorts while
// below -threshold.
func (p TDFIPulse) Assess(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	tdfi := indicators.TDFI(ohlcv.Source(p.Source), p.Smooth, p.Period, p.N)
	long = core.Sgt(tdfi, p.Threshold)
	short = core.Slt(tdfi, -p.Threshold)
	return
}

// CHOPPulse gates entries on the market not being range-bound: the
// choppiness index must sit below its threshold.
type CHOPPulse struct {
	ATRPeriod core.Period
	Period    core.Period
	Threshold core.Scalar
}

func (p CHOPPulse) Lookback() int {
	return maxPeriod(p.ATRPeriod, p.Period)
}

// Assess permits both directions while choppiness reads trending.
func (p CHOPPulse) Assess(ohlcv timeseries.OHLCVSeries) (long, short core.Rule) {
	chop := indicators.CHOP(
		ohlcv.High(), ohlcv.Low(),
		ohlcv.ATR(core.SmoothSMMA, p.ATRPeriod),
		p.Period,
	)
	gate := core.Slt(chop, p.Threshold)
	return gate, gate
}
