package strategy

import (
	"log"
	"math"

	"barstream/core"
	"barstream/timeseries"
)

const minLookback = 16

// Strategy combines one role of each family with a bar store and emits
// a TradeAction for each incoming bar. It is single-threaded and synchronous:
// Next runs to completion with no suspension points.
type Strategy struct {
	store    timeseries.TimeSeries
	signal   Signal
	confirm  Confirm
	pulse    Pulse
	baseline BaseLine
	exit     Exit
	lookback int
	logger   *log.Logger
}

// New builds a Strategy from already-constructed role objects. The
// lookback budget is the max of every role's own lookback and 16.
func New(store timeseries.TimeSeries, signal Signal, confirm Confirm, pulse Pulse, baseline BaseLine, exit Exit) *Strategy {
	lookback := minLookback
	for _, l := range []int{signal.Lookback(), confirm.Lookback(), pulse.Lookback(), baseline.Lookback(), exit.Lookback()} {
		if l > lookback {
			lookback = l
		}
	}
	return &Strategy{
		store:    store,
		signal:   signal,
		confirm:  confirm,
		pulse:    pulse,
		baseline: baseline,
		exit:     exit,
		lookback: lookback,
		logger:   log.New(log.Writer(), "[STRATEGY] ", log.LstdFlags),
	}
}

// Lookback reports the evaluator's warm-up budget in bars.
func (s *Strategy) Lookback() int {
	return s.lookback
}

// Next pushes bar into the store and evaluates the composite rule
// algebra at its index, returning a single TradeAction.
func (s *Strategy) Next(bar timeseries.OHLCV) TradeAction {
	s.store.Add(bar)

	if s.store.Len() < s.lookback {
		return TradeAction{Kind: Idle}
	}

	ohlcv := s.store.Ohlcv(s.lookback)
	i := ohlcv.BarIndex(bar)

	sigL, sigS := s.signal.Trigger(ohlcv)
	blLF, blSF := s.baseline.Filter(ohlcv)
	cfL, cfS := s.confirm.Filter(ohlcv)
	plL, plS := s.pulse.Assess(ohlcv)
	exL, exS := s.exit.Close(ohlcv)
	blLC, blSC := s.baseline.Close(ohlcv)

	confirmLong := core.And(cfL, plL)
	confirmShort := core.And(cfS, plS)

	goLong := core.And(core.And(sigL, blLF), confirmLong)
	goShort := core.And(core.And(sigS, blSF), confirmShort)
	exitLong := core.Or(exL, blLC)
	exitShort := core.Or(exS, blSC)

	price := core.Scalar(math.NaN())
	if i >= 0 && i < ohlcv.Len() {
		if v, ok := ohlcv.Close().At(i); ok {
			price = v
		}
	}

	switch {
	case sampleAt(goLong, i):
		return TradeAction{Kind: GoLong, Price: price}
	case sampleAt(goShort, i):
		return TradeAction{Kind: GoShort, Price: price}
	case sampleAt(exitLong, i):
		return TradeAction{Kind: ExitLong, Price: price}
	case sampleAt(exitShort, i):
		return TradeAction{Kind: ExitShort, Price: price}
	default:
		return TradeAction{Kind: Idle}
	}
}

// sampleAt reads a Rule at i, treating a missing position or an
// out-of-range index as false.
func sampleAt(rule core.Rule, i int) bool {
	if i < 0 || i >= rule.Len() {
		return false
	}
	v, ok := rule.At(i)
	return ok && v
}
