package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barstream/core"
	"barstream/timeseries"
)

// Mock* role implementations exist purely to verify the evaluator's
// lookback-budget computation and composition wiring, independent of any
// real indicator-backed role.

type mockSignal struct{ fastPeriod int }

func (m mockSignal) Lookback() int { return m.fastPeriod }
func (m mockSignal) Trigger(ohlcv timeseries.OHLCVSeries) (core.Rule, core.Rule) {
	n := ohlcv.Len()
	return core.TrueSeries(n), core.FalseSeries(n)
}

type mockConfirm struct{ period int }

func (m mockConfirm) Lookback() int { return m.period }
func (m mockConfirm) Filter(ohlcv timeseries.OHLCVSeries) (core.Rule, core.Rule) {
	n := ohlcv.Len()
	return core.TrueSeries(n), core.FalseSeries(n)
}

type mockPulse struct{ period int }

func (m mockPulse) Lookback() int { return m.period }
func (m mockPulse) Assess(ohlcv timeseries.OHLCVSeries) (core.Rule, core.Rule) {
	n := ohlcv.Len()
	return core.TrueSeries(n), core.TrueSeries(n)
}

type mockBaseLine struct{ period int }

func (m mockBaseLine) Lookback() int { return m.period }
func (m mockBaseLine) Filter(ohlcv timeseries.OHLCVSeries) (core.Rule, core.Rule) {
	n := ohlcv.Len()
	return core.TrueSeries(n), core.FalseSeries(n)
}
func (m mockBaseLine) Close(ohlcv timeseries.OHLCVSeries) (core.Rule, core.Rule) {
	n := ohlcv.Len()
	return core.FalseSeries(n), core.TrueSeries(n)
}

type mockExit struct{}

func (m mockExit) Lookback() int { return 0 }
func (m mockExit) Close(ohlcv timeseries.OHLCVSeries) (core.Rule, core.Rule) {
	n := ohlcv.Len()
	return core.TrueSeries(n), core.FalseSeries(n)
}

func TestBaseStrategyLookback(t *testing.T) {
	s := New(
		timeseries.NewBaseTimeSeries(),
		mockSignal{fastPeriod: 10},
		mockConfirm{period: 1},
		mockPulse{period: 7},
		mockBaseLine{period: 15},
		mockExit{},
	)
	assert.Equal(t, 16, s.Lookback())
}

func TestStrategyIdleBelowLookback(t *testing.T) {
	s := New(
		timeseries.NewBaseTimeSeries(),
		mockSignal{fastPeriod: 20},
		mockConfirm{period: 1},
		mockPulse{period: 1},
		mockBaseLine{period: 1},
		mockExit{},
	)
	action := s.Next(timeseries.OHLCV{TS: 1, Open: 1, High: 1, Low: 1, Close: 1, Volume: 1})
	assert.Equal(t, Idle, action.Kind)
}

func TestStrategyGoLongOnceWarm(t *testing.T) {
	s := New(
		timeseries.NewBaseTimeSeries(),
		mockSignal{fastPeriod: 1},
		mockConfirm{period: 1},
		mockPulse{period: 1},
		mockBaseLine{period: 1},
		mockExit{},
	)
	var action TradeAction
	for i := int64(0); i < int64(s.Lookback()); i++ {
		action = s.Next(timeseries.OHLCV{TS: i, Open: 1, High: 1, Low: 1, Close: core.Scalar(i), Volume: 1})
	}
	assert.Equal(t, GoLong, action.Kind)
}
