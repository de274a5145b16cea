// Package strategy implements the role contracts and the evaluator that
// composes their outputs into a single trade decision per bar.
package strategy

import (
	"barstream/core"
	"barstream/timeseries"
)

// Signal detects edge-like entries: a (go_long, go_short) Rule pair.
type Signal interface {
	Lookback() int
	Trigger(ohlcv timeseries.OHLCVSeries) (long, short core.Rule)
}

// Confirm gates an entry: the rule for the entry's side must hold at the
// bar for it to pass.
type Confirm interface {
	Lookback() int
	Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule)
}

// Pulse stacks an additional momentum/volatility gate alongside Confirm.
type Pulse interface {
	Lookback() int
	Assess(ohlcv timeseries.OHLCVSeries) (long, short core.Rule)
}

// BaseLine is the trend-regime gate; it also emits its own close predicate.
type BaseLine interface {
	Lookback() int
	Filter(ohlcv timeseries.OHLCVSeries) (long, short core.Rule)
	Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule)
}

// Exit is the position-closing predicate, independent of BaseLine's own.
type Exit interface {
	Lookback() int
	Close(ohlcv timeseries.OHLCVSeries) (long, short core.Rule)
}
