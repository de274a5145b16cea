// Package timeseries implements the bar-indexed store and the per-bar
// snapshot view the strategy evaluator and indicator library read from.
package timeseries

import (
	"fmt"
	"strings"

	"barstream/core"
	"barstream/indicators"
)

// OHLCV is a single timestamped bar.
type OHLCV struct {
	TS     int64
	Open   core.Scalar
	High   core.Scalar
	Low    core.Scalar
	Close  core.Scalar
	Volume core.Scalar
}

func (b OHLCV) String() string {
	return fmt.Sprintf("OHLCV { ts: %d, open: %v, high: %v, low: %v, close: %v, volume: %v }",
		b.TS, b.Open, b.High, b.Low, b.Close, b.Volume)
}

// SourceType names a derived price line an indicator or role can request
// instead of always reading Close.
type SourceType int

const (
	SourceOpen SourceType = iota
	SourceHigh
	SourceLow
	SourceClose
	SourceHL2
	SourceHLC3
	SourceOHLC4
	SourceHLCC4
)

// OHLCVSeries is a columnar, aligned snapshot of a bar range plus the
// derived SourceType projections indicators read from.
type OHLCVSeries struct {
	ts     []int64
	open   core.Price
	high   core.Price
	low    core.Price
	close  core.Price
	volume core.Price
}

// NewOHLCVSeries builds a columnar snapshot from a contiguous bar slice.
func NewOHLCVSeries(bars []OHLCV) OHLCVSeries {
	n := len(bars)
	ts := make([]int64, n)
	open := make([]core.Scalar, n)
	high := make([]core.Scalar, n)
	low := make([]core.Scalar, n)
	cls := make([]core.Scalar, n)
	vol := make([]core.Scalar, n)
	for i, b := range bars {
		ts[i] = b.TS
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		cls[i] = b.Close
		vol[i] = b.Volume
	}
	return OHLCVSeries{
		ts:     ts,
		open:   core.NewPrice(open...),
		high:   core.NewPrice(high...),
		low:    core.NewPrice(low...),
		close:  core.NewPrice(cls...),
		volume: core.NewPrice(vol...),
	}
}

func (s OHLCVSeries) Open() core.Price   { return s.open }
func (s OHLCVSeries) High() core.Price   { return s.high }
func (s OHLCVSeries) Low() core.Price    { return s.low }
func (s OHLCVSeries) Close() core.Price  { return s.close }
func (s OHLCVSeries) Volume() core.Price { return s.volume }

// Len reports the number of bars in the snapshot.
func (s OHLCVSeries) Len() int {
	return s.close.Len()
}

// TR returns the true range series for this snapshot.
func (s OHLCVSeries) TR() core.Price {
	return indicators.TR(s.high, s.low, s.close)
}

// ATR returns the average true range for this snapshot under the
// requested smoother.
func (s OHLCVSeries) ATR(smooth core.Smooth, period core.Period) core.Price {
	return indicators.ATR(s.high, s.low, s.close, smooth, period)
}

// BarIndex binary-searches the snapshot's ascending timestamps for bar's
// ts, returning Len() on a miss (matching the reference's unwrap_or(len)).
func (s OHLCVSeries) BarIndex(bar OHLCV) int {
	lo, hi := 0, len(s.ts)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.ts[mid] < bar.TS {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.ts) && s.ts[lo] == bar.TS {
		return lo
	}
	return s.Len()
}

// Source returns the requested derived price line.
func (s OHLCVSeries) Source(kind SourceType) core.Price {
	switch kind {
	case SourceOpen:
		return s.open
	case SourceHigh:
		return s.high
	case SourceLow:
		return s.low
	case SourceClose:
		return s.close
	case SourceHL2:
		return core.DivScalar(core.Add(s.high, s.low), 2)
	case SourceHLC3:
		return core.DivScalar(core.Add(core.Add(s.high, s.low), s.close), 3)
	case SourceOHLC4:
		return core.DivScalar(core.Add(core.Add(s.open, s.high), core.Add(s.low, s.close)), 4)
	case SourceHLCC4:
		return core.DivScalar(core.Add(core.Add(s.high, s.low), core.Add(s.close, s.close)), 4)
	default:
		return s.close
	}
}

// String renders a fixed-width table, matching the reference's Display
// impl, useful for CLI debugging.
func (s OHLCVSeries) String() string {
	var b strings.Builder
	b.WriteString("OHLCV:\n")
	b.WriteString("Index | Timestamp | Open   | High   | Low    | Close  | Volume\n")
	b.WriteString("------------------------------------------------------------\n")
	cell := func(p core.Price, i int) string {
		if v, ok := p.At(i); ok {
			return fmt.Sprintf("%v", v)
		}
		return "None"
	}
	for i := 0; i < s.Len(); i++ {
		fmt.Fprintf(&b, "%-5d | %-10d | %-8s | %-8s | %-8s | %-8s | %-8s\n",
			i, s.ts[i], cell(s.open, i), cell(s.high, i), cell(s.low, i), cell(s.close, i), cell(s.volume, i))
	}
	return b.String()
}
