package timeseries

import "math"

const buffFactor = 1.3

// TimeSeries is the append-mostly bar store the strategy evaluator reads
// history from. Implementations must keep bars sorted ascending by ts,
// overwrite on duplicate ts, and answer Ohlcv/Ta against the live order.
type TimeSeries interface {
	Add(bar OHLCV)
	NextBar(bar OHLCV) (OHLCV, bool)
	PrevBar(bar OHLCV) (OHLCV, bool)
	Len() int
	Ohlcv(size int) OHLCVSeries
	Ta(bar OHLCV) TechAnalysis
}

// BaseTimeSeries is a ts-keyed, insertion-ordered bar store. New bars are
// pushed to the end and bubbled left ("shift up") until the backing slice
// is ascending by ts again, mirroring a single insertion-sort step rather
// than a full re-sort — the expected case is near-sorted live data, where
// this is O(1) amortized.
type BaseTimeSeries struct {
	index map[int64]int
	data  []OHLCV
}

// NewBaseTimeSeries returns an empty store.
func NewBaseTimeSeries() *BaseTimeSeries {
	return &BaseTimeSeries{index: make(map[int64]int)}
}

func (t *BaseTimeSeries) shiftUp(i int) {
	for i > 0 {
		parent := i - 1
		if t.data[parent].TS <= t.data[i].TS {
			break
		}
		t.data[i], t.data[parent] = t.data[parent], t.data[i]
		t.index[t.data[i].TS] = i
		t.index[t.data[parent].TS] = parent
		i = parent
	}
	t.index[t.data[i].TS] = i
}

// Add inserts bar, overwriting in place if its ts already exists.
func (t *BaseTimeSeries) Add(bar OHLCV) {
	if idx, ok := t.index[bar.TS]; ok {
		t.data[idx] = bar
		return
	}
	idx := len(t.data)
	t.index[bar.TS] = idx
	t.data = append(t.data, bar)
	t.shiftUp(idx)
}

// NextBar returns the bar immediately after bar's ts in store order.
func (t *BaseTimeSeries) NextBar(bar OHLCV) (OHLCV, bool) {
	idx, ok := t.index[bar.TS]
	if !ok || idx+1 >= len(t.data) {
		return OHLCV{}, false
	}
	return t.data[idx+1], true
}

// PrevBar returns the bar immediately before bar's ts in store order.
func (t *BaseTimeSeries) PrevBar(bar OHLCV) (OHLCV, bool) {
	idx, ok := t.index[bar.TS]
	if !ok || idx == 0 {
		return OHLCV{}, false
	}
	return t.data[idx-1], true
}

// Len reports the number of distinct timestamps held.
func (t *BaseTimeSeries) Len() int {
	return len(t.index)
}

// Ohlcv returns a snapshot of the most recent ceil(size*1.3) bars (or the
// whole store if smaller), the extra headroom giving indicators built on
// top enough left-truncated warmup before the bar a caller actually cares
// about.
func (t *BaseTimeSeries) Ohlcv(size int) OHLCVSeries {
	buffSize := int(math.Ceil(float64(size) * buffFactor))
	start := 0
	if t.Len() >= buffSize {
		start = t.Len() - buffSize
	}
	return NewOHLCVSeries(t.data[start:])
}

// Ta computes the fixed 23-field technical snapshot for bar, over the
// end-exclusive window ending at bar's own index (or the store length if
// bar hasn't been added yet).
func (t *BaseTimeSeries) Ta(bar OHLCV) TechAnalysis {
	endIndex, ok := t.index[bar.TS]
	if !ok {
		endIndex = len(t.data)
	}
	maxPeriod := MaxTaPeriod()
	start := 0
	if endIndex > maxPeriod {
		start = endIndex - maxPeriod
	}
	series := NewOHLCVSeries(t.data[start:endIndex])
	return ComputeTechAnalysis(series)
}
