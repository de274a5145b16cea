package ingest

import (
	"fmt"
	"log"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"

	"barstream/core"
	"barstream/timeseries"
)

// AlpacaFeed fetches historical daily bars and the current position
// size for a symbol from Alpaca's trading and market-data APIs, the
// same pair of clients a day-bar strategy warms up from before it
// starts evaluating live ticks.
type AlpacaFeed struct {
	Symbol string

	trading *alpaca.Client
	data    *marketdata.Client
	logger  *log.Logger
}

// NewAlpacaFeed builds a feed bound to symbol using cfg's credentials.
func NewAlpacaFeed(cfg Config, symbol string) *AlpacaFeed {
	return &AlpacaFeed{
		Symbol: symbol,
		trading: alpaca.NewClient(alpaca.ClientOpts{
			APIKey:    cfg.APIKey,
			APISecret: cfg.APISecret,
			BaseURL:   cfg.BaseURL,
		}),
		data: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    cfg.APIKey,
			APISecret: cfg.APISecret,
		}),
		logger: newLogger("ALPACA"),
	}
}

// LoadHistory fetches up to lookback daily bars ending now and converts
// them into the plain OHLCV values the strategy evaluator consumes.
func (f *AlpacaFeed) LoadHistory(lookback int) ([]timeseries.OHLCV, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -(lookback * 2))

	req := marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
		End:       end,
		PageLimit: lookback * 2,
	}

	bars, err := f.data.GetBars(f.Symbol, req)
	if err != nil {
		return nil, fmt.Errorf("ingest: fetch historical bars for %s: %w", f.Symbol, err)
	}

	out := make([]timeseries.OHLCV, len(bars))
	for i, b := range bars {
		out[i] = timeseries.OHLCV{
			TS:     b.Timestamp.Unix(),
			Open:   core.Scalar(b.Open),
			High:   core.Scalar(b.High),
			Low:    core.Scalar(b.Low),
			Close:  core.Scalar(b.Close),
			Volume: core.Scalar(b.Volume),
		}
	}
	if len(out) > lookback {
		out = out[len(out)-lookback:]
	}
	f.logger.Printf("loaded %d historical bars for %s", len(out), f.Symbol)
	return out, nil
}

// PositionQty reports the current signed position size for the feed's
// symbol as a decimal: positive long, negative short, zero flat. A
// flat symbol with no open position is not an error.
func (f *AlpacaFeed) PositionQty() (decimal.Decimal, error) {
	positions, err := f.trading.GetPositions()
	if err != nil {
		return decimal.Zero, fmt.Errorf("ingest: fetch positions: %w", err)
	}
	for _, pos := range positions {
		if pos.Symbol == f.Symbol {
			return pos.Qty, nil
		}
	}
	return decimal.Zero, nil
}
