// Command barstream wires a live Alpaca bar feed into a composed
// strategy and publishes its trade decisions over ZeroMQ, the same
// ingest -> evaluate -> publish shape a strategy runner drives, minus
// the order-execution step: this process only decides and announces.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barstream/core"
	"barstream/ingest"
	"barstream/publish"
	"barstream/roles"
	"barstream/strategy"
	"barstream/timeseries"
)

func main() {
	symbol := flag.String("symbol", "AAPL", "ticker symbol to stream and evaluate")
	zmqEndpoint := flag.String("zmq", "ipc:///tmp/barstream_orders.ipc", "ZeroMQ PUB endpoint for order signals")
	flag.Parse()

	logger := log.New(log.Writer(), "[BARSTREAM] ", log.LstdFlags)

	cfg, err := ingest.LoadConfig()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	strat := buildStrategy()

	feed := ingest.NewAlpacaFeed(cfg, *symbol)
	history, err := feed.LoadHistory(strat.Lookback())
	if err != nil {
		logger.Fatalf("load history: %v", err)
	}
	for _, bar := range history {
		strat.Next(bar)
	}
	logger.Printf("warmed up on %d historical bars", len(history))

	publisher, err := publish.NewZMQPublisher(*zmqEndpoint)
	if err != nil {
		logger.Fatalf("start publisher: %v", err)
	}
	defer publisher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := ingest.NewStreamFeed(cfg, func(bar timeseries.OHLCV) {
		action := strat.Next(bar)
		if err := publisher.Publish(*symbol, bar.TS, action); err != nil {
			logger.Printf("publish error: %v", err)
		}
	})
	if err := stream.Connect(ctx, []string{*symbol}); err != nil {
		logger.Fatalf("connect stream: %v", err)
	}
	defer stream.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Println("shutdown signal received")

	cancel()
	time.Sleep(time.Second)
}

// buildStrategy composes one role of each family into a Strategy
// instance. Parameters are fixed here; a host wanting configurable
// strategies should build its own composition and drive
// registry.Registry directly instead of this binary.
func buildStrategy() *strategy.Strategy {
	return strategy.New(
		timeseries.NewBaseTimeSeries(),
		roles.MACrossSignal{Smooth: core.SmoothEMA, Fast: 12, Slow: 26, Source: timeseries.SourceClose},
		roles.MACDSignalLineConfirm{Smooth: core.SmoothEMA, Fast: 12, Slow: 26, Signal: 9, Source: timeseries.SourceClose},
		roles.MomentumPulse{Period: 10, MinMomentum: 0.5, Source: timeseries.SourceClose},
		roles.SupertrendBaseLine{Period: 10, Factor: 3},
		roles.ChandelierExit{Period: 22, Factor: 3},
	)
}
