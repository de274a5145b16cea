package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"barstream/core"
	"barstream/timeseries"
)

// streamBar is the wire shape of a minute-bar message on Alpaca's
// market-data websocket; only the fields OHLCV needs are kept.
type streamBar struct {
	Type      string    `json:"T"`
	Symbol    string    `json:"S"`
	Open      float64   `json:"o"`
	High      float64   `json:"h"`
	Low       float64   `json:"l"`
	Close     float64   `json:"c"`
	Volume    int64     `json:"v"`
	Timestamp time.Time `json:"t"`
}

type authMessage struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

type subscribeMessage struct {
	Action string   `json:"action"`
	Bars   []string `json:"bars,omitempty"`
}

type responseMessage struct {
	Type    string `json:"T"`
	Message string `json:"msg,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// StreamFeed is a live bar source over Alpaca's market-data websocket.
// It only decodes minute-bar messages ("T":"b"); trade and quote
// messages are out of scope for a bar-only evaluator and are ignored.
type StreamFeed struct {
	cfg            Config
	conn           *websocket.Conn
	logger         *log.Logger
	onBar          func(timeseries.OHLCV)
	symbols        []string
	reconnectDelay time.Duration
	maxReconnect   int
}

// NewStreamFeed builds a feed bound to cfg's credentials and endpoint.
func NewStreamFeed(cfg Config, onBar func(timeseries.OHLCV)) *StreamFeed {
	return &StreamFeed{
		cfg:            cfg,
		onBar:          onBar,
		logger:         newLogger("STREAM"),
		reconnectDelay: 5 * time.Second,
		maxReconnect:   10,
	}
}

// Connect dials the market-data websocket, waits for the welcome
// message, authenticates, and subscribes to bars for symbols. It
// returns once authenticated; message handling runs in the background
// until ctx is cancelled.
func (f *StreamFeed) Connect(ctx context.Context, symbols []string) error {
	f.symbols = symbols
	if err := f.dial(); err != nil {
		return err
	}
	go f.handleMessages(ctx)
	return nil
}

func (f *StreamFeed) dial() error {
	streamURL := "wss://stream.data.alpaca.markets/v2/sip"
	if f.cfg.BaseURL == defaultBaseURL {
		streamURL = "wss://stream.data.alpaca.markets/v2/iex"
	}

	f.logger.Printf("connecting to market data stream: %s", streamURL)

	var err error
	f.conn, _, err = websocket.DefaultDialer.Dial(streamURL, nil)
	if err != nil {
		return fmt.Errorf("ingest: dial market data stream: %w", err)
	}

	var welcome []responseMessage
	if err := f.conn.ReadJSON(&welcome); err != nil {
		return fmt.Errorf("ingest: read welcome message: %w", err)
	}
	if len(welcome) == 0 || welcome[0].Type != "success" {
		return fmt.Errorf("ingest: unexpected welcome message: %+v", welcome)
	}

	if err := f.authenticate(); err != nil {
		return fmt.Errorf("ingest: authenticate: %w", err)
	}

	if err := f.subscribeBars(f.symbols); err != nil {
		return fmt.Errorf("ingest: subscribe to bars: %w", err)
	}

	return nil
}

func (f *StreamFeed) authenticate() error {
	if err := f.conn.WriteJSON(authMessage{Action: "auth", Key: f.cfg.APIKey, Secret: f.cfg.APISecret}); err != nil {
		return err
	}
	var resp []responseMessage
	if err := f.conn.ReadJSON(&resp); err != nil {
		return err
	}
	if len(resp) == 0 || resp[0].Type != "success" {
		return fmt.Errorf("unexpected auth response: %+v", resp)
	}
	f.logger.Printf("authenticated: %s", resp[0].Message)
	return nil
}

func (f *StreamFeed) subscribeBars(symbols []string) error {
	if err := f.conn.WriteJSON(subscribeMessage{Action: "subscribe", Bars: symbols}); err != nil {
		return err
	}
	f.logger.Printf("subscribed to bars: %v", symbols)
	return nil
}

func (f *StreamFeed) handleMessages(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			var messages []json.RawMessage
			if err := f.conn.ReadJSON(&messages); err != nil {
				f.logger.Printf("read error: %v", err)
				if !f.reconnect(ctx) {
					return
				}
				continue
			}
			for _, raw := range messages {
				f.processMessage(raw)
			}
		}
	}
}

// reconnect re-dials the stream with exponential backoff, capped at one
// minute per attempt. It reports whether a connection was re-established;
// a cancelled context or exhausted attempts end the read loop instead of
// spinning against a dead socket.
func (f *StreamFeed) reconnect(ctx context.Context) bool {
	if f.conn != nil {
		f.conn.Close()
	}

	delay := f.reconnectDelay
	for attempt := 1; attempt <= f.maxReconnect; attempt++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
			f.logger.Printf("reconnection attempt %d/%d", attempt, f.maxReconnect)
			if err := f.dial(); err != nil {
				f.logger.Printf("reconnection failed: %v", err)
				delay = time.Duration(float64(delay) * 1.5)
				if delay > time.Minute {
					delay = time.Minute
				}
				continue
			}
			f.logger.Println("reconnected")
			return true
		}
	}

	f.logger.Printf("max reconnection attempts reached, stopping stream")
	return false
}

func (f *StreamFeed) processMessage(raw json.RawMessage) {
	var typ struct {
		Type string `json:"T"`
	}
	if err := json.Unmarshal(raw, &typ); err != nil {
		f.logger.Printf("parse message type: %v", err)
		return
	}

	switch typ.Type {
	case "b":
		var bar streamBar
		if err := json.Unmarshal(raw, &bar); err != nil {
			f.logger.Printf("parse bar: %v", err)
			return
		}
		if f.onBar != nil {
			f.onBar(timeseries.OHLCV{
				TS:     bar.Timestamp.Unix(),
				Open:   core.Scalar(bar.Open),
				High:   core.Scalar(bar.High),
				Low:    core.Scalar(bar.Low),
				Close:  core.Scalar(bar.Close),
				Volume: core.Scalar(bar.Volume),
			})
		}
	case "error":
		var resp responseMessage
		if err := json.Unmarshal(raw, &resp); err == nil {
			f.logger.Printf("server error: %s (code %d)", resp.Message, resp.Code)
		}
	case "success", "subscription":
		var resp responseMessage
		if err := json.Unmarshal(raw, &resp); err == nil {
			f.logger.Printf("server message: %s", resp.Message)
		}
	}
}

// Close tears down the websocket connection.
func (f *StreamFeed) Close() error {
	if f.conn != nil {
		return f.conn.Close()
	}
	return nil
}
