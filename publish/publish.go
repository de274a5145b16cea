// Package publish adapts the engine's TradeAction output onto a
// ZeroMQ PUB socket as JSON-encoded order signals, the publish side of
// the same IPC boundary a trade executor's PULL socket once consumed
// directly. It makes no trading decisions and holds no broker client;
// it only serializes and sends.
package publish

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/pebbe/zmq4"
	"github.com/shopspring/decimal"

	"barstream/strategy"
)

// OrderSignal is the wire shape published for every non-idle
// TradeAction: an action, a symbol, a suggested price, and the Unix
// timestamp of the bar that produced it.
type OrderSignal struct {
	Action    string          `json:"action"`
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"`
}

// ZMQPublisher publishes OrderSignal messages on a ZeroMQ PUB socket
// bound to an IPC endpoint.
type ZMQPublisher struct {
	socket *zmq4.Socket
	logger *log.Logger
}

// NewZMQPublisher binds a PUB socket to endpoint (e.g.
// "ipc:///tmp/barstream_orders.ipc").
func NewZMQPublisher(endpoint string) (*ZMQPublisher, error) {
	socket, err := zmq4.NewSocket(zmq4.PUB)
	if err != nil {
		return nil, fmt.Errorf("publish: create zmq socket: %w", err)
	}
	if err := socket.Bind(endpoint); err != nil {
		socket.Close()
		return nil, fmt.Errorf("publish: bind to %s: %w", endpoint, err)
	}
	logger := log.New(log.Writer(), "[PUBLISH] ", log.LstdFlags)
	logger.Printf("publishing order signals on %s", endpoint)
	return &ZMQPublisher{socket: socket, logger: logger}, nil
}

// Publish sends action for symbol if it is not Idle; Idle actions are
// silently dropped, matching the engine's own "no trade" convention.
func (p *ZMQPublisher) Publish(symbol string, ts int64, action strategy.TradeAction) error {
	if action.Kind == strategy.Idle {
		return nil
	}

	signal := OrderSignal{
		Action:    action.Kind.String(),
		Symbol:    symbol,
		Price:     decimal.NewFromFloat32(float32(action.Price)),
		Timestamp: ts,
	}

	payload, err := json.Marshal(signal)
	if err != nil {
		return fmt.Errorf("publish: marshal order signal: %w", err)
	}

	if _, err := p.socket.SendBytes(payload, zmq4.DONTWAIT); err != nil {
		return fmt.Errorf("publish: send order signal: %w", err)
	}

	p.logger.Printf("published %s %s @ %s", signal.Action, signal.Symbol, signal.Price)
	return nil
}

// Close tears down the publisher's socket.
func (p *ZMQPublisher) Close() error {
	return p.socket.Close()
}
