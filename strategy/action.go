package strategy

import "barstream/core"

// TradeActionKind names the five outcomes Next can return.
type TradeActionKind int

const (
	Idle TradeActionKind = iota
	GoLong
	GoShort
	ExitLong
	ExitShort
)

func (k TradeActionKind) String() string {
	switch k {
	case GoLong:
		return "GoLong"
	case GoShort:
		return "GoShort"
	case ExitLong:
		return "ExitLong"
	case ExitShort:
		return "ExitShort"
	default:
		return "Idle"
	}
}

// TradeAction is the evaluator's per-bar verdict: a kind plus the
// suggested entry/exit price, Idle carrying the zero price.
type TradeAction struct {
	Kind  TradeActionKind
	Price core.Scalar
}
