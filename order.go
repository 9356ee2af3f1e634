package stockmarket

import (
	"fmt"

	"github.com/google/uuid"
)

// Side is the direction of an order.
type Side int

const (
	SideBuy Side = iota + 1
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY", "buy":
		return SideBuy, nil
	case "SELL", "sell":
		return SideSell, nil
	default:
		return 0, fmt.Errorf("unknown order side: %q", s)
	}
}

// Order is a priced buy or sell instruction. It is immutable once created
// and is not linked to any asset's lots; the queue stores it purely for
// prioritization.
type Order struct {
	ID       string
	Ticker   string
	Side     Side
	Limit    Money // price limit
	Quantity Quantity
}

// NewOrder creates an order with a fresh unique id.
func NewOrder(ticker string, side Side, limit Money, quantity Quantity) Order {
	return Order{
		ID:       uuid.NewString(),
		Ticker:   ticker,
		Side:     side,
		Limit:    limit,
		Quantity: quantity,
	}
}

// orderQueue is a price-priority heap of pending orders.
//
// The priority rule is local to one side: among buys the higher limit wins,
// among sells the lower limit wins. Orders on different sides compare as
// equal priority, so the rule is not a total order. With both sides present
// in one queue the peek result depends on heap layout; callers that need
// determinism keep one side per queue.
type orderQueue []Order

func (q orderQueue) Len() int      { return len(q) }
func (q orderQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q orderQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.Side != b.Side {
		return false
	}
	if a.Side == SideBuy {
		return a.Limit.GreaterThan(b.Limit)
	}
	return a.Limit.LessThan(b.Limit)
}

func (q *orderQueue) Push(x any) { *q = append(*q, x.(Order)) }

func (q *orderQueue) Pop() any {
	old := *q
	n := len(old)
	o := old[n-1]
	*q = old[:n-1]
	return o
}
