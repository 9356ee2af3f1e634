package stockmarket

import (
	"container/heap"
	"fmt"
)

// Portfolio is the ledger: it owns the cash balance, the registry of
// tracked assets, and the queue of pending orders.
//
// A Portfolio is a single logical actor. No operation is safe for
// concurrent use; an embedding host must serialize access with its own
// lock or run the portfolio behind a single writer.
type Portfolio struct {
	cash   Money
	assets map[string]*Asset // indexed by ticker
	orders orderQueue
}

// NewPortfolio creates a ledger holding the given initial cash.
func NewPortfolio(initialCash Money) (*Portfolio, error) {
	if initialCash.IsNegative() {
		return nil, fmt.Errorf("negative initial cash %s: %w", initialCash.Text(), ErrInvalidArgument)
	}
	return &Portfolio{
		cash:   initialCash,
		assets: make(map[string]*Asset),
	}, nil
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() Money { return p.cash }

// Currency returns the ledger's currency code.
func (p *Portfolio) Currency() string { return p.cash.Currency() }

// Track registers an asset under its ticker. Tracking an already tracked
// ticker replaces the previous registration.
func (p *Portfolio) Track(a *Asset) {
	p.assets[a.Ticker()] = a
}

// Asset returns the tracked asset for this ticker, or nil if unknown.
func (p *Portfolio) Asset(ticker string) *Asset {
	return p.assets[ticker]
}

// Tickers returns all tracked tickers, in no particular order.
func (p *Portfolio) Tickers() []string {
	out := make([]string, 0, len(p.assets))
	for t := range p.assets {
		out = append(out, t)
	}
	return out
}

// Buy purchases quantity units at the given unit price. The cost is price
// times quantity for every asset type; valuation adjustments never apply
// to the cash charged here. On success a new lot dated today is appended
// to the asset's purchase history, never merged with an existing lot.
//
// Validation precedes mutation: on error, cash and lots are untouched.
func (p *Portfolio) Buy(ticker string, quantity Quantity, price Money) error {
	asset, ok := p.assets[ticker]
	if !ok {
		return fmt.Errorf("buy %q: %w", ticker, ErrUnknownAsset)
	}

	cost := price.Mul(quantity)
	if p.cash.LessThan(cost) {
		return fmt.Errorf("buy %q: cost %s exceeds cash %s: %w", ticker, cost.Text(), p.cash.Text(), ErrInsufficientFunds)
	}

	p.cash = p.cash.Sub(cost)
	asset.addLot(Lot{Date: Today(), Quantity: quantity, Price: price})
	return nil
}

// Sell realizes quantity units at the given market price, consuming lots
// oldest first. Cash is credited with the full revenue (market price times
// quantity); the returned profit is the difference between market price
// and each consumed lot's cost basis, summed over the consumed units, and
// may be negative. Profit is a derived reporting figure; it is not applied
// to cash on top of the revenue.
//
// Validation precedes mutation: on error, cash and lots are untouched.
func (p *Portfolio) Sell(ticker string, quantity Quantity, marketPrice Money) (Money, error) {
	asset, ok := p.assets[ticker]
	if !ok {
		return Money{}, fmt.Errorf("sell %q: %w", ticker, ErrUnknownAsset)
	}
	if asset.TotalQuantity().LessThan(quantity) {
		return Money{}, fmt.Errorf("sell %q: only %s units held: %w", ticker, asset.TotalQuantity(), ErrInsufficientHoldings)
	}

	remaining, profit, revenue := asset.lots.consume(quantity, marketPrice)
	asset.lots = remaining
	p.cash = p.cash.Add(revenue)
	return profit, nil
}

// AddOrder inserts a pending order into the price-priority queue.
func (p *Portfolio) AddOrder(o Order) {
	heap.Push(&p.orders, o)
}

// PeekNextOrder returns, without removing, the highest-priority pending
// order. The second return value is false when the queue is empty.
func (p *Portfolio) PeekNextOrder() (Order, bool) {
	if len(p.orders) == 0 {
		return Order{}, false
	}
	return p.orders[0], true
}

// PendingOrders returns the number of orders in the queue.
func (p *Portfolio) PendingOrders() int { return len(p.orders) }
