package stockmarket

import (
	"fmt"
	"sort"
	"strings"
)

// Assets returns the tracked assets in report order: grouped by type in
// the declared order (SHARE, COMMODITY, CURRENCY), then by real value at
// full held quantity, descending.
func (p *Portfolio) Assets() []*Asset {
	assets := make([]*Asset, 0, len(p.assets))
	for _, a := range p.assets {
		assets = append(assets, a)
	}
	sort.SliceStable(assets, func(i, j int) bool {
		a, b := assets[i], assets[j]
		if a.Type() != b.Type() {
			return a.Type() < b.Type()
		}
		va := a.RealValue(a.TotalQuantity())
		vb := b.RealValue(b.TotalQuantity())
		return va.GreaterThan(vb)
	})
	return assets
}

// Report produces the textual summary of the portfolio: the cash balance,
// then one line per asset with a positive total quantity, in the order of
// Assets. The real value drives the ordering but is not printed.
func (p *Portfolio) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASH: %s\n", p.cash.Text())
	for _, a := range p.Assets() {
		if a.TotalQuantity().IsPositive() {
			fmt.Fprintf(&b, "%s Qty: %s\n", a.Ticker(), a.TotalQuantity())
		}
	}
	return b.String()
}
