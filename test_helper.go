package stockmarket

import "testing"

// mustShare declares a share or fails the test.
func mustShare(t *testing.T, ticker string, price float64) *Asset {
	t.Helper()
	a, err := NewShare(ticker, M(price, "USD"))
	if err != nil {
		t.Fatalf("NewShare(%q) unexpected error: %v", ticker, err)
	}
	return a
}

// newTestPortfolio creates a portfolio with the given cash or fails the test.
func newTestPortfolio(t *testing.T, cash float64) *Portfolio {
	t.Helper()
	p, err := NewPortfolio(M(cash, "USD"))
	if err != nil {
		t.Fatalf("NewPortfolio unexpected error: %v", err)
	}
	return p
}

// setupPortfolioWithLots returns a portfolio tracking one share "XYZ" with
// two lots: 10 units at 100, then 10 units at 120.
func setupPortfolioWithLots(t *testing.T) *Portfolio {
	t.Helper()
	p := newTestPortfolio(t, 20000)
	xyz := mustShare(t, "XYZ", 100)
	p.Track(xyz)
	xyz.addLot(Lot{Date: MustParseDate("2023-01-01"), Quantity: Q(10), Price: M(100, "USD")})
	xyz.addLot(Lot{Date: MustParseDate("2023-02-01"), Quantity: Q(10), Price: M(120, "USD")})
	return p
}
