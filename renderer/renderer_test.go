package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stockmarket"
)

func setup(t *testing.T) *stockmarket.Portfolio {
	t.Helper()
	p, err := stockmarket.NewPortfolio(stockmarket.M(1000, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	aapl, err := stockmarket.NewShare("AAPL", stockmarket.M(150, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	p.Track(aapl)
	if err := p.Buy("AAPL", stockmarket.Q(5), stockmarket.M(100, "USD")); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSummary(t *testing.T) {
	got := Summary(setup(t))

	for _, want := range []string{"# Portfolio", "Holdings", "AAPL", "SHARE", "| 5 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummary_SkipsEmptyAssets(t *testing.T) {
	p, err := stockmarket.NewPortfolio(stockmarket.M(0, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	got := Summary(p)
	if strings.Contains(got, "Holdings") {
		t.Errorf("Summary() of an empty portfolio has a Holdings section:\n%s", got)
	}
}

func TestLots(t *testing.T) {
	p := setup(t)
	got := Lots(p.Asset("AAPL"))

	for _, want := range []string{"# AAPL", "Cost Basis", "| 5 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Lots() missing %q in:\n%s", want, got)
		}
	}
}

func TestOrders(t *testing.T) {
	p := setup(t)
	p.AddOrder(stockmarket.NewOrder("AAPL", stockmarket.SideBuy, stockmarket.M(90, "USD"), stockmarket.Q(1)))
	p.AddOrder(stockmarket.NewOrder("AAPL", stockmarket.SideBuy, stockmarket.M(95, "USD"), stockmarket.Q(1)))

	got := Orders(p)
	if !strings.Contains(got, "BUY") || !strings.Contains(got, "2 order(s) pending") {
		t.Errorf("Orders() unexpected output:\n%s", got)
	}
}

func TestOrders_Empty(t *testing.T) {
	p, err := stockmarket.NewPortfolio(stockmarket.M(0, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	if got := Orders(p); !strings.Contains(got, "empty") {
		t.Errorf("Orders() on empty queue: %s", got)
	}
}
