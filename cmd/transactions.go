package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/stockmarket"
	"github.com/google/subcommands"
)

// --- Buy Command ---

type buyCmd struct {
	ticker   string
	quantity int64
	price    float64
	typ      string
	storage  float64
	spread   float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase units to open or add to a position" }
func (*buyCmd) Usage() string {
	return `smk buy -t <ticker> -q <quantity> -p <price> [-type <share|commodity|currency>] [-storage <cost>] [-spread <spread>]

  Purchases units of an asset. The cost is debited from cash and a new lot
  is appended to the asset's purchase history. A ticker not seen before is
  declared on the fly with the given type (share by default); the persisted
  form only keeps assets that hold lots, so declaration and first purchase
  go together.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.Int64Var(&c.quantity, "q", 0, "Number of units")
	f.Float64Var(&c.price, "p", 0, "Price per unit")
	f.StringVar(&c.typ, "type", "share", "Asset type when declaring a new ticker")
	f.Float64Var(&c.storage, "storage", 0, "Storage cost per unit (commodity)")
	f.Float64Var(&c.spread, "spread", 0, "Bid-ask spread (currency)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	if p.Asset(c.ticker) == nil {
		asset, err := c.declare()
		if err != nil {
			return fail(err)
		}
		p.Track(asset)
	}

	if err := p.Buy(c.ticker, stockmarket.Q(c.quantity), stockmarket.M(c.price, *currency)); err != nil {
		return fail(err)
	}
	if err := storePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Bought %d %s, cash is now %s\n", c.quantity, c.ticker, p.Cash())
	return subcommands.ExitSuccess
}

// declare builds the asset for a ticker seen for the first time.
func (c *buyCmd) declare() (*stockmarket.Asset, error) {
	typ, err := stockmarket.ParseAssetType(strings.ToUpper(c.typ))
	if err != nil {
		return nil, err
	}
	price := stockmarket.M(c.price, *currency)
	switch typ {
	case stockmarket.Commodity:
		return stockmarket.NewCommodity(c.ticker, price, stockmarket.M(c.storage, *currency))
	case stockmarket.Currency:
		return stockmarket.NewCurrency(c.ticker, price, stockmarket.M(c.spread, *currency))
	default:
		return stockmarket.NewShare(c.ticker, price)
	}
}

// --- Sell Command ---

type sellCmd struct {
	ticker   string
	quantity int64
	price    float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units to trim or close a position" }
func (*sellCmd) Usage() string {
	return `smk sell -t <ticker> -q <quantity> -p <price>

  Sells units of an asset at the given market price. Lots are consumed
  oldest first, the revenue is credited to cash, and the realized profit
  of the sale is printed.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.Int64Var(&c.quantity, "q", 0, "Number of units")
	f.Float64Var(&c.price, "p", 0, "Market price per unit")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	profit, err := p.Sell(c.ticker, stockmarket.Q(c.quantity), stockmarket.M(c.price, *currency))
	if err != nil {
		return fail(err)
	}
	if err := storePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Sold %d %s, realized profit %s, cash is now %s\n", c.quantity, c.ticker, profit.SignedString(), p.Cash())
	return subcommands.ExitSuccess
}
