package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/stockmarket"
	"github.com/etnz/stockmarket/renderer"
	"github.com/google/subcommands"
)

type ordersCmd struct {
	ticker string
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "queue pending orders and show the highest-priority one" }
func (*ordersCmd) Usage() string {
	return `smk orders -t <ticker> <side>:<limit>:<quantity> [...]

  Inserts one or more pending orders into the price-priority queue and
  shows the order at the top. Among buys the higher limit wins; among
  sells the lower limit wins. Orders are a working set for the session:
  they are not part of the persisted portfolio state.

Usage Examples:
$ smk orders -t XYZ buy:100:10 buy:105:10
$ smk orders -t XYZ sell:100:5 sell:95:5
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker the orders refer to")
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	for _, arg := range f.Args() {
		order, err := c.parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in order %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		p.AddOrder(order)
	}

	printMarkdown(renderer.Orders(p))
	return subcommands.ExitSuccess
}

// parse builds an order from a "side:limit:quantity" argument.
func (c *ordersCmd) parse(arg string) (stockmarket.Order, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return stockmarket.Order{}, fmt.Errorf("want <side>:<limit>:<quantity>")
	}
	side, err := stockmarket.ParseSide(parts[0])
	if err != nil {
		return stockmarket.Order{}, err
	}
	limit, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return stockmarket.Order{}, fmt.Errorf("invalid limit %q: %w", parts[1], err)
	}
	quantity, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return stockmarket.Order{}, fmt.Errorf("invalid quantity %q: %w", parts[2], err)
	}
	return stockmarket.NewOrder(c.ticker, side, stockmarket.M(limit, *currency), stockmarket.Q(quantity)), nil
}
