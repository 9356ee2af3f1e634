package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stockmarket/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	plain bool
	lots  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show the portfolio summary" }
func (*reportCmd) Usage() string {
	return `smk report [-plain] [-lots <ticker>]

  Shows the cash balance and the held assets, grouped by type and sorted
  by real value. -plain prints the raw text summary instead of markdown;
  -lots additionally details the purchase history of one asset.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print the raw text summary")
	f.StringVar(&c.lots, "lots", "", "Also detail the lots of this ticker")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}

	if c.plain {
		fmt.Print(p.Report())
		return subcommands.ExitSuccess
	}

	doc := renderer.Summary(p)
	if c.lots != "" {
		asset := p.Asset(c.lots)
		if asset == nil {
			return fail(fmt.Errorf("unknown asset %q", c.lots))
		}
		doc += "\n" + renderer.Lots(asset)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
