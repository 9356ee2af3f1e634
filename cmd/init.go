package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockmarket"
	"github.com/google/subcommands"
)

type initCmd struct {
	cash float64
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new portfolio file with an initial cash balance" }
func (*initCmd) Usage() string {
	return `smk init -cash <amount>

  Creates the portfolio state file with the given initial cash balance.
  Fails if the file already exists.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.cash, "cash", 0, "Initial cash balance")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cash < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(*portfolioFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: portfolio file %q already exists\n", *portfolioFile)
		return subcommands.ExitFailure
	}

	p, err := stockmarket.NewPortfolio(stockmarket.M(c.cash, *currency))
	if err != nil {
		return fail(err)
	}
	if err := storePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Created %s with cash %s\n", *portfolioFile, p.Cash())
	return subcommands.ExitSuccess
}
