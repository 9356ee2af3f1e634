// Package cmd implements the CLI application to manage a stock-market ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockmarket"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands a main package registers on its
// subcommands.Commander.
var Commands = []subcommands.Command{
	&initCmd{},
	&buyCmd{},
	&sellCmd{},
	&ordersCmd{},
	&updateCmd{},
	&reportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.txt", "Path to the portfolio state file")
var currency = flag.String("currency", "USD", "Currency code used to display monetary values")

// openPortfolio loads the ledger state from the app portfolio file. A
// missing file yields an empty portfolio.
func openPortfolio() (*stockmarket.Portfolio, error) {
	p, err := stockmarket.NewPortfolio(stockmarket.M(0, *currency))
	if err != nil {
		return nil, err
	}
	if err := stockmarket.LoadPortfolio(*portfolioFile, p); err != nil {
		return nil, err
	}
	return p, nil
}

// storePortfolio writes the ledger state back to the app portfolio file.
func storePortfolio(p *stockmarket.Portfolio) error {
	return stockmarket.SavePortfolio(*portfolioFile, p)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
