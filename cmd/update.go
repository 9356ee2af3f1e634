package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/etnz/stockmarket"
	"github.com/google/subcommands"
)

type updateCmd struct {
	url string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh market prices from a quote document" }
func (*updateCmd) Usage() string {
	return `smk update -url <quote document url>

  Fetches the latest quotes from a JSON document of the form
  {"quotes":[{"ticker":"AAPL","last":150.25}, ...]} and applies them to
  the tracked assets. Prices are ephemeral: they are not persisted, so a
  report in the same session reflects them.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "URL of the quote document")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	updated, err := stockmarket.UpdateQuotes(p, new(http.Client), c.url)
	if err != nil {
		return fail(err)
	}
	log.Printf("updated-quotes count=%d", updated)
	fmt.Print(p.Report())
	return subcommands.ExitSuccess
}
