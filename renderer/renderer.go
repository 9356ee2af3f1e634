// Package renderer turns portfolio state into markdown documents for the
// `smk` command-line tool. It only reads through the stockmarket package's
// public surface and never mutates the portfolio.
package renderer

import (
	"bytes"

	"github.com/etnz/stockmarket"
	md "github.com/nao1215/markdown"
)

// Summary renders the portfolio summary: the cash balance and one table row
// per asset with a positive quantity, in report order.
func Summary(p *stockmarket.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Cash"),
			md.Bold(p.Cash().String()),
		},
	})

	rows := make([][]string, 0)
	for _, a := range p.Assets() {
		qty := a.TotalQuantity()
		if !qty.IsPositive() {
			continue
		}
		rows = append(rows, []string{
			a.Ticker(),
			a.Type().String(),
			qty.String(),
			a.Price().String(),
			a.RealValue(qty).String(),
		})
	}
	if len(rows) > 0 {
		doc.H2("Holdings")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ticker", "Type", "Quantity", "Price", "Real Value"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// Lots renders the purchase history of one asset, oldest first.
func Lots(a *stockmarket.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(a.Ticker())

	rows := make([][]string, 0, len(a.Lots()))
	for _, lot := range a.Lots() {
		rows = append(rows, []string{
			lot.Date.String(),
			lot.Quantity.String(),
			lot.Price.String(),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Purchased", "Remaining", "Cost Basis"},
		Rows:   rows,
	})

	return doc.String()
}

// Orders renders the pending order at the top of the queue, if any.
func Orders(p *stockmarket.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Pending Orders")

	top, ok := p.PeekNextOrder()
	if !ok {
		doc.PlainText("The order queue is empty.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Next", "Ticker", "Side", "Limit", "Quantity"},
		Rows: [][]string{{
			top.ID,
			top.Ticker,
			top.Side.String(),
			top.Limit.String(),
			top.Quantity.String(),
		}},
	})
	doc.PlainTextf("%d order(s) pending in total.", p.PendingOrders())

	return doc.String()
}
