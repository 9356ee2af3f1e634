package stockmarket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file persists a portfolio in a line-oriented, pipe-delimited text
// format, one record per line:
//
//	HEADER|CASH|<decimal>
//	ASSET|<SHARE|COMMODITY|CURRENCY>|<ticker>
//	LOT|<ISO-8601 date>|<integer quantity>|<decimal purchase price>
//
// Exactly one HEADER comes first. Each ASSET record is immediately
// followed by the LOT records of its purchase history, in FIFO order.
// Only ticker, type, and lot contents are persisted: current prices and
// type-specific parameters are ephemeral market state and come back zero
// after a load.

const (
	tagHeader = "HEADER"
	tagAsset  = "ASSET"
	tagLot    = "LOT"
)

// EncodePortfolio writes the portfolio state to w. Assets without lots are
// omitted, even if tracked. Assets are written in ticker order so the
// output is reproducible.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	if _, err := fmt.Fprintf(w, "%s|CASH|%s\n", tagHeader, p.Cash().Text()); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}

	tickers := p.Tickers()
	sort.Strings(tickers)

	for _, ticker := range tickers {
		asset := p.Asset(ticker)
		if len(asset.lots) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s|%s|%s\n", tagAsset, asset.Type(), asset.Ticker()); err != nil {
			return fmt.Errorf("cannot write asset %q: %w", ticker, err)
		}
		for _, lot := range asset.lots {
			if _, err := fmt.Fprintf(w, "%s|%s|%s|%s\n", tagLot, lot.Date, lot.Quantity, lot.Price.Text()); err != nil {
				return fmt.Errorf("cannot write lot of %q: %w", ticker, err)
			}
		}
	}
	return nil
}

// DecodePortfolio reads portfolio state from r into a fresh portfolio.
// The currency is not part of the persisted form and is supplied by the
// caller. Any unparsable record fails with ErrDataIntegrity.
func DecodePortfolio(r io.Reader, currency string) (*Portfolio, error) {
	p := &Portfolio{assets: make(map[string]*Asset)}
	p.cash = M(0, currency)

	var current *Asset // most recently decoded ASSET record
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		// No escaping of '|' within fields.
		parts := strings.Split(line, "|")
		switch parts[0] {
		case tagHeader:
			if len(parts) != 3 {
				return nil, integrityErr(n, "HEADER record needs 3 fields, got %d", len(parts))
			}
			cash, err := decimal.NewFromString(parts[2])
			if err != nil {
				return nil, integrityErr(n, "invalid cash amount %q: %v", parts[2], err)
			}
			p.cash = M(cash, currency)

		case tagAsset:
			if len(parts) != 3 {
				return nil, integrityErr(n, "ASSET record needs 3 fields, got %d", len(parts))
			}
			typ, err := ParseAssetType(parts[1])
			if err != nil {
				return nil, integrityErr(n, "%v", err)
			}
			current = newAsset(typ, parts[2])
			p.Track(current)

		case tagLot:
			if current == nil {
				return nil, integrityErr(n, "LOT record with no preceding ASSET record")
			}
			if len(parts) != 4 {
				return nil, integrityErr(n, "LOT record needs 4 fields, got %d", len(parts))
			}
			day, err := ParseDate(parts[1])
			if err != nil {
				return nil, integrityErr(n, "%v", err)
			}
			qty, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				return nil, integrityErr(n, "invalid quantity %q: %v", parts[2], err)
			}
			price, err := decimal.NewFromString(parts[3])
			if err != nil {
				return nil, integrityErr(n, "invalid purchase price %q: %v", parts[3], err)
			}
			current.addLot(Lot{Date: day, Quantity: Q(qty), Price: M(price, currency)})

		default:
			return nil, integrityErr(n, "unknown record tag %q", parts[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read portfolio data: %w", err)
	}
	return p, nil
}

// integrityErr builds an ErrDataIntegrity with line context.
func integrityErr(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrDataIntegrity)
}

// SavePortfolio writes the portfolio state to the given path.
func SavePortfolio(path string, p *Portfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create portfolio file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodePortfolio(f, p); err != nil {
		return fmt.Errorf("cannot save portfolio to %q: %w", path, err)
	}
	return nil
}

// LoadPortfolio replaces p's state with the state persisted at path. The
// load is atomic: the file is decoded into a fresh state first, and p is
// only touched on full success, so a DataIntegrity failure leaves the
// previous state intact. Loading a path that does not exist is a no-op.
//
// Orders are not persisted; the queue of the previous state is kept.
func LoadPortfolio(path string, p *Portfolio) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	fresh, err := DecodePortfolio(f, p.Currency())
	if err != nil {
		return fmt.Errorf("cannot load portfolio from %q: %w", path, err)
	}
	p.cash = fresh.cash
	p.assets = fresh.assets
	return nil
}
