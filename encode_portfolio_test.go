package stockmarket

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodePortfolio_Format(t *testing.T) {
	p := setupPortfolioWithLots(t)
	// A tracked asset without lots is omitted from the output.
	p.Track(mustShare(t, "EMPTY", 10))

	var b strings.Builder
	if err := EncodePortfolio(&b, p); err != nil {
		t.Fatalf("EncodePortfolio() unexpected error: %v", err)
	}

	want := "HEADER|CASH|20000\n" +
		"ASSET|SHARE|XYZ\n" +
		"LOT|2023-01-01|10|100\n" +
		"LOT|2023-02-01|10|120\n"
	if b.String() != want {
		t.Errorf("EncodePortfolio() =\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestPortfolio_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.txt")

	source, err := NewPortfolio(M(5000.50, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	gld, err := NewCommodity("GLD", M(95, "USD"), M(2, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	source.Track(gld)
	source.Track(mustShare(t, "AAPL", 150))
	if err := source.Buy("AAPL", Q(5), M(100.25, "USD")); err != nil {
		t.Fatal(err)
	}
	if err := source.Buy("GLD", Q(3), M(90, "USD")); err != nil {
		t.Fatal(err)
	}
	if err := source.Buy("AAPL", Q(2), M(110, "USD")); err != nil {
		t.Fatal(err)
	}

	if err := SavePortfolio(path, source); err != nil {
		t.Fatalf("SavePortfolio() unexpected error: %v", err)
	}

	target := newTestPortfolio(t, 0)
	if err := LoadPortfolio(path, target); err != nil {
		t.Fatalf("LoadPortfolio() unexpected error: %v", err)
	}

	if !target.Cash().Equal(source.Cash()) {
		t.Errorf("loaded cash = %s, want %s", target.Cash().Text(), source.Cash().Text())
	}

	for _, ticker := range []string{"AAPL", "GLD"} {
		src, dst := source.Asset(ticker), target.Asset(ticker)
		if dst == nil {
			t.Fatalf("loaded portfolio does not track %q", ticker)
		}
		if dst.Type() != src.Type() {
			t.Errorf("%q type = %v, want %v", ticker, dst.Type(), src.Type())
		}
		srcLots, dstLots := src.Lots(), dst.Lots()
		if len(dstLots) != len(srcLots) {
			t.Fatalf("%q has %d lots, want %d", ticker, len(dstLots), len(srcLots))
		}
		for i := range srcLots {
			if dstLots[i].Date != srcLots[i].Date ||
				!dstLots[i].Quantity.Equal(srcLots[i].Quantity) ||
				!dstLots[i].Price.Equal(srcLots[i].Price) {
				t.Errorf("%q lot %d = %+v, want %+v", ticker, i, dstLots[i], srcLots[i])
			}
		}
		// Market state is not persisted: price and parameters come back zero.
		if !dst.Price().IsZero() {
			t.Errorf("%q loaded price = %s, want 0", ticker, dst.Price().Text())
		}
	}
}

func TestLoadPortfolio_MissingFileIsNoOp(t *testing.T) {
	p := setupPortfolioWithLots(t)
	before := p.Cash()

	if err := LoadPortfolio(filepath.Join(t.TempDir(), "absent.txt"), p); err != nil {
		t.Fatalf("LoadPortfolio() unexpected error: %v", err)
	}
	if !p.Cash().Equal(before) || p.Asset("XYZ") == nil {
		t.Error("LoadPortfolio() on a missing file modified the portfolio")
	}
}

func TestDecodePortfolio_Integrity(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "lot before asset", data: "HEADER|CASH|100\nLOT|2023-01-01|10|100\n"},
		{name: "unknown tag", data: "HEADER|CASH|100\nBOGUS|SHARE|XYZ\n"},
		{name: "unknown asset type", data: "HEADER|CASH|100\nASSET|BOND|XYZ\n"},
		{name: "bad cash", data: "HEADER|CASH|lots\n"},
		{name: "bad date", data: "HEADER|CASH|100\nASSET|SHARE|XYZ\nLOT|someday|10|100\n"},
		{name: "bad quantity", data: "HEADER|CASH|100\nASSET|SHARE|XYZ\nLOT|2023-01-01|ten|100\n"},
		{name: "fractional quantity", data: "HEADER|CASH|100\nASSET|SHARE|XYZ\nLOT|2023-01-01|1.5|100\n"},
		{name: "bad price", data: "HEADER|CASH|100\nASSET|SHARE|XYZ\nLOT|2023-01-01|10|expensive\n"},
		{name: "short lot record", data: "HEADER|CASH|100\nASSET|SHARE|XYZ\nLOT|2023-01-01|10\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePortfolio(strings.NewReader(tc.data), "USD")
			if !errors.Is(err, ErrDataIntegrity) {
				t.Errorf("DecodePortfolio() error = %v, want ErrDataIntegrity", err)
			}
		})
	}
}

func TestLoadPortfolio_IsAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.txt")
	data := "HEADER|CASH|9999\nASSET|SHARE|NEW\nLOT|2023-01-01|10|100\nBOGUS|record\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p := setupPortfolioWithLots(t)
	err := LoadPortfolio(path, p)
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("LoadPortfolio() error = %v, want ErrDataIntegrity", err)
	}
	// The failed load must leave the previous state fully intact.
	if !p.Cash().Equal(M(20000, "USD")) {
		t.Errorf("failed load changed cash to %s", p.Cash().Text())
	}
	if p.Asset("NEW") != nil {
		t.Error("failed load registered an asset from the corrupt file")
	}
	if p.Asset("XYZ") == nil {
		t.Error("failed load dropped a previously tracked asset")
	}
}

func TestDecodePortfolio_PreservesLotOrder(t *testing.T) {
	data := "HEADER|CASH|0\n" +
		"ASSET|SHARE|XYZ\n" +
		"LOT|2023-03-01|1|130\n" + // deliberately not in date order:
		"LOT|2023-01-01|2|100\n" + // file order, not date order, is FIFO order
		"LOT|2023-02-01|3|120\n"
	p, err := DecodePortfolio(strings.NewReader(data), "USD")
	if err != nil {
		t.Fatalf("DecodePortfolio() unexpected error: %v", err)
	}
	lots := p.Asset("XYZ").Lots()
	if len(lots) != 3 {
		t.Fatalf("len(lots) = %d, want 3", len(lots))
	}
	wantDates := []string{"2023-03-01", "2023-01-01", "2023-02-01"}
	for i, want := range wantDates {
		if lots[i].Date.String() != want {
			t.Errorf("lot %d date = %s, want %s", i, lots[i].Date, want)
		}
	}
}
