package stockmarket

import (
	"errors"
	"testing"
)

func TestAsset_RealValue(t *testing.T) {
	share := func(price float64) *Asset {
		a, err := NewShare("S", M(price, "USD"))
		if err != nil {
			t.Fatalf("NewShare: %v", err)
		}
		return a
	}
	commodity := func(price, storage float64) *Asset {
		a, err := NewCommodity("GLD", M(price, "USD"), M(storage, "USD"))
		if err != nil {
			t.Fatalf("NewCommodity: %v", err)
		}
		return a
	}
	currency := func(price, spread float64) *Asset {
		a, err := NewCurrency("EURUSD", M(price, "USD"), M(spread, "USD"))
		if err != nil {
			t.Fatalf("NewCurrency: %v", err)
		}
		return a
	}

	testCases := []struct {
		name     string
		asset    *Asset
		quantity int
		want     float64
	}{
		{name: "share deducts flat fee", asset: share(100), quantity: 1, want: 95},
		{name: "share fee independent of quantity", asset: share(100), quantity: 10, want: 995},
		{name: "share clamps to zero", asset: share(2), quantity: 1, want: 0},
		{name: "commodity deducts storage per unit", asset: commodity(100, 10), quantity: 2, want: 180},
		{name: "commodity clamps to zero", asset: commodity(10, 15), quantity: 3, want: 0},
		{name: "currency applies spread", asset: currency(5, 0.2), quantity: 100, want: 480},
		{name: "currency clamps to zero", asset: currency(0.1, 0.2), quantity: 10, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.asset.RealValue(Q(tc.quantity))
			if !got.Equal(M(tc.want, "USD")) {
				t.Errorf("RealValue(%d) = %s, want %v", tc.quantity, got.Text(), tc.want)
			}
		})
	}
}

func TestAsset_Constructors_Validate(t *testing.T) {
	testCases := []struct {
		name string
		new  func() (*Asset, error)
	}{
		{name: "empty ticker", new: func() (*Asset, error) { return NewShare("", M(100, "USD")) }},
		{name: "zero price", new: func() (*Asset, error) { return NewShare("S", M(0, "USD")) }},
		{name: "negative price", new: func() (*Asset, error) { return NewCommodity("GLD", M(-1, "USD"), M(0, "USD")) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.new(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("constructor error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestAsset_TotalQuantity_IsDerived(t *testing.T) {
	a := mustShare(t, "XYZ", 100)
	if !a.TotalQuantity().IsZero() {
		t.Fatalf("TotalQuantity() of a fresh asset = %s, want 0", a.TotalQuantity())
	}
	a.addLot(Lot{Date: Today(), Quantity: Q(10), Price: M(100, "USD")})
	a.addLot(Lot{Date: Today(), Quantity: Q(7), Price: M(110, "USD")})
	if got := a.TotalQuantity(); !got.Equal(Q(17)) {
		t.Errorf("TotalQuantity() = %s, want 17", got)
	}
}

func TestParseAssetType(t *testing.T) {
	for _, typ := range []AssetType{Share, Commodity, Currency} {
		got, err := ParseAssetType(typ.String())
		if err != nil {
			t.Errorf("ParseAssetType(%q) unexpected error: %v", typ, err)
		}
		if got != typ {
			t.Errorf("ParseAssetType(%q) = %v, want %v", typ, got, typ)
		}
	}
	if _, err := ParseAssetType("BOND"); err == nil {
		t.Error("ParseAssetType(\"BOND\") expected an error")
	}
}
