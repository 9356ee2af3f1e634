package stockmarket

import "fmt"

// AssetType identifies the economic family of an asset. The set is closed:
// there are exactly three families and no expectation of external extension.
type AssetType int

const (
	Share AssetType = iota
	Commodity
	Currency
)

func (t AssetType) String() string {
	switch t {
	case Share:
		return "SHARE"
	case Commodity:
		return "COMMODITY"
	case Currency:
		return "CURRENCY"
	default:
		return "unknown"
	}
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch s {
	case "SHARE":
		return Share, nil
	case "COMMODITY":
		return Commodity, nil
	case "CURRENCY":
		return Currency, nil
	default:
		return 0, fmt.Errorf("unknown asset type: %q", s)
	}
}

// shareHandlingFee is the flat fee deducted from a share position's real
// value, regardless of quantity.
var shareHandlingFee = M(5, "")

// Asset is a ticker-identified instrument holding the ordered purchase
// history of one instrument. Identity is the ticker alone: two Assets with
// the same ticker are the same entity even if other fields differ.
type Asset struct {
	ticker string
	price  Money // current market price, mutable
	typ    AssetType

	// type-specific economics: storage applies to commodities, spread to
	// currencies. The share handling fee is a fixed constant.
	storage Money // storage cost per unit
	spread  Money // bid-ask spread

	lots lots
}

// NewShare declares a share instrument.
func NewShare(ticker string, price Money) (*Asset, error) {
	return newChecked(&Asset{ticker: ticker, price: price, typ: Share})
}

// NewCommodity declares a commodity instrument with a linear storage cost.
func NewCommodity(ticker string, price, storageCostPerUnit Money) (*Asset, error) {
	return newChecked(&Asset{ticker: ticker, price: price, typ: Commodity, storage: storageCostPerUnit})
}

// NewCurrency declares a currency instrument quoted with a bid-ask spread.
func NewCurrency(ticker string, price, spread Money) (*Asset, error) {
	return newChecked(&Asset{ticker: ticker, price: price, typ: Currency, spread: spread})
}

// newChecked validates construction parameters. The ledger itself never
// re-validates these fields.
func newChecked(a *Asset) (*Asset, error) {
	if a.ticker == "" {
		return nil, fmt.Errorf("empty ticker: %w", ErrInvalidArgument)
	}
	if !a.price.IsPositive() {
		return nil, fmt.Errorf("non-positive price for %q: %w", a.ticker, ErrInvalidArgument)
	}
	return a, nil
}

// newAsset restores an asset from persisted state. Price and type-specific
// parameters are not part of the persisted form and start at zero.
func newAsset(typ AssetType, ticker string) *Asset {
	return &Asset{ticker: ticker, typ: typ}
}

func (a *Asset) Ticker() string  { return a.ticker }
func (a *Asset) Type() AssetType { return a.typ }
func (a *Asset) Price() Money    { return a.price }

// SetPrice updates the current market price.
func (a *Asset) SetPrice(price Money) { a.price = price }

// Lots returns a copy of the purchase history, oldest first.
func (a *Asset) Lots() []Lot {
	out := make([]Lot, len(a.lots))
	copy(out, a.lots)
	return out
}

func (a *Asset) addLot(l Lot) { a.lots = append(a.lots, l) }

// TotalQuantity returns the sum of all remaining lot quantities. It is
// derived on demand, never cached.
func (a *Asset) TotalQuantity() Quantity { return a.lots.total() }

// realValues dispatches the per-family valuation formula.
var realValues = [...]func(a *Asset, quantity Quantity) Money{
	Share:     func(a *Asset, q Quantity) Money { return a.price.Mul(q).Sub(shareHandlingFee) },
	Commodity: func(a *Asset, q Quantity) Money { return a.price.Mul(q).Sub(a.storage.Mul(q)) },
	Currency:  func(a *Asset, q Quantity) Money { return a.price.Sub(a.spread).Mul(q) },
}

// RealValue returns the fee, storage, or spread adjusted value of holding
// the given quantity at the current market price, floored at zero. A
// per-unit loss never produces a negative portfolio value.
//
// The adjustment applies to reported value only: the cash charged at
// purchase time is always price times quantity, for every asset type.
func (a *Asset) RealValue(quantity Quantity) Money {
	v := realValues[a.typ](a, quantity)
	if v.IsNegative() {
		return M(0, v.Currency())
	}
	return v
}

// Equal reports whether both assets designate the same instrument. Identity
// is defined solely by ticker.
func (a *Asset) Equal(b *Asset) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ticker == b.ticker
}
