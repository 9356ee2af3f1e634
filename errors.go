package stockmarket

import "errors"

// The ledger surfaces five kinds of failures. Each operation wraps the
// relevant sentinel with context, so callers can branch with errors.Is
// while still getting a readable message.
var (
	// ErrInvalidArgument reports bad construction parameters: an empty
	// ticker, a non-positive price, or a negative initial cash balance.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownAsset reports a buy or sell against a ticker that is not
	// tracked by the portfolio.
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrInsufficientFunds reports a buy whose cost exceeds the cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings reports a sell whose quantity exceeds the
	// total held quantity.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrDataIntegrity reports malformed persisted data: an unknown record
	// tag, a LOT record preceding any ASSET record, or an unparsable field.
	ErrDataIntegrity = errors.New("data integrity")
)
