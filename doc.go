// Package stockmarket implements a single-actor financial ledger. It tracks
// a cash balance and per-asset purchase history, and is designed to keep
// every monetary figure exact, auditable, and reproducible from its
// persisted form.
//
// The core functionalities include:
//   - Lot Tracking: every purchase creates its own lot carrying date, unit
//     cost basis, and remaining quantity. Sales consume lots strictly
//     first-in-first-out, splitting the last lot touched when needed, and
//     return the realized profit of the sale.
//   - Asset Valuation: assets belong to a closed set of types (share,
//     commodity, currency), each with its own real-value formula (handling
//     fee, storage cost, bid-ask spread), floored at zero.
//   - Order Queue: pending buy/sell orders are held in a price-priority
//     queue. Orders are only ever inserted and peeked, never matched.
//   - Data Persistence: the full portfolio state round-trips through a
//     line-oriented, pipe-delimited text format with integrity checking.
//
// This package serves as the foundational logic for the `smk` command-line
// tool.
package stockmarket
