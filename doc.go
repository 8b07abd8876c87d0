// Package wheel turns a brokerage activity stream into lot-level cost
// basis, realized and unrealized P&L, and assignment-risk projections for
// an options wheel strategy (cash-secured puts rolled into covered calls).
//
// The package is a pure computation library: it performs no I/O, owns no
// wire protocol, and expects pre-validated activity records and
// pre-fetched quotes. Replay a date-ordered []TradeActivity into a
// Portfolio to build FIFO share and option ledgers, then use the
// valuation and risk functions to project exposure against current
// quotes.
package wheel
