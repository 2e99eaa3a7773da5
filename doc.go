// Package equity provides the core types and analysis engine for a
// retail-investor equity research tool focused on the Brazilian B3
// exchange.
//
// The core functionalities include:
//   - Stock Data Model: Profile and Fundamentals describe a listed company
//     (price, market cap, P/E, P/B, dividend yield, ROE, and friends) using
//     exact decimal arithmetic for monetary values.
//   - Performance Analysis: Return, volatility, Sharpe ratio, drawdown and
//     moving-average statistics computed from a daily close-price history.
//   - Valuation: Classic fair-price heuristics (Graham, Bazin, Gordon DDM)
//     with margin-of-safety classification.
//   - Screener: Filtering and ranking a universe of tickers by fundamental
//     criteria, with value/dividend/quality presets.
//   - Reports: Self-contained report structs consumed by the renderer
//     package, the CLI and the web dashboard.
//
// Market data is fetched by the provider subpackages (yahoo for quotes and
// price history, bcb for Brazilian macro series). This package serves as the
// foundational logic for the `ert` command-line tool.
package equity
