// Package leverage provides the types and the risk engine of a personal
// leverage dashboard: an individual funding investments with policy loans,
// stock-pledge loans and mortgages, who wants to know how close each position
// is to a margin call.
//
// The core functionalities include:
//   - Data model: assets, liabilities and the monthly cash flow, gathered in
//     an immutable-by-convention [Snapshot].
//   - Valuation adjustment: [Adjust] values assets under a [Stress] scenario
//     (market crash, interest rate hike).
//   - Risk classification: [Classify] computes the loan-to-value or collateral
//     ratio of a leveraged position and its [Status].
//   - Aggregate roll-up: [NewDashboard] derives net worth, cash flow, FIRE
//     progress, returns and liquidity.
//   - Persistence: a single local JSON file, plus a backup format for
//     import and export.
//
// All amounts are exact decimals, every figure is recomputed from the
// snapshot on each change.
package leverage
