// Package sales is the analytics core. It answers analytical queries over
// an immutable, fully-loaded dataset of business records: per-merchant
// count distributions, z-score outlier detection, exact-decimal revenue
// aggregation, invoice-completion checks, and revenue ranking.
//
// The package is organized into three components:
//
//  1. Statistics toolkit (stats.go): pure functions over numeric
//     sequences — mean, population standard deviation, rounding,
//     percentages. Statistics over empty input fail with
//     ErrUndefinedStatistic rather than returning a silent zero.
//  2. Relationship index (index.go): foreign-key groupings built once at
//     construction so repeated per-merchant and per-invoice queries never
//     rescan the collections.
//  3. Analyst (analyst.go): orchestrates groups through the toolkit and
//     returns scalars or ranked entity lists.
//
// Numeric semantics
//
// Money is exact decimal end to end (shopspring/decimal); sums of
// quantity x unit price carry no intermediate rounding. Ratios and count
// statistics are float64. Display rounding is half-up to two decimal
// places.
//
// The core does no I/O and holds no locks: every query is a pure
// computation over already-resident data, and the dataset is treated as
// immutable for the lifetime of the analyst.
package sales
