// Package loader ingests the six entity tables (merchants, items,
// invoices, invoice items, transactions, customers) from CSV files or a
// single Excel workbook into an immutable records.Dataset.
//
// Columns are located by header name rather than position, a UTF-8 BOM on
// the first header is stripped, and every parsed record passes
// struct-level validation before the dataset is assembled. After decoding,
// the loader verifies referential integrity: a dataset where a line item
// points at a missing invoice is rejected up front instead of surfacing
// as a wrong statistic later.
package loader
