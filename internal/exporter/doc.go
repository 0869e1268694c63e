// Package exporter writes analyst summary reports to the reports
// directory, as CSV for spreadsheet use and JSON for programmatic use.
package exporter
