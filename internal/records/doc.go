// Package records holds the in-memory record collections the analyst
// queries. Each collection wraps the ordered slice produced by the loader
// and adds lookup-by-id plus the filter operations the dataset exposes.
//
// Collections are read-only after construction. There is no create,
// update, or delete: the dataset is immutable for the lifetime of an
// analysis session, which is what lets the sales package build its
// grouping index once and trust it thereafter.
//
// Filter methods always return a (possibly empty) slice in source order,
// never nil, and by-id lookups report misses with an ok bool instead of
// an error.
package records
