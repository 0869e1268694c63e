// Package services hosts the application services between the HTTP
// transport and the analytics core. Services carry the request context
// and a component logger; query semantics live in internal/sales.
package services
