// Package app wires configuration, dataset loading, the analytics
// service, and the HTTP server into one runnable application.
package app
