// Package http exposes the analytics queries over a chi router. Every
// endpoint is read-only; failures render as RFC 7807 problem documents.
package http
