// Package client is the remote data gateway of the price tracker CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with one
//     operation per resource: items, price history, keywords, items found
//     per keyword, ad-hoc search and a liveness Ping.
//  2. A concrete REST implementation (see HTTPClient). It attaches the
//     x-api-key header to privileged calls only, tags every request with an
//     X-Request-ID, retries idempotent reads on transport failures and maps
//     HTTP statuses to sentinel errors.
//
// Responses are decoded into the models types and validated. Nothing is
// cached here; the cache package owns that.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors that callers match with
// errors.Is: ErrTransport, ErrUnauthorized, ErrValidation, ErrDecode.
// Other non-2xx answers surface as *StatusError. Retryable reports whether
// an error is worth another attempt.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honour cancellation; the only time bound is the
// transport timeout from the configuration.
package client
