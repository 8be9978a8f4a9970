// Package cli provides the interactive price tracker command-line client.
//
// It wires configuration, the API gateway, the in-memory caches and the
// services into a REPL. A background watcher pings the API and switches the
// prompt between online and offline.
//
// Key features:
//   - list tracked items, track by URL, untrack with confirmation
//   - price history chart for one item (history / close)
//   - monitored keywords with their seen counts, watch / unwatch
//   - items found per keyword and ad-hoc marketplace search
//
// Lists that have never loaded print "loading" rather than an empty table,
// and a failed refresh keeps showing the last data it had.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
