// Package cache keeps the client's view of remote collections.
//
// A Collection is replaced wholesale on every successful refresh; entries
// are never merged or patched locally. Each refresh takes a sequence token
// when it starts and its result is committed only when that token is newer
// than the one already committed, so a slow early refresh cannot overwrite
// a later one. A failed refresh keeps the last good data and records the
// error.
//
// Store groups the collections the CLI shows.
package cache
