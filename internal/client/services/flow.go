// Package services contains the application services of the price tracker
// client. Every mutation runs the same flow: validate locally, take the
// control's in-flight guard, call the API, refresh the owning cache
// collection on success, release the guard.
package services

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrBusy rejects a submission while the same control is in flight.
	ErrBusy = errors.New("operation already in progress")
	// ErrCancelled means the user declined a confirmation.
	ErrCancelled = errors.New("cancelled")
	// ErrInvalidInput is returned before any request is sent.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotRefreshed wraps a refresh failure after a successful mutation.
	// The change was made; the shown list may be out of date.
	ErrNotRefreshed = errors.New("change saved but reload failed")
)

// Confirm asks the user a yes/no question.
type Confirm func(prompt string) bool

// Flow is the in-flight guard of one control. The zero value is idle.
type Flow struct {
	busy atomic.Bool
}

// Run executes fn unless the flow is already running, in which case it
// returns ErrBusy without calling fn.
func (f *Flow) Run(fn func() error) error {
	if !f.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer f.busy.Store(false)
	return fn()
}

// Busy reports whether fn of a Run call is executing.
func (f *Flow) Busy() bool {
	return f.busy.Load()
}
