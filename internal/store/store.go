// Package store keeps client side state for the task list and the chat view.
//
// Every action follows the same protocol: it marks the store as loading and
// clears the previous error, calls the API, then either applies the returned
// data or records the error. Locks are never held while a request is in flight.
package store

import "errors"

// ErrNoSession is returned when a chat action needs a selected session
var ErrNoSession = errors.New("no chat session selected")

// Error is returned by a failed action. Message is the text kept in the store.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// failure picks the message for a failed call. Server messages are kept
// verbatim, transport errors collapse to fallback.
func failure(serverMsg string, transportErr error, fallback string) *Error {
	if transportErr != nil {
		return &Error{Message: fallback, Err: transportErr}
	}
	if serverMsg == "" {
		serverMsg = fallback
	}
	return &Error{Message: serverMsg}
}
