package fileaccess

import "errors"

// Package errors for the file access bridge.
var (
	// ErrClosed is returned when Complete is called on a closed bridge.
	ErrClosed = errors.New("fileaccess: bridge closed")

	// ErrNoPendingRead is returned when Complete is called with no read in
	// flight. The signal is dropped; the protocol has no queued readiness.
	ErrNoPendingRead = errors.New("fileaccess: no read in flight")

	// ErrNegativeSize is returned when a bridge is created for a source
	// whose length cannot be determined.
	ErrNegativeSize = errors.New("fileaccess: negative source size")
)
