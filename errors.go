package pdfrx

import "errors"

// Package errors for pdfrx.
var (
	// ErrNotInitialized is returned when documents are opened before Init.
	ErrNotInitialized = errors.New("pdfrx: library not initialized")

	// ErrClosed is returned when a closed Document or Page is used.
	ErrClosed = errors.New("pdfrx: closed")

	// ErrPageIndex is returned when a page index is out of range.
	ErrPageIndex = errors.New("pdfrx: page index out of range")

	// ErrInvalidDimensions is returned when a render target size is not
	// positive.
	ErrInvalidDimensions = errors.New("pdfrx: invalid render dimensions")

	// Document load failures, mapped from the engine's error codes.

	// ErrLoadUnknown is returned when the engine reports an unclassified
	// load failure.
	ErrLoadUnknown = errors.New("pdfrx: unknown load error")

	// ErrFile is returned when the document bytes could not be read.
	ErrFile = errors.New("pdfrx: file access error")

	// ErrFormat is returned when the data is not a PDF or is corrupted.
	ErrFormat = errors.New("pdfrx: invalid or corrupted PDF")

	// ErrPassword is returned when the document needs a password or the
	// supplied one is wrong.
	ErrPassword = errors.New("pdfrx: password required or incorrect")

	// ErrSecurity is returned when the document uses an unsupported
	// security scheme.
	ErrSecurity = errors.New("pdfrx: unsupported security scheme")

	// ErrPage is returned when a page fails to load or render.
	ErrPage = errors.New("pdfrx: page not found or content error")

	// ErrTextUnavailable is returned when the text layer of a page cannot
	// be loaded.
	ErrTextUnavailable = errors.New("pdfrx: text layer unavailable")
)
