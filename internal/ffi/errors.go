package ffi

import "errors"

// Package errors for the dynamic binding layer.
var (
	// ErrSymbolNotFound is returned when a required entry point is missing
	// from the loaded library.
	ErrSymbolNotFound = errors.New("ffi: symbol not found")

	// ErrClosed is returned when a Library is used after Close.
	ErrClosed = errors.New("ffi: library closed")
)
