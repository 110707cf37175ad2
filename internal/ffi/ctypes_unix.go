//go:build !windows

package ffi

// culong mirrors C's unsigned long, which is 8 bytes on 64-bit unix
// platforms. PDFium uses it for file lengths, read offsets and error codes.
type culong = uint64
