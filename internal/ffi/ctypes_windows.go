//go:build windows

package ffi

// culong mirrors C's unsigned long, which stays 4 bytes on Windows (LLP64).
// Getting this wrong shifts every later field of FPDF_FILEACCESS.
type culong = uint32
