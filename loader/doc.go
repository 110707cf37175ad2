// Package loader locates the PDFium shared library to load.
//
// Candidate locations are expressed as named locators in a registry, probed
// in a fixed priority order: an explicit path set by the application, the
// PDFRX_LIBRARY_PATH environment variable, a library extracted from an
// embedded blob, and finally the platform's default library name resolved
// through the system search path. Applications with unusual deployments can
// register their own locators.
package loader
