// Package ffi binds the PDFium C API at runtime through dynamic symbol
// lookup, without cgo.
//
// Open loads the shared library and resolves every re-exported entry point
// by name into typed Go functions on a Library value. The full entry-point
// list is also resolved once into a fixed-order address table (Binding),
// so a dynamic-FFI consumer can bind the whole API surface in bulk instead
// of performing per-symbol name lookups; the table's ordering is part of
// the binary contract and is locked by SymbolNames.
//
// The package also builds the custom file-access descriptor PDFium's
// document-open entry point consumes: a C-callable get-block trampoline
// that forwards into a fileaccess.Bridge, with the bridge identified by a
// registry token because a C callback cannot carry a Go pointer.
package ffi
