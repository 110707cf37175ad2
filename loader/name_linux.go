//go:build linux || freebsd

package loader

const (
	systemLibraryName = "libpdfium.so"
	libraryExtension  = ".so"
)
