//go:build darwin

package loader

const (
	systemLibraryName = "libpdfium.dylib"
	libraryExtension  = ".dylib"
)
