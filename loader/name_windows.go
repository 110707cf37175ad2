//go:build windows

package loader

const (
	systemLibraryName = "pdfium.dll"
	libraryExtension  = ".dll"
)
