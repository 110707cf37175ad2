package loader

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoBlob is returned by FromBlob when the blob is empty.
var ErrNoBlob = errors.New("loader: empty library blob")

// FromBlob writes an embedded PDFium library image to a temporary file and
// registers it under the embedded locator, so applications can ship the
// native library inside their own binary (via go:embed) instead of
// depending on a system installation. The caller may remove the returned
// file after the library has been loaded.
func FromBlob(blob []byte) (string, error) {
	if len(blob) == 0 {
		return "", ErrNoBlob
	}
	f, err := os.CreateTemp("", "libpdfium*"+libraryExtension)
	if err != nil {
		return "", fmt.Errorf("loader: extract library: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(blob); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("loader: extract library: %w", err)
	}
	path := f.Name()
	Register(LocatorEmbedded, func() (string, error) { return path, nil })
	return path, nil
}
