package loader

import (
	"errors"
	"os"
	"slices"
	"testing"
)

func TestLocateSystemFallback(t *testing.T) {
	t.Setenv(EnvLibraryPath, "")

	path, err := Locate()
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if path != systemLibraryName {
		t.Errorf("Locate() = %q, want %q", path, systemLibraryName)
	}
}

func TestLocateEnvOverridesSystem(t *testing.T) {
	t.Setenv(EnvLibraryPath, "/opt/pdfium/libpdfium.so")

	path, err := Locate()
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if path != "/opt/pdfium/libpdfium.so" {
		t.Errorf("Locate() = %q, want env path", path)
	}
}

func TestSetPathWinsOverEverything(t *testing.T) {
	t.Setenv(EnvLibraryPath, "/env/libpdfium.so")
	SetPath("/explicit/libpdfium.so")
	defer Unregister(LocatorPath)

	path, err := Locate()
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if path != "/explicit/libpdfium.so" {
		t.Errorf("Locate() = %q, want explicit path", path)
	}
}

func TestRegisterCustomLocator(t *testing.T) {
	Register("bundle", func() (string, error) { return "/bundle/libpdfium.so", nil })
	defer Unregister("bundle")

	if !slices.Contains(Available(), "bundle") {
		t.Fatalf("Available() = %v, missing bundle", Available())
	}
	loc := Get("bundle")
	if loc == nil {
		t.Fatal("Get(bundle) = nil")
	}
	path, err := loc()
	if err != nil || path != "/bundle/libpdfium.so" {
		t.Errorf("locator = (%q, %v)", path, err)
	}
}

func TestLocateReportsAllFailures(t *testing.T) {
	t.Setenv(EnvLibraryPath, "")
	// Shadow the system locator so every probe declines.
	Register(LocatorSystem, func() (string, error) { return "", errors.New("no system lib") })
	defer Register(LocatorSystem, func() (string, error) { return systemLibraryName, nil })

	_, err := Locate()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate() error = %v, want ErrNotFound", err)
	}
}

func TestFromBlob(t *testing.T) {
	path, err := FromBlob([]byte("not really a shared library"))
	if err != nil {
		t.Fatalf("FromBlob() error = %v", err)
	}
	defer os.Remove(path)
	defer Unregister(LocatorEmbedded)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) error = %v", path, err)
	}
	if string(data) != "not really a shared library" {
		t.Error("extracted file does not match blob")
	}

	t.Setenv(EnvLibraryPath, "")
	got, err := Locate()
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != path {
		t.Errorf("Locate() = %q, want extracted %q", got, path)
	}
}

func TestFromBlobEmpty(t *testing.T) {
	if _, err := FromBlob(nil); !errors.Is(err, ErrNoBlob) {
		t.Errorf("FromBlob(nil) error = %v, want %v", err, ErrNoBlob)
	}
}
