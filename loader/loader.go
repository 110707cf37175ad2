package loader

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Locator returns a candidate path (or bare library name for the system
// search path) for the PDFium shared library, or an error explaining why
// this source has no candidate.
type Locator func() (string, error)

// Well-known locator names, in probe priority order.
const (
	LocatorPath     = "path"
	LocatorEnv      = "env"
	LocatorEmbedded = "embedded"
	LocatorSystem   = "system"
)

// EnvLibraryPath is the environment variable consulted by the env locator.
const EnvLibraryPath = "PDFRX_LIBRARY_PATH"

// ErrNotFound is returned by Locate when no registered locator produced a
// candidate.
var ErrNotFound = errors.New("loader: no pdfium library found")

// registry holds registered locators.
var (
	registryMu sync.RWMutex
	locators   = make(map[string]Locator)
	// Probe order for Locate (first candidate wins). Locators registered
	// under other names are probed after these, in registration order.
	locatorPriority = []string{LocatorPath, LocatorEnv, LocatorEmbedded, LocatorSystem}
	extraOrder      []string
)

func init() {
	locators[LocatorEnv] = func() (string, error) {
		if p := os.Getenv(EnvLibraryPath); p != "" {
			return p, nil
		}
		return "", fmt.Errorf("loader: %s not set", EnvLibraryPath)
	}
	locators[LocatorSystem] = func() (string, error) {
		return systemLibraryName, nil
	}
}

// Register registers a locator under the given name, replacing any previous
// locator with that name. Names outside the well-known set are probed after
// the built-in priority order.
func Register(name string, loc Locator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, known := locators[name]; !known && !wellKnown(name) {
		extraOrder = append(extraOrder, name)
	}
	locators[name] = loc
}

// Unregister removes a locator. This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(locators, name)
	for i, n := range extraOrder {
		if n == name {
			extraOrder = append(extraOrder[:i], extraOrder[i+1:]...)
			break
		}
	}
}

// Available returns the names of all registered locators.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(locators))
	for name := range locators {
		names = append(names, name)
	}
	return names
}

// Get returns the locator registered under name, or nil.
func Get(name string) Locator {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return locators[name]
}

// SetPath registers an explicit library path, which takes precedence over
// every other locator.
func SetPath(path string) {
	Register(LocatorPath, func() (string, error) { return path, nil })
}

// Locate probes the registered locators in priority order and returns the
// first candidate. When every locator declines, the individual reasons are
// joined onto ErrNotFound.
func Locate() (string, error) {
	registryMu.RLock()
	order := make([]string, 0, len(locatorPriority)+len(extraOrder))
	order = append(order, locatorPriority...)
	order = append(order, extraOrder...)
	probes := make([]Locator, 0, len(order))
	names := make([]string, 0, len(order))
	for _, name := range order {
		if loc, ok := locators[name]; ok {
			probes = append(probes, loc)
			names = append(names, name)
		}
	}
	registryMu.RUnlock()

	errs := []error{ErrNotFound}
	for i, probe := range probes {
		path, err := probe()
		if err == nil {
			return path, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", names[i], err))
	}
	return "", errors.Join(errs...)
}

func wellKnown(name string) bool {
	for _, n := range locatorPriority {
		if n == name {
			return true
		}
	}
	return false
}
