package pdfrx

import (
	"fmt"
	"sync"

	"github.com/pdfrx/pdfrx-go/internal/ffi"
	"github.com/pdfrx/pdfrx-go/loader"
)

// engine guards the process-wide PDFium instance. PDFium keeps global state,
// so there is exactly one loaded library per process.
var (
	engineMu sync.Mutex
	engine   *ffi.Library
)

// Init locates, loads and initializes the PDFium shared library. It is safe
// to call more than once; subsequent calls are no-ops while the library is
// loaded. Most applications call Init once at startup and Shutdown at exit.
func Init(opts ...InitOption) error {
	var o initOptions
	for _, opt := range opts {
		opt(&o)
	}

	engineMu.Lock()
	defer engineMu.Unlock()
	if engine != nil {
		return nil
	}

	path := o.libraryPath
	if path == "" {
		var err error
		if path, err = loader.Locate(); err != nil {
			return err
		}
	}

	lib, err := ffi.Open(path)
	if err != nil {
		return fmt.Errorf("pdfrx: load library: %w", err)
	}
	lib.InitLibraryWithConfig(&ffi.LibraryConfig{Version: 2})
	engine = lib
	Logger().Info("pdfium library loaded", "path", path, "symbols", len(lib.Binding()))
	return nil
}

// Shutdown tears down PDFium and unloads the shared library. All documents
// must be closed first.
func Shutdown() {
	engineMu.Lock()
	defer engineMu.Unlock()
	if engine == nil {
		return
	}
	engine.DestroyLibrary()
	if err := engine.Close(); err != nil {
		Logger().Warn("unloading pdfium library failed", "error", err)
	}
	engine = nil
	Logger().Info("pdfium library unloaded")
}

// Binding returns the addresses of every re-exported PDFium entry point in
// the fixed table order of ffi.SymbolNames, for embedders that bind the raw
// API surface in bulk by position.
func Binding() ([]uintptr, error) {
	lib, err := activeEngine()
	if err != nil {
		return nil, err
	}
	return lib.Binding(), nil
}

func activeEngine() (*ffi.Library, error) {
	engineMu.Lock()
	defer engineMu.Unlock()
	if engine == nil {
		return nil, ErrNotInitialized
	}
	return engine, nil
}

// setEngine swaps the active library and returns a restore function.
// Tests use it to install a fake engine.
func setEngine(lib *ffi.Library) func() {
	engineMu.Lock()
	prev := engine
	engine = lib
	engineMu.Unlock()
	return func() {
		engineMu.Lock()
		engine = prev
		engineMu.Unlock()
	}
}
