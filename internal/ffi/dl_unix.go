//go:build darwin || freebsd || linux

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("ffi: dlopen %s: %w", path, err)
	}
	return handle, nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, fmt.Errorf("ffi: %w: %s", ErrSymbolNotFound, name)
	}
	return addr, nil
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
