//go:build linux || darwin || freebsd

package dynlib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func dlOpen(file string) (uintptr, error) {
	h, err := purego.Dlopen(file, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrNotFound, file, err)
	}
	return h, nil
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlClose(handle uintptr) error {
	return purego.Dlclose(handle)
}
