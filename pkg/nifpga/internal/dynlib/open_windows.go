//go:build windows

package dynlib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func dlOpen(file string) (uintptr, error) {
	h, err := windows.LoadLibrary(file)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrNotFound, file, err)
	}
	return uintptr(h), nil
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func dlClose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
