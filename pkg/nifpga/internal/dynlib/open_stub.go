//go:build !linux && !darwin && !freebsd && !windows

package dynlib

func dlOpen(file string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlClose(handle uintptr) error {
	return nil
}
