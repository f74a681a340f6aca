package nifpga

import (
	"fmt"
	"runtime"
)

// artifactName derives the platform artifact for a logical library name:
// a dynamic link library on windows, a shared object on linux and freebsd,
// a framework bundle path on darwin.
func artifactName(goos, library string) (string, error) {
	switch goos {
	case "windows":
		return library + ".dll", nil
	case "linux", "freebsd":
		return "lib" + library + ".so", nil
	case "darwin":
		return library + ".framework/" + library, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
}

// notFoundError builds the platform remediation for a failed library load.
// The text names the expected artifact, points the operator at the driver
// installation path for the platform, and preserves the loader's own
// diagnostic. Platforms with no native support surface
// ErrUnsupportedPlatform instead of a generic not-found.
func notFoundError(goos, library string, cause error) error {
	switch goos {
	case "windows":
		return fmt.Errorf("%w: unable to find %s.dll on your system; "+
			"ensure you have installed the relevant RIO distribution for your device "+
			"(search for your product at http://www.ni.com/downloads/ni-drivers/). "+
			"Original error: %v", ErrLibraryNotFound, library, cause)
	case "linux", "freebsd":
		return fmt.Errorf("%w: unable to find lib%s.so on your system. "+
			"On desktop Linux, install the latest NI Linux Device Drivers for your product "+
			"(https://www.ni.com/en-us/support/downloads/drivers/download.ni-linux-device-drivers.html). "+
			"On a Linux RT embedded target (cRIO, sbRIO, FlexRIO, Industrial Controller), install NI-RIO "+
			"to the target through MAX (https://www.ni.com/getting-started/set-up-hardware/compactrio/controller-software). "+
			"Original error: %v", ErrLibraryNotFound, library, cause)
	case "darwin":
		return fmt.Errorf("%w: unable to find %s.framework on your system; "+
			"RIO devices are not supported on macOS. "+
			"Original error: %v", ErrLibraryNotFound, library, cause)
	}
	return fmt.Errorf("%w: %s: %v", ErrUnsupportedPlatform, goos, cause)
}

// loadArtifact loads the platform artifact for the logical library name
// through the host's standard resolution order, one attempt only.
func loadArtifact(library string) (backend Backend, err error) {
	file, err := artifactName(runtime.GOOS, library)
	if err != nil {
		return nil, err
	}
	b, err := openDynBackend(file)
	if err != nil {
		return nil, notFoundError(runtime.GOOS, library, err)
	}
	return b, nil
}
