//go:build !linux && !darwin && !freebsd && !windows

package dynlib

// Fn is unavailable without a native loader; Open already failed with
// ErrUnsupportedPlatform before any Prep could run.
type Fn struct{}

func (l *Lib) Prep(symbol string, args []Kind) (*Fn, error) {
	return nil, ErrUnsupportedPlatform
}

func (f *Fn) Call(words []uint64) int32 { return 0 }
