package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRoutesToSlog(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log := New(base).With("library", "NiFpga")
	ctx := context.Background()

	log.Debug(ctx, "resolving symbols", "count", 3)
	log.Info(ctx, "native library bound")
	log.Warn(ctx, "tolerated warning", "status", "FifoTimeoutWarning (50400)")
	log.Error(ctx, "call failed")

	out := buf.String()
	for _, frag := range []string{
		"resolving symbols", "native library bound", "tolerated warning",
		"call failed", "library=NiFpga", "count=3",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("output missing %q:\n%s", frag, out)
		}
	}
}

func TestNewNilFallsBackToDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	log := Discard().With("k", "v")
	log.Debug(context.Background(), "dropped")
	log.Error(context.Background(), "dropped")
}
