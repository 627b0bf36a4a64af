package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestContextFallbacks(t *testing.T) {
	ctx := context.Background()

	if loggerFromContext(ctx) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
	if got := configFromContext(ctx); got.Arena != config.Default().Arena {
		t.Errorf("configFromContext arena = %+v, want defaults", got.Arena)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	cfg := config.Default()
	cfg.Storage.Path = "/tmp/runs.db"

	ctx := withLogger(context.Background(), logger)
	ctx = withConfig(ctx, cfg)

	loggerFromContext(ctx).Debug("hello", "run", "abc")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "run=abc") {
		t.Errorf("log output = %q", buf.String())
	}
	if got := configFromContext(ctx).Storage.Path; got != "/tmp/runs.db" {
		t.Errorf("Storage.Path = %q", got)
	}
}

func TestLogWriter(t *testing.T) {
	t.Cleanup(func() {
		closeLogFile()
		flagLogFile = ""
	})

	play := &cobra.Command{Annotations: map[string]string{interactive: "true"}}
	plain := &cobra.Command{}

	flagLogFile = ""
	if w, _ := logWriter(play); w != io.Discard {
		t.Error("interactive commands should discard logs")
	}
	if w, _ := logWriter(plain); w != os.Stderr {
		t.Error("other commands should log to stderr")
	}

	flagLogFile = filepath.Join(t.TempDir(), "breakout.log")
	w, err := logWriter(play)
	if err != nil {
		t.Fatalf("logWriter: %v", err)
	}
	f, ok := w.(*os.File)
	if !ok {
		t.Fatalf("writer = %T, want *os.File", w)
	}
	if f.Name() != flagLogFile {
		t.Errorf("log file = %q, want %q", f.Name(), flagLogFile)
	}

	closeLogFile()
	if logFile != nil {
		t.Error("closeLogFile should forget the file")
	}
	if _, err := f.WriteString("late\n"); err == nil {
		t.Error("log file should be closed")
	}
	closeLogFile() // no-op once closed
}
