package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "shouting")
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !strings.HasPrefix(err.Error(), "log level: ") {
		t.Errorf("error = %q, want log level prefix", err)
	}
}
