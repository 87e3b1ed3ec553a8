package main

import (
	"testing"

	"github.com/flavio-munis/bbp-go/internal/bbp"
)

func TestRunSequentialEndToEnd(t *testing.T) {
	want := "243F6A8885"
	if got := bbp.RunSequential(0).Hex(); got != want {
		t.Fatalf("Hex() = %q, want %q", got, want)
	}
}

func TestConfigValidateAcceptsSingleThread(t *testing.T) {
	cfg := bbp.Config{Start: 1000, Threads: 1, Formula: bbp.FormulaOriginal}
	if _, err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}
