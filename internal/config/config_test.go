package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("bigcalc", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Op != "add" {
		t.Errorf("default Op = %q, want %q", cfg.Op, "add")
	}
	if cfg.AFile != DefaultAFile || cfg.BFile != DefaultBFile {
		t.Errorf("default operand files = %q/%q, want %q/%q", cfg.AFile, cfg.BFile, DefaultAFile, DefaultBFile)
	}
	if cfg.Exponent != 2 {
		t.Errorf("default Exponent = %d, want 2", cfg.Exponent)
	}
	if cfg.GenBytes != 1024 {
		t.Errorf("default GenBytes = %d, want 1024", cfg.GenBytes)
	}
	if cfg.Timeout <= 0 {
		t.Errorf("adaptive Timeout = %v, want positive", cfg.Timeout)
	}
	if cfg.TUI || cfg.Quiet || cfg.Verbose || cfg.NoColor {
		t.Error("boolean flags should default to false")
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{
		"-op", "div",
		"-a", "100",
		"-b", "7",
		"-o", "out.txt",
		"-timeout", "30s",
		"-q",
		"-metrics-listen", ":9091",
	}
	cfg, err := ParseConfig("bigcalc", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Op != "div" || cfg.A != "100" || cfg.B != "7" {
		t.Errorf("parsed operands wrong: %+v", cfg)
	}
	if cfg.OutputFile != "out.txt" {
		t.Errorf("OutputFile = %q, want %q", cfg.OutputFile, "out.txt")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("shorthand -q should set Quiet")
	}
	if cfg.MetricsAddr != ":9091" {
		t.Errorf("MetricsAddr = %q, want %q", cfg.MetricsAddr, ":9091")
	}
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown operation", []string{"-op", "mod"}},
		{"exponent too large", []string{"-op", "pow", "-exp", "4"}},
		{"exponent zero", []string{"-op", "pow", "-exp", "0"}},
		{"bad gen target", []string{"-gen", "C"}},
		{"negative gen bytes", []string{"-gen", "A", "-gen-bytes", "-5"}},
		{"negative timeout", []string{"-timeout", "-1s"}},
		{"quiet and verbose", []string{"-q", "-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("bigcalc", tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected a configuration error")
			}
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("expected ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := ParseConfig("bigcalc", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseConfigPowExponents(t *testing.T) {
	for exp := 1; exp <= 3; exp++ {
		args := []string{"-op", "pow", "-exp", string(rune('0' + exp))}
		cfg, err := ParseConfig("bigcalc", args, io.Discard)
		if err != nil {
			t.Errorf("exponent %d should be accepted: %v", exp, err)
			continue
		}
		if cfg.Exponent != exp {
			t.Errorf("Exponent = %d, want %d", cfg.Exponent, exp)
		}
	}
}

func TestApplyAdaptiveDefaults(t *testing.T) {
	cfg := ApplyAdaptiveDefaults(AppConfig{})
	if cfg.Timeout <= 0 {
		t.Errorf("adaptive timeout should be positive, got %v", cfg.Timeout)
	}

	explicit := ApplyAdaptiveDefaults(AppConfig{Timeout: time.Second})
	if explicit.Timeout != time.Second {
		t.Errorf("explicit timeout should be preserved, got %v", explicit.Timeout)
	}
}
