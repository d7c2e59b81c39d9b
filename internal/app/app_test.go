package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
	"github.com/4310V343k/labs-project-stuffs/internal/numio"
)

func newApp(t *testing.T, args ...string) *Application {
	t.Helper()
	var stderr bytes.Buffer
	a, err := New(append([]string{"bigcalc"}, args...), &stderr)
	if err != nil {
		t.Fatalf("New(%v) failed: %v\nstderr: %s", args, err, stderr.String())
	}
	return a
}

func TestNewParsesArguments(t *testing.T) {
	a := newApp(t, "-op", "mul", "-a", "6", "-b", "7", "-q")

	if a.Config.Op != "mul" {
		t.Errorf("Op = %q, want mul", a.Config.Op)
	}
	if a.Config.A != "6" || a.Config.B != "7" {
		t.Errorf("operands = (%q, %q), want (6, 7)", a.Config.A, a.Config.B)
	}
	if !a.Config.Quiet {
		t.Error("quiet flag not applied")
	}
}

func TestNewRejectsUnknownOperation(t *testing.T) {
	var stderr bytes.Buffer
	_, err := New([]string{"bigcalc", "-op", "frobnicate"}, &stderr)
	if err == nil {
		t.Fatal("expected an error for an unknown operation")
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
	}
}

func TestIsHelpError(t *testing.T) {
	var stderr bytes.Buffer
	_, err := New([]string{"bigcalc", "-h"}, &stderr)
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false, want true", err)
	}
	if IsHelpError(errors.New("boom")) {
		t.Error("IsHelpError should reject unrelated errors")
	}
	if !IsHelpError(flag.ErrHelp) {
		t.Error("IsHelpError should accept flag.ErrHelp directly")
	}
}

func TestRunCalculateQuiet(t *testing.T) {
	a := newApp(t, "-op", "add", "-a", "2", "-b", "3", "-q")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	if out.String() != "5\n" {
		t.Errorf("output = %q, want \"5\\n\"", out.String())
	}
}

func TestRunCalculateLoadsOperandsFromFiles(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	if err := numio.WriteOperand(aPath, "100"); err != nil {
		t.Fatal(err)
	}
	if err := numio.WriteOperand(bPath, "7"); err != nil {
		t.Fatal(err)
	}

	a := newApp(t, "-op", "div", "-a-file", aPath, "-b-file", bPath, "-q")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	if out.String() != "14\n2\n" {
		t.Errorf("output = %q, want quotient and remainder lines", out.String())
	}
}

func TestRunCalculateMissingOperandFile(t *testing.T) {
	a := newApp(t, "-op", "add", "-a-file", filepath.Join(t.TempDir(), "missing.txt"), "-b", "1", "-q")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code == apperrors.ExitSuccess {
		t.Error("a missing operand file should fail the run")
	}
}

func TestRunCalculateDivisionByZero(t *testing.T) {
	a := newApp(t, "-op", "div", "-a", "1", "-b", "0", "-q")

	var stderr bytes.Buffer
	a.ErrWriter = &stderr

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code == apperrors.ExitSuccess {
		t.Fatal("division by zero should fail the run")
	}
	if !strings.Contains(stderr.String(), "division by zero") {
		t.Errorf("stderr = %q, want a division by zero message", stderr.String())
	}
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")

	a := newApp(t, "-gen", "AB", "-gen-bytes", "32", "-a-file", aPath, "-b-file", bPath, "-q")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}

	for _, p := range []string{aPath, bPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("operand file %s was not written: %v", p, err)
		}
		if v, err := numio.LoadOperand(p); err != nil || v == "" {
			t.Errorf("operand file %s did not round trip: (%q, %v)", p, v, err)
		}
	}
}

func TestRunCompletion(t *testing.T) {
	a := newApp(t, "-completion", "bash")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	if !strings.Contains(out.String(), "_bigcalc_completions") {
		t.Error("bash completion script missing from output")
	}
}

func TestRunCompletionUnsupportedShell(t *testing.T) {
	a := newApp(t, "-completion", "tcsh")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

func TestRunOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	a := newApp(t, "-op", "pow", "-a", "12", "-exp", "2", "-q", "-output", path)

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}

	v, err := numio.LoadOperand(path)
	if err != nil {
		t.Fatalf("result file not readable as an operand: %v", err)
	}
	if v != "144" {
		t.Errorf("saved result = %q, want 144", v)
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"bigcalc", "-version"}, true},
		{[]string{"bigcalc", "--version"}, true},
		{[]string{"bigcalc", "-op", "add"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "bigcalc") {
		t.Errorf("version banner = %q, want the program name", out.String())
	}
}
