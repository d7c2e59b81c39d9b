package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and exercises the main flag surface.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "bigcalc"
	if runtime.GOOS == "windows" {
		binName = "bigcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD, so build from the
	// module root two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/bigcalc")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build bigcalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Basic Addition",
			args:     []string{"-op", "add", "-a", "2", "-b", "3", "-q"},
			wantOut:  "5",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Division With Remainder",
			args:     []string{"-op", "div", "-a", "100", "-b", "7", "-q"},
			wantOut:  "14",
			wantCode: 0,
		},
		{
			name:     "Primality",
			args:     []string{"-op", "prime", "-a", "2147483647", "-q"},
			wantOut:  "prime",
			wantCode: 0,
		},
		{
			name:     "Underflow",
			args:     []string{"-op", "sub", "-a", "1", "-b", "2", "-q"},
			wantOut:  "",
			wantCode: 1,
		},
		{
			name:     "Division By Zero",
			args:     []string{"-op", "div", "-a", "1", "-b", "0", "-q"},
			wantOut:  "",
			wantCode: 1,
		},
		{
			name:     "Invalid Operation",
			args:     []string{"-op", "frobnicate"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "bigcalc",
			wantCode: 0,
		},
		{
			name:     "Bash Completion",
			args:     []string{"-completion", "bash"},
			wantOut:  "_bigcalc_completions",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Fatalf("Expected a non-zero exit code, but the command succeeded.\nOutput: %s", outStr)
				}
				if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() != tt.wantCode {
					t.Errorf("Exit code = %d, want %d.\nOutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}
