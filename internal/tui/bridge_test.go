package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/4310V343k/labs-project-stuffs/internal/bignum"
	"github.com/4310V343k/labs-project-stuffs/internal/numio"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
)

func TestExecuteCmd(t *testing.T) {
	orch := orchestration.New(nil, nil)

	cmd := executeCmd(context.Background(), orch, orchestration.Request{
		Op: orchestration.OpAdd, A: "2", B: "3",
	}, 7, time.Minute)

	msg, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatal("executeCmd should produce a ResultMsg")
	}
	if msg.Generation != 7 {
		t.Errorf("Generation = %d, want 7", msg.Generation)
	}
	if msg.Result.Err != nil || msg.Result.Value != "5" {
		t.Errorf("result = (%s, %v), want (5, nil)", msg.Result.Value, msg.Result.Err)
	}
}

func TestExecuteCmdTimeoutBoundsOneOperation(t *testing.T) {
	orch := orchestration.New(nil, nil)
	session, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Operands large enough that the multiply cannot beat a nanosecond
	// deadline to the result.
	wide := strings.Repeat("9", 50000)
	cmd := executeCmd(session, orch, orchestration.Request{
		Op: orchestration.OpMul, A: wide, B: wide,
	}, 1, time.Nanosecond)

	msg := cmd().(ResultMsg)
	if !errors.Is(msg.Result.Err, context.DeadlineExceeded) {
		t.Errorf("result error = %v, want context.DeadlineExceeded", msg.Result.Err)
	}

	// The expired operation deadline must not take the session down.
	if session.Err() != nil {
		t.Errorf("session context was cancelled by the operation timeout: %v", session.Err())
	}
}

func TestGenerateCmd(t *testing.T) {
	tests := []struct {
		target      string
		wantA, wantB bool
	}{
		{"A", true, false},
		{"B", false, true},
		{"AB", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			msg, ok := generateCmd(tt.target, 16)().(GeneratedMsg)
			if !ok {
				t.Fatal("generateCmd should produce a GeneratedMsg")
			}
			if msg.Err != nil {
				t.Fatalf("generation failed: %v", msg.Err)
			}
			if got := msg.A != ""; got != tt.wantA {
				t.Errorf("A generated = %v, want %v", got, tt.wantA)
			}
			if got := msg.B != ""; got != tt.wantB {
				t.Errorf("B generated = %v, want %v", got, tt.wantB)
			}
			for _, v := range []string{msg.A, msg.B} {
				if v != "" && !bignum.IsValidDecimal(v) {
					t.Errorf("generated operand is not a valid decimal: %q", v)
				}
			}
		})
	}
}

func TestGenerateCmdInvalidSize(t *testing.T) {
	msg := generateCmd("A", 0)().(GeneratedMsg)
	if msg.Err == nil {
		t.Error("expected an error for a non-positive size")
	}
}

func TestLoadCmd(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	if err := numio.WriteOperand(aPath, "12345"); err != nil {
		t.Fatal(err)
	}
	if err := numio.WriteOperand(bPath, "678"); err != nil {
		t.Fatal(err)
	}

	msg, ok := loadCmd(aPath, bPath)().(LoadedMsg)
	if !ok {
		t.Fatal("loadCmd should produce a LoadedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("load failed: %v", msg.Err)
	}
	if msg.A != "12345" || msg.B != "678" {
		t.Errorf("loaded (%s, %s), want (12345, 678)", msg.A, msg.B)
	}
}

func TestLoadCmdMissingFile(t *testing.T) {
	dir := t.TempDir()
	msg := loadCmd(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "missing.txt"))().(LoadedMsg)
	if msg.Err == nil {
		t.Error("expected an error for a missing operand file")
	}
}

func TestSaveCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	value := strings.Repeat("9", 50)

	msg, ok := saveCmd(path, value)().(SavedMsg)
	if !ok {
		t.Fatal("saveCmd should produce a SavedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("save failed: %v", msg.Err)
	}

	loaded, err := numio.LoadOperand(path)
	if err != nil || loaded != value {
		t.Errorf("saved file round trip = (%s, %v), want (%s, nil)", loaded, err, value)
	}
}

func TestWatchContextCmd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg, ok := watchContextCmd(ctx)().(ContextCancelledMsg)
	if !ok {
		t.Fatal("watchContextCmd should produce a ContextCancelledMsg")
	}
	if msg.Err == nil {
		t.Error("expected the context error to be carried")
	}
}

func TestSampleStatsCmd(t *testing.T) {
	msg, ok := sampleStatsCmd()().(StatsMsg)
	if !ok {
		t.Fatal("sampleStatsCmd should produce a StatsMsg")
	}
	if msg.Stats.Goroutines <= 0 {
		t.Error("goroutine count should be positive")
	}
}
