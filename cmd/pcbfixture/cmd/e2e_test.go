package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/pcbfixture/pkg/samples"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flags to prevent accumulation between tests
	outputPath = ""
	checkOutput = false
	verbose = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestSampleE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "polygon to stdout",
			args: []string{"sample", "polygon"},
			wantContain: []string{
				"PCB[\"polygon\" 2500mil 2000mil]\n",
				"    [0mil 0mil] [100mil 0mil] [100mil 200mil] [0mil 200mil]\n",
			},
		},
		{
			name: "mixed with check",
			args: []string{"sample", "mixed", "--check"},
			wantContain: []string{
				"Layer(4 \"outline\" \"outline\")",
				"Text[100mil 1800mil 0 100 \"mixed fixture\" \"clearline\"]",
			},
		},
		{
			name:    "unknown sample",
			args:    []string{"sample", "nope"},
			wantErr: true,
		},
		{
			name:    "missing name",
			args:    []string{"sample"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestSampleToFileE2E(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.pcb")

	output, err := runCLI(t, "sample", "lines", "-o", path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output != "" {
		t.Errorf("stdout should be empty when writing to a file, got:\n%s", output)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	board, _ := samples.Build("lines")
	if diff := cmp.Diff(board.String(), string(data)); diff != "" {
		t.Errorf("file content mismatch (-want +got):\n%s", diff)
	}
}

func TestListE2E(t *testing.T) {
	output, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := strings.Join(samples.Names(), "\n") + "\n"
	if diff := cmp.Diff(want, output); diff != "" {
		t.Errorf("list output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenE2E(t *testing.T) {
	dir := t.TempDir()
	recipePath := filepath.Join(dir, "board.json")
	recipe := `{"name": "gen", "width": 1000, "height": 800,
		"layers": [{"name": "top", "objects": [{"line": {"x1": 0, "y1": 0, "x2": 0, "y2": 50}}]}]}`
	if err := os.WriteFile(recipePath, []byte(recipe), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	output, err := runCLI(t, "gen", recipePath, "--check")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{
		"PCB[\"gen\" 1000mil 800mil]\n",
		"Layer(1 \"top\" \"copper\")\n(\n  Line[0mil 0mil 0mil 50mil 10mil 2mil \"clearline\"]\n)\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q\nGot:\n%s", want, output)
		}
	}

	if _, err := runCLI(t, "gen", filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("Expected error for missing recipe")
	}
}

func TestCheckE2E(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.pcb")
	if _, err := runCLI(t, "sample", "polygon-holes", "-o", good); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	output, err := runCLI(t, "check", good)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"is well formed", "Polygon", "Hole"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q\nGot:\n%s", want, output)
		}
	}

	bad := filepath.Join(dir, "bad.pcb")
	if err := os.WriteFile(bad, []byte("Layer(1 \"top\" \"copper\")\n(\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := runCLI(t, "check", bad); err == nil {
		t.Errorf("Expected error for unbalanced fixture")
	}
}

type brokenStdout struct{}

var errBrokenPipe = errors.New("broken pipe")

func (brokenStdout) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestSampleStdoutErrorE2E(t *testing.T) {
	outputPath = ""
	checkOutput = false
	rootCmd.SetOut(brokenStdout{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"sample", "empty"})
	defer rootCmd.SetOut(nil)

	err := rootCmd.Execute()
	if !errors.Is(err, errBrokenPipe) {
		t.Fatalf("Execute() error = %v, want %v", err, errBrokenPipe)
	}
	if !strings.Contains(err.Error(), "failed to write fixture to stdout") {
		t.Errorf("error = %q, want it to name stdout", err)
	}
}
