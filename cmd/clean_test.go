package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.input)
			result := confirm(reader, io.Discard, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	reader := strings.NewReader("")
	if confirm(reader, io.Discard, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	if confirm(&errorReader{}, io.Discard, "Test?") {
		t.Error("confirm(error) = true, want false")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunClean(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		yes         bool
		withPrefs   bool
		wantRemoved bool
		wantOutput  string
	}{
		{"confirmed", "y\n", false, true, true, "Removed 2 file(s)."},
		{"declined", "n\n", false, true, false, "Aborted."},
		{"skip confirm", "", true, false, true, "Removed 1 file(s)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := skipConfirm
			defer func() { skipConfirm = orig }()
			skipConfirm = tt.yes

			dir := t.TempDir()
			logPath := filepath.Join(dir, "studdy-debug.log")
			prefsPath := filepath.Join(dir, "config.yaml")
			writeFile(t, logPath)
			writeFile(t, prefsPath)

			usePrefs := ""
			if tt.withPrefs {
				usePrefs = prefsPath
			}

			var out bytes.Buffer
			if err := runCleanWithReader(strings.NewReader(tt.input), &out, logPath, usePrefs); err != nil {
				t.Fatalf("runCleanWithReader() error = %v", err)
			}

			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOutput)
			}
			if exists(logPath) == tt.wantRemoved {
				t.Errorf("log exists = %v, want removed = %v", exists(logPath), tt.wantRemoved)
			}
			if !tt.withPrefs && !exists(prefsPath) {
				t.Error("preferences should be left alone without --prefs")
			}
		})
	}
}

func TestRunClean_NothingToClean(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := runCleanWithReader(strings.NewReader(""), &out, filepath.Join(dir, "missing.log"), "")
	if err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if !strings.Contains(out.String(), "Nothing to clean.") {
		t.Errorf("output = %q", out.String())
	}
}
