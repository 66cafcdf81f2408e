package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		Reset()
		SetDebug(false)
	})
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)
	SetDebug(false)

	Debug("debug-hidden-marker")
	Info("info-marker %d", 1)
	Warn("warn-marker %s", "x")
	Error("error-marker")

	content := readLog(t, logPath)
	if strings.Contains(content, "debug-hidden-marker") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"info-marker 1", "warn-marker x", "error-marker"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}
}

func TestSetDebug(t *testing.T) {
	logPath := setupTestLogger(t)
	SetDebug(true)

	Debug("visible-debug-marker")

	if !strings.Contains(readLog(t, logPath), "visible-debug-marker") {
		t.Error("debug message should be written when debug is enabled")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath := setupTestLogger(t)

	log := ComponentLogger("Timer")
	log.Info("component-marker", "minutes", 25)

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=Timer") {
		t.Error("component attribute missing from log line")
	}
	if !strings.Contains(content, "minutes=25") {
		t.Error("structured attribute missing from log line")
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Info("concurrent %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "log1.log")
	path2 := filepath.Join(dir, "log2.log")

	Reset()
	if err := Init(path1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()
	if err := Init(path2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")
	Reset()

	content1 := readLog(t, path1)
	content2 := readLog(t, path2)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Errorf("log1 content unexpected: %q", content1)
	}
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Errorf("log2 content unexpected: %q", content2)
	}
}
