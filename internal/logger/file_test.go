package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestFileLogger_CreatesRunLogAndSymlink(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLoggerWithDir(logDir)
	if err != nil {
		t.Fatalf("NewFileLoggerWithDir() error = %v", err)
	}
	defer fl.Close()

	if _, err := os.Stat(fl.RunFile()); err != nil {
		t.Fatalf("run log file missing: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(fl.RunFile()), "run-") {
		t.Errorf("run log name = %q, want run-* prefix", filepath.Base(fl.RunFile()))
	}

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("latest.log symlink missing: %v", err)
	}
	if target != filepath.Base(fl.RunFile()) {
		t.Errorf("latest.log -> %q, want %q", target, filepath.Base(fl.RunFile()))
	}
}

func TestFileLogger_HeaderAndLevels(t *testing.T) {
	logDir := t.TempDir()

	fl, err := NewFileLoggerWithDirAndLevel(logDir, "warn")
	if err != nil {
		t.Fatalf("NewFileLoggerWithDirAndLevel() error = %v", err)
	}

	fl.LogInfo("hidden info")
	fl.LogWarn("Skipping large file 'big.bin' (12.00 MB)")
	fl.LogError("Error reading 'x': permission denied")

	if err := fl.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(fl.RunFile())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "=== dir2md Run Log ===") {
		t.Errorf("missing header in run log:\n%s", content)
	}
	if !strings.Contains(content, "Run ID: "+fl.RunID()) {
		t.Errorf("missing run ID in run log:\n%s", content)
	}
	if _, err := uuid.Parse(fl.RunID()); err != nil {
		t.Errorf("RunID() = %q is not a UUID: %v", fl.RunID(), err)
	}
	if strings.Contains(content, "hidden info") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(content, "[WARN] Skipping large file") {
		t.Errorf("missing warning line:\n%s", content)
	}
	if !strings.Contains(content, "[ERROR] Error reading") {
		t.Errorf("missing error line:\n%s", content)
	}
}

func TestFileLogger_CloseIsIdempotent(t *testing.T) {
	fl, err := NewFileLoggerWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileLoggerWithDir() error = %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	// Writes after close are dropped
	fl.LogError("after close")
}

func TestFileLogger_BadDirectory(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if _, err := NewFileLoggerWithDir(filepath.Join(blocker, "logs")); err == nil {
		t.Error("NewFileLoggerWithDir() under a regular file should fail")
	}
}
