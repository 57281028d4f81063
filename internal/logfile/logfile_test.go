package logfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestOpenCreatesFileLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")

	log, closeLog := Open(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("log file exists before anything was logged")
	}

	log.Error("git pull failed", zap.String("repo", "/home/user/repo"))
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "ERROR") {
		t.Errorf("log entry missing level: %q", content)
	}
	if !strings.Contains(content, "git pull failed") {
		t.Errorf("log entry missing message: %q", content)
	}
	if !strings.Contains(content, "/home/user/repo") {
		t.Errorf("log entry missing field: %q", content)
	}
}

func TestOpenFiltersBelowWarn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")

	log, closeLog := Open(path)
	log.Info("routine message")
	closeLog()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("info-level logging created the file")
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")

	log, closeLog := Open(path)
	log.Warn("first run")
	closeLog()

	log, closeLog = Open(path)
	log.Warn("second run")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.Contains(content, "first run") || !strings.Contains(content, "second run") {
		t.Errorf("expected both entries, got %q", content)
	}
}
