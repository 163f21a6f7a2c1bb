package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

func TestRun_NoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("stderr should carry usage, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
}

func TestRun_InfoFlags(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"--version", "reencode-png dev"},
		{"-v", "reencode-png dev"},
		{"--help", "Usage:"},
		{"-h", "Usage:"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run([]string{tt.arg}, &stdout, &stderr); code != 0 {
				t.Errorf("exit code: got %d, want 0", code)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout %q should contain %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRun_PerFileFailuresExitZero(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	if err := imgio.Save(good, image.NewNRGBA(image.Rect(0, 0, 3, 3)), imgio.PNGEncoder()); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.png")

	var stdout, stderr bytes.Buffer
	if code := run([]string{missing, bad, good}, &stdout, &stderr); code != 0 {
		t.Errorf("exit code: got %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Re-encoded: "+good) {
		t.Errorf("stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Not found: "+missing) {
		t.Errorf("stderr should report the missing file: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Failed to read image from") {
		t.Errorf("stderr should report the decode failure: %q", stderr.String())
	}
}

func TestRun_DoubleDashTreatsFlagNamesAsFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if err := imgio.Save("-v", image.NewNRGBA(image.Rect(0, 0, 2, 2)), imgio.PNGEncoder()); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--", "-v"}, &stdout, &stderr); code != 0 {
		t.Errorf("exit code: got %d, want 0", code)
	}
	if got := stdout.String(); got != "Re-encoded: -v\n" {
		t.Errorf("stdout: got %q, want the file report", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "-v.bak")); err != nil {
		t.Errorf("backup of -v should exist: %v", err)
	}
}

func TestRun_DoubleDashAlone(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("stderr should carry usage, got %q", stderr.String())
	}
}
