package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetPathInfo(t *testing.T) {
	dir := t.TempDir()
	full, parent, err := GetPathInfo(filepath.Join(dir, "sub", "..", "prog.m"))
	if err != nil {
		t.Fatalf("GetPathInfo failed: %v", err)
	}
	if want := filepath.Join(dir, "prog.m"); full != want {
		t.Errorf("fullPath = %q, want %q", full, want)
	}
	if parent != dir {
		t.Errorf("parentDir = %q, want %q", parent, dir)
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.m")
	if err := os.WriteFile(path, []byte("x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if src != "x = 1;\n" {
		t.Errorf("ReadSource = %q", src)
	}

	_, err = ReadSource(filepath.Join(dir, "missing.m"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("CreateAndOverwrite", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "output.cpp")

		if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
			t.Fatalf("first write: %v", err)
		}
		if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
			t.Fatalf("second write: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "second" {
			t.Errorf("file contains %q, want %q", got, "second")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Errorf("mode = %v, want 0644", info.Mode().Perm())
		}
		assertNoTempFiles(t, dir)
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nope", "output.cpp")
		if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Fatal("expected an error for a missing directory")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("output exists after failed write: %v", err)
		}
		assertNoTempFiles(t, dir)
	})
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}
