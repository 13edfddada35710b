package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDirectorySize_CountsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	if err := os.Mkdir(nested, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a"), make([]byte, 10), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "b"), make([]byte, 32), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := GetDirectorySize(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := int64(42); want != got {
		t.Errorf("unexpected size; want %d, got %d", want, got)
	}
}

func TestGetDirectorySize_MissingDirectory(t *testing.T) {
	if _, err := GetDirectorySize(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected an error for a missing directory")
	}
}
