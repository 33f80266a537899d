// ABOUTME: Tests for byte source stores
// ABOUTME: Covers dir, fs bundle, and map store behavior
package assets

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestDirLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "clip.wav"), []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := Dir(dir).Load("clip.wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "RIFF" {
		t.Errorf("unexpected data: %q", data)
	}
}

func TestDirLoadMissing(t *testing.T) {
	if _, err := Dir(t.TempDir()).Load("nope.wav"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDirLoadEmptyFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "empty.wav"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Dir(dir).Load("empty.wav"); err == nil {
		t.Error("expected error for zero-length file")
	}
}

func TestFSLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/beep.wav": &fstest.MapFile{Data: []byte("data")},
	}

	store := NewFS(fsys)
	data, err := store.Load("sounds/beep.wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("unexpected data: %q", data)
	}

	if _, err := store.Load("missing"); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestNilFSFails(t *testing.T) {
	if _, err := (FS{}).Load("anything"); err == nil {
		t.Error("expected error for unset store")
	}
}

func TestMapLoad(t *testing.T) {
	m := Map{"a": []byte("x"), "b": nil}

	if data, err := m.Load("a"); err != nil || string(data) != "x" {
		t.Errorf("unexpected result: %q, %v", data, err)
	}
	if _, err := m.Load("b"); err == nil {
		t.Error("zero-length entry must fail")
	}
	if _, err := m.Load("c"); err == nil {
		t.Error("missing entry must fail")
	}
}
