package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_RoundTrip(t *testing.T) {
	osfs := OSFileSystem{}
	path := filepath.Join(t.TempDir(), "points.txt")

	if osfs.Exists(path) {
		t.Fatal("file should not exist yet")
	}

	w, err := osfs.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := io.WriteString(w, "P1,1,2,3\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := osfs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "P1,1,2,3\n" {
		t.Errorf("ReadFile = %q", data)
	}

	r, err := osfs.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	got, _ := io.ReadAll(r)
	if string(got) != "P1,1,2,3\n" {
		t.Errorf("Open contents = %q", got)
	}
}

func TestMemoryFileSystem_WriteAndOpen(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.WriteFile("/in.txt", []byte("hello"))

	if !mfs.Exists("/in.txt") {
		t.Fatal("expected /in.txt to exist")
	}

	r, err := mfs.Open("/in.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, _ := io.ReadAll(r)
	if string(data) != "hello" {
		t.Errorf("expected hello, got %q", data)
	}
}

func TestMemoryFileSystem_CreateVisibleOnClose(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/out.csv")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	io.WriteString(w, "a,1.000,2.000,3.000\n")

	data, _ := mfs.ReadFile("/out.csv")
	if len(data) != 0 {
		t.Errorf("contents visible before Close: %q", data)
	}

	w.Close()
	data, _ = mfs.ReadFile("/out.csv")
	if string(data) != "a,1.000,2.000,3.000\n" {
		t.Errorf("unexpected contents %q", data)
	}
}

func TestMemoryFileSystem_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if _, err := mfs.Open("/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open error = %v, want ErrNotExist", err)
	}
	if _, err := mfs.ReadFile("/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile error = %v, want ErrNotExist", err)
	}
}

func TestMemoryFileSystem_FailCreate(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.FailCreate("/locked.csv", fs.ErrPermission)

	if _, err := mfs.Create("/locked.csv"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Create error = %v, want ErrPermission", err)
	}
	if _, err := mfs.Create("/other.csv"); err != nil {
		t.Errorf("Create other failed: %v", err)
	}
}
