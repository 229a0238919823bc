package disposal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPermanentDisposeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video.mp4")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (Permanent{}).Dispose(path); err != nil {
		t.Fatalf("Dispose failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after permanent disposal")
	}
}

func TestPermanentDisposeDirectory(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "clip.gifs")
	if err := os.MkdirAll(filepath.Join(folder, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(folder, "nested", "frame.gif"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (Permanent{}).Dispose(folder); err != nil {
		t.Fatalf("Dispose failed: %v", err)
	}
	if _, err := os.Stat(folder); !os.IsNotExist(err) {
		t.Errorf("folder still exists after permanent disposal")
	}
}

func TestTrashDispose(t *testing.T) {
	work := t.TempDir()
	trash, err := NewTrashAt(filepath.Join(work, "Trash"))
	if err != nil {
		t.Fatalf("NewTrashAt failed: %v", err)
	}

	path := filepath.Join(work, "video.mp4")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := trash.Dispose(path); err != nil {
		t.Fatalf("Dispose failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("original file still exists after trashing")
	}

	trashed := filepath.Join(trash.Root, "files", "video.mp4")
	if _, err := os.Stat(trashed); err != nil {
		t.Errorf("trashed file missing from files/: %v", err)
	}

	infoData, err := os.ReadFile(filepath.Join(trash.Root, "info", "video.mp4.trashinfo"))
	if err != nil {
		t.Fatalf("trashinfo record missing: %v", err)
	}
	info := string(infoData)
	if !strings.HasPrefix(info, "[Trash Info]\n") {
		t.Errorf("trashinfo missing header: %q", info)
	}
	if !strings.Contains(info, "Path=") || !strings.Contains(info, "DeletionDate=") {
		t.Errorf("trashinfo missing fields: %q", info)
	}
}

func TestTrashDisposeNameCollision(t *testing.T) {
	work := t.TempDir()
	trash, err := NewTrashAt(filepath.Join(work, "Trash"))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		path := filepath.Join(work, "video.mp4")
		if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := trash.Dispose(path); err != nil {
			t.Fatalf("Dispose round %d failed: %v", i, err)
		}
	}

	if _, err := os.Stat(filepath.Join(trash.Root, "files", "video.mp4")); err != nil {
		t.Errorf("first trashed copy missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(trash.Root, "files", "video.mp4.2")); err != nil {
		t.Errorf("second trashed copy not renamed: %v", err)
	}
}

func TestTrashDisposeMissingPath(t *testing.T) {
	work := t.TempDir()
	trash, err := NewTrashAt(filepath.Join(work, "Trash"))
	if err != nil {
		t.Fatal(err)
	}

	if err := trash.Dispose(filepath.Join(work, "never-existed.mp4")); err == nil {
		t.Error("expected an error disposing a missing path")
	}
}

func TestForConfig(t *testing.T) {
	d, err := ForConfig(false)
	if err != nil {
		t.Fatalf("ForConfig(false) failed: %v", err)
	}
	if _, ok := d.(Permanent); !ok {
		t.Errorf("ForConfig(false) = %T, want Permanent", d)
	}
}
