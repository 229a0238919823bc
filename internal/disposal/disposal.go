package disposal

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/errors"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/logger"
)

// Disposer removes one file or directory. The matching engine never
// touches the filesystem; whatever drives its output gets handed one of
// these.
type Disposer interface {
	Dispose(path string) error
	Label() string
}

// Permanent deletes items outright with no recovery path.
type Permanent struct{}

func (Permanent) Dispose(path string) error {
	logger.Disposal("permanently deleting %s", path)
	if err := os.RemoveAll(path); err != nil {
		return errors.NewDisposalError(path, err)
	}
	return nil
}

func (Permanent) Label() string { return "permanently deleted" }

// Trash moves items into a freedesktop.org trash directory
// (files/ plus an info/*.trashinfo record), so they can be restored
// from the desktop's trash UI.
type Trash struct {
	Root string
}

// NewTrash resolves the user trash directory ($XDG_DATA_HOME/Trash or
// ~/.local/share/Trash) and ensures its layout exists.
func NewTrash() (*Trash, error) {
	root := os.Getenv("XDG_DATA_HOME")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.NewTrashUnavailableError(err)
		}
		root = filepath.Join(home, ".local", "share")
	}
	return NewTrashAt(filepath.Join(root, "Trash"))
}

// NewTrashAt prepares a trash directory at an explicit root.
func NewTrashAt(root string) (*Trash, error) {
	for _, sub := range []string{"files", "info"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0700); err != nil {
			return nil, errors.NewTrashUnavailableError(err)
		}
	}
	return &Trash{Root: root}, nil
}

func (t *Trash) Dispose(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.NewDisposalError(path, err)
	}

	name := t.uniqueName(filepath.Base(abs))
	infoPath := filepath.Join(t.Root, "info", name+".trashinfo")
	filesPath := filepath.Join(t.Root, "files", name)

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapePath(abs), time.Now().Format("2006-01-02T15:04:05"))
	if err := os.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return errors.NewDisposalError(path, err)
	}

	if err := os.Rename(abs, filesPath); err != nil {
		// Rename across filesystems fails; clean up the orphaned
		// info record and report. The caller can fall back to
		// --no-trash.
		os.Remove(infoPath)
		return errors.NewDisposalError(path, err)
	}

	logger.Disposal("moved %s to trash as %s", path, name)
	return nil
}

func (t *Trash) Label() string { return "moved to trash" }

// uniqueName avoids clobbering an item already in the trash with the
// same base name.
func (t *Trash) uniqueName(base string) string {
	name := base
	for n := 2; t.exists(name); n++ {
		name = fmt.Sprintf("%s.%d", base, n)
	}
	return name
}

func (t *Trash) exists(name string) bool {
	if _, err := os.Lstat(filepath.Join(t.Root, "files", name)); err == nil {
		return true
	}
	if _, err := os.Lstat(filepath.Join(t.Root, "info", name+".trashinfo")); err == nil {
		return true
	}
	return false
}

// escapePath percent-encodes a path the way the trash spec expects,
// leaving slashes intact.
func escapePath(p string) string {
	u := url.URL{Path: p}
	return u.EscapedPath()
}

// ForConfig picks the configured disposer: trash when requested and
// available, permanent deletion otherwise.
func ForConfig(useTrash bool) (Disposer, error) {
	if !useTrash {
		return Permanent{}, nil
	}
	trash, err := NewTrash()
	if err != nil {
		return nil, err
	}
	return trash, nil
}
