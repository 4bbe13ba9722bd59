package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// DefaultRemovalDelay is how long a served transfer directory is kept
const DefaultRemovalDelay = 3 * time.Second

// SkippedExtensions mark partial or bookkeeping files left by yt-dlp
var SkippedExtensions = []string{".part", ".ytdl"}

// ErrNoDownloadedFile is returned when a transfer left no usable file
var ErrNoDownloadedFile = errors.New("download finished but no file was found in the destination")

// Workspace owns the per-transfer directories of the web service
type Workspace struct {
	fs     afero.Fs
	root   string
	logger hclog.Logger
}

// NewWorkspace roots transfer directories at root on fs
func NewWorkspace(fs afero.Fs, root string, logger hclog.Logger) *Workspace {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Workspace{fs: fs, root: root, logger: logger.Named("workspace")}
}

// Root returns the directory holding transfer directories
func (w *Workspace) Root() string {
	return w.root
}

// Fs returns the backing filesystem
func (w *Workspace) Fs() afero.Fs {
	return w.fs
}

// NewTransferDir creates a fresh <root>/<uuid> directory
func (w *Workspace) NewTransferDir() (string, error) {
	dir := filepath.Join(w.root, uuid.NewString())
	if err := w.EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// EnsureDir creates dir and its parents if needed
func (w *Workspace) EnsureDir(dir string) error {
	if err := w.fs.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Locate returns the file a transfer produced in dir. A hint reported by the
// engine wins when it exists; otherwise the most recently modified complete
// file is used.
func (w *Workspace) Locate(dir, hint string) (string, error) {
	if hint != "" && !IsPartialFile(hint) {
		candidate := hint
		if !filepath.IsAbs(candidate) && filepath.Dir(candidate) == "." {
			candidate = filepath.Join(dir, candidate)
		}
		if info, err := w.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := lo.Filter(entries, func(info os.FileInfo, _ int) bool {
		return info.Mode().IsRegular() && !IsPartialFile(info.Name())
	})
	if len(files) == 0 {
		return "", ErrNoDownloadedFile
	}

	newest := slices.MaxFunc(files, func(a, b os.FileInfo) int {
		if c := a.ModTime().Compare(b.ModTime()); c != 0 {
			return c
		}
		// stable pick among equal times: the alphabetically first name wins
		return strings.Compare(b.Name(), a.Name())
	})
	return filepath.Join(dir, newest.Name()), nil
}

// Remove deletes dir and everything in it
func (w *Workspace) Remove(dir string) error {
	if err := w.fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	return nil
}

// ScheduleRemoval deletes dir after delay, giving a response time to be read
func (w *Workspace) ScheduleRemoval(dir string, delay time.Duration) *time.Timer {
	return time.AfterFunc(delay, func() {
		if err := w.Remove(dir); err != nil {
			w.logger.Warn("cleanup failed", "dir", dir, "error", err)
			return
		}
		w.logger.Debug("transfer directory removed", "dir", dir)
	})
}

// IsPartialFile reports whether name is an unfinished or bookkeeping file
func IsPartialFile(name string) bool {
	return lo.SomeBy(SkippedExtensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}
