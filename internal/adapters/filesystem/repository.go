package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"tidydesk/internal/domain"
)

// Repository implements ports.Workspace against the real filesystem.
type Repository struct{}

// NewRepository creates a new filesystem repository.
func NewRepository() *Repository {
	return &Repository{}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// ListEntries returns the immediate children of dir sorted by name.
// Creation time is best-effort: entries whose metadata cannot be read
// get a zero timestamp.
func (r *Repository) ListEntries(dir string) ([]domain.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	entries := make([]domain.Entry, 0, len(dirents))
	for _, d := range dirents {
		entry := domain.Entry{Name: d.Name(), IsDir: d.IsDir()}
		if info, err := d.Info(); err == nil {
			entry.Created = creationTime(info)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// DirExists reports whether path exists and is a directory.
func (r *Repository) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// PathExists reports whether anything exists at path.
func (r *Repository) PathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureDir creates path and missing parents. Already-existing
// directories are fine; repeated runs are expected.
func (r *Repository) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Move renames src to dst, falling back to copy+delete when the
// rename crosses a filesystem boundary.
func (r *Repository) Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := copyFile(src, dst); copyErr != nil {
			return fmt.Errorf("failed to copy across filesystems: %w", copyErr)
		}
		if rmErr := os.Remove(src); rmErr != nil {
			return fmt.Errorf("failed to remove source after copy: %w", rmErr)
		}
		return nil
	}

	return fmt.Errorf("failed to move %s: %w", filepath.Base(src), err)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
