package ports

import "tidydesk/internal/domain"

// Workspace defines the filesystem operations the organizer needs.
type Workspace interface {
	// ListEntries returns the immediate children of dir, sorted by
	// name. It does not recurse.
	ListEntries(dir string) ([]domain.Entry, error)

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) (bool, error)

	// PathExists reports whether any filesystem object exists at path.
	PathExists(path string) (bool, error)

	// EnsureDir creates path and any missing parents. Idempotent.
	EnsureDir(path string) error

	// Move relocates src to dst. Cross-device moves fall back to
	// copy+delete. dst must not exist.
	Move(src, dst string) error
}
