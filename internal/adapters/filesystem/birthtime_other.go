//go:build !darwin && !linux

package filesystem

import (
	"os"
	"time"
)

// creationTime falls back to the modification time on platforms
// without a usable creation timestamp.
func creationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
