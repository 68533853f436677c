//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// creationTime approximates creation time with the inode change time.
// Real birth time would need statx and not every filesystem records it.
func creationTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return time.Time{}
}
