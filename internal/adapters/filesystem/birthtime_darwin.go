//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file birth time on macOS.
func creationTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	}
	return time.Time{}
}
