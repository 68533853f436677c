package domain

import (
	"fmt"
	"time"
)

// Mode selects how a directory is organized.
type Mode string

const (
	ModeType Mode = "type" // category folders from classification
	ModeDate Mode = "date" // YYYY/YYYY-MM folders from creation time
)

// Entry is one immediate child of the source directory, discovered
// fresh on each scan. Created is zero when the timestamp could not be
// determined.
type Entry struct {
	Name    string
	IsDir   bool
	Created time.Time
}

// Hidden reports whether the entry name begins with the hidden-file
// marker.
func (e Entry) Hidden() bool {
	return len(e.Name) > 0 && e.Name[0] == '.'
}

// Move is one planned or executed relocation.
type Move struct {
	Name   string // original base name
	Folder string // destination folder relative to the source dir
	Dest   string // resolved absolute destination path
	Err    error  // set when a live move failed
}

// String renders the human-readable plan line.
func (m Move) String() string {
	return fmt.Sprintf("%s → %s/", m.Name, m.Folder)
}

// Report summarizes one organizer pass.
type Report struct {
	SourceDir string
	Mode      Mode
	DryRun    bool

	Moves []Move

	SkippedHidden   int
	SkippedDirs     int
	SkippedDateless int
}

// Planned returns the number of entries that were moved (live) or
// would be moved (dry run), including ones whose live move failed.
func (r Report) Planned() int {
	return len(r.Moves)
}

// Failed returns the moves whose live execution reported an error.
func (r Report) Failed() []Move {
	var out []Move
	for _, m := range r.Moves {
		if m.Err != nil {
			out = append(out, m)
		}
	}
	return out
}

// DateFolder returns the date-mode destination folder for a creation
// timestamp, e.g. "2024/2024-03".
func DateFolder(t time.Time) string {
	return t.Format("2006/2006-01")
}
