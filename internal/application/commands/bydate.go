package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"tidydesk/internal/application"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

var errDestinationExists = errors.New("destination already exists")

// OrganizeByDateCommand relocates the immediate children of a
// directory into YYYY/YYYY-MM folders from their creation time.
// Entries without a usable timestamp are left in place. Unlike type
// mode there is no collision suffixing: the destination keeps the
// original name and a clash surfaces as a per-entry move error.
type OrganizeByDateCommand struct {
	ws        ports.Workspace
	SourceDir string
	Live      bool
}

// NewOrganizeByDateCommand creates a new OrganizeByDateCommand
func NewOrganizeByDateCommand(ws ports.Workspace, sourceDir string, live bool) *OrganizeByDateCommand {
	return &OrganizeByDateCommand{
		ws:        ws,
		SourceDir: sourceDir,
		Live:      live,
	}
}

// Validate checks if the organize operation is valid
func (c *OrganizeByDateCommand) Validate() error {
	return application.ValidateRequired("sourceDir", c.SourceDir)
}

// Execute runs one sequential pass over the source directory.
func (c *OrganizeByDateCommand) Execute(ctx context.Context) (*OrganizeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := requireSourceDir(c.ws, c.SourceDir); err != nil {
		return nil, err
	}

	entries, err := c.ws.ListEntries(c.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", c.SourceDir, err)
	}

	report := domain.Report{
		SourceDir: c.SourceDir,
		Mode:      domain.ModeDate,
		DryRun:    !c.Live,
	}

	for _, entry := range entries {
		if entry.IsDir {
			report.SkippedDirs++
			continue
		}
		if entry.Hidden() {
			report.SkippedHidden++
			continue
		}
		if entry.Created.IsZero() {
			report.SkippedDateless++
			continue
		}

		folder := domain.DateFolder(entry.Created)
		dest := filepath.Join(c.SourceDir, folder, entry.Name)

		move := domain.Move{Name: entry.Name, Folder: folder, Dest: dest}

		if c.Live {
			if err := c.ws.EnsureDir(filepath.Join(c.SourceDir, folder)); err != nil {
				move.Err = &application.MoveError{Name: entry.Name, Dest: dest, Err: err}
				report.Moves = append(report.Moves, move)
				continue
			}
			// Rename replaces an existing target, so probe first and
			// refuse to clobber.
			exists, err := c.ws.PathExists(dest)
			if err != nil {
				move.Err = &application.MoveError{Name: entry.Name, Dest: dest, Err: err}
				report.Moves = append(report.Moves, move)
				continue
			}
			if exists {
				move.Err = &application.MoveError{Name: entry.Name, Dest: dest, Err: errDestinationExists}
				report.Moves = append(report.Moves, move)
				continue
			}
			src := filepath.Join(c.SourceDir, entry.Name)
			if err := c.ws.Move(src, dest); err != nil {
				move.Err = &application.MoveError{Name: entry.Name, Dest: dest, Err: err}
			}
		}

		report.Moves = append(report.Moves, move)
	}

	return &OrganizeResult{Report: report}, nil
}
