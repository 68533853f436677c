package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"tidydesk/internal/application"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

// OrganizeResult contains the outcome of an organize pass.
type OrganizeResult struct {
	Report domain.Report
}

// OrganizeByTypeCommand relocates the immediate children of a
// directory into category folders chosen by the classifier. Dry-run
// unless Live is set.
type OrganizeByTypeCommand struct {
	ws         ports.Workspace
	classifier *domain.Classifier
	SourceDir  string
	Live       bool
}

// NewOrganizeByTypeCommand creates a new OrganizeByTypeCommand
func NewOrganizeByTypeCommand(ws ports.Workspace, classifier *domain.Classifier, sourceDir string, live bool) *OrganizeByTypeCommand {
	return &OrganizeByTypeCommand{
		ws:         ws,
		classifier: classifier,
		SourceDir:  sourceDir,
		Live:       live,
	}
}

// Validate checks if the organize operation is valid
func (c *OrganizeByTypeCommand) Validate() error {
	return application.ValidateRequired("sourceDir", c.SourceDir)
}

// Execute runs one sequential pass over the source directory.
func (c *OrganizeByTypeCommand) Execute(ctx context.Context) (*OrganizeResult, error) {
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
		Mode:      domain.ModeType,
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

		category := c.classifier.Classify(entry.Name)
		folder := filepath.Join(c.SourceDir, string(category))

		move := domain.Move{Name: entry.Name, Folder: string(category)}

		if c.Live {
			// Folder creation first so the collision probe sees the
			// final folder state before the rename.
			if err := c.ws.EnsureDir(folder); err != nil {
				move.Err = &application.MoveError{Name: entry.Name, Dest: folder, Err: err}
				report.Moves = append(report.Moves, move)
				continue
			}
		}

		dest, err := resolveDestination(c.ws, folder, entry.Name)
		if err != nil {
			move.Err = &application.MoveError{Name: entry.Name, Dest: folder, Err: err}
			report.Moves = append(report.Moves, move)
			continue
		}
		move.Dest = dest

		if c.Live {
			src := filepath.Join(c.SourceDir, entry.Name)
			if err := c.ws.Move(src, dest); err != nil {
				move.Err = &application.MoveError{Name: entry.Name, Dest: dest, Err: err}
			}
		}

		report.Moves = append(report.Moves, move)
	}

	return &OrganizeResult{Report: report}, nil
}

// resolveDestination probes folder/name and appends _1, _2, ... to the
// stem until it finds a path nothing occupies. The probe runs before
// any move so an existing file is never overwritten.
func resolveDestination(ws ports.Workspace, folder, name string) (string, error) {
	dest := filepath.Join(folder, name)

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for counter := 1; ; counter++ {
		exists, err := ws.PathExists(dest)
		if err != nil {
			return "", err
		}
		if !exists {
			return dest, nil
		}
		dest = filepath.Join(folder, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}
}

// requireSourceDir is the single validated precondition: the source
// directory must exist before anything is touched.
func requireSourceDir(ws ports.Workspace, dir string) error {
	exists, err := ws.DirExists(dir)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", dir, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", application.ErrSourceMissing, dir)
	}
	return nil
}
