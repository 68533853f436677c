package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tidydesk/internal/adapters/filesystem"
	"tidydesk/internal/application"
	"tidydesk/internal/domain"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("content"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func pathExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	return true
}

func moveByName(t *testing.T, moves []domain.Move, name string) domain.Move {
	t.Helper()
	for _, m := range moves {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("no move for %s in %v", name, moves)
	return domain.Move{}
}

func TestOrganizeByTypeDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vacation.png")
	writeFile(t, dir, "taxes_il_2023.pdf")
	writeFile(t, dir, "screenshot 2024-01-01.png")
	writeFile(t, dir, "samia_ibrahim_resume.pdf")
	writeFile(t, dir, ".DS_Store")
	if err := os.Mkdir(filepath.Join(dir, "existing"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	ws := filesystem.NewRepository()
	classifier := domain.NewClassifier(domain.DefaultRules())
	cmd := NewOrganizeByTypeCommand(ws, classifier, dir, false)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	report := result.Report
	if !report.DryRun {
		t.Error("expected dry-run report")
	}
	if report.Planned() != 4 {
		t.Errorf("Planned() = %d, want 4", report.Planned())
	}
	if report.SkippedHidden != 1 {
		t.Errorf("SkippedHidden = %d, want 1", report.SkippedHidden)
	}
	if report.SkippedDirs != 1 {
		t.Errorf("SkippedDirs = %d, want 1", report.SkippedDirs)
	}

	wantFolders := map[string]string{
		"vacation.png":             "Images",
		"taxes_il_2023.pdf":        "Tax Documents",
		"screenshot 2024-01-01.png": "Screenshots",
		"samia_ibrahim_resume.pdf": "Resumes",
	}
	for name, folder := range wantFolders {
		if got := moveByName(t, report.Moves, name).Folder; got != folder {
			t.Errorf("%s planned into %s, want %s", name, got, folder)
		}
	}

	// A dry run must not touch the directory.
	for name := range wantFolders {
		if !pathExists(t, filepath.Join(dir, name)) {
			t.Errorf("%s was moved during a dry run", name)
		}
	}
	for _, folder := range wantFolders {
		if pathExists(t, filepath.Join(dir, folder)) {
			t.Errorf("folder %s was created during a dry run", folder)
		}
	}
}

func TestOrganizeByTypeLive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vacation.png")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "mystery.blob")

	ws := filesystem.NewRepository()
	classifier := domain.NewClassifier(domain.DefaultRules())
	cmd := NewOrganizeByTypeCommand(ws, classifier, dir, true)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if got := len(result.Report.Failed()); got != 0 {
		t.Fatalf("Failed() has %d entries, want 0: %v", got, result.Report.Failed())
	}

	moved := map[string]string{
		"vacation.png": "Images",
		"notes.txt":    "Documents",
		"mystery.blob": "Other",
	}
	for name, folder := range moved {
		if pathExists(t, filepath.Join(dir, name)) {
			t.Errorf("%s still in source after live run", name)
		}
		if !pathExists(t, filepath.Join(dir, folder, name)) {
			t.Errorf("%s not found under %s/", name, folder)
		}
	}
}

func TestOrganizeByTypeCollision(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Documents"), 0755); err != nil {
		t.Fatalf("failed to seed Documents: %v", err)
	}
	writeFile(t, filepath.Join(dir, "Documents"), "report.txt")
	writeFile(t, filepath.Join(dir, "Documents"), "report_1.txt")
	writeFile(t, dir, "report.txt")

	ws := filesystem.NewRepository()
	classifier := domain.NewClassifier(domain.DefaultRules())
	cmd := NewOrganizeByTypeCommand(ws, classifier, dir, true)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	move := moveByName(t, result.Report.Moves, "report.txt")
	want := filepath.Join(dir, "Documents", "report_2.txt")
	if move.Dest != want {
		t.Errorf("Dest = %s, want %s", move.Dest, want)
	}
	if !pathExists(t, want) {
		t.Error("suffixed destination was not created")
	}
	if !pathExists(t, filepath.Join(dir, "Documents", "report.txt")) {
		t.Error("pre-existing report.txt was clobbered")
	}
}

func TestOrganizeByTypeSecondRunFindsNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "song.mp3")

	ws := filesystem.NewRepository()
	classifier := domain.NewClassifier(domain.DefaultRules())

	first, err := NewOrganizeByTypeCommand(ws, classifier, dir, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.Report.Planned() != 1 {
		t.Fatalf("first run Planned() = %d, want 1", first.Report.Planned())
	}

	// Category folders from the first run are directories, so a second
	// pass has nothing left to move.
	second, err := NewOrganizeByTypeCommand(ws, classifier, dir, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.Report.Planned() != 0 {
		t.Errorf("second run Planned() = %d, want 0", second.Report.Planned())
	}
	if second.Report.SkippedDirs != 1 {
		t.Errorf("second run SkippedDirs = %d, want 1", second.Report.SkippedDirs)
	}
}

func TestOrganizeByTypeMissingSource(t *testing.T) {
	ws := filesystem.NewRepository()
	classifier := domain.NewClassifier(domain.DefaultRules())
	cmd := NewOrganizeByTypeCommand(ws, classifier, filepath.Join(t.TempDir(), "nope"), false)

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrSourceMissing) {
		t.Errorf("error = %v, want ErrSourceMissing", err)
	}
}

func TestOrganizeByTypeValidation(t *testing.T) {
	cmd := NewOrganizeByTypeCommand(filesystem.NewRepository(), domain.NewClassifier(domain.DefaultRules()), "", false)
	if err := cmd.Validate(); err == nil {
		t.Error("expected validation error for empty source directory")
	}
}

func TestOrganizeByDateLive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, ".hidden")

	ws := filesystem.NewRepository()

	// Read the timestamp the scan will use so the expected folder does
	// not depend on the filesystem's notion of creation time.
	entries, err := ws.ListEntries(dir)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	created := moveEntry(t, entries, "a.txt").Created
	if created.IsZero() {
		t.Skip("filesystem does not report a usable timestamp")
	}
	folder := domain.DateFolder(created)

	result, err := NewOrganizeByDateCommand(ws, dir, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	report := result.Report
	if report.Mode != domain.ModeDate {
		t.Errorf("Mode = %s, want %s", report.Mode, domain.ModeDate)
	}
	if report.Planned() != 1 {
		t.Fatalf("Planned() = %d, want 1", report.Planned())
	}
	if report.SkippedHidden != 1 {
		t.Errorf("SkippedHidden = %d, want 1", report.SkippedHidden)
	}

	move := report.Moves[0]
	if move.Folder != folder {
		t.Errorf("Folder = %s, want %s", move.Folder, folder)
	}
	if !pathExists(t, filepath.Join(dir, folder, "a.txt")) {
		t.Errorf("a.txt not found under %s/", folder)
	}
	if pathExists(t, filepath.Join(dir, "a.txt")) {
		t.Error("a.txt still in source after live run")
	}
}

func TestOrganizeByDateRefusesClobber(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")

	ws := filesystem.NewRepository()
	entries, err := ws.ListEntries(dir)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	created := moveEntry(t, entries, "a.txt").Created
	if created.IsZero() {
		t.Skip("filesystem does not report a usable timestamp")
	}

	// Occupy the destination before the run.
	folder := domain.DateFolder(created)
	if err := os.MkdirAll(filepath.Join(dir, folder), 0755); err != nil {
		t.Fatalf("failed to seed date folder: %v", err)
	}
	writeFile(t, filepath.Join(dir, folder), "a.txt")

	result, err := NewOrganizeByDateCommand(ws, dir, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	failed := result.Report.Failed()
	if len(failed) != 1 {
		t.Fatalf("Failed() has %d entries, want 1", len(failed))
	}
	if failed[0].Name != "a.txt" {
		t.Errorf("failed entry = %s, want a.txt", failed[0].Name)
	}
	if !pathExists(t, filepath.Join(dir, "a.txt")) {
		t.Error("source file was removed despite the occupied destination")
	}
}

func TestOrganizeByDateDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")

	ws := filesystem.NewRepository()
	result, err := NewOrganizeByDateCommand(ws, dir, false).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !result.Report.DryRun {
		t.Error("expected dry-run report")
	}
	if !pathExists(t, filepath.Join(dir, "a.txt")) {
		t.Error("a.txt was moved during a dry run")
	}
}

// stubWorkspace serves canned entries so timestamp-dependent behavior
// can be tested without a real filesystem.
type stubWorkspace struct {
	entries []domain.Entry
}

func (s *stubWorkspace) ListEntries(string) ([]domain.Entry, error) { return s.entries, nil }
func (s *stubWorkspace) DirExists(string) (bool, error)            { return true, nil }
func (s *stubWorkspace) PathExists(string) (bool, error)           { return false, nil }
func (s *stubWorkspace) EnsureDir(string) error                    { return nil }
func (s *stubWorkspace) Move(string, string) error                 { return nil }

func TestOrganizeByDateSkipsDateless(t *testing.T) {
	ws := &stubWorkspace{entries: []domain.Entry{
		{Name: "dated.txt", Created: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)},
		{Name: "dateless.txt"},
	}}

	result, err := NewOrganizeByDateCommand(ws, "/desk", false).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	report := result.Report
	if report.Planned() != 1 {
		t.Fatalf("Planned() = %d, want 1", report.Planned())
	}
	if report.SkippedDateless != 1 {
		t.Errorf("SkippedDateless = %d, want 1", report.SkippedDateless)
	}
	if got := report.Moves[0].Folder; got != "2024/2024-03" {
		t.Errorf("Folder = %s, want 2024/2024-03", got)
	}
}

func moveEntry(t *testing.T, entries []domain.Entry, name string) domain.Entry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no entry named %s", name)
	return domain.Entry{}
}
