package domain

import (
	"errors"
	"testing"
	"time"
)

func TestEntryHidden(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},
		{".hidden", true},
		{"visible.txt", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := (Entry{Name: tt.name}).Hidden(); got != tt.want {
			t.Errorf("Hidden(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	m := Move{Name: "vacation.png", Folder: "Images"}
	if got := m.String(); got != "vacation.png → Images/" {
		t.Errorf("String() = %q", got)
	}
}

func TestReportFailed(t *testing.T) {
	r := Report{Moves: []Move{
		{Name: "ok.png"},
		{Name: "bad.pdf", Err: errors.New("boom")},
	}}

	if r.Planned() != 2 {
		t.Errorf("Planned() = %d, want 2", r.Planned())
	}
	failed := r.Failed()
	if len(failed) != 1 || failed[0].Name != "bad.pdf" {
		t.Errorf("Failed() = %v, want the single bad.pdf entry", failed)
	}
}

func TestDateFolder(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)
	if got := DateFolder(ts); got != "2024/2024-03" {
		t.Errorf("DateFolder = %s, want 2024/2024-03", got)
	}
}
