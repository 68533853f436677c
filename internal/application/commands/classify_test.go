package commands

import (
	"context"
	"testing"

	"tidydesk/internal/domain"
)

func TestClassifyCommand(t *testing.T) {
	classifier := domain.NewClassifier(domain.DefaultRules())

	cmd := NewClassifyCommand(classifier, []string{"vacation.png", "mystery.blob"})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Classifications) != 2 {
		t.Fatalf("got %d classifications, want 2", len(result.Classifications))
	}
	if got := result.Classifications[0].Category; got != "Images" {
		t.Errorf("vacation.png classified as %s, want Images", got)
	}
	if got := result.Classifications[1].Category; got != domain.CategoryOther {
		t.Errorf("mystery.blob classified as %s, want %s", got, domain.CategoryOther)
	}
}

func TestClassifyCommandRequiresNames(t *testing.T) {
	cmd := NewClassifyCommand(domain.NewClassifier(domain.DefaultRules()), nil)
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Error("expected validation error for empty names")
	}
}
