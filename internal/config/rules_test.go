package config

import (
	"os"
	"path/filepath"
	"testing"

	"tidydesk/internal/domain"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}
	return path
}

func TestLoadRulesEmptyPath(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if rules.FirstName != domain.DefaultRules().FirstName {
		t.Errorf("FirstName = %s, want default", rules.FirstName)
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if len(rules.Extensions) != len(domain.DefaultRules().Extensions) {
		t.Error("missing file should yield the default rules")
	}
}

func TestLoadRulesOverrides(t *testing.T) {
	path := writeRules(t, `
[identity]
first_name = "ada"
last_name = "lovelace"

[tax]
year_min = 1990
year_max = 2000
jurisdictions = ["uk"]

[[extensions]]
category = "Notebooks"
match = [".ipynb"]
`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	if rules.FirstName != "ada" || rules.LastName != "lovelace" {
		t.Errorf("identity = %s %s, want ada lovelace", rules.FirstName, rules.LastName)
	}
	if rules.TaxYearMin != 1990 || rules.TaxYearMax != 2000 {
		t.Errorf("tax years = %d-%d, want 1990-2000", rules.TaxYearMin, rules.TaxYearMax)
	}
	if len(rules.Jurisdictions) != 1 || rules.Jurisdictions[0] != "uk" {
		t.Errorf("Jurisdictions = %v, want [uk]", rules.Jurisdictions)
	}
	// Omitted sections keep their defaults.
	if len(rules.TaxKeywords) == 0 {
		t.Error("keywords should fall back to the defaults")
	}
	if len(rules.ScreenshotMarkers) == 0 {
		t.Error("screenshot markers should fall back to the defaults")
	}
	// Present extension groups replace the default set wholesale.
	if len(rules.Extensions) != 1 || rules.Extensions[0].Category != "Notebooks" {
		t.Errorf("Extensions = %v, want a single Notebooks group", rules.Extensions)
	}
}

func TestLoadRulesRejectsBadYearRange(t *testing.T) {
	path := writeRules(t, `
[tax]
year_min = 2030
year_max = 2020
`)
	if _, err := LoadRules(path); err == nil {
		t.Error("expected error for year_min after year_max")
	}
}

func TestLoadRulesRejectsCategorylessGroup(t *testing.T) {
	path := writeRules(t, `
[[extensions]]
match = [".foo"]
`)
	if _, err := LoadRules(path); err == nil {
		t.Error("expected error for extension group without category")
	}
}

func TestLoadRulesRejectsMalformedTOML(t *testing.T) {
	path := writeRules(t, "identity = [broken")
	if _, err := LoadRules(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestSampleRulesMatchesDefaults(t *testing.T) {
	path := writeRules(t, SampleRules())

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed on the sample file: %v", err)
	}

	want := domain.DefaultRules()
	if rules.FirstName != want.FirstName || rules.LastName != want.LastName {
		t.Errorf("identity = %s %s, want %s %s", rules.FirstName, rules.LastName, want.FirstName, want.LastName)
	}
	if rules.TaxYearMin != want.TaxYearMin || rules.TaxYearMax != want.TaxYearMax {
		t.Errorf("tax years = %d-%d, want %d-%d", rules.TaxYearMin, rules.TaxYearMax, want.TaxYearMin, want.TaxYearMax)
	}
	if len(rules.Extensions) != len(want.Extensions) {
		t.Fatalf("sample has %d extension groups, want %d", len(rules.Extensions), len(want.Extensions))
	}
	for i, g := range rules.Extensions {
		if g.Category != want.Extensions[i].Category {
			t.Errorf("group %d category = %s, want %s", i, g.Category, want.Extensions[i].Category)
		}
	}
}
