package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"tidydesk/internal/domain"
)

//go:embed sample_rules.toml
var sampleRules string

// SampleRules returns the annotated sample rules file.
func SampleRules() string {
	return sampleRules
}

type identitySection struct {
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
}

type taxSection struct {
	YearMin       int      `toml:"year_min"`
	YearMax       int      `toml:"year_max"`
	Jurisdictions []string `toml:"jurisdictions"`
	Keywords      []string `toml:"keywords"`
}

type screenshotsSection struct {
	Markers []string `toml:"markers"`
}

type extensionSection struct {
	Category string   `toml:"category"`
	Match    []string `toml:"match"`
}

type rulesFile struct {
	Identity    identitySection    `toml:"identity"`
	Tax         taxSection         `toml:"tax"`
	Screenshots screenshotsSection `toml:"screenshots"`
	Extensions  []extensionSection `toml:"extensions"`
}

// LoadRules decodes a TOML rules file over domain.DefaultRules.
// An empty path or a missing file yields the defaults; any other
// failure is an error. Sections that are present replace the matching
// default wholesale, omitted sections keep it.
func LoadRules(path string) (domain.Rules, error) {
	rules := domain.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rules, nil
		}
		return domain.Rules{}, fmt.Errorf("read rules file: %w", err)
	}

	var file rulesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Rules{}, fmt.Errorf("parse rules file: %w", err)
	}

	if file.Identity.FirstName != "" {
		rules.FirstName = file.Identity.FirstName
	}
	if file.Identity.LastName != "" {
		rules.LastName = file.Identity.LastName
	}
	if file.Tax.YearMin != 0 {
		rules.TaxYearMin = file.Tax.YearMin
	}
	if file.Tax.YearMax != 0 {
		rules.TaxYearMax = file.Tax.YearMax
	}
	if file.Tax.Jurisdictions != nil {
		rules.Jurisdictions = file.Tax.Jurisdictions
	}
	if file.Tax.Keywords != nil {
		rules.TaxKeywords = file.Tax.Keywords
	}
	if file.Screenshots.Markers != nil {
		rules.ScreenshotMarkers = file.Screenshots.Markers
	}
	if len(file.Extensions) > 0 {
		groups := make([]domain.ExtensionGroup, 0, len(file.Extensions))
		for _, e := range file.Extensions {
			if e.Category == "" {
				return domain.Rules{}, fmt.Errorf("rules file: extension group without category")
			}
			groups = append(groups, domain.ExtensionGroup{
				Category: domain.Category(e.Category),
				Match:    e.Match,
			})
		}
		rules.Extensions = groups
	}

	if rules.TaxYearMin > rules.TaxYearMax {
		return domain.Rules{}, fmt.Errorf("rules file: tax year_min %d is after year_max %d", rules.TaxYearMin, rules.TaxYearMax)
	}

	return rules, nil
}
