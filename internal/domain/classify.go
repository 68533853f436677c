package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Classifier maps a filename to exactly one category. It is a pure
// function of the name plus the rules it was built with; no state is
// mutated at match time.
type Classifier struct {
	rules     Rules
	firstName string
	lastName  string
	years     []string
}

// NewClassifier builds a classifier from rules. Rule strings are
// lowercased once here and year substrings are precomputed.
func NewClassifier(rules Rules) *Classifier {
	c := &Classifier{
		rules:     rules,
		firstName: strings.ToLower(rules.FirstName),
		lastName:  strings.ToLower(rules.LastName),
	}
	for y := rules.TaxYearMin; y <= rules.TaxYearMax; y++ {
		c.years = append(c.years, strconv.Itoa(y))
	}
	c.rules.Jurisdictions = lowered(rules.Jurisdictions)
	c.rules.TaxKeywords = lowered(rules.TaxKeywords)
	c.rules.ScreenshotMarkers = lowered(rules.ScreenshotMarkers)
	return c
}

func lowered(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// Rules returns the rules the classifier was built with.
func (c *Classifier) Rules() Rules {
	return c.rules
}

// Classify returns the category for a filename. Pattern checks run
// first, in strict priority order, then extension lookup, then Other.
func (c *Classifier) Classify(name string) Category {
	if c.IsResume(name) {
		return CategoryResumes
	}
	if c.IsTaxDocument(name) {
		return CategoryTaxDocuments
	}
	if c.IsScreenshot(name) {
		return CategoryScreenshots
	}
	if cat, ok := c.byExtension(name); ok {
		return cat
	}
	return CategoryOther
}

// IsResume reports whether the name looks like a resume: it must
// contain "resume" or "cv", and once separators are stripped it must
// contain the configured first or last name.
func (c *Classifier) IsResume(name string) bool {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, "resume") && !strings.Contains(lower, "cv") {
		return false
	}

	cleaned := strings.NewReplacer("_", "", "-", "", " ", "").Replace(lower)

	hasFirst := c.firstName != "" && strings.Contains(cleaned, c.firstName)
	hasLast := c.lastName != "" && strings.Contains(cleaned, c.lastName)
	return hasFirst || hasLast
}

// IsTaxDocument reports whether the name looks like a tax document: a
// year in the configured range plus a jurisdiction code or tax
// keyword. Jurisdiction codes are matched as bare substrings, so
// two-letter codes can false-positive on unrelated text; this is a
// known limit of the heuristic.
func (c *Classifier) IsTaxDocument(name string) bool {
	lower := strings.ToLower(name)

	hasYear := false
	for _, y := range c.years {
		if strings.Contains(lower, y) {
			hasYear = true
			break
		}
	}
	if !hasYear {
		return false
	}

	for _, code := range c.rules.Jurisdictions {
		if code != "" && strings.Contains(lower, code) {
			return true
		}
	}
	for _, kw := range c.rules.TaxKeywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsScreenshot reports whether the name contains any configured
// screenshot marker.
func (c *Classifier) IsScreenshot(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range c.rules.ScreenshotMarkers {
		if marker != "" && strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// byExtension looks the case-folded extension up in the configured
// groups, in declaration order.
func (c *Classifier) byExtension(name string) (Category, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	for _, g := range c.rules.Extensions {
		for _, m := range g.Match {
			if ext == m {
				return g.Category, true
			}
		}
	}
	return "", false
}
