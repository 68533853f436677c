package domain

// Rules is the complete classifier configuration. All matching is done
// against lowercase strings; NewClassifier lowercases every field once
// so rule data never needs case-folding at match time.
type Rules struct {
	// Identity tokens for the resume check.
	FirstName string
	LastName  string

	// Tax-document check: a 4-digit year in [TaxYearMin, TaxYearMax]
	// plus a jurisdiction code or keyword.
	TaxYearMin    int
	TaxYearMax    int
	Jurisdictions []string
	TaxKeywords   []string

	// Screenshot check: any of these substrings.
	ScreenshotMarkers []string

	// Extension lookup, tried after all pattern checks.
	Extensions []ExtensionGroup
}

// DefaultRules returns the built-in classification rules.
func DefaultRules() Rules {
	return Rules{
		FirstName: "samia",
		LastName:  "ibrahim",

		TaxYearMin:    2020,
		TaxYearMax:    2030,
		Jurisdictions: []string{"il", "mn"},
		TaxKeywords:   []string{"federal", "state", "tax", "1040", "w2", "w-2"},

		ScreenshotMarkers: []string{
			"screenshot",
			"screen shot",
			"screen_shot",
			"capture",
			"scr ", // prefix used by some capture apps
		},

		Extensions: []ExtensionGroup{
			{Category: "Images", Match: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".heic", ".webp", ".tiff", ".ico"}},
			{Category: "Documents", Match: []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages", ".tex", ".md"}},
			{Category: "Spreadsheets", Match: []string{".xls", ".xlsx", ".csv", ".numbers", ".ods"}},
			{Category: "Presentations", Match: []string{".ppt", ".pptx", ".key", ".odp"}},
			{Category: "Videos", Match: []string{".mp4", ".avi", ".mov", ".mkv", ".flv", ".wmv", ".webm", ".m4v"}},
			{Category: "Audio", Match: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".wma", ".aiff"}},
			{Category: "Archives", Match: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".dmg", ".iso"}},
			{Category: "Code", Match: []string{".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".h", ".php", ".rb", ".go", ".rs", ".swift", ".sh", ".json", ".xml", ".yml", ".yaml"}},
			{Category: "Executables", Match: []string{".app", ".exe", ".dmg", ".pkg"}},
			{Category: "Fonts", Match: []string{".ttf", ".otf", ".woff", ".woff2"}},
		},
	}
}

// Categories returns every category the rules can produce, pattern
// categories first, then extension groups in declaration order, then
// the fallback.
func (r Rules) Categories() []Category {
	out := []Category{CategoryResumes, CategoryTaxDocuments, CategoryScreenshots}
	for _, g := range r.Extensions {
		out = append(out, g.Category)
	}
	return append(out, CategoryOther)
}
