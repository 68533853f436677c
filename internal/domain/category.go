package domain

// Category is a destination folder label assigned to a file.
type Category string

// Pattern-based categories. These always win over extension lookup.
const (
	CategoryResumes      Category = "Resumes"
	CategoryTaxDocuments Category = "Tax Documents"
	CategoryScreenshots  Category = "Screenshots"
	CategoryOther        Category = "Other"
)

// ExtensionGroup maps a category to the file extensions it claims.
// Groups are matched in declaration order, so an extension listed in
// two groups resolves to the first one.
type ExtensionGroup struct {
	Category Category
	Match    []string // lowercase, with leading dot
}
