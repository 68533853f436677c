package commands

import (
	"context"

	"tidydesk/internal/application"
	"tidydesk/internal/domain"
)

// Classification pairs a name with the category it resolves to.
type Classification struct {
	Name     string
	Category domain.Category
}

// ClassifyResult contains the result of classifying names
type ClassifyResult struct {
	Classifications []Classification
}

// ClassifyCommand classifies filenames without touching the
// filesystem.
type ClassifyCommand struct {
	classifier *domain.Classifier
	Names      []string
}

// NewClassifyCommand creates a new ClassifyCommand
func NewClassifyCommand(classifier *domain.Classifier, names []string) *ClassifyCommand {
	return &ClassifyCommand{
		classifier: classifier,
		Names:      names,
	}
}

// Validate checks if the classify operation is valid
func (c *ClassifyCommand) Validate() error {
	if len(c.Names) == 0 {
		return &application.ValidationError{
			Field:   "names",
			Message: "at least one name is required",
		}
	}
	return nil
}

// Execute runs the classify command
func (c *ClassifyCommand) Execute(ctx context.Context) (*ClassifyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &ClassifyResult{}
	for _, name := range c.Names {
		result.Classifications = append(result.Classifications, Classification{
			Name:     name,
			Category: c.classifier.Classify(name),
		})
	}
	return result, nil
}
