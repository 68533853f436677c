package application

import "tidydesk/internal/domain"

// Re-export domain types for use by adapters
type (
	Category = domain.Category
	Entry    = domain.Entry
	Move     = domain.Move
	Report   = domain.Report
	Rules    = domain.Rules
	Mode     = domain.Mode
)

const (
	ModeType = domain.ModeType
	ModeDate = domain.ModeDate
)

// ParseMode maps a mode string to a domain.Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeType:
		return ModeType, nil
	case ModeDate:
		return ModeDate, nil
	default:
		return "", &ValidationError{Field: "mode", Message: "must be \"type\" or \"date\""}
	}
}
