package views

import "tidydesk/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages handled by the app model.

// SwitchToPlanMsg returns to the plan view, reloading the plan when
// Reload is set.
type SwitchToPlanMsg struct {
	Reload  bool
	Message string
}

// SwitchToConfirmMsg opens the apply confirmation for a plan.
type SwitchToConfirmMsg struct {
	Report domain.Report
}

// SwitchToHelpMsg opens the help view.
type SwitchToHelpMsg struct{}

type errMsg struct {
	err error
}
