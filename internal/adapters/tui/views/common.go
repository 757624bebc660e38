package views

import "bakerspal/internal/domain"

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

// SwitchViewMsg asks the app to show a different view
type SwitchViewMsg struct {
	View domain.View
}

// RefreshMsg tells the active view to re-read its data from the tracker
type RefreshMsg struct{}

// ResultMsg carries the outcome of an executed command
type ResultMsg struct {
	Message string
	Err     bool
}

// ToggleThemeMsg asks the app to flip between light and dark
type ToggleThemeMsg struct{}
