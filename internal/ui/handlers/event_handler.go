package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/eventbus"
	"jobdash/internal/ui/state"
)

// StatusTimeout is how long an informational status stays visible
const StatusTimeout = 4 * time.Second

// ClearStatusMsg clears the status bar once its timer fires
type ClearStatusMsg struct {
	Message string
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state   *state.AppState
	onLogin func() tea.Cmd
}

// NewEventHandler creates a new event handler. onLogin runs after a
// LoggedIn event and typically loads the admin panel.
func NewEventHandler(appState *state.AppState, onLogin func() tea.Cmd) *EventHandler {
	return &EventHandler{
		state:   appState,
		onLogin: onLogin,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoggedInEvent:
		// the login reply may already have applied this
		if h.state.LoggedIn && h.state.Username == e.Username {
			return nil
		}
		h.state.SignedIn(e.Username)
		h.state.SetStatus(fmt.Sprintf("Logged in as %s", e.Username))
		var cmd tea.Cmd
		if h.onLogin != nil {
			cmd = h.onLogin()
		}
		return tea.Batch(cmd, clearAfter(h.state.StatusMessage))

	case eventbus.LoggedOutEvent:
		if !h.state.LoggedIn {
			return nil
		}
		h.state.SignedOut()
		h.state.SetStatus("Logged out")
		return clearAfter(h.state.StatusMessage)

	case eventbus.ErrorEvent:
		h.state.SetError(fmt.Sprintf("Error: %s", e.Message))

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(fmt.Sprintf("Settings saved to %s", e.Path))
		return clearAfter(h.state.StatusMessage)

	case eventbus.JobCreatedEvent:
		h.state.SetStatus(fmt.Sprintf("Job #%d created: %s", e.ID, e.Title))
		return clearAfter(h.state.StatusMessage)

	case eventbus.AdminActionCompletedEvent:
		h.state.SetStatus(fmt.Sprintf("%s: %s", e.Action, e.Status))
		return clearAfter(h.state.StatusMessage)
	}

	return nil
}

// clearAfter schedules removal of msg unless something newer replaced it
func clearAfter(msg string) tea.Cmd {
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: msg}
	})
}
