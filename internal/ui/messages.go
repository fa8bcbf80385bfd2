package ui

import (
	"time"

	"jobdash/internal/domain"
	"jobdash/internal/eventbus"
	"jobdash/internal/ui/state"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// suggestTriggerMsg fires when a field's debounce window has passed
type suggestTriggerMsg struct {
	target state.Tab
	field  domain.Field
	query  string
}

// logsTickMsg drives the admin log refresh. Ticks from an older chain carry
// a stale generation and are dropped.
type logsTickMsg struct {
	gen uint64
	at  time.Time
}

// pagerMsg reports how the ov pager exited
type pagerMsg struct {
	what string
	err  error
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
