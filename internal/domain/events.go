package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoggedIn             EventType = "LoggedIn"
	EventLoggedOut            EventType = "LoggedOut"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventConfigChanged        EventType = "ConfigChanged"
	EventJobCreated           EventType = "JobCreated"
	EventAdminActionCompleted EventType = "AdminActionCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoggedInEvent is emitted after a successful login
type LoggedInEvent struct {
	Username string
}

func (e LoggedInEvent) Type() EventType { return EventLoggedIn }

// LoggedOutEvent is emitted after the token has been discarded
type LoggedOutEvent struct{}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a setting changed at runtime and should be persisted
type ConfigChangedEvent struct {
	PageSize   int
	DefaultTab string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// JobCreatedEvent is emitted after a manual job entry was accepted
type JobCreatedEvent struct {
	ID    int
	Title string
}

func (e JobCreatedEvent) Type() EventType { return EventJobCreated }

// AdminActionCompletedEvent is emitted when an admin trigger returned
type AdminActionCompletedEvent struct {
	Action string
	Status string
}

func (e AdminActionCompletedEvent) Type() EventType { return EventAdminActionCompleted }
