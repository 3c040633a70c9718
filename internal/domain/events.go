package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTabChangeRequested EventType = "TabChangeRequested"
	EventTabChanged         EventType = "TabChanged"
	EventTabChangeRejected  EventType = "TabChangeRejected"
	EventSceneLoaded        EventType = "SceneLoaded"
	EventLayoutMeasured     EventType = "LayoutMeasured"
	EventPositionChanged    EventType = "PositionChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TabChangeRequestedEvent is emitted when the tab view asks the owner to change tabs
type TabChangeRequestedEvent struct {
	From int
	To   int
}

func (e TabChangeRequestedEvent) Type() EventType { return EventTabChangeRequested }

// TabChangedEvent is emitted after the owner confirmed a new index
type TabChangedEvent struct {
	Index int
	Key   string
}

func (e TabChangedEvent) Type() EventType { return EventTabChanged }

// TabChangeRejectedEvent is emitted when the owner refuses a request
type TabChangeRejectedEvent struct {
	Index  int
	Reason string
}

func (e TabChangeRejectedEvent) Type() EventType { return EventTabChangeRejected }

// SceneLoadedEvent is emitted when a lazy scene is mounted for the first time
type SceneLoadedEvent struct {
	Index int
	Key   string
}

func (e SceneLoadedEvent) Type() EventType { return EventSceneLoaded }

// LayoutMeasuredEvent is emitted when the tab view observes a new size
type LayoutMeasuredEvent struct {
	Width  int
	Height int
}

func (e LayoutMeasuredEvent) Type() EventType { return EventLayoutMeasured }

// PositionChangedEvent carries the continuous pager position
type PositionChangedEvent struct {
	Position float64
}

func (e PositionChangedEvent) Type() EventType { return EventPositionChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
	Tabs int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
