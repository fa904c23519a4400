package schema

import "log/slog"

// EventType represents shape lifecycle phases in the registry
type EventType string

const (
	EventShapeCreated  EventType = "shape_created"
	EventShapeResolved EventType = "shape_resolved"
)

// Event represents a shape lifecycle event in the registry
type Event struct {
	Type        EventType   // Type of event
	Shape       string      // Shape name for tracing
	Fingerprint string      // Identity key of the shape
	Data        interface{} // Event-specific data
}

// Observer interface for event subscribers
// Observers receive events when shapes are created or reused
type Observer interface {
	OnEvent(event Event)
}

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// OnEvent implements the Observer interface
// It logs each event with structured fields for easy filtering and analysis
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("shape_lifecycle",
		"event", event.Type,
		"shape", event.Shape,
		"fingerprint", event.Fingerprint,
		"data", event.Data,
	)
}
