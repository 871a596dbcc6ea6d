package metrics

import "time"

// Event is a single analytics event emitted by the onboarding flow.
// Events are append-only; Props carry event-specific detail such as the
// flow name or the selected provider.
type Event struct {
	Timestamp time.Time         `json:"timestamp"`
	Name      string            `json:"name"`
	Props     map[string]string `json:"props,omitempty"`
}

// Recorder captures analytics events. Implementations must tolerate
// being called from the UI goroutine and never block for long.
type Recorder interface {
	Capture(name string, props map[string]string)
	Close() error
}

// NopRecorder discards every event. Used when analytics are disabled.
type NopRecorder struct{}

func (NopRecorder) Capture(string, map[string]string) {}
func (NopRecorder) Close() error                      { return nil }

// MemoryRecorder collects events in memory for tests.
type MemoryRecorder struct {
	Events []Event
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Capture(name string, props map[string]string) {
	r.Events = append(r.Events, Event{
		Timestamp: time.Now(),
		Name:      name,
		Props:     props,
	})
}

func (r *MemoryRecorder) Close() error { return nil }

// Names returns the captured event names in order.
func (r *MemoryRecorder) Names() []string {
	names := make([]string, len(r.Events))
	for i, e := range r.Events {
		names[i] = e.Name
	}
	return names
}
