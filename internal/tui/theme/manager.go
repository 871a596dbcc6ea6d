package theme

import "sync"

// Manager holds the active theme and notifies subscribers when it
// changes. The wizard subscribes so its cached styles are rebuilt on
// theme switches instead of only at startup.
type Manager struct {
	mu      sync.Mutex
	current *Theme
	subs    map[int]func(*Theme)
	nextID  int
}

// NewManager creates a manager for the named theme, falling back to the
// dark theme when the name is unknown.
func NewManager(name string) *Manager {
	return &Manager{
		current: byName(name),
		subs:    make(map[int]func(*Theme)),
	}
}

func byName(name string) *Theme {
	switch name {
	case "light":
		return NewCatppuccinLatte()
	case "high-contrast-dark":
		return NewHighContrastDark()
	default:
		return NewCatppuccinMocha()
	}
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set switches the active theme by name and notifies all subscribers.
func (m *Manager) Set(name string) {
	m.mu.Lock()
	m.current = byName(name)
	subs := make([]func(*Theme), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	t := m.current
	m.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
}

var cycleOrder = []string{"dark", "light", "high-contrast-dark"}

// CycleNext switches to the next theme variant in a fixed order.
func (m *Manager) CycleNext() {
	cur := m.Current().Name
	for i, name := range cycleOrder {
		if name == cur {
			m.Set(cycleOrder[(i+1)%len(cycleOrder)])
			return
		}
	}
	m.Set(cycleOrder[0])
}

// Subscribe registers a callback invoked on every theme change and
// returns a function that removes the subscription.
func (m *Manager) Subscribe(fn func(*Theme)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}
