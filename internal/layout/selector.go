package layout

import "sync"

// Selector tracks the active screen class across resizes and only looks up a
// new config when the class changes.
type Selector struct {
	mu      sync.Mutex
	current *Config
	lookups int
}

// NewSelector returns a selector with no active class.
func NewSelector() *Selector {
	return &Selector{}
}

// NewSelectorAt returns a selector whose active class is already class, as
// when a client reports the class it is currently rendering.
func NewSelectorAt(class ScreenClass) *Selector {
	return &Selector{current: ForClass(class), lookups: 1}
}

// Resize reports the config for width and whether the screen class changed.
// Widths inside the active class return the same *Config without a lookup.
func (s *Selector) Resize(width int) (*Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	class := Classify(width)
	if s.current != nil && s.current.Class() == class {
		return s.current, false
	}
	s.current = ForClass(class)
	s.lookups++
	return s.current, true
}

// Current returns the active config, or nil before the first Resize.
func (s *Selector) Current() *Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Lookups returns how many table lookups the selector performed.
func (s *Selector) Lookups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}
