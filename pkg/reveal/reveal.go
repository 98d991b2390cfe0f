// Package reveal models the scroll-triggered entrance used by every content section.
//
// The browser drives it with IntersectionObserver; this package holds the
// configuration, renders it as data attributes for the page script, and
// carries the state rules the script follows.
package reveal

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Defaults.
const (
	DefaultThreshold  = 0.25
	DefaultRootMargin = "-10% 0px"
	DefaultOffsetY    = 28
)

// Config controls when a section is revealed.
type Config struct {
	// Threshold is the fraction of the element that must be visible (0-1).
	Threshold float64
	// RootMargin grows or shrinks the viewport box, CSS margin syntax.
	RootMargin string
	// OffsetY is how far below its resting place the block starts, in px.
	OffsetY int
	// Once keeps the block shown after the first reveal.
	Once  bool
	Delay time.Duration
}

// Default returns the standard section configuration.
func Default() Config {
	return Config{
		Threshold:  DefaultThreshold,
		RootMargin: DefaultRootMargin,
		OffsetY:    DefaultOffsetY,
	}
}

// WithOffset returns a default configuration with a custom entrance offset.
func WithOffset(y int) Config {
	c := Default()
	c.OffsetY = y
	return c
}

// Normalize clamps out-of-range values.
func (c Config) Normalize() Config {
	switch {
	case c.Threshold < 0:
		c.Threshold = 0
	case c.Threshold > 1:
		c.Threshold = 1
	}
	if c.RootMargin == "" {
		c.RootMargin = DefaultRootMargin
	}
	if c.OffsetY < 0 {
		c.OffsetY = 0
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	return c
}

// Attrs renders the configuration for the page script.
func (c Config) Attrs() g.Node {
	c = c.Normalize()
	return g.Group{
		Data("reveal", ""),
		Data("reveal-threshold", strconv.FormatFloat(c.Threshold, 'f', -1, 64)),
		Data("reveal-margin", c.RootMargin),
		Data("reveal-y", strconv.Itoa(c.OffsetY)),
		g.If(c.Once, Data("reveal-once", "")),
		g.If(c.Delay > 0, Data("reveal-delay", strconv.FormatInt(c.Delay.Milliseconds(), 10))),
	}
}

// Entry is one visibility observation.
type Entry struct {
	Ratio        float64
	Intersecting bool
}

// State is the per-section reveal state. site.js runs the same rules in the
// browser from the attributes Attrs renders; State is the model it follows
// and the place its rules are tested.
type State struct {
	cfg      Config
	visible  bool
	hasShown bool
	detached bool
}

// NewState starts hidden.
func NewState(cfg Config) *State {
	return &State{cfg: cfg.Normalize()}
}

// Observe applies a visibility change. Observing a nil State does nothing.
func (s *State) Observe(e Entry) {
	if s == nil || s.detached {
		return
	}
	if e.Intersecting && e.Ratio >= s.cfg.Threshold {
		s.visible = true
		s.hasShown = true
		if s.cfg.Once {
			s.detached = true
		}
		return
	}
	if !s.cfg.Once {
		s.visible = false
	}
}

// Shown reports whether the block is in its shown visual state.
func (s *State) Shown() bool {
	if s == nil {
		return false
	}
	if s.cfg.Once {
		return s.hasShown
	}
	return s.visible
}

// Detached reports whether the state stopped listening, which the script
// mirrors by unobserving a once-section after its first reveal.
func (s *State) Detached() bool {
	return s != nil && s.detached
}

// Wrap wraps children in a reveal container.
func Wrap(cfg Config, class string, children ...g.Node) g.Node {
	return Div(
		g.If(class != "", Class(class)),
		cfg.Attrs(),
		g.Group(children),
	)
}
