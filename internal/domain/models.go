package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoRoutes        = errors.New("navigation state has no routes")
	ErrIndexOutOfRange = errors.New("navigation index out of range")
	ErrDuplicateKey    = errors.New("duplicate route key")
	ErrEmptyKey        = errors.New("route key is empty")
)

// Route represents a single tab. Only Key is read by the tab view core.
type Route struct {
	Key   string
	Title string // shown by header renderers
}

// NavigationState is the externally owned source of truth for the tab view.
// It is treated as immutable input and replaced wholesale between renders.
type NavigationState struct {
	Index  int
	Routes []Route
}

// Validate checks the navigation invariants
func (s NavigationState) Validate() error {
	if len(s.Routes) == 0 {
		return ErrNoRoutes
	}
	if s.Index < 0 || s.Index >= len(s.Routes) {
		return fmt.Errorf("%w: index %d, %d routes", ErrIndexOutOfRange, s.Index, len(s.Routes))
	}
	seen := make(map[string]int, len(s.Routes))
	for i, r := range s.Routes {
		if r.Key == "" {
			return fmt.Errorf("%w: route %d", ErrEmptyKey, i)
		}
		if prev, ok := seen[r.Key]; ok {
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicateKey, r.Key, prev, i)
		}
		seen[r.Key] = i
	}
	return nil
}

// WithIndex returns a copy of the state pointing at index.
// The routes slice is shared; callers must not mutate it.
func (s NavigationState) WithIndex(index int) NavigationState {
	return NavigationState{Index: index, Routes: s.Routes}
}

// CurrentRoute returns the route at Index
func (s NavigationState) CurrentRoute() Route {
	return s.Routes[s.Index]
}

// IndexOf returns the position of the route with key, or -1
func (s NavigationState) IndexOf(key string) int {
	for i, r := range s.Routes {
		if r.Key == key {
			return i
		}
	}
	return -1
}

// InRange reports whether index addresses a route
func (s NavigationState) InRange(index int) bool {
	return index >= 0 && index < len(s.Routes)
}

// Layout is the measured size of the tab view in terminal cells
type Layout struct {
	Width    int
	Height   int
	Measured bool
}

// Known reports whether pages can be laid out in fixed-width slots
func (l Layout) Known() bool {
	return l.Width > 0
}

// SameSize compares dimensions only
func (l Layout) SameSize(width, height int) bool {
	return l.Width == width && l.Height == height
}
