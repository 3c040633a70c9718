package tabview

import (
	"math"
	"sort"
)

// LoadedSet records the scene indices that have been visited. It only
// grows; a new View starts a new set.
type LoadedSet struct {
	indices map[int]struct{}
}

// NewLoadedSet creates a set holding the current index
func NewLoadedSet(current int) *LoadedSet {
	return &LoadedSet{indices: map[int]struct{}{current: {}}}
}

// Contains reports whether index was visited
func (s *LoadedSet) Contains(index int) bool {
	_, ok := s.indices[index]
	return ok
}

// Add inserts index and reports whether the set grew
func (s *LoadedSet) Add(index int) bool {
	if s.Contains(index) {
		return false
	}
	s.indices[index] = struct{}{}
	return true
}

// Len returns the number of visited indices
func (s *LoadedSet) Len() int { return len(s.indices) }

// Indices returns the visited indices in ascending order
func (s *LoadedSet) Indices() []int {
	out := make([]int, 0, len(s.indices))
	for i := range s.indices {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// LoadCandidate picks the scene to load for a position. It rounds up, so
// a drag in either direction loads the page being approached, except when
// that lands on the current page; then it rounds down.
func LoadCandidate(position float64, current int) int {
	next := int(math.Ceil(position))
	if next == current {
		next = int(math.Floor(position))
	}
	return next
}
