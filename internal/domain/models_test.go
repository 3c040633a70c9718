package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeRoutes() []Route {
	return []Route{{Key: "a", Title: "A"}, {Key: "b", Title: "B"}, {Key: "c", Title: "C"}}
}

func TestNavigationStateValidate(t *testing.T) {
	require.NoError(t, NavigationState{Index: 2, Routes: threeRoutes()}.Validate())

	err := NavigationState{}.Validate()
	assert.ErrorIs(t, err, ErrNoRoutes)

	err = NavigationState{Index: 3, Routes: threeRoutes()}.Validate()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = NavigationState{Index: -1, Routes: threeRoutes()}.Validate()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = NavigationState{Routes: []Route{{Key: "a"}, {Key: "a"}}}.Validate()
	assert.ErrorIs(t, err, ErrDuplicateKey)

	err = NavigationState{Routes: []Route{{Key: ""}}}.Validate()
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestNavigationStateHelpers(t *testing.T) {
	s := NavigationState{Index: 0, Routes: threeRoutes()}
	next := s.WithIndex(2)

	assert.Equal(t, 0, s.Index, "WithIndex must not mutate the receiver")
	assert.Equal(t, "c", next.CurrentRoute().Key)
	assert.Equal(t, 1, s.IndexOf("b"))
	assert.Equal(t, -1, s.IndexOf("zz"))
	assert.True(t, s.InRange(2))
	assert.False(t, s.InRange(3))
}

func TestLayoutKnown(t *testing.T) {
	assert.False(t, Layout{}.Known())
	assert.True(t, Layout{Width: 320, Height: 10, Measured: true}.Known())
	assert.True(t, Layout{Width: 80, Height: 24}.SameSize(80, 24))
}
