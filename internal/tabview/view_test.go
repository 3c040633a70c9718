package tabview

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipetabs/internal/domain"
)

type sceneLog struct {
	calls []SceneProps
}

func (l *sceneLog) render(p SceneProps) string {
	l.calls = append(l.calls, p)
	return p.Route.Key
}

func (l *sceneLog) indices() []int {
	out := make([]int, 0, len(l.calls))
	for _, c := range l.calls {
		out = append(out, c.Index)
	}
	return out
}

func (l *sceneLog) reset() { l.calls = nil }

// drive runs cmd and feeds the resulting messages back into the view until
// nothing is left
func drive(v *View, cmd tea.Cmd) {
	var run func(cmd tea.Cmd, depth int)
	run = func(cmd tea.Cmd, depth int) {
		if cmd == nil || depth > 200 {
			return
		}
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				run(c, depth+1)
			}
			return
		}
		run(v.Update(msg), depth+1)
	}
	run(cmd, 0)
}

func mouse(action tea.MouseAction, x int) tea.MouseMsg {
	button := tea.MouseButtonLeft
	if action == tea.MouseActionRelease {
		button = tea.MouseButtonNone
	}
	return tea.MouseMsg{X: x, Action: action, Button: button}
}

func TestNewRejectsBadOptions(t *testing.T) {
	render := func(SceneProps) string { return "" }
	request := func(int) {}

	_, err := New(context.Background(), NewOptions(testNav(0), request, nil))
	assert.ErrorIs(t, err, ErrNoSceneRenderer)

	_, err = New(context.Background(), NewOptions(testNav(0), nil, render))
	assert.ErrorIs(t, err, ErrNoRequestFunc)

	_, err = New(context.Background(), NewOptions(domain.NavigationState{}, request, render))
	assert.ErrorIs(t, err, domain.ErrNoRoutes)

	_, err = New(context.Background(), NewOptions(testNav(5), request, render))
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	opts := NewOptions(testNav(0), request, render)
	opts.InitialLayout = &domain.Layout{Width: -1}
	_, err = New(context.Background(), opts)
	assert.Error(t, err)

	opts = NewOptions(testNav(0), request, render)
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()
	assert.NotNil(t, v.Pager(), "a pager is selected for the host")
}

func TestViewLazyDragLoadsApproachedScene(t *testing.T) {
	scenes := &sceneLog{}
	o := &owner{}
	var loads []int

	opts := NewOptions(testNav(0), o.request, scenes.render)
	opts.Lazy = true
	opts.Pager = NewPageEventPager(nil)
	opts.OnLoad = func(i int) { loads = append(loads, i) }
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()

	v.Init()
	v.SetSize(10, 3)
	assert.Equal(t, []int{0}, v.Loaded())

	v.Update(mouse(tea.MouseActionPress, 50))
	v.Update(mouse(tea.MouseActionMotion, 36))
	assert.InDelta(t, 1.4, v.Position(), 1e-9)
	assert.Equal(t, []int{0, 2}, v.Loaded())
	assert.Equal(t, []int{2}, loads)

	v.View()
	assert.Equal(t, []int{0, 2}, scenes.indices(), "scene 1 is still a placeholder")

	drive(v, v.Update(mouse(tea.MouseActionRelease, 36)))
	assert.Equal(t, []int{1}, o.requests)
	assert.InDelta(t, 1.0, v.Position(), 1e-9)

	_, err = v.SetNavigationState(v.NavigationState().WithIndex(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, v.Loaded())
	assert.Equal(t, []int{2, 1}, loads, "each scene loads once")
}

func TestViewNotLazyRendersEveryScene(t *testing.T) {
	scenes := &sceneLog{}
	opts := NewOptions(testNav(1), func(int) {}, scenes.render)
	opts.Pager = NewPageEventPager(nil)
	opts.InitialLayout = &domain.Layout{Width: 320, Height: 5}
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()
	v.Init()

	out := v.View()
	assert.Equal(t, []int{0, 1, 2}, scenes.indices())
	for _, c := range scenes.calls {
		assert.Equal(t, 320, c.Width)
		assert.Equal(t, c.Index == 1, c.Focused)
	}

	assert.Contains(t, out, "drafts")
	assert.NotContains(t, out, "inbox")
	assert.Equal(t, 320, lipgloss.Width(out))
	assert.Equal(t, 5, lipgloss.Height(out))
}

func TestViewUnknownWidthRendersFocusedSceneOnly(t *testing.T) {
	scenes := &sceneLog{}
	opts := NewOptions(testNav(2), func(int) {}, scenes.render)
	opts.Pager = NewPageEventPager(nil)
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()
	v.Init()

	out := v.View()
	require.Len(t, scenes.calls, 1)
	assert.Equal(t, 2, scenes.calls[0].Index)
	assert.True(t, scenes.calls[0].Focused)
	assert.Equal(t, 0, scenes.calls[0].Width)
	assert.Equal(t, "archive", out)
	assert.Equal(t, 2.0, v.Position())

	scenes.reset()
	v.SetSize(320, 5)
	v.View()
	assert.Equal(t, []int{0, 1, 2}, scenes.indices())
}

func TestViewScrollPagerBeforeLayoutUsesIndex(t *testing.T) {
	scenes := &sceneLog{}
	opts := NewOptions(testNav(1), func(int) {}, scenes.render)
	opts.Pager = NewScrollPager(nil)
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()
	v.Init()

	assert.Equal(t, 1.0, v.Position())
	assert.Equal(t, "drafts", v.View())
}

func TestViewHeaderAndFooterShareHeight(t *testing.T) {
	scenes := &sceneLog{}
	var headerPos []float64
	opts := NewOptions(testNav(0), func(int) {}, scenes.render)
	opts.Pager = NewPageEventPager(nil)
	opts.InitialLayout = &domain.Layout{Width: 10, Height: 10}
	opts.RenderHeader = func(p SceneRendererProps) string {
		headerPos = append(headerPos, p.Position)
		return "header"
	}
	opts.RenderFooter = func(SceneRendererProps) string { return "f1\nf2" }
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()
	v.Init()

	out := v.View()
	assert.Equal(t, 10, lipgloss.Height(out))
	assert.True(t, strings.HasPrefix(out, "header"))
	assert.Equal(t, []float64{0}, headerPos)
	for _, c := range scenes.calls {
		assert.Equal(t, 7, c.Height)
	}
}

func TestViewRejectsInvalidNavigationState(t *testing.T) {
	opts := NewOptions(testNav(1), func(int) {}, func(SceneProps) string { return "" })
	opts.Pager = NewPageEventPager(&fakePageWidget{})
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()
	v.Init()

	_, err = v.SetNavigationState(domain.NavigationState{Index: 4, Routes: testNav(0).Routes})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, 1, v.NavigationState().Index)
}

func TestViewClosedIgnoresInput(t *testing.T) {
	o := &owner{}
	opts := NewOptions(testNav(0), o.request, func(SceneProps) string { return "" })
	opts.Pager = NewPageEventPager(nil)
	opts.InitialLayout = &domain.Layout{Width: 10, Height: 3}
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	v.Init()

	v.Close()
	assert.True(t, v.Closed())
	assert.Nil(t, v.Update(mouse(tea.MouseActionPress, 5)))
	assert.False(t, v.JumpToIndex(1))
	assert.Empty(t, o.requests)
}

func TestViewSwipeDisabled(t *testing.T) {
	o := &owner{}
	opts := NewOptions(testNav(0), o.request, func(SceneProps) string { return "" })
	opts.Pager = NewPageEventPager(nil)
	opts.InitialLayout = &domain.Layout{Width: 10, Height: 3}
	opts.SwipeEnabled = false
	v, err := New(context.Background(), opts)
	require.NoError(t, err)
	defer v.Close()
	v.Init()

	v.Update(mouse(tea.MouseActionPress, 50))
	drive(v, v.Update(mouse(tea.MouseActionMotion, 30)))
	drive(v, v.Update(mouse(tea.MouseActionRelease, 30)))
	assert.Empty(t, o.requests)
	assert.Equal(t, 0.0, v.Position())

	assert.True(t, v.JumpToIndex(2), "programmatic jumps still work")
	assert.Equal(t, []int{2}, o.requests)

	v.SetSwipeEnabled(true)
	v.Update(mouse(tea.MouseActionPress, 50))
	v.Update(mouse(tea.MouseActionMotion, 40))
	assert.InDelta(t, 1.0, v.Position(), 1e-9)
}
