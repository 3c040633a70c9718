// Package gesture turns terminal input into the numeric event streams that
// drive horizontal paging: continuous position updates while a gesture runs
// and a discrete settle once it ends.
//
// Two primitives are provided. PageWidget reports positions in page units
// the way a native view pager does. ScrollWidget reports a raw horizontal
// scroll offset in cells. Neither knows about tabs or routes.
package gesture

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FrameInterval is the delay between two animation frames
const FrameInterval = 16 * time.Millisecond

// SettleFrames is the number of frames a settle animation takes
const SettleFrames = 8

// ScrollState is the lifecycle of a gesture: idle -> dragging -> settling -> idle
type ScrollState int

const (
	StateIdle ScrollState = iota
	StateDragging
	StateSettling
)

func (s ScrollState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// KeyMap holds the keys that swipe one page at a time
type KeyMap struct {
	Prev key.Binding
	Next key.Binding
}

// DefaultKeyMap returns vim-style and arrow swipe keys
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "swipe left"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "swipe right"),
		),
	}
}

var widgetIDs atomic.Uint64

func nextWidgetID() uint64 {
	return widgetIDs.Add(1)
}

// frameMsg advances the animation of one widget. Stale frames from a
// cancelled animation carry an old seq and are ignored.
type frameMsg struct {
	id  uint64
	seq int
}

func frame(id uint64, seq int) tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, seq: seq}
	})
}

// tween interpolates linearly between two values
type tween struct {
	from   float64
	to     float64
	frame  int
	frames int
}

func newTween(from, to float64) *tween {
	return &tween{from: from, to: to, frames: SettleFrames}
}

func (t *tween) step() (float64, bool) {
	t.frame++
	if t.frame >= t.frames {
		return t.to, true
	}
	ratio := float64(t.frame) / float64(t.frames)
	return t.from + (t.to-t.from)*ratio, false
}

type inputKind int

const (
	inputNone inputKind = iota
	inputPress
	inputMotion
	inputRelease
	inputStepPrev
	inputStepNext
)

type input struct {
	kind inputKind
	x    int
}

// classify maps a terminal message onto a gesture input
func classify(msg tea.Msg, keys KeyMap) input {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Prev):
			return input{kind: inputStepPrev}
		case key.Matches(msg, keys.Next):
			return input{kind: inputStepNext}
		}
	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelLeft:
			return input{kind: inputStepPrev}
		case msg.Button == tea.MouseButtonWheelRight:
			return input{kind: inputStepNext}
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			return input{kind: inputPress, x: msg.X}
		case msg.Action == tea.MouseActionMotion:
			return input{kind: inputMotion, x: msg.X}
		case msg.Action == tea.MouseActionRelease:
			return input{kind: inputRelease, x: msg.X}
		}
	}
	return input{kind: inputNone}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Strip lays pages side by side and cuts a window of width cells starting
// at column x. Pages are expected to be pre-sized to width by height.
func Strip(pages []string, width, height, x int) string {
	if len(pages) == 0 {
		return ""
	}
	if width <= 0 || len(pages) == 1 {
		return pages[0]
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, pages...)
	lines := strings.Split(row, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Cut(line, x, x+width)
	}
	return strings.Join(lines, "\n")
}
