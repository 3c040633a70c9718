package tabview

import (
	"errors"
	"fmt"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// Pager bridges a paging primitive to the Progress/Offset values.
//
// Normalize must be pure: it reads the values referenced by props and
// returns the continuous position. Update receives discrete prop changes;
// HandleMsg receives input and frame messages. Neither may change the
// navigation index; a settled gesture calls props.JumpToIndex instead.
//
// Pagers may assume that every index they receive through props is valid.
type Pager interface {
	Normalize(props PagerProps) float64
	Mount(props PagerProps) tea.Cmd
	Update(props PagerProps) tea.Cmd
	HandleMsg(msg tea.Msg) tea.Cmd
	View(props PagerProps, pages []string, height int) string
}

// Capability names the kind of paging primitive the host offers
type Capability int

const (
	// CapabilityPageEvents reports page index plus fraction
	CapabilityPageEvents Capability = iota
	// CapabilityPixelScroll reports a raw horizontal offset
	CapabilityPixelScroll
	// CapabilityCustom uses a caller supplied Pager
	CapabilityCustom
)

func (c Capability) String() string {
	switch c {
	case CapabilityPageEvents:
		return "page"
	case CapabilityPixelScroll:
		return "scroll"
	case CapabilityCustom:
		return "custom"
	default:
		return fmt.Sprintf("Capability(%d)", int(c))
	}
}

// ErrNoCustomPager is returned when CapabilityCustom is selected without a pager
var ErrNoCustomPager = errors.New("custom capability requires a pager")

// DetectCapability picks the primitive for the host platform. macOS
// terminals report smooth horizontal scrolling; everything else pages.
func DetectCapability() Capability {
	if runtime.GOOS == "darwin" {
		return CapabilityPixelScroll
	}
	return CapabilityPageEvents
}

// ParseCapability maps a configured mode onto a capability. "auto" and ""
// defer to DetectCapability.
func ParseCapability(mode string) (Capability, error) {
	switch mode {
	case "", "auto":
		return DetectCapability(), nil
	case "page":
		return CapabilityPageEvents, nil
	case "scroll":
		return CapabilityPixelScroll, nil
	case "custom":
		return CapabilityCustom, nil
	}
	return 0, fmt.Errorf("unknown pager mode %q", mode)
}

// SelectPager builds the pager for a capability. This is the only place
// where the concrete variant is chosen.
func SelectPager(c Capability, custom Pager) (Pager, error) {
	switch c {
	case CapabilityPageEvents:
		return NewPageEventPager(nil), nil
	case CapabilityPixelScroll:
		return NewScrollPager(nil), nil
	case CapabilityCustom:
		if custom == nil {
			return nil, ErrNoCustomPager
		}
		return custom, nil
	}
	return nil, fmt.Errorf("unsupported capability %s", c)
}

// pendingCmds collects commands produced inside event callbacks, which
// cannot return them directly
type pendingCmds []tea.Cmd

func (p *pendingCmds) add(cmd tea.Cmd) {
	if cmd != nil {
		*p = append(*p, cmd)
	}
}

func (p *pendingCmds) flush(cmds ...tea.Cmd) tea.Cmd {
	all := append(cmds, *p...)
	*p = nil
	return tea.Batch(all...)
}
