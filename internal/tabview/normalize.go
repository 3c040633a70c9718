package tabview

import "math"

// NormalizePageEvent is the rule for page-event pagers: progress and offset
// are both in page units.
func NormalizePageEvent(progress, offset float64, fallback int) float64 {
	return finiteOr(progress+offset, fallback)
}

// NormalizeScroll is the rule for scroll pagers: progress is a horizontal
// offset in cells. Before the width is known the position cannot be
// derived, so the external index is returned as a constant.
func NormalizeScroll(progress float64, width int, fallback int) float64 {
	if width <= 0 {
		return float64(fallback)
	}
	return finiteOr(progress/float64(width), fallback)
}

func finiteOr(v float64, fallback int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return float64(fallback)
	}
	return v
}
