// Package align computes offsets for placing content inside a larger area.
package align

// HAlign is a horizontal alignment.
type HAlign int

const (
	Left HAlign = iota
	HCenter
	Right
)

// VAlign is a vertical alignment.
type VAlign int

const (
	Top VAlign = iota
	VCenter
	Bottom
)

// Offset returns the column where content of the given width starts
// inside a container. Never negative.
func (h HAlign) Offset(content, container int) int {
	switch h {
	case HCenter:
		return max(0, (container-content)/2)
	case Right:
		return max(0, container-content)
	default:
		return 0
	}
}

// Offset returns the row where content of the given height starts
// inside a container. Never negative.
func (v VAlign) Offset(content, container int) int {
	switch v {
	case VCenter:
		return max(0, (container-content)/2)
	case Bottom:
		return max(0, container-content)
	default:
		return 0
	}
}

// Align pairs a horizontal and a vertical alignment.
type Align struct {
	H HAlign
	V VAlign
}

// TopLeft is the default alignment.
func TopLeft() Align {
	return Align{H: Left, V: Top}
}

// Center centers on both axes.
func Center() Align {
	return Align{H: HCenter, V: VCenter}
}

// ParseH maps "left", "center" or "right" to an HAlign.
func ParseH(s string) (HAlign, bool) {
	switch s {
	case "left":
		return Left, true
	case "center":
		return HCenter, true
	case "right":
		return Right, true
	}
	return Left, false
}

// ParseV maps "top", "center" or "bottom" to a VAlign.
func ParseV(s string) (VAlign, bool) {
	switch s {
	case "top":
		return Top, true
	case "center":
		return VCenter, true
	case "bottom":
		return Bottom, true
	}
	return Top, false
}
