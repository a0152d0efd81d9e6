package ui

// Frame is the size and focus state shared by bordered panels. Embed it and
// size content with InnerWidth and BodyHeight.
type Frame struct {
	width, height int
	focused       bool
}

func (f *Frame) SetFocused(focused bool) { f.focused = focused }

func (f Frame) IsFocused() bool { return f.focused }

// SetSize sets the outer dimensions, border included.
func (f *Frame) SetSize(width, height int) {
	f.width = width
	f.height = height
}

func (f Frame) Width() int  { return f.width }
func (f Frame) Height() int { return f.height }

// Empty reports whether the frame has no area to draw into.
func (f Frame) Empty() bool { return f.width <= 0 || f.height <= 0 }

// InnerWidth is the width left inside the border.
func (f Frame) InnerWidth() int { return max(f.width-BorderHeight, 0) }

// BodyHeight is the number of rows left under the panel header.
func (f Frame) BodyHeight() int { return max(f.height-PanelOverhead, 0) }
