package recording

import "github.com/gogpu/pixbuf"

// Recorder captures drawing operations as commands.
// It implements pixbuf.Canvas but generates commands instead of
// rasterizing pixels. Use FinishRecording to obtain an immutable
// Recording that can be replayed onto any canvas.
//
// The Recorder starts with the same style as a default pixbuf.Surface:
// white clear color, black stroke and fill, 1px stroke width.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	clearColor  pixbuf.Color
	strokeColor pixbuf.Color
	fillColor   pixbuf.Color
	strokeWidth int
}

var _ pixbuf.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:       width,
		height:      height,
		commands:    make([]Command, 0, 64),
		clearColor:  pixbuf.White,
		strokeColor: pixbuf.Black,
		fillColor:   pixbuf.Black,
		strokeWidth: 1,
	}
}

// NewRecorderFor creates a Recorder sized and styled like c, so that
// commands recorded against it replay onto c without style drift.
func NewRecorderFor(c pixbuf.Canvas) *Recorder {
	r := NewRecorder(c.Width(), c.Height())
	r.clearColor = c.ClearColor()
	r.strokeColor = c.StrokeColor()
	r.fillColor = c.FillColor()
	r.strokeWidth = c.StrokeWidth()
	return r
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder is reset and may be reused; its style is kept.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
	r.commands = make([]Command, 0, cap(r.commands))
	return rec
}

// Width returns the recorder width.
func (r *Recorder) Width() int { return r.width }

// Height returns the recorder height.
func (r *Recorder) Height() int { return r.height }

// ClearColor returns the current clear color.
func (r *Recorder) ClearColor() pixbuf.Color { return r.clearColor }

// StrokeColor returns the current stroke color.
func (r *Recorder) StrokeColor() pixbuf.Color { return r.strokeColor }

// FillColor returns the current fill color.
func (r *Recorder) FillColor() pixbuf.Color { return r.fillColor }

// StrokeWidth returns the current stroke width.
func (r *Recorder) StrokeWidth() int { return r.strokeWidth }

// SetClearColor records a clear color change.
func (r *Recorder) SetClearColor(c pixbuf.Color) {
	if c == r.clearColor {
		return
	}
	r.clearColor = c
	r.commands = append(r.commands, SetClearColorCommand{Color: c})
}

// SetStrokeColor records a stroke color change.
func (r *Recorder) SetStrokeColor(c pixbuf.Color) {
	if c == r.strokeColor {
		return
	}
	r.strokeColor = c
	r.commands = append(r.commands, SetStrokeColorCommand{Color: c})
}

// SetFillColor records a fill color change.
func (r *Recorder) SetFillColor(c pixbuf.Color) {
	if c == r.fillColor {
		return
	}
	r.fillColor = c
	r.commands = append(r.commands, SetFillColorCommand{Color: c})
}

// SetStrokeWidth records a stroke width change, clamped to 1.
func (r *Recorder) SetStrokeWidth(w int) {
	w = max(w, 1)
	if w == r.strokeWidth {
		return
	}
	r.strokeWidth = w
	r.commands = append(r.commands, SetStrokeWidthCommand{Width: w})
}

// Clear records a clear.
func (r *Recorder) Clear() {
	r.commands = append(r.commands, ClearCommand{})
}

// DrawPixel records a pixel plot.
func (r *Recorder) DrawPixel(x, y int) {
	r.commands = append(r.commands, PixelCommand{X: x, Y: y})
}

// DrawLine records a line.
func (r *Recorder) DrawLine(x0, y0, x1, y1 int) {
	r.commands = append(r.commands, LineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// DrawRect records a rectangle outline.
func (r *Recorder) DrawRect(x, y, w, h int) {
	r.commands = append(r.commands, RectCommand{Rect: pixbuf.R(x, y, w, h)})
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(x, y, w, h int) {
	r.commands = append(r.commands, FillRectCommand{Rect: pixbuf.R(x, y, w, h)})
}

// DrawCircle records a circle outline.
func (r *Recorder) DrawCircle(cx, cy, radius int) {
	r.commands = append(r.commands, CircleCommand{CX: cx, CY: cy, R: radius})
}

// FillCircle records a filled disc.
func (r *Recorder) FillCircle(cx, cy, radius int) {
	r.commands = append(r.commands, FillCircleCommand{CX: cx, CY: cy, R: radius})
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width the recording was made at.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height the recording was made at.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands in order. The slice must not be
// modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto c. Style commands change c's style
// exactly as the recorded calls did. Commands are replayed at their
// recorded coordinates regardless of c's size; the canvas clips.
func (r *Recording) Playback(c pixbuf.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case ClearCommand:
			c.Clear()
		case PixelCommand:
			c.DrawPixel(cmd.X, cmd.Y)
		case LineCommand:
			c.DrawLine(cmd.X0, cmd.Y0, cmd.X1, cmd.Y1)
		case RectCommand:
			c.DrawRect(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.W, cmd.Rect.H)
		case FillRectCommand:
			c.FillRect(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.W, cmd.Rect.H)
		case CircleCommand:
			c.DrawCircle(cmd.CX, cmd.CY, cmd.R)
		case FillCircleCommand:
			c.FillCircle(cmd.CX, cmd.CY, cmd.R)
		case SetClearColorCommand:
			c.SetClearColor(cmd.Color)
		case SetStrokeColorCommand:
			c.SetStrokeColor(cmd.Color)
		case SetFillColorCommand:
			c.SetFillColor(cmd.Color)
		case SetStrokeWidthCommand:
			c.SetStrokeWidth(cmd.Width)
		}
	}
}
