package recording

import "github.com/gogpu/pixbuf"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Drawing commands
	CmdClear      CommandType = iota // Fill the canvas with the clear color
	CmdPixel                         // Plot one pixel
	CmdLine                          // Stroke a line segment
	CmdRect                          // Stroke a rectangle outline
	CmdFillRect                      // Fill a rectangle
	CmdCircle                        // Stroke a circle
	CmdFillCircle                    // Fill a disc

	// Style commands
	CmdSetClearColor  // Set clear color
	CmdSetStrokeColor // Set stroke color
	CmdSetFillColor   // Set fill color
	CmdSetStrokeWidth // Set stroke width
)

var commandTypeNames = [...]string{
	CmdClear:          "Clear",
	CmdPixel:          "Pixel",
	CmdLine:           "Line",
	CmdRect:           "Rect",
	CmdFillRect:       "FillRect",
	CmdCircle:         "Circle",
	CmdFillCircle:     "FillCircle",
	CmdSetClearColor:  "SetClearColor",
	CmdSetStrokeColor: "SetStrokeColor",
	CmdSetFillColor:   "SetFillColor",
	CmdSetStrokeWidth: "SetStrokeWidth",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsStyle reports whether the command changes drawing style rather than
// pixels.
func (c CommandType) IsStyle() bool {
	return c >= CmdSetClearColor && c <= CmdSetStrokeWidth
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand fills the canvas with the current clear color.
type ClearCommand struct{}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// PixelCommand plots a single pixel in the stroke color.
type PixelCommand struct {
	X, Y int
}

// Type implements Command.
func (PixelCommand) Type() CommandType { return CmdPixel }

// LineCommand strokes the segment from (X0, Y0) to (X1, Y1).
type LineCommand struct {
	X0, Y0, X1, Y1 int
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// RectCommand strokes the outline of Rect.
type RectCommand struct {
	Rect pixbuf.Rect
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// FillRectCommand fills Rect with the fill color.
type FillRectCommand struct {
	Rect pixbuf.Rect
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// CircleCommand strokes a circle.
type CircleCommand struct {
	CX, CY, R int
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// FillCircleCommand fills a disc.
type FillCircleCommand struct {
	CX, CY, R int
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

// SetClearColorCommand sets the clear color.
type SetClearColorCommand struct {
	Color pixbuf.Color
}

// Type implements Command.
func (SetClearColorCommand) Type() CommandType { return CmdSetClearColor }

// SetStrokeColorCommand sets the stroke color.
type SetStrokeColorCommand struct {
	Color pixbuf.Color
}

// Type implements Command.
func (SetStrokeColorCommand) Type() CommandType { return CmdSetStrokeColor }

// SetFillColorCommand sets the fill color.
type SetFillColorCommand struct {
	Color pixbuf.Color
}

// Type implements Command.
func (SetFillColorCommand) Type() CommandType { return CmdSetFillColor }

// SetStrokeWidthCommand sets the stroke width. Width is always >= 1.
type SetStrokeWidthCommand struct {
	Width int
}

// Type implements Command.
func (SetStrokeWidthCommand) Type() CommandType { return CmdSetStrokeWidth }
