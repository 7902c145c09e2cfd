package renderer

import "image/color"

// CircleOp is a recorded FillCircle call.
type CircleOp struct {
	X, Y, Radius float32
	Color        color.NRGBA
}

// LineOp is a recorded StrokeLine call.
type LineOp struct {
	X1, Y1, X2, Y2 float32
	Width          float32
	Color          color.NRGBA
}

// Recorder is a Surface that keeps the draw calls of the current frame.
// Clear starts a new frame. Used for dry runs and tests.
type Recorder struct {
	Width   int
	Height  int
	Clears  int
	Circles []CircleOp
	Lines   []LineOp
}

// NewRecorder creates a recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Clear drops the recorded calls.
func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

// FillCircle records a disc.
func (r *Recorder) FillCircle(x, y, radius float32, c color.NRGBA) {
	r.Circles = append(r.Circles, CircleOp{X: x, Y: y, Radius: radius, Color: c})
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float32, c color.NRGBA) {
	r.Lines = append(r.Lines, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// Size returns the recorded size.
func (r *Recorder) Size() (width, height int) {
	return r.Width, r.Height
}

// Resize updates the recorded size.
func (r *Recorder) Resize(width, height int) {
	r.Width, r.Height = width, height
}
