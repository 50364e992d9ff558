package renderer

import "github.com/pthm-cable/trails/components"

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpFillCircle
	OpStrokeCircle
	OpFillEllipse
	OpFillPolygon
	OpStrokePolyline
	OpFillText
)

var opNames = [...]string{
	OpFillRect:       "fillRect",
	OpFillCircle:     "fillCircle",
	OpStrokeCircle:   "strokeCircle",
	OpFillEllipse:    "fillEllipse",
	OpFillPolygon:    "fillPolygon",
	OpStrokePolyline: "strokePolyline",
	OpFillText:       "fillText",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded drawing call with the state it was issued under.
// Args holds the geometric arguments in call order.
type Op struct {
	Kind   OpKind
	Args   []float64
	Points []components.Point
	Text   string
	Paint  Paint
	State  State
}

// Recorder is a Surface that keeps every call instead of drawing. It backs
// headless runs and rendering tests.
type Recorder struct {
	W, H  float64
	Ops   []Op
	stack StateStack

	// Discard drops ops after counting them, for long headless runs.
	Discard bool
	count   int
}

// NewRecorder creates a recorder for a w x h surface.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, stack: NewStateStack()}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Save()                    { r.stack.Save() }
func (r *Recorder) Restore()                 { r.stack.Restore() }
func (r *Recorder) Translate(x, y float64)   { r.stack.Translate(x, y) }
func (r *Recorder) Rotate(rad float64)       { r.stack.Rotate(rad) }
func (r *Recorder) SetGlobalAlpha(a float64) { r.stack.SetGlobalAlpha(a) }
func (r *Recorder) GlobalAlpha() float64     { return r.stack.GlobalAlpha() }

func (r *Recorder) SetShadow(color string, blur float64) { r.stack.SetShadow(color, blur) }

func (r *Recorder) FillRect(x, y, w, h float64, paint Paint) {
	r.record(Op{Kind: OpFillRect, Args: []float64{x, y, w, h}, Paint: paint})
}

func (r *Recorder) FillCircle(x, y, radius float64, paint Paint) {
	r.record(Op{Kind: OpFillCircle, Args: []float64{x, y, radius}, Paint: paint})
}

func (r *Recorder) StrokeCircle(x, y, radius, width float64, paint Paint) {
	r.record(Op{Kind: OpStrokeCircle, Args: []float64{x, y, radius, width}, Paint: paint})
}

func (r *Recorder) FillEllipse(x, y, rx, ry, rotation float64, paint Paint) {
	r.record(Op{Kind: OpFillEllipse, Args: []float64{x, y, rx, ry, rotation}, Paint: paint})
}

func (r *Recorder) FillPolygon(pts []components.Point, paint Paint) {
	r.record(Op{Kind: OpFillPolygon, Points: append([]components.Point(nil), pts...), Paint: paint})
}

func (r *Recorder) StrokePolyline(pts []components.Point, width float64, paint Paint) {
	r.record(Op{Kind: OpStrokePolyline, Args: []float64{width}, Points: append([]components.Point(nil), pts...), Paint: paint})
}

func (r *Recorder) FillText(text string, x, y, size float64, paint Paint) {
	r.record(Op{Kind: OpFillText, Args: []float64{x, y, size}, Text: text, Paint: paint})
}

func (r *Recorder) record(op Op) {
	r.count++
	if r.Discard {
		return
	}
	op.State = r.stack.Cur
	r.Ops = append(r.Ops, op)
}

// Count returns how many ops have been issued since the last Reset,
// including discarded ones.
func (r *Recorder) Count() int { return r.count }

// CountKind returns how many recorded ops have the given kind.
func (r *Recorder) CountKind(kind OpKind) int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Depth returns the current Save nesting.
func (r *Recorder) Depth() int { return r.stack.Depth() }

// Reset drops recorded ops and restores the initial state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.count = 0
	r.stack = NewStateStack()
}

// Gradients returns the gradient paints of all recorded ops in order.
func (r *Recorder) Gradients() []*Gradient {
	var out []*Gradient
	for i := range r.Ops {
		if g, ok := r.Ops[i].Paint.(*Gradient); ok {
			out = append(out, g)
		}
	}
	return out
}
