package penchart

import (
	"encoding/json"
	"io"
)

type CallKind string

const (
	CallLayer  CallKind = "layer"
	CallPoint  CallKind = "point"
	CallLine   CallKind = "line"
	CallClear  CallKind = "clear"
	CallRedraw CallKind = "redraw"
)

type Call struct {
	Kind  CallKind `json:"kind"`
	Layer Layer    `json:"layer"`
	Pen   *Pen     `json:"pen,omitempty"`
	From  *Point   `json:"from,omitempty"`
	To    *Point   `json:"to,omitempty"`
}

// Recorder is a Surface keeping every call it receives in order. It backs the
// trace output and the tests.
type Recorder struct {
	Calls []Call

	// Err, when set, is returned by CreateLayer.
	Err    error
	layers int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) CreateLayer() (Layer, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.layers++
	layer := Layer(r.layers)
	r.Calls = append(r.Calls, Call{Kind: CallLayer, Layer: layer})
	return layer, nil
}

func (r *Recorder) PenPoint(layer Layer, pen Pen, p Point) {
	r.Calls = append(r.Calls, Call{
		Kind:  CallPoint,
		Layer: layer,
		Pen:   &pen,
		From:  &p,
	})
}

func (r *Recorder) PenLine(layer Layer, pen Pen, from, to Point) {
	r.Calls = append(r.Calls, Call{
		Kind:  CallLine,
		Layer: layer,
		Pen:   &pen,
		From:  &from,
		To:    &to,
	})
}

func (r *Recorder) Clear(layer Layer) {
	r.Calls = append(r.Calls, Call{Kind: CallClear, Layer: layer})
}

func (r *Recorder) Redraw() {
	r.Calls = append(r.Calls, Call{Kind: CallRedraw})
}

// Count gives the number of calls of the given kinds.
func (r *Recorder) Count(kinds ...CallKind) int {
	var n int
	for _, c := range r.Calls {
		for _, k := range kinds {
			if c.Kind == k {
				n++
				break
			}
		}
	}
	return n
}

// Strokes rebuilds the strokes from the calls: a point opens a stroke and the
// lines that follow it extend it.
func (r *Recorder) Strokes() [][]Point {
	var (
		list [][]Point
		curr []Point
	)
	for _, c := range r.Calls {
		switch c.Kind {
		case CallPoint:
			if curr != nil {
				list = append(list, curr)
			}
			curr = []Point{*c.From}
		case CallLine:
			curr = append(curr, *c.To)
		case CallClear:
			if curr != nil {
				list = append(list, curr)
			}
			curr = nil
		default:
		}
	}
	if curr != nil {
		list = append(list, curr)
	}
	return list
}

func (r *Recorder) Reset() {
	r.Calls = nil
}

// WriteTo writes the drawing calls as JSON lines. Redraw requests are left out.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	cw := countWriter{Writer: w}
	enc := json.NewEncoder(&cw)
	for _, c := range r.Calls {
		if c.Kind == CallRedraw {
			continue
		}
		if err := enc.Encode(c); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

type countWriter struct {
	io.Writer
	n int64
}

func (w *countWriter) Write(b []byte) (int, error) {
	n, err := w.Writer.Write(b)
	w.n += int64(n)
	return n, err
}
