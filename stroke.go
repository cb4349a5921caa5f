package penchart

// Layer identifies the drawing layer a surface handed out to a canvas.
type Layer int

// Pen is the stroking attributes sent along with every drawing call. Color is
// RGBA with each channel in [0, 1].
type Pen struct {
	Diameter float64
	Color    [4]float64
}

// Surface is the immediate mode drawing target. Every call is expected to take
// effect before the next one.
type Surface interface {
	CreateLayer() (Layer, error)
	PenPoint(Layer, Pen, Point)
	PenLine(Layer, Pen, Point, Point)
	Clear(Layer)
	Redraw()
}

// Stroke is one pen down...pen up sequence of cursor moves. A stroke is
// obtained with Canvas.Begin and must be closed with End; use Canvas.Stroke
// when the moves fit in a function so that End runs in all cases.
type Stroke struct {
	canvas *Canvas
	target *Target
	done   bool
}

func (c *Canvas) Begin(t *Target) *Stroke {
	ps := t.State()
	if !ps.Down {
		ps.Down = true
		c.point(ps.pen, t.Position())
	}
	return &Stroke{
		canvas: c,
		target: t,
	}
}

func (s *Stroke) MoveTo(x, y float64) {
	if s.done {
		return
	}
	s.canvas.moveTo(s.target, x, y)
}

func (s *Stroke) To(p Point) {
	s.MoveTo(p.X, p.Y)
}

func (s *Stroke) End() {
	if s.done {
		return
	}
	s.done = true
	s.target.State().Down = false
}

// Stroke lifts the pen, moves the target to from, then draws through path in a
// single stroke.
func (c *Canvas) Stroke(t *Target, from Point, path ...Point) {
	t.MoveTo(from.X, from.Y)
	c.withStroke(t, func(s *Stroke) {
		for _, p := range path {
			s.To(p)
		}
	})
}

func (c *Canvas) withStroke(t *Target, fn func(*Stroke)) {
	s := c.Begin(t)
	defer s.End()
	fn(s)
}

func (c *Canvas) moveTo(t *Target, x, y float64) {
	var (
		from = t.Position()
		to   = NewPoint(x, y)
	)
	t.MoveTo(x, y)
	if ps := t.State(); ps.Down {
		c.line(ps.pen, from, to)
	}
}

func (c *Canvas) point(pen Pen, p Point) {
	layer, ok := c.getLayer()
	if !ok {
		return
	}
	c.surface.PenPoint(layer, pen, p)
	c.surface.Redraw()
}

func (c *Canvas) line(pen Pen, from, to Point) {
	layer, ok := c.getLayer()
	if !ok {
		return
	}
	c.surface.PenLine(layer, pen, from, to)
	c.surface.Redraw()
}
