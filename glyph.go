package penchart

const (
	GlyphMargin     = 1.0
	GlyphWidth      = 5.0
	GlyphHalfHeight = 5.0
	GlyphPitch      = GlyphWidth + 2*GlyphMargin

	oneOffset = 3.0
)

type corner int

const (
	topLeft corner = iota
	topRight
	midLeft
	midRight
	bottomLeft
	bottomRight
)

var digitPaths = [10][]corner{
	{topRight, bottomRight, bottomLeft, topLeft},
	nil,
	{topRight, midRight, midLeft, bottomLeft, bottomRight},
	{topRight, midRight, midLeft, midRight, bottomRight, bottomLeft},
	{midLeft, midRight, topRight, bottomRight},
	{topRight, topLeft, midLeft, midRight, bottomRight, bottomLeft},
	{bottomLeft, bottomRight, midRight, midLeft},
	{topRight, bottomRight},
	{topRight, midRight, midLeft, midRight, bottomRight, bottomLeft, topLeft},
	{midLeft, midRight, bottomRight, topRight, topLeft},
}

// GlyphPath gives the start point and the waypoints of a digit whose glyph box
// has its top left corner at (x, y). It returns false if d is not a digit.
//
// The 1 is a vertical bar 3 units right of the glyph margin, not a bare dot,
// and the 2 goes TR MR ML BL BR so its lower left corner is closed.
func GlyphPath(x, y float64, d int) (Point, []Point, bool) {
	if d < 0 || d > 9 {
		return Point{}, nil, false
	}
	var (
		left   = x + GlyphMargin
		right  = left + GlyphWidth
		top    = y
		middle = y - GlyphHalfHeight
		bottom = y - 2*GlyphHalfHeight
	)
	if d == 1 {
		centre := left + oneOffset
		return NewPoint(centre, top), []Point{NewPoint(centre, bottom)}, true
	}
	var (
		corners = digitPaths[d]
		path    = make([]Point, 0, len(corners))
	)
	for _, c := range corners {
		var p Point
		switch c {
		case topLeft:
			p = NewPoint(left, top)
		case topRight:
			p = NewPoint(right, top)
		case midLeft:
			p = NewPoint(left, middle)
		case midRight:
			p = NewPoint(right, middle)
		case bottomLeft:
			p = NewPoint(left, bottom)
		case bottomRight:
			p = NewPoint(right, bottom)
		}
		path = append(path, p)
	}
	return NewPoint(left, top), path, true
}

// DrawDigit draws d in a single stroke.
func (c *Canvas) DrawDigit(t *Target, x, y float64, d int) {
	from, path, ok := GlyphPath(x, y, d)
	if !ok {
		c.logger.Warn().Int("digit", d).Msg("not a digit")
		return
	}
	c.Stroke(t, from, path...)
}

// DrawNumber draws the digits of str from left to right, one glyph every
// GlyphPitch. Any other character is skipped but still takes its slot.
func (c *Canvas) DrawNumber(t *Target, x, y float64, str string) {
	for _, r := range str {
		if r < '0' || r > '9' {
			c.logger.Warn().Str("number", str).Str("char", string(r)).Msg("character skipped")
		} else {
			c.DrawDigit(t, x, y, int(r-'0'))
		}
		x += GlyphPitch
	}
}
