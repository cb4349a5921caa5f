package penchart

import (
	"math"
	"strconv"
)

const (
	DefaultMaxVertical = 100.0

	verticalTickLength = 5.0
	horizontalTickHalf = 3.0
	labelGap           = 3.0
	labelDrop          = 5.0
	labelRise          = 5.0
	barRatio           = 0.8
	guideBrightness    = 50.0
)

// AxisConfig is the L-shaped axis of a chart: the vertical axis runs from
// Origin to Top, the horizontal one from Origin to Right. Top.X must equal
// Origin.X and Right.Y must equal Origin.Y.
type AxisConfig struct {
	Origin Point
	Top    Point
	Right  Point

	// MaxVertical is the data value mapped to Top. It is always > 0.
	MaxVertical float64

	VerticalDivisions int
	VerticalTick      float64
	// HorizontalTick is 0 until the horizontal axis has been divided.
	HorizontalTick float64
}

func DefaultAxis() AxisConfig {
	return AxisConfig{
		Origin:      NewPoint(-100, -100),
		Top:         NewPoint(-100, 100),
		Right:       NewPoint(200, -100),
		MaxVertical: DefaultMaxVertical,
	}
}

func (a AxisConfig) Height() float64 {
	return math.Abs(a.Top.Y - a.Origin.Y)
}

func (a AxisConfig) Width() float64 {
	return math.Abs(a.Right.X - a.Origin.X)
}

// ValueToY gives the stage y of a data value. Values outside
// [0, MaxVertical] land outside the axis.
func (a AxisConfig) ValueToY(v float64) float64 {
	return a.vertical().Scale(v)
}

// BarSpan gives the horizontal extent of the bar drawn in the 1-based slot.
// Without horizontal divisions, a single bar is centred on the axis.
func (a AxisConfig) BarSpan(slot float64) (left, right float64) {
	var (
		width  float64
		centre float64
	)
	if a.HorizontalTick == 0 {
		width = a.Width() * barRatio
		centre = (a.Origin.X + a.Right.X) / 2
	} else {
		width = a.HorizontalTick * barRatio
		centre = a.Origin.X + a.HorizontalTick*(slot-0.5)
	}
	left = centre - width/2
	return left, left + width
}

func (a AxisConfig) hasVerticalLabels() bool {
	return a.VerticalDivisions > 0 && a.VerticalTick > 0
}

func (a AxisConfig) vertical() Scaler {
	var (
		dom = NewRange(0, a.MaxVertical)
		rg  = NewRange(a.Origin.Y, a.Origin.Y+a.Height())
	)
	return NumberScaler(dom, rg)
}

func (c *Canvas) SetMaxVertical(v float64) {
	if !isFinite(v) || v <= 0 {
		c.logger.Warn().Float64("value", v).Msg("invalid vertical maximum ignored")
		return
	}
	c.Axis.MaxVertical = v
}

// DrawAxes draws the vertical then the horizontal axis in one stroke.
func (c *Canvas) DrawAxes(t *Target) {
	c.Stroke(t, c.Axis.Top, c.Axis.Origin, c.Axis.Right)
}

// DivideVertical splits the vertical axis in n divisions: it draws a short
// tick at each division then, in gray, a guide line across the chart. The
// pen color of t is restored afterwards.
func (c *Canvas) DivideVertical(t *Target, n int) {
	if n <= 0 {
		c.logger.Warn().Int("divisions", n).Msg("invalid vertical division ignored")
		return
	}
	var (
		axis = &c.Axis
		tick = axis.Height() / float64(n)
	)
	axis.VerticalTick = tick
	for k := 1; k <= n; k++ {
		y := axis.Origin.Y + tick*float64(k)
		c.Stroke(t, NewPoint(axis.Origin.X, y), NewPoint(axis.Origin.X+verticalTickLength, y))
	}

	ps := t.State()
	saved := ps.save()
	defer ps.restore(saved)

	ps.Set(Hue, 0)
	ps.Set(Saturation, 0)
	ps.Set(Brightness, guideBrightness)
	for k := 1; k <= n; k++ {
		y := axis.Origin.Y + tick*float64(k)
		c.Stroke(t, NewPoint(axis.Origin.X, y), NewPoint(axis.Right.X, y))
	}
	axis.VerticalDivisions = n
}

// DivideHorizontal splits the horizontal axis in n slots, marks the centre of
// each slot and labels it with its 1-based index.
func (c *Canvas) DivideHorizontal(t *Target, n int) {
	if n <= 0 {
		c.logger.Warn().Int("divisions", n).Msg("invalid horizontal division ignored")
		return
	}
	var (
		axis = &c.Axis
		tick = axis.Width() / float64(n)
		y    = axis.Origin.Y
	)
	axis.HorizontalTick = tick
	for i := 0; i < n; i++ {
		x := axis.Origin.X + tick/2 + tick*float64(i)
		c.Stroke(t, NewPoint(x, y-horizontalTickHalf), NewPoint(x, y+horizontalTickHalf))
	}
	for i := 0; i < n; i++ {
		var (
			x   = axis.Origin.X + tick/2 + tick*float64(i)
			num = i + 1
		)
		if num < 10 {
			c.DrawDigit(t, x-horizontalTickHalf, y-labelDrop, num)
			continue
		}
		str := strconv.Itoa(num)
		c.DrawNumber(t, centeredStart(x, len(str)), y-labelDrop, str)
	}
}

// centeredStart gives the x where a number of count digits must start to be
// centred on x. With an even count, x falls between the two middle glyphs,
// otherwise on the middle of the central glyph.
func centeredStart(x float64, count int) float64 {
	if count%2 == 0 {
		return x - GlyphPitch*float64(count/2)
	}
	return x - GlyphPitch*float64(count/2) - GlyphPitch/2
}

// DrawLeftLabels writes the value of each vertical division on the left of the
// vertical axis, right aligned against it.
func (c *Canvas) DrawLeftLabels(t *Target) {
	c.drawVerticalLabels(t, func(digits int) float64 {
		return c.Axis.Origin.X - GlyphPitch*float64(digits) - labelGap
	})
}

// DrawRightLabels writes the value of each vertical division on the right of
// the chart, after the end of the horizontal axis.
func (c *Canvas) DrawRightLabels(t *Target) {
	c.drawVerticalLabels(t, func(int) float64 {
		return c.Axis.Right.X + labelGap
	})
}

func (c *Canvas) drawVerticalLabels(t *Target, start func(int) float64) {
	axis := c.Axis
	if !axis.hasVerticalLabels() {
		c.logger.Debug().Msg("vertical axis not divided, no labels drawn")
		return
	}
	c.DrawNumber(t, start(1), axis.Origin.Y+labelRise, "0")

	n := float64(axis.VerticalDivisions)
	for k := 1; k <= axis.VerticalDivisions; k++ {
		var (
			value = roundHalfUp(axis.MaxVertical / n * float64(k))
			str   = strconv.FormatFloat(value, 'f', -1, 64)
			y     = axis.Origin.Y + axis.VerticalTick*float64(k) + labelRise
		)
		c.DrawNumber(t, start(len(str)), y, str)
	}
}

func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
