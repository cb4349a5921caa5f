package penchart

import (
	"math"

	"github.com/midbel/slices"
	"github.com/pkg/errors"
	"github.com/t119026/penchart/stats"
)

const (
	DefaultPieRadius = 100.0
	pieStep          = 0.1
	fullcircle       = 360.0
	percent          = 100.0
	deg2rad          = math.Pi / 180
)

type Renderer interface {
	Render(*Canvas, *Target) error
}

// BarRenderer draws one filled bar in a slot of the horizontal axis.
type BarRenderer struct {
	Slot  float64
	Value float64
}

func (r BarRenderer) Render(c *Canvas, t *Target) error {
	if !isFinite(r.Slot) || !isFinite(r.Value) {
		c.logger.Warn().Float64("slot", r.Slot).Float64("value", r.Value).Msg("bar: invalid input ignored")
		return nil
	}
	if r.Value <= 0 {
		return nil
	}
	left, right := c.Axis.BarSpan(r.Slot)
	c.fillRect(t, left, right, c.Axis.Origin.Y, c.Axis.ValueToY(r.Value))
	return nil
}

// BarsRenderer draws a bar per positive value, the first value in slot 1. It
// needs a divided horizontal axis.
type BarsRenderer struct {
	Values []float64
}

func (r BarsRenderer) Render(c *Canvas, t *Target) error {
	if c.Axis.HorizontalTick == 0 {
		c.logger.Debug().Msg("bars: horizontal axis not divided")
		return nil
	}
	for i, v := range r.Values {
		if !isFinite(v) || v <= 0 {
			continue
		}
		bar := BarRenderer{
			Slot:  float64(i + 1),
			Value: v,
		}
		if err := bar.Render(c, t); err != nil {
			return err
		}
	}
	return nil
}

// LineRenderer connects the values, one per slot of the horizontal axis, in a
// single stroke.
type LineRenderer struct {
	Values []float64
}

func (r LineRenderer) Render(c *Canvas, t *Target) error {
	tick := c.Axis.HorizontalTick
	if tick <= 0 || len(r.Values) == 0 {
		return nil
	}
	var (
		axis  = c.Axis
		start = NewPoint(axis.Origin.X+tick/2, axis.ValueToY(slices.Fst(r.Values)))
		pos   = start
		path  []Point
	)
	for _, v := range slices.Rest(r.Values) {
		pos.X += tick
		pos.Y = axis.ValueToY(v)
		path = append(path, pos)
	}
	c.Stroke(t, start, path...)
	return nil
}

// PieRenderer fills a disc with one wedge per value, clockwise from 12
// o'clock. Each wedge is a fan of radii drawn every tenth of a degree, and the
// hue of the pen moves by HueStep after each of them.
type PieRenderer struct {
	Values []float64
	Center Point
	Radius float64
}

func (r PieRenderer) Render(c *Canvas, t *Target) error {
	if r.Radius <= 0 {
		r.Radius = DefaultPieRadius
	}
	ratios, ok := ratioOf(r.Values, 1)
	if !ok {
		c.logger.Debug().Msg("pie: no positive value")
		return nil
	}
	var (
		angle  float64
		sample float64
	)
	for _, ratio := range ratios {
		angle += ratio * fullcircle
		t.MoveTo(r.Center.X, r.Center.Y)
		c.withStroke(t, func(s *Stroke) {
			for ; sample < angle; sample += pieStep {
				s.To(r.rim(sample))
				s.To(r.Center)
			}
		})
		t.State().Change(Hue, HueStep)
	}
	return nil
}

func (r PieRenderer) rim(angle float64) Point {
	rad := math.Pi/2 - angle*deg2rad
	return r.Center.Add(r.Radius*math.Cos(rad), r.Radius*math.Sin(rad))
}

// BoxRenderer draws a box and whiskers plot of the values in a slot of the
// horizontal axis.
type BoxRenderer struct {
	Slot   float64
	Values []float64
	// Fill paints the inside of the box in addition to its outline.
	Fill bool
}

func (r BoxRenderer) Render(c *Canvas, t *Target) error {
	if !isFinite(r.Slot) {
		c.logger.Warn().Float64("slot", r.Slot).Msg("box: invalid slot ignored")
		return nil
	}
	sum, err := stats.Describe(r.Values)
	if err != nil {
		return errors.Wrap(err, "box plot")
	}
	var (
		axis        = c.Axis
		left, right = axis.BarSpan(r.Slot)
		mid         = (left + right) / 2
		low         = axis.ValueToY(sum.Min)
		q1          = axis.ValueToY(sum.Q1)
		median      = axis.ValueToY(sum.Median)
		q3          = axis.ValueToY(sum.Q3)
		high        = axis.ValueToY(sum.Max)
	)
	c.Stroke(t, NewPoint(left, low), NewPoint(right, low))
	c.Stroke(t, NewPoint(mid, low), NewPoint(mid, q1))
	c.Stroke(t, NewPoint(left, q1), NewPoint(right, q1), NewPoint(right, q3), NewPoint(left, q3), NewPoint(left, q1))
	if r.Fill {
		c.fillRect(t, left, right, q1, q3)
	}
	c.Stroke(t, NewPoint(left, median), NewPoint(right, median))
	c.Stroke(t, NewPoint(mid, q3), NewPoint(mid, high))
	c.Stroke(t, NewPoint(left, high), NewPoint(right, high))
	return nil
}

// BandRenderer stacks the share of each positive value, in percent of their
// sum, in a slot of the horizontal axis. The hue of the pen moves by HueStep
// after each segment and is set back once the band is drawn.
type BandRenderer struct {
	Slot   float64
	Values []float64
}

func (r BandRenderer) Render(c *Canvas, t *Target) error {
	ps := t.State()
	defer ps.Set(Hue, ps.Hue())

	if !isFinite(r.Slot) {
		c.logger.Warn().Float64("slot", r.Slot).Msg("band: invalid slot ignored")
		return nil
	}
	ratios, ok := ratioOf(r.Values, percent)
	if !ok {
		return nil
	}
	var (
		axis        = c.Axis
		left, right = axis.BarSpan(r.Slot)
		height      float64
	)
	for _, ratio := range ratios {
		if ratio <= 0 {
			continue
		}
		c.fillRect(t, left, right, axis.ValueToY(height), axis.ValueToY(height+ratio))
		height += ratio
		ps.Change(Hue, HueStep)
	}
	return nil
}

// ratioOf gives the share of every value in the sum of the positive ones,
// scaled by unit. Other values get a share of 0.
func ratioOf(values []float64, unit float64) ([]float64, bool) {
	var sum float64
	for _, v := range values {
		if isFinite(v) && v > 0 {
			sum += v
		}
	}
	if sum == 0 || !isFinite(sum) {
		return nil, false
	}
	ratios := make([]float64, len(values))
	for i, v := range values {
		if isFinite(v) && v > 0 {
			ratios[i] = v / sum * unit
		}
	}
	return ratios, true
}

// fillRect paints the area between left and right from bottom to top with one
// stroke per unit row. A row starts from wherever the previous one left the
// target, goes to the right edge then back to the left edge.
func (c *Canvas) fillRect(t *Target, left, right, bottom, top float64) {
	var (
		height = math.Abs(top - bottom)
		dir    = 1.0
	)
	if top < bottom {
		dir = -1
	}
	t.MoveTo(left, bottom)
	for k := 0.0; k < height; k++ {
		y := bottom + dir*k
		c.withStroke(t, func(s *Stroke) {
			s.MoveTo(right, y)
			s.MoveTo(left, y)
		})
	}
}

func (c *Canvas) Bar(t *Target, slot, value float64) {
	c.render(t, BarRenderer{Slot: slot, Value: value})
}

func (c *Canvas) Bars(t *Target, values []float64) {
	c.render(t, BarsRenderer{Values: values})
}

func (c *Canvas) Line(t *Target, values []float64) {
	c.render(t, LineRenderer{Values: values})
}

func (c *Canvas) Pie(t *Target, values []float64) {
	c.render(t, PieRenderer{Values: values})
}

func (c *Canvas) Box(t *Target, slot float64, values []float64) error {
	return BoxRenderer{Slot: slot, Values: values}.Render(c, t)
}

func (c *Canvas) Band(t *Target, slot float64, values []float64) {
	c.render(t, BandRenderer{Slot: slot, Values: values})
}

func (c *Canvas) render(t *Target, r Renderer) {
	if err := r.Render(c, t); err != nil {
		c.logger.Warn().Err(err).Str("target", t.Name).Msg("render")
	}
}
