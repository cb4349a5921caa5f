package penchart

import (
	"image/color"

	"github.com/rs/zerolog"
)

// Canvas is one drawing context: a surface, the layer obtained from it and the
// axis configuration every chart drawn on it shares. A canvas is meant to be
// used from a single goroutine.
type Canvas struct {
	Axis AxisConfig

	surface Surface
	layer   Layer
	ready   bool
	failed  bool
	logger  *zerolog.Logger
}

type Option func(*Canvas)

func WithAxis(axis AxisConfig) Option {
	return func(c *Canvas) {
		c.Axis = axis
	}
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Canvas) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCanvas(surface Surface, options ...Option) *Canvas {
	nop := zerolog.Nop()
	c := Canvas{
		Axis:    DefaultAxis(),
		surface: surface,
		logger:  &nop,
	}
	for _, o := range options {
		o(&c)
	}
	return &c
}

func (c *Canvas) Logger() *zerolog.Logger {
	return c.logger
}

// Clear erases everything drawn on the canvas layer. The axis configuration
// is left untouched.
func (c *Canvas) Clear() {
	layer, ok := c.getLayer()
	if !ok {
		return
	}
	c.surface.Clear(layer)
	c.surface.Redraw()
}

// Draw runs the renderers in order and stops at the first error.
func (c *Canvas) Draw(t *Target, set ...Renderer) error {
	for _, r := range set {
		if err := r.Render(c, t); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) SetPenColor(t *Target, col color.Color) {
	t.State().SetColor(col)
}

func (c *Canvas) SetColorParam(t *Target, param ColorParam, value float64) {
	if !isFinite(value) {
		c.logger.Warn().Stringer("param", param).Float64("value", value).Msg("invalid color value ignored")
		return
	}
	if err := t.State().Set(param, value); err != nil {
		c.logger.Warn().Err(err).Str("target", t.Name).Msg("set color parameter")
	}
}

func (c *Canvas) ChangeColorParam(t *Target, param ColorParam, delta float64) {
	if !isFinite(delta) {
		c.logger.Warn().Stringer("param", param).Float64("delta", delta).Msg("invalid color value ignored")
		return
	}
	if err := t.State().Change(param, delta); err != nil {
		c.logger.Warn().Err(err).Str("target", t.Name).Msg("change color parameter")
	}
}

func (c *Canvas) SetPenSize(t *Target, size float64) {
	if !isFinite(size) {
		c.logger.Warn().Float64("size", size).Msg("invalid pen size ignored")
		return
	}
	t.State().SetSize(size)
}

func (c *Canvas) ChangePenSize(t *Target, delta float64) {
	if !isFinite(delta) {
		c.logger.Warn().Float64("delta", delta).Msg("invalid pen size ignored")
		return
	}
	t.State().ChangeSize(delta)
}

func (c *Canvas) getLayer() (Layer, bool) {
	if c.ready {
		return c.layer, true
	}
	if c.failed || c.surface == nil {
		return 0, false
	}
	layer, err := c.surface.CreateLayer()
	if err != nil {
		c.failed = true
		c.logger.Error().Err(err).Msg("no pen layer available, drawing disabled")
		return 0, false
	}
	c.layer, c.ready = layer, true
	return c.layer, true
}
