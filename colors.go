package penchart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const (
	DefaultHue  = 66.66
	HueStep     = 30.0
	MinPenSize  = 1.0
	MaxPenSize  = 1200.0
	minColorVal = 0.0
	maxColorVal = 100.0
)

type ColorParam int

const (
	Hue ColorParam = iota
	Saturation
	Brightness
	Transparency
)

func (p ColorParam) String() string {
	switch p {
	case Hue:
		return "color"
	case Saturation:
		return "saturation"
	case Brightness:
		return "brightness"
	case Transparency:
		return "transparency"
	default:
		return fmt.Sprintf("ColorParam(%d)", int(p))
	}
}

// ParseColorParam accepts the names used by the scripts. "hue" is an alias
// for "color".
func ParseColorParam(str string) (ColorParam, bool) {
	switch str {
	case "color", "hue":
		return Hue, true
	case "saturation":
		return Saturation, true
	case "brightness":
		return Brightness, true
	case "transparency":
		return Transparency, true
	default:
		return 0, false
	}
}

// PenState holds the color parameters of a target, all on a 0-100 scale, and
// the pen derived from them. The pen is recomputed by every setter so it is
// never stale.
type PenState struct {
	Down bool

	hue          float64
	saturation   float64
	brightness   float64
	transparency float64

	pen Pen
}

func DefaultPenState() *PenState {
	ps := PenState{
		hue:        DefaultHue,
		saturation: maxColorVal,
		brightness: maxColorVal,
		pen: Pen{
			Diameter: MinPenSize,
		},
	}
	ps.update()
	return &ps
}

func (p *PenState) Hue() float64          { return p.hue }
func (p *PenState) Saturation() float64   { return p.saturation }
func (p *PenState) Brightness() float64   { return p.brightness }
func (p *PenState) Transparency() float64 { return p.transparency }
func (p *PenState) Pen() Pen              { return p.pen }

func (p *PenState) Get(param ColorParam) float64 {
	switch param {
	case Hue:
		return p.hue
	case Saturation:
		return p.saturation
	case Brightness:
		return p.brightness
	case Transparency:
		return p.transparency
	default:
		return 0
	}
}

func (p *PenState) Set(param ColorParam, value float64) error {
	return p.apply(param, value, false)
}

func (p *PenState) Change(param ColorParam, delta float64) error {
	return p.apply(param, delta, true)
}

func (p *PenState) apply(param ColorParam, value float64, change bool) error {
	if change {
		value += p.Get(param)
	}
	switch param {
	case Hue:
		p.hue = wrapClamp(value, minColorVal, maxColorVal)
	case Saturation:
		p.saturation = clamp(value, minColorVal, maxColorVal)
	case Brightness:
		p.brightness = clamp(value, minColorVal, maxColorVal)
	case Transparency:
		p.transparency = clamp(value, minColorVal, maxColorVal)
	default:
		return errors.Errorf("unknown color parameter %s", param)
	}
	p.update()
	return nil
}

// SetColor replaces the four color parameters from an RGB(A) color. A fully
// opaque color resets the transparency to 0.
func (p *PenState) SetColor(c color.Color) {
	var (
		rgba    = color.NRGBAModel.Convert(c).(color.NRGBA)
		col     = colorful.Color{R: float64(rgba.R) / 255, G: float64(rgba.G) / 255, B: float64(rgba.B) / 255}
		h, s, v = col.Hsv()
	)
	p.hue = h / 360 * 100
	p.saturation = s * 100
	p.brightness = v * 100
	p.transparency = 100 * (1 - float64(rgba.A)/255)
	p.update()
}

func (p *PenState) SetSize(size float64) {
	p.pen.Diameter = clamp(size, MinPenSize, MaxPenSize)
}

func (p *PenState) ChangeSize(delta float64) {
	p.SetSize(p.pen.Diameter + delta)
}

func (p *PenState) update() {
	var (
		deg = math.Mod(p.hue*360/100, 360)
		col = colorful.Hsv(deg, p.saturation/100, p.brightness/100).Clamped()
	)
	p.pen.Color[0] = math.Floor(col.R*255) / 255
	p.pen.Color[1] = math.Floor(col.G*255) / 255
	p.pen.Color[2] = math.Floor(col.B*255) / 255
	p.pen.Color[3] = 1 - p.transparency/100
}

type colorState struct {
	hue          float64
	saturation   float64
	brightness   float64
	transparency float64
}

func (p *PenState) save() colorState {
	return colorState{
		hue:          p.hue,
		saturation:   p.saturation,
		brightness:   p.brightness,
		transparency: p.transparency,
	}
}

func (p *PenState) restore(cs colorState) {
	p.hue = cs.hue
	p.saturation = cs.saturation
	p.brightness = cs.brightness
	p.transparency = cs.transparency
	p.update()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// wrapClamp wraps v into [lo, hi] where both ends are included, so a span of
// hi-lo+1 is removed on every turn.
func wrapClamp(v, lo, hi float64) float64 {
	span := hi - lo + 1
	return v - math.Floor((v-lo)/span)*span
}
