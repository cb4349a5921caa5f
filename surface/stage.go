// Package surface provides the drawing surfaces a penchart.Canvas can draw on.
//
// Every surface receives stage coordinates: the origin is at the centre of the
// stage and y grows upward. Each surface projects them onto its own device
// space with a Stage.
package surface

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/t119026/penchart"
)

const (
	DefaultWidth  = 480
	DefaultHeight = 360
)

type Stage struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultStage() Stage {
	return Stage{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

func (s Stage) valid() Stage {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	return s
}

// projection maps the stage onto a device of the given size. With flip, the
// device y axis grows downward.
type projection struct {
	x penchart.Scaler
	y penchart.Scaler
}

func (s Stage) project(width, height float64, flip bool) projection {
	var (
		halfw = s.Width / 2
		halfh = s.Height / 2
		rgy   = penchart.NewRange(0, height)
	)
	if flip {
		rgy = penchart.NewRange(height, 0)
	}
	return projection{
		x: penchart.NumberScaler(penchart.NewRange(-halfw, halfw), penchart.NewRange(0, width)),
		y: penchart.NumberScaler(penchart.NewRange(-halfh, halfh), rgy),
	}
}

func (p projection) apply(pt penchart.Point) (float64, float64) {
	return p.x.Scale(pt.X), p.y.Scale(pt.Y)
}

// ratio is the number of device units per stage unit along x.
func (p projection) ratio() float64 {
	return p.x.Space()
}

func colorOf(pen penchart.Pen) colorful.Color {
	return colorful.Color{
		R: pen.Color[0],
		G: pen.Color[1],
		B: pen.Color[2],
	}
}

func alphaOf(pen penchart.Pen) float64 {
	return pen.Color[3]
}
