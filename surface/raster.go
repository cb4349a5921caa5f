package surface

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/t119026/penchart"
)

// Raster draws anti-aliased strokes, one gg context per layer. Layers are
// composited in creation order over a white background.
type Raster struct {
	Stage

	width  int
	height int
	proj   projection
	layers []*gg.Context
}

// NewRaster creates a raster surface scale times the size of the stage.
func NewRaster(stage Stage, scale float64) *Raster {
	stage = stage.valid()
	if scale <= 0 {
		scale = 1
	}
	var (
		w = int(math.Ceil(stage.Width * scale))
		h = int(math.Ceil(stage.Height * scale))
	)
	return &Raster{
		Stage:  stage,
		width:  w,
		height: h,
		proj:   stage.project(float64(w), float64(h), true),
	}
}

func (r *Raster) CreateLayer() (penchart.Layer, error) {
	r.layers = append(r.layers, gg.NewContext(r.width, r.height))
	return penchart.Layer(len(r.layers) - 1), nil
}

func (r *Raster) PenPoint(layer penchart.Layer, pen penchart.Pen, pt penchart.Point) {
	dc, ok := r.context(layer)
	if !ok {
		return
	}
	x, y := r.proj.apply(pt)
	setPen(dc, pen)
	dc.DrawCircle(x, y, pen.Diameter*r.proj.ratio()/2)
	dc.Fill()
}

func (r *Raster) PenLine(layer penchart.Layer, pen penchart.Pen, from, to penchart.Point) {
	dc, ok := r.context(layer)
	if !ok {
		return
	}
	var (
		x1, y1 = r.proj.apply(from)
		x2, y2 = r.proj.apply(to)
	)
	setPen(dc, pen)
	dc.SetLineWidth(pen.Diameter * r.proj.ratio())
	dc.SetLineCapRound()
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func (r *Raster) Clear(layer penchart.Layer) {
	dc, ok := r.context(layer)
	if !ok {
		return
	}
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()
}

func (r *Raster) Redraw() {}

// Image composites the layers.
func (r *Raster) Image() image.Image {
	return r.composite().Image()
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return r.composite().EncodePNG(w)
}

func (r *Raster) composite() *gg.Context {
	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	for _, layer := range r.layers {
		dc.DrawImage(layer.Image(), 0, 0)
	}
	return dc
}

func (r *Raster) context(layer penchart.Layer) (*gg.Context, bool) {
	if layer < 0 || int(layer) >= len(r.layers) {
		return nil, false
	}
	return r.layers[layer], true
}

func setPen(dc *gg.Context, pen penchart.Pen) {
	c := colorOf(pen)
	dc.SetRGBA(c.R, c.G, c.B, alphaOf(pen))
}
