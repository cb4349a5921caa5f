package surface

import (
	"io"

	"github.com/pkg/errors"
	"github.com/t119026/penchart"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

type pdfMark struct {
	pen  penchart.Pen
	from penchart.Point
	to   penchart.Point
	dot  bool
}

// PDF records the strokes and replays them on a single page sized after the
// stage. PDF has no transparency without extended graphics states, so the
// alpha channel of the pen is ignored.
type PDF struct {
	Stage

	proj   projection
	layers [][]pdfMark
}

func NewPDF(stage Stage) *PDF {
	stage = stage.valid()
	return &PDF{
		Stage: stage,
		proj:  stage.project(stage.Width, stage.Height, false),
	}
}

func (p *PDF) CreateLayer() (penchart.Layer, error) {
	p.layers = append(p.layers, nil)
	return penchart.Layer(len(p.layers) - 1), nil
}

func (p *PDF) PenPoint(layer penchart.Layer, pen penchart.Pen, pt penchart.Point) {
	p.mark(layer, pdfMark{pen: pen, from: pt, dot: true})
}

func (p *PDF) PenLine(layer penchart.Layer, pen penchart.Pen, from, to penchart.Point) {
	p.mark(layer, pdfMark{pen: pen, from: from, to: to})
}

func (p *PDF) Clear(layer penchart.Layer) {
	if !p.valid(layer) {
		return
	}
	p.layers[layer] = p.layers[layer][:0]
}

func (p *PDF) Redraw() {}

func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	var (
		cw   = countWriter{Writer: w}
		size = &pdf.Rectangle{
			URx: p.Width,
			URy: p.Height,
		}
	)
	page, err := document.WriteSinglePage(&cw, size, pdf.V1_7, nil)
	if err != nil {
		return cw.n, errors.Wrap(err, "pdf")
	}
	page.SetLineCap(graphics.LineCapRound)
	for _, marks := range p.layers {
		for _, m := range marks {
			p.replay(page, m)
		}
	}
	if page.Err != nil {
		return cw.n, errors.Wrap(page.Err, "pdf")
	}
	if err := page.Close(); err != nil {
		return cw.n, errors.Wrap(err, "pdf")
	}
	return cw.n, nil
}

func (p *PDF) replay(page *document.Page, m pdfMark) {
	var (
		c      = colorOf(m.pen)
		x1, y1 = p.proj.apply(m.from)
	)
	if m.dot {
		page.SetFillColor(color.DeviceRGB(c.R, c.G, c.B))
		page.Circle(x1, y1, m.pen.Diameter/2)
		page.Fill()
		return
	}
	x2, y2 := p.proj.apply(m.to)
	page.SetStrokeColor(color.DeviceRGB(c.R, c.G, c.B))
	page.SetLineWidth(m.pen.Diameter)
	page.MoveTo(x1, y1)
	page.LineTo(x2, y2)
	page.Stroke()
}

func (p *PDF) mark(layer penchart.Layer, m pdfMark) {
	if !p.valid(layer) {
		return
	}
	p.layers[layer] = append(p.layers[layer], m)
}

func (p *PDF) valid(layer penchart.Layer) bool {
	return layer >= 0 && int(layer) < len(p.layers)
}
