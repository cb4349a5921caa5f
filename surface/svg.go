package surface

import (
	"bufio"
	"fmt"
	"io"

	"github.com/midbel/svg"
	"github.com/t119026/penchart"
)

// SVG keeps every layer as a group of lines and dots and writes them as a
// single document.
type SVG struct {
	Stage

	proj   projection
	layers []svg.Group
}

func NewSVG(stage Stage) *SVG {
	stage = stage.valid()
	return &SVG{
		Stage: stage,
		proj:  stage.project(stage.Width, stage.Height, true),
	}
}

func (s *SVG) CreateLayer() (penchart.Layer, error) {
	s.layers = append(s.layers, newLayerGroup(len(s.layers)))
	return penchart.Layer(len(s.layers) - 1), nil
}

func (s *SVG) PenPoint(layer penchart.Layer, pen penchart.Pen, pt penchart.Point) {
	grp, ok := s.group(layer)
	if !ok {
		return
	}
	x, y := s.proj.apply(pt)

	ci := svg.NewCircle()
	ci.Pos = svg.NewPos(x, y)
	ci.Radius = pen.Diameter / 2
	ci.Fill = svg.NewFill(colorOf(pen).Hex())
	ci.Fill.Opacity = alphaOf(pen)
	grp.Append(ci.AsElement())
}

func (s *SVG) PenLine(layer penchart.Layer, pen penchart.Pen, from, to penchart.Point) {
	grp, ok := s.group(layer)
	if !ok {
		return
	}
	var (
		x1, y1 = s.proj.apply(from)
		x2, y2 = s.proj.apply(to)
		sk     = svg.NewStroke(colorOf(pen).Hex(), pen.Diameter)
	)
	sk.Opacity = alphaOf(pen)
	li := svg.NewLine(svg.NewPos(x1, y1), svg.NewPos(x2, y2), svg.WithStroke(sk))
	grp.Append(li.AsElement())
}

func (s *SVG) Clear(layer penchart.Layer) {
	if _, ok := s.group(layer); !ok {
		return
	}
	s.layers[layer] = newLayerGroup(int(layer))
}

func (s *SVG) Redraw() {}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	el := svg.NewSVG(svg.WithDimension(s.Width, s.Height))
	for i := range s.layers {
		el.Append(s.layers[i].AsElement())
	}
	var (
		cw = countWriter{Writer: w}
		bw = bufio.NewWriter(&cw)
	)
	el.Render(bw)
	err := bw.Flush()
	return cw.n, err
}

func (s *SVG) group(layer penchart.Layer) (*svg.Group, bool) {
	if layer < 0 || int(layer) >= len(s.layers) {
		return nil, false
	}
	return &s.layers[layer], true
}

func newLayerGroup(n int) svg.Group {
	return svg.NewGroup(svg.WithID(fmt.Sprintf("layer-%d", n)))
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
