package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/t119026/penchart"
	"tinygo.org/x/drivers"
)

// Display draws aliased pixels on any tinygo display driver. A display has a
// single plane: every layer maps onto it and clearing a layer clears the whole
// display.
type Display struct {
	Background color.RGBA

	dev    drivers.Displayer
	proj   projection
	layers int
	err    error
}

func NewDisplay(dev drivers.Displayer, stage Stage) *Display {
	stage = stage.valid()
	w, h := dev.Size()
	return &Display{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		dev:        dev,
		proj:       stage.project(float64(w), float64(h), true),
	}
}

func (d *Display) CreateLayer() (penchart.Layer, error) {
	d.layers++
	return penchart.Layer(d.layers - 1), nil
}

func (d *Display) PenPoint(_ penchart.Layer, pen penchart.Pen, pt penchart.Point) {
	var (
		x, y = d.proj.apply(pt)
		r    = d.radius(pen)
	)
	xmin, ymin, xmax, ymax := d.bounds(r)
	if !(x >= xmin && x <= xmax && y >= ymin && y <= ymax) {
		return
	}
	d.dot(roundInt(x), roundInt(y), r, pixelOf(pen))
}

func (d *Display) PenLine(_ penchart.Layer, pen penchart.Pen, from, to penchart.Point) {
	var (
		x0, y0 = d.proj.apply(from)
		x1, y1 = d.proj.apply(to)
		r      = d.radius(pen)
	)
	xmin, ymin, xmax, ymax := d.bounds(r)
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax)
	if !ok {
		return
	}
	d.line(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1), r, pixelOf(pen))
}

func (d *Display) Clear(_ penchart.Layer) {
	w, h := d.dev.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.dev.SetPixel(x, y, d.Background)
		}
	}
}

func (d *Display) Redraw() {
	if err := d.dev.Display(); err != nil && d.err == nil {
		d.err = err
	}
}

// Err reports the first error returned by the driver when flushing.
func (d *Display) Err() error {
	return d.err
}

func (d *Display) radius(pen penchart.Pen) int {
	return int(pen.Diameter * d.proj.ratio() / 2)
}

// bounds is the device rectangle grown by the pen radius: anything drawn from
// outside of it cannot reach a pixel of the display.
func (d *Display) bounds(r int) (xmin, ymin, xmax, ymax float64) {
	w, h := d.dev.Size()
	return float64(-r), float64(-r), float64(int(w) - 1 + r), float64(int(h) - 1 + r)
}

func (d *Display) line(x0, y0, x1, y1, r int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.dot(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (d *Display) dot(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		d.set(cx, cy, c)
		return
	}
	for y := -r; y <= r; y++ {
		dx := int(math.Sqrt(float64(r*r - y*y)))
		for x := -dx; x <= dx; x++ {
			d.set(cx+x, cy+y, c)
		}
	}
}

func (d *Display) set(x, y int, c color.RGBA) {
	w, h := d.dev.Size()
	if x < 0 || x >= int(w) || y < 0 || y >= int(h) {
		return
	}
	d.dev.SetPixel(int16(x), int16(y), c)
}

// clipSegment cuts the segment to the rectangle (Liang-Barsky). It returns
// false when nothing of the segment is left.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	for _, v := range []float64{x0, y0, x1, y1} {
		if math.IsNaN(v) {
			return 0, 0, 0, 0, false
		}
	}
	var (
		t0, t1 = 0.0, 1.0
		dx     = x1 - x0
		dy     = y1 - y0
		edges  = [4][2]float64{
			{-dx, x0 - xmin},
			{dx, xmax - x0},
			{-dy, y0 - ymin},
			{dy, ymax - y0},
		}
	)
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func pixelOf(pen penchart.Pen) color.RGBA {
	var (
		c = colorOf(pen)
		a = alphaOf(pen)
	)
	// premultiplied, as color.RGBA expects
	return color.RGBA{
		R: uint8(c.R * a * 0xff),
		G: uint8(c.G * a * 0xff),
		B: uint8(c.B * a * 0xff),
		A: uint8(a * 0xff),
	}
}

// Framebuffer is an in-memory display. It satisfies drivers.Displayer and can
// be used as an image.Image once drawn.
type Framebuffer struct {
	img     *image.RGBA
	flushes int
}

var (
	_ drivers.Displayer = (*Framebuffer)(nil)
	_ image.Image       = (*Framebuffer)(nil)
)

func NewFramebuffer(width, height int16) *Framebuffer {
	return &Framebuffer{
		img: image.NewRGBA(image.Rect(0, 0, int(width), int(height))),
	}
}

func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.img.SetRGBA(int(x), int(y), c)
}

func (f *Framebuffer) Display() error {
	f.flushes++
	return nil
}

// Flushes counts the calls to Display.
func (f *Framebuffer) Flushes() int {
	return f.flushes
}

func (f *Framebuffer) ColorModel() color.Model {
	return f.img.ColorModel()
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return f.img.Bounds()
}

func (f *Framebuffer) At(x, y int) color.Color {
	return f.img.At(x, y)
}
