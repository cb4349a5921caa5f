// Package script runs chart scripts: YAML documents describing a stage, the
// axis, the pen and the list of drawing steps to execute.
package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/t119026/penchart"
	"github.com/t119026/penchart/dataset"
	"github.com/t119026/penchart/log"
	"github.com/t119026/penchart/surface"
	"gopkg.in/yaml.v2"
)

const (
	OpClear            = "clear"
	OpAxes             = "axes"
	OpMaxVertical      = "max-vertical"
	OpDivideVertical   = "divide-vertical"
	OpDivideHorizontal = "divide-horizontal"
	OpLeftLabels       = "left-labels"
	OpRightLabels      = "right-labels"
	OpBar              = "bar"
	OpBars             = "bars"
	OpLine             = "line"
	OpPie              = "pie"
	OpBox              = "box"
	OpBand             = "band"
	OpSetColor         = "set-color"
	OpSetColorParam    = "set-color-param"
	OpChangeColorParam = "change-color-param"
	OpSetPenSize       = "set-pen-size"
	OpChangePenSize    = "change-pen-size"
)

var (
	ErrMissingValue   = errors.New("missing value")
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrInvalidAxis    = errors.New("invalid axis")
)

type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Index, e.Op, e.Err)
}

func (e StepError) Unwrap() error {
	return e.Err
}

type Axis struct {
	Origin []float64 `yaml:"origin"`
	Top    []float64 `yaml:"top"`
	Right  []float64 `yaml:"right"`
	Max    float64   `yaml:"max"`
}

type Pen struct {
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

type Step struct {
	Op     string    `yaml:"op"`
	Value  *float64  `yaml:"value"`
	Slot   float64   `yaml:"slot"`
	Data   string    `yaml:"data"`
	List   string    `yaml:"list"`
	Values []float64 `yaml:"values"`
	Param  string    `yaml:"param"`
	Color  string    `yaml:"color"`
	Fill   bool      `yaml:"fill"`
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`
}

type Script struct {
	Stage    surface.Stage             `yaml:"stage"`
	Axis     Axis                      `yaml:"axis"`
	Pen      Pen                       `yaml:"pen"`
	Datasets map[string]dataset.Source `yaml:"datasets"`
	Steps    []Step                    `yaml:"steps"`

	// Dir is the directory dataset files are relative to.
	Dir string `yaml:"-"`
}

func Default() Script {
	axis := penchart.DefaultAxis()
	return Script{
		Stage: surface.DefaultStage(),
		Axis: Axis{
			Origin: []float64{axis.Origin.X, axis.Origin.Y},
			Top:    []float64{axis.Top.X, axis.Top.Y},
			Right:  []float64{axis.Right.X, axis.Right.Y},
			Max:    axis.MaxVertical,
		},
		Pen: Pen{
			Size: penchart.MinPenSize,
		},
	}
}

func Load(file string) (*Script, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	s.Dir = filepath.Dir(file)
	return s, nil
}

func Decode(r io.Reader) (*Script, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &s, nil
}

// AxisConfig builds the axis of the canvas. The vertical axis must share its x
// with the origin and the horizontal one its y.
func (s *Script) AxisConfig() (penchart.AxisConfig, error) {
	var (
		cfg = penchart.DefaultAxis()
		err error
	)
	if cfg.Origin, err = pointOf("origin", s.Axis.Origin); err != nil {
		return cfg, err
	}
	if cfg.Top, err = pointOf("top", s.Axis.Top); err != nil {
		return cfg, err
	}
	if cfg.Right, err = pointOf("right", s.Axis.Right); err != nil {
		return cfg, err
	}
	if cfg.Top.X != cfg.Origin.X || cfg.Right.Y != cfg.Origin.Y {
		return cfg, errors.Wrap(ErrInvalidAxis, "top must be above and right beside the origin")
	}
	if s.Axis.Max > 0 {
		cfg.MaxVertical = s.Axis.Max
	}
	return cfg, nil
}

// Data loads the datasets of the script.
func (s *Script) Data(ctx context.Context) (map[string][]float64, error) {
	sources := make(map[string]dataset.Source, len(s.Datasets))
	for n, src := range s.Datasets {
		sources[n] = src.Resolve(s.Dir)
	}
	return dataset.LoadAll(ctx, sources)
}

// Run loads the datasets then executes the steps in order on c for t. Unknown
// operations and color parameters are skipped with a warning; any other
// failure stops the run with a StepError.
func (s *Script) Run(ctx context.Context, c *penchart.Canvas, t *penchart.Target) error {
	data, err := s.Data(ctx)
	if err != nil {
		return err
	}
	lg := log.Get(ctx)
	if s.Pen.Color != "" {
		col, err := colorful.Hex(s.Pen.Color)
		if err != nil {
			return errors.Wrapf(err, "pen color %s", s.Pen.Color)
		}
		c.SetPenColor(t, col)
	}
	if s.Pen.Size > 0 {
		c.SetPenSize(t, s.Pen.Size)
	}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		lg.Debug().Int("step", i).Str("op", st.Op).Msg("execute")
		if err := s.execute(ctx, c, t, st, data); err != nil {
			return StepError{
				Index: i,
				Op:    st.Op,
				Err:   err,
			}
		}
	}
	return nil
}

func (s *Script) execute(ctx context.Context, c *penchart.Canvas, t *penchart.Target, st Step, data map[string][]float64) error {
	var err error
	switch st.Op {
	default:
		log.Get(ctx).Warn().Str("op", st.Op).Msg("unknown operation skipped")
	case OpClear:
		c.Clear()
	case OpAxes:
		c.DrawAxes(t)
	case OpMaxVertical:
		err = withValue(st, c.SetMaxVertical)
	case OpDivideVertical:
		err = withValue(st, func(v float64) {
			c.DivideVertical(t, int(v))
		})
	case OpDivideHorizontal:
		err = withValue(st, func(v float64) {
			c.DivideHorizontal(t, int(v))
		})
	case OpLeftLabels:
		c.DrawLeftLabels(t)
	case OpRightLabels:
		c.DrawRightLabels(t)
	case OpBar:
		err = withValue(st, func(v float64) {
			c.Bar(t, st.Slot, v)
		})
	case OpBars, OpLine, OpPie, OpBox, OpBand:
		err = executeSeries(c, t, st, data)
	case OpSetColor:
		var col colorful.Color
		if col, err = colorful.Hex(st.Color); err == nil {
			c.SetPenColor(t, col)
		}
	case OpSetColorParam, OpChangeColorParam:
		param, ok := penchart.ParseColorParam(st.Param)
		if !ok {
			log.Get(ctx).Warn().Str("param", st.Param).Msg("unknown color parameter skipped")
			break
		}
		err = withValue(st, func(v float64) {
			if st.Op == OpSetColorParam {
				c.SetColorParam(t, param, v)
			} else {
				c.ChangeColorParam(t, param, v)
			}
		})
	case OpSetPenSize:
		err = withValue(st, func(v float64) {
			c.SetPenSize(t, v)
		})
	case OpChangePenSize:
		err = withValue(st, func(v float64) {
			c.ChangePenSize(t, v)
		})
	}
	return err
}

func executeSeries(c *penchart.Canvas, t *penchart.Target, st Step, data map[string][]float64) error {
	values, err := seriesOf(st, data)
	if err != nil {
		return err
	}
	var r penchart.Renderer
	switch st.Op {
	case OpBars:
		r = penchart.BarsRenderer{Values: values}
	case OpLine:
		r = penchart.LineRenderer{Values: values}
	case OpPie:
		pie := penchart.PieRenderer{
			Values: values,
			Radius: st.Radius,
		}
		if len(st.Center) > 0 {
			if pie.Center, err = pointOf("center", st.Center); err != nil {
				return err
			}
		}
		r = pie
	case OpBox:
		r = penchart.BoxRenderer{
			Slot:   st.Slot,
			Values: values,
			Fill:   st.Fill,
		}
	case OpBand:
		r = penchart.BandRenderer{
			Slot:   st.Slot,
			Values: values,
		}
	}
	return c.Draw(t, r)
}

// seriesOf gives the values of a step: a named dataset, an inline text list or
// inline values, in that order.
func seriesOf(st Step, data map[string][]float64) ([]float64, error) {
	switch {
	case st.Data != "":
		values, ok := data[st.Data]
		if !ok {
			return nil, errors.Wrap(ErrUnknownDataset, st.Data)
		}
		return values, nil
	case st.List != "":
		return dataset.ParseList(st.List)
	default:
		return st.Values, nil
	}
}

func withValue(st Step, fn func(float64)) error {
	if st.Value == nil {
		return ErrMissingValue
	}
	fn(*st.Value)
	return nil
}

func pointOf(name string, xy []float64) (penchart.Point, error) {
	if len(xy) != 2 {
		return penchart.Point{}, errors.Wrapf(ErrInvalidAxis, "%s: want [x, y], got %v", name, xy)
	}
	return penchart.NewPoint(xy[0], xy[1]), nil
}
