package main

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/t119026/penchart"
	"github.com/t119026/penchart/dataset"
	"github.com/t119026/penchart/log"
	"github.com/t119026/penchart/script"
	"github.com/t119026/penchart/stats"
	"github.com/t119026/penchart/surface"
)

const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPixel = "pixel"
	FormatPDF   = "pdf"
	FormatTrace = "trace"
)

var (
	outputFile string
	format     string
	scale      float64
	verbose    bool
)

const statCount = "count"

type statFunc func([]float64) (float64, error)

var statFuncs = map[string]statFunc{
	"sum":     stats.Sum,
	"average": stats.Average,
	"max":     stats.Max,
	"min":     stats.Min,
	"range":   stats.Range,
	"median":  stats.Median,
	"q1":      stats.FirstQuartile,
	"q3":      stats.ThirdQuartile,
	"iqr":     stats.InterquartileRange,
}

func main() {
	root := &cobra.Command{
		Use:           "penchart",
		Short:         "Draw charts with a pen on a stage",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every step")

	render := &cobra.Command{
		Use:   "render SCRIPT",
		Short: "Run a chart script and write the drawing",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	render.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	render.Flags().StringVarP(&format, "format", "f", FormatSVG, "output format: svg, png, pixel, pdf or trace")
	render.Flags().Float64Var(&scale, "scale", 1, "pixels per stage unit (png only)")

	compute := &cobra.Command{
		Use:   "stats OP [LO HI] VALUES...",
		Short: "Compute a statistic of a list of values",
		Long:  "OP is one of " + strings.Join(statNames(), ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStats,
	}
	root.AddCommand(render, compute)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	var (
		lg  = log.New(os.Stderr, verbose)
		ctx = log.Set(cmd.Context(), lg)
	)
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}
	axis, err := s.AxisConfig()
	if err != nil {
		return err
	}
	surf, flush, err := surfaceOf(format, s.Stage)
	if err != nil {
		return err
	}
	var (
		canvas = penchart.NewCanvas(surf, penchart.WithAxis(axis), penchart.WithLogger(lg))
		sprite = penchart.NewTarget("sprite")
	)
	if err := s.Run(ctx, canvas, sprite); err != nil {
		return err
	}
	lg.Debug().Str("format", format).Int("steps", len(s.Steps)).Msg("script done")

	w := io.Writer(os.Stdout)
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return flush(w)
}

// surfaceOf creates the surface for the output format and the function that
// writes what was drawn on it.
func surfaceOf(format string, stage surface.Stage) (penchart.Surface, func(io.Writer) error, error) {
	switch format {
	case FormatSVG:
		s := surface.NewSVG(stage)
		return s, func(w io.Writer) error {
			_, err := s.WriteTo(w)
			return err
		}, nil
	case FormatPNG:
		r := surface.NewRaster(stage, scale)
		return r, r.EncodePNG, nil
	case FormatPixel:
		var (
			width, height = stageSize(stage)
			fb            = surface.NewFramebuffer(width, height)
			d             = surface.NewDisplay(fb, stage)
		)
		d.Clear(0)
		return d, func(w io.Writer) error {
			if err := d.Err(); err != nil {
				return errors.Wrap(err, "display")
			}
			return png.Encode(w, fb)
		}, nil
	case FormatPDF:
		p := surface.NewPDF(stage)
		return p, func(w io.Writer) error {
			_, err := p.WriteTo(w)
			return err
		}, nil
	case FormatTrace:
		rec := penchart.NewRecorder()
		return rec, func(w io.Writer) error {
			_, err := rec.WriteTo(w)
			return err
		}, nil
	default:
		return nil, nil, errors.Errorf("%s: unknown output format", format)
	}
}

func stageSize(stage surface.Stage) (int16, int16) {
	var (
		w = stage.Width
		h = stage.Height
	)
	if w <= 0 {
		w = surface.DefaultWidth
	}
	if h <= 0 {
		h = surface.DefaultHeight
	}
	return int16(w), int16(h)
}

func runStats(cmd *cobra.Command, args []string) error {
	res, err := computeStat(args[0], args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(res, 'f', -1, 64))
	return nil
}

// computeStat applies op to the values in args. The count operation takes the
// bounds of its range first: count LO HI VALUES...
func computeStat(op string, args []string) (float64, error) {
	if op == statCount {
		if len(args) < 2 {
			return 0, errors.Errorf("%s: want LO HI VALUES...", op)
		}
		bounds, err := dataset.ParseList(strings.Join(args[:2], " "))
		if err != nil {
			return 0, errors.Wrap(err, op)
		}
		values, err := dataset.ParseList(strings.Join(args[2:], " "))
		if err != nil {
			return 0, errors.Wrap(err, op)
		}
		return float64(stats.CountInRange(values, bounds[0], bounds[1])), nil
	}
	fn, ok := statFuncs[op]
	if !ok {
		return 0, errors.Errorf("%s: unknown statistic (want one of %s)", op, strings.Join(statNames(), ", "))
	}
	values, err := dataset.ParseList(strings.Join(args, " "))
	if err != nil {
		return 0, err
	}
	res, err := fn(values)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}
	return res, nil
}

func statNames() []string {
	names := make([]string, 0, len(statFuncs)+1)
	names = append(names, statCount)
	for n := range statFuncs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
