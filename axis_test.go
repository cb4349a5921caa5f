package penchart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueToY(t *testing.T) {
	axis := DefaultAxis()
	require.Equal(t, axis.Top.Y, axis.ValueToY(axis.MaxVertical))
	require.Equal(t, axis.Origin.Y, axis.ValueToY(0))
	require.Equal(t, 0.0, axis.ValueToY(50))
	require.Equal(t, 200.0, axis.ValueToY(150))
	require.Equal(t, -200.0, axis.ValueToY(-50))

	axis.MaxVertical = 40
	require.Equal(t, axis.Top.Y, axis.ValueToY(40))
}

func TestBarSpan(t *testing.T) {
	axis := DefaultAxis()
	left, right := axis.BarSpan(3)
	require.InDelta(t, -70, left, 1e-9)
	require.InDelta(t, 170, right, 1e-9)

	axis.HorizontalTick = 100
	left, right = axis.BarSpan(2)
	require.InDelta(t, 10, left, 1e-9)
	require.InDelta(t, 90, right, 1e-9)
}

func TestSetMaxVertical(t *testing.T) {
	c, _, _ := newTestCanvas()
	for _, v := range []float64{math.NaN(), math.Inf(1), 0, -10} {
		c.SetMaxVertical(v)
		require.Equal(t, DefaultMaxVertical, c.Axis.MaxVertical)
	}
	c.SetMaxVertical(250)
	require.Equal(t, 250.0, c.Axis.MaxVertical)
}

func TestDrawAxes(t *testing.T) {
	c, rec, sprite := newTestCanvas()
	c.DrawAxes(sprite)

	strokes := rec.Strokes()
	require.Len(t, strokes, 1)
	checkStroke(t, pts(-100, 100, -100, -100, 200, -100), strokes[0])
	require.False(t, sprite.State().Down)
}

func TestDivideVertical(t *testing.T) {
	c, rec, sprite := newTestCanvas()
	c.DivideVertical(sprite, 0)
	require.Empty(t, rec.Calls)
	require.Zero(t, c.Axis.VerticalDivisions)

	c.DivideVertical(sprite, 4)
	require.Equal(t, 4, c.Axis.VerticalDivisions)
	require.Equal(t, 50.0, c.Axis.VerticalTick)

	strokes := rec.Strokes()
	require.Len(t, strokes, 8)
	checkStroke(t, pts(-100, -50, -95, -50), strokes[0])
	checkStroke(t, pts(-100, 100, -95, 100), strokes[3])
	checkStroke(t, pts(-100, -50, 200, -50), strokes[4])
	checkStroke(t, pts(-100, 100, 200, 100), strokes[7])

	var guide *Pen
	for i := len(rec.Calls) - 1; i >= 0; i-- {
		if rec.Calls[i].Kind == CallLine {
			guide = rec.Calls[i].Pen
			break
		}
	}
	require.NotNil(t, guide)
	gray := 127.0 / 255
	require.Equal(t, [4]float64{gray, gray, gray, 1}, guide.Color)

	ps := sprite.State()
	require.Equal(t, DefaultHue, ps.Hue())
	require.Equal(t, 100.0, ps.Saturation())
	require.Equal(t, 100.0, ps.Brightness())
	require.Equal(t, DefaultPenState().Pen(), ps.Pen())
}

func TestDivideHorizontal(t *testing.T) {
	c, rec, sprite := newTestCanvas()
	c.DivideHorizontal(sprite, 2)
	require.Equal(t, 150.0, c.Axis.HorizontalTick)

	strokes := rec.Strokes()
	require.Len(t, strokes, 4)
	checkStroke(t, pts(-25, -103, -25, -97), strokes[0])
	checkStroke(t, pts(125, -103, 125, -97), strokes[1])
	// label 1 then label 2
	checkStroke(t, pts(-24, -105, -24, -115), strokes[2])
	checkStroke(t, pts(123, -105, 128, -105, 128, -110, 123, -110, 123, -115, 128, -115), strokes[3])
}

func TestDivideHorizontalTwoDigitLabels(t *testing.T) {
	c, rec, sprite := newTestCanvas()
	c.DivideHorizontal(sprite, 12)
	require.Equal(t, 25.0, c.Axis.HorizontalTick)

	strokes := rec.Strokes()
	// 12 ticks, 9 single digits, then 2 glyphs for each of 10, 11 and 12
	require.Len(t, strokes, 27)
	checkStroke(t, pts(187.5, -103, 187.5, -97), strokes[11])
	checkStroke(t, pts(-86.5, -105, -86.5, -115), strokes[12])

	// 10 centred on 137.5
	checkStroke(t, pts(134.5, -105, 134.5, -115), strokes[21])
	checkStroke(t, pts(138.5, -105, 143.5, -105, 143.5, -115, 138.5, -115, 138.5, -105), strokes[22])
	// 12 centred on 187.5
	checkStroke(t, pts(184.5, -105, 184.5, -115), strokes[25])
	checkStroke(t, pts(188.5, -105, 193.5, -105, 193.5, -110, 188.5, -110, 188.5, -115, 193.5, -115), strokes[26])
}

func TestCenteredStart(t *testing.T) {
	require.Equal(t, 96.5, centeredStart(100, 1))
	require.Equal(t, 93.0, centeredStart(100, 2))
	require.Equal(t, 89.5, centeredStart(100, 3))
}

func TestVerticalLabels(t *testing.T) {
	c, rec, sprite := newTestCanvas()
	c.DrawLeftLabels(sprite)
	c.DrawRightLabels(sprite)
	require.Empty(t, rec.Calls)

	c.DivideVertical(sprite, 2)
	rec.Reset()

	c.DrawLeftLabels(sprite)
	strokes := rec.Strokes()
	// 0, 5 0, 1 0 0
	require.Len(t, strokes, 6)
	require.Equal(t, NewPoint(-109, -95), strokes[0][0])
	require.Equal(t, NewPoint(-116, 5), strokes[1][0])
	require.Equal(t, NewPoint(-120, 105), strokes[3][0])

	rec.Reset()
	c.DrawRightLabels(sprite)
	strokes = rec.Strokes()
	require.Len(t, strokes, 6)
	require.Equal(t, NewPoint(204, -95), strokes[0][0])
	require.Equal(t, NewPoint(204, 5), strokes[1][0])
	require.Equal(t, NewPoint(207, 105), strokes[3][0])
}

func TestRoundHalfUp(t *testing.T) {
	require.Equal(t, 3.0, roundHalfUp(2.5))
	require.Equal(t, 8.0, roundHalfUp(7.5))
	require.Equal(t, 0.0, roundHalfUp(0.49))
	require.Equal(t, -2.0, roundHalfUp(-2.5))
}
