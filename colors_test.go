package penchart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPenState(t *testing.T) {
	ps := DefaultPenState()
	require.False(t, ps.Down)
	require.Equal(t, DefaultHue, ps.Hue())
	require.Equal(t, 100.0, ps.Saturation())
	require.Equal(t, 100.0, ps.Brightness())
	require.Zero(t, ps.Transparency())
	require.Equal(t, MinPenSize, ps.Pen().Diameter)
	require.Equal(t, 1.0, ps.Pen().Color[3])
}

func TestWrapClamp(t *testing.T) {
	tests := []struct {
		In   float64
		Want float64
	}{
		{In: 0, Want: 0},
		{In: 100, Want: 100},
		{In: 101, Want: 0},
		{In: 130, Want: 29},
		{In: -1, Want: 100},
		{In: -102, Want: 100},
	}
	for _, tt := range tests {
		require.Equal(t, tt.Want, wrapClamp(tt.In, 0, 100), "wrap %f", tt.In)
	}
}

func TestSetChange(t *testing.T) {
	ps := DefaultPenState()
	require.NoError(t, ps.Set(Saturation, 150))
	require.Equal(t, 100.0, ps.Saturation())
	require.NoError(t, ps.Set(Brightness, -5))
	require.Zero(t, ps.Brightness())
	require.NoError(t, ps.Change(Transparency, 40))
	require.Equal(t, 40.0, ps.Transparency())
	require.InDelta(t, 0.6, ps.Pen().Color[3], 1e-9)

	require.NoError(t, ps.Change(Hue, HueStep))
	require.InDelta(t, 96.66, ps.Hue(), 1e-9)
	require.NoError(t, ps.Change(Hue, HueStep))
	require.InDelta(t, 25.66, ps.Hue(), 1e-9)

	require.Error(t, ps.Set(ColorParam(42), 1))
}

func TestPenColor(t *testing.T) {
	ps := DefaultPenState()
	ps.Set(Hue, 0)
	require.Equal(t, [4]float64{1, 0, 0, 1}, ps.Pen().Color)

	ps.Set(Hue, 100)
	require.Equal(t, [4]float64{1, 0, 0, 1}, ps.Pen().Color)

	ps.SetColor(color.RGBA{R: 0, G: 255, B: 0, A: 255})
	require.InDelta(t, 100.0/3, ps.Hue(), 1e-9)
	require.Equal(t, 100.0, ps.Saturation())
	require.Equal(t, 100.0, ps.Brightness())
	require.Zero(t, ps.Transparency())
	require.Equal(t, [4]float64{0, 1, 0, 1}, ps.Pen().Color)
}

func TestPenSize(t *testing.T) {
	ps := DefaultPenState()
	ps.SetSize(0)
	require.Equal(t, MinPenSize, ps.Pen().Diameter)
	ps.SetSize(5000)
	require.Equal(t, MaxPenSize, ps.Pen().Diameter)
	ps.ChangeSize(-200)
	require.Equal(t, 1000.0, ps.Pen().Diameter)
}

func TestParseColorParam(t *testing.T) {
	for _, p := range []ColorParam{Hue, Saturation, Brightness, Transparency} {
		got, ok := ParseColorParam(p.String())
		require.True(t, ok)
		require.Equal(t, p, got)
	}
	got, ok := ParseColorParam("hue")
	require.True(t, ok)
	require.Equal(t, Hue, got)

	_, ok = ParseColorParam("lightness")
	require.False(t, ok)
}

func TestCloneTarget(t *testing.T) {
	sprite := NewTarget("sprite")
	sprite.MoveTo(3, 4)
	sprite.State().Set(Hue, 10)

	other := sprite.Clone("copy")
	other.State().Set(Hue, 80)
	other.MoveTo(0, 0)

	require.Equal(t, 10.0, sprite.State().Hue())
	require.Equal(t, 80.0, other.State().Hue())
	require.Equal(t, NewPoint(3, 4), sprite.Position())
}

func TestCanvasPenOps(t *testing.T) {
	c, _, sprite := newTestCanvas()
	c.SetColorParam(sprite, Saturation, 20)
	c.ChangeColorParam(sprite, Saturation, 5)
	require.Equal(t, 25.0, sprite.State().Saturation())

	c.SetPenSize(sprite, 4)
	c.ChangePenSize(sprite, 2)
	require.Equal(t, 6.0, sprite.State().Pen().Diameter)

	c.SetPenColor(sprite, color.NRGBA{R: 255, A: 0})
	require.Equal(t, 100.0, sprite.State().Transparency())
	require.Zero(t, sprite.State().Pen().Color[3])
}
