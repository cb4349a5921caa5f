package penchart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlyphPath(t *testing.T) {
	waypoints := map[int]int{
		0: 4,
		1: 1,
		2: 5,
		3: 6,
		4: 4,
		5: 6,
		6: 4,
		7: 2,
		8: 7,
		9: 5,
	}
	var longest int
	for d := 0; d <= 9; d++ {
		from, path, ok := GlyphPath(0, 0, d)
		require.True(t, ok)
		require.Len(t, path, waypoints[d], "digit %d", d)
		if d != 1 {
			require.Equal(t, NewPoint(1, 0), from, "digit %d", d)
		}
		if len(path) > waypoints[longest] {
			longest = d
		}
	}
	require.Equal(t, 8, longest)

	for _, d := range []int{-1, 10} {
		_, _, ok := GlyphPath(0, 0, d)
		require.False(t, ok)
	}
}

func TestGlyphCorners(t *testing.T) {
	from, path, _ := GlyphPath(10, 20, 0)
	require.Equal(t, NewPoint(11, 20), from)
	require.Equal(t, pts(16, 20, 16, 10, 11, 10, 11, 20), path)

	from, path, _ = GlyphPath(10, 20, 1)
	require.Equal(t, NewPoint(14, 20), from)
	require.Equal(t, pts(14, 10), path)

	_, path, _ = GlyphPath(10, 20, 4)
	require.Equal(t, pts(11, 15, 16, 15, 16, 20, 16, 10), path)
}

func TestDrawDigit(t *testing.T) {
	c, rec, sprite := newTestCanvas()
	c.DrawDigit(sprite, 0, 0, 1)
	require.Equal(t, 1, rec.Count(CallPoint))
	require.Equal(t, 1, rec.Count(CallLine))
	require.False(t, sprite.State().Down)

	rec.Reset()
	c.DrawDigit(sprite, 0, 0, 8)
	require.Equal(t, 1, rec.Count(CallPoint))
	require.Equal(t, 7, rec.Count(CallLine))

	rec.Reset()
	c.DrawDigit(sprite, 0, 0, 12)
	require.Empty(t, rec.Calls)
}

func TestDrawNumber(t *testing.T) {
	c, rec, sprite := newTestCanvas()
	c.DrawNumber(sprite, 0, 0, "1-2")

	strokes := rec.Strokes()
	require.Len(t, strokes, 2)
	require.Equal(t, NewPoint(4, 0), strokes[0][0])
	require.Equal(t, NewPoint(2*GlyphPitch+1, 0), strokes[1][0])
}
