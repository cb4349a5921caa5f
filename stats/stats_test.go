package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyInput(t *testing.T) {
	funcs := map[string]func([]float64) (float64, error){
		"sum":     Sum,
		"average": Average,
		"max":     Max,
		"min":     Min,
		"range":   Range,
		"median":  Median,
		"q1":      FirstQuartile,
		"q3":      ThirdQuartile,
		"iqr":     InterquartileRange,
	}
	for name, fn := range funcs {
		_, err := fn(nil)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("%s: expected ErrEmptyInput, got %v", name, err)
		}
	}
}

func TestSumAverage(t *testing.T) {
	s, err := Sum([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 10.0, s)

	a, err := Average([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 2.5, a)
}

func TestMaxMin(t *testing.T) {
	series := [][]float64{
		{1},
		{3, 1, 2},
		{-5, -1, -10},
		{0.5, 0.25, 0.75, 0.5},
	}
	for _, s := range series {
		hi, err := Max(s)
		require.NoError(t, err)
		lo, err := Min(s)
		require.NoError(t, err)
		require.GreaterOrEqual(t, hi, lo)
	}

	hi, _ := Max([]float64{1, math.NaN(), 3})
	require.Equal(t, 3.0, hi)
	lo, _ := Min([]float64{1, math.NaN(), 3})
	require.Equal(t, 1.0, lo)

	hi, _ = Max([]float64{math.NaN(), math.NaN()})
	require.True(t, math.IsNaN(hi))
}

func TestMedian(t *testing.T) {
	data := []struct {
		Values []float64
		Want   float64
	}{
		{Values: []float64{1, 2, 3, 4}, Want: 2},
		{Values: []float64{4, 3, 2, 1}, Want: 2},
		{Values: []float64{10, 20, 30, 40, 50}, Want: 30},
		{Values: []float64{1, 2, 3}, Want: 2},
		{Values: []float64{1, 2, 9}, Want: 5},
		{Values: []float64{7}, Want: 7},
		{Values: []float64{5, 1}, Want: 1},
	}
	for _, d := range data {
		got, err := Median(d.Values)
		require.NoError(t, err)
		require.Equal(t, d.Want, got, "median(%v)", d.Values)
	}
}

func TestQuartiles(t *testing.T) {
	data := []struct {
		Values []float64
		First  float64
		Third  float64
	}{
		// asc [1 3 7 9], half=2 (even): (s[0]+s[1])/2; desc [9 7 3 1]
		{Values: []float64{7, 1, 9, 3}, First: 2, Third: 8},
		// half=2 (odd n=5): asc (10+20)/2, desc (50+40)/2
		{Values: []float64{10, 20, 30, 40, 50}, First: 15, Third: 45},
		// half=3 (n=6): element (3-1)/2=1
		{Values: []float64{1, 2, 3, 4, 5, 6}, First: 2, Third: 5},
		// half=1 (n=3): element 0
		{Values: []float64{4, 8, 6}, First: 4, Third: 8},
		{Values: []float64{42}, First: 42, Third: 42},
	}
	for _, d := range data {
		q1, err := FirstQuartile(d.Values)
		require.NoError(t, err)
		require.Equal(t, d.First, q1, "q1(%v)", d.Values)

		q3, err := ThirdQuartile(d.Values)
		require.NoError(t, err)
		require.Equal(t, d.Third, q3, "q3(%v)", d.Values)
	}

	iqr, err := InterquartileRange([]float64{7, 1, 9, 3})
	require.NoError(t, err)
	require.Equal(t, 6.0, iqr)
}

func TestDoesNotMutate(t *testing.T) {
	values := []float64{3, 1, 2}
	_, _ = Median(values)
	_, _ = FirstQuartile(values)
	_, _ = ThirdQuartile(values)
	require.Equal(t, []float64{3, 1, 2}, values)
}

func TestRangeAndCount(t *testing.T) {
	r, err := Range([]float64{4, -2, 9})
	require.NoError(t, err)
	require.Equal(t, 11.0, r)

	require.Equal(t, 3, CountInRange([]float64{1, 5, 10, 10, 3}, 1, 10))
	require.Equal(t, 0, CountInRange(nil, 0, 1))
}

func TestDescribe(t *testing.T) {
	sum, err := Describe([]float64{30, 10, 50, 20, 40})
	require.NoError(t, err)
	want := Summary{
		Min:     10,
		Q1:      15,
		Median:  30,
		Average: 30,
		Q3:      45,
		Max:     50,
	}
	require.Equal(t, want, sum)

	_, err = Describe(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}
