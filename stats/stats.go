// Package stats computes the descriptive statistics used by the box plot and
// by the statistics commands.
//
// The median and the quartiles do not follow the textbook definitions: they
// reproduce the parity based rules the charts were designed around, so that a
// box plot draws its median and box edges on actual sample values whenever
// possible.
package stats

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrEmptyInput = errors.New("stats: empty input")

type Order int

const (
	Ascending Order = iota
	Descending
)

func Sum(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var s float64
	for _, v := range values {
		s += v
	}
	return s, nil
}

func Average(values []float64) (float64, error) {
	s, err := Sum(values)
	if err != nil {
		return 0, err
	}
	return s / float64(len(values)), nil
}

// Max scans values with a strict comparison. A NaN never replaces the current
// maximum, unless it is the first element.
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	m := values[0]
	for _, v := range values {
		if m < v {
			m = v
		}
	}
	return m, nil
}

// Min is the mirror of Max.
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	m := values[0]
	for _, v := range values {
		if m > v {
			m = v
		}
	}
	return m, nil
}

func Range(values []float64) (float64, error) {
	hi, err := Max(values)
	if err != nil {
		return 0, err
	}
	lo, _ := Min(values)
	return hi - lo, nil
}

// Median sorts values in descending order. For an even count, the element at
// index n/2 is returned as is. For an odd count, the two elements on each side
// of the centre are averaged.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var (
		list = Sort(values, Descending)
		n    = len(list)
	)
	if n%2 == 0 {
		return list[n/2], nil
	}
	if n == 1 {
		return list[0], nil
	}
	c := (n - 1) / 2
	return (list[c-1] + list[c+1]) / 2, nil
}

func FirstQuartile(values []float64) (float64, error) {
	return quartile(values, Ascending)
}

func ThirdQuartile(values []float64) (float64, error) {
	return quartile(values, Descending)
}

func InterquartileRange(values []float64) (float64, error) {
	q3, err := ThirdQuartile(values)
	if err != nil {
		return 0, err
	}
	q1, _ := FirstQuartile(values)
	return q3 - q1, nil
}

// Summary gathers what a box plot needs to be drawn.
type Summary struct {
	Min     float64
	Q1      float64
	Median  float64
	Average float64
	Q3      float64
	Max     float64
}

func Describe(values []float64) (Summary, error) {
	var (
		sum Summary
		err error
	)
	if sum.Min, err = Min(values); err != nil {
		return sum, err
	}
	sum.Max, _ = Max(values)
	sum.Average, _ = Average(values)
	sum.Median, _ = Median(values)
	sum.Q1, _ = FirstQuartile(values)
	sum.Q3, _ = ThirdQuartile(values)
	return sum, nil
}

// CountInRange counts the values v with lo <= v < hi.
func CountInRange(values []float64, lo, hi float64) int {
	var n int
	for _, v := range values {
		if v >= lo && v < hi {
			n++
		}
	}
	return n
}

// quartile uses the same halving for both quartiles: only the sort order
// decides whether the lower or the upper quartile is picked.
func quartile(values []float64, order Order) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var (
		list = Sort(values, order)
		half = len(list) / 2
	)
	if len(list)%2 != 0 {
		half = (len(list) - 1) / 2
	}
	switch {
	case half == 0:
		return list[0], nil
	case half%2 == 0:
		return (list[half/2-1] + list[half/2]) / 2, nil
	default:
		return list[(half-1)/2], nil
	}
}

// Sort returns a sorted copy of values.
func Sort(values []float64, order Order) []float64 {
	list := make([]float64, len(values))
	copy(list, values)
	if order == Descending {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i] > list[j]
		})
	} else {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i] < list[j]
		})
	}
	return list
}
