package penchart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestCanvas(options ...Option) (*Canvas, *Recorder, *Target) {
	rec := NewRecorder()
	return NewCanvas(rec, options...), rec, NewTarget("sprite")
}

func checkStroke(t *testing.T, want, got []Point) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("stroke mismatch (-want +got):\n%s", diff)
	}
}

func pts(xy ...float64) []Point {
	var list []Point
	for i := 0; i+1 < len(xy); i += 2 {
		list = append(list, NewPoint(xy[i], xy[i+1]))
	}
	return list
}
