package penchart

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Scaler maps a data domain linearly onto a pixel range. Values outside the
// domain are extrapolated, never clamped.
type Scaler struct {
	Domain Range
	Range
}

func NumberScaler(dom, rg Range) Scaler {
	return Scaler{
		Domain: dom,
		Range:  rg,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return s.F + s.Len()*((v-s.Domain.F)/s.Domain.Len())
}

func (s Scaler) Space() float64 {
	return s.Len() / s.Domain.Len()
}
