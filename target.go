package penchart

// Target is the cursor owner: a movable position that carries its own pen
// state. Moving a target never draws by itself; only a Stroke does.
type Target struct {
	Name string

	pos   Point
	state *PenState
}

func NewTarget(name string) *Target {
	return &Target{
		Name: name,
	}
}

func (t *Target) Position() Point {
	return t.pos
}

func (t *Target) MoveTo(x, y float64) {
	t.pos = NewPoint(x, y)
}

// State returns the pen state of the target, creating it with the default
// values on first access.
func (t *Target) State() *PenState {
	if t.state == nil {
		t.state = DefaultPenState()
	}
	return t.state
}

// Clone derives a new target at the same position. The pen state is copied,
// never shared.
func (t *Target) Clone(name string) *Target {
	x := &Target{
		Name: name,
		pos:  t.pos,
	}
	if t.state != nil {
		st := *t.state
		x.state = &st
	}
	return x
}
