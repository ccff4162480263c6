package mazegen

// StepKind tags a recorded generation event.
type StepKind string

const (
	// StepVisit marks a cell as reached for the first time.
	StepVisit StepKind = "visit"
	// StepCarve records a wall removed between two cells during generation.
	StepCarve StepKind = "carve"
	// StepBacktrack records the depth-first walk retreating from a cell.
	StepBacktrack StepKind = "backtrack"
	// StepHunt records the Hunt-and-Kill scan locating a new cell to grow from.
	StepHunt StepKind = "hunt"
	// StepBraid records a wall removed to eliminate a dead end.
	StepBraid StepKind = "braid"
	// StepExtra records a wall removed unconditionally by the extra wall pass.
	StepExtra StepKind = "extra"
)

// Step is an immutable record of one structural event. Visit, backtrack and
// hunt events affect a single cell and leave To unset; carve, braid and extra
// events affect the wall between From and To.
type Step struct {
	Kind StepKind      `json:"kind"`
	From CellPosition  `json:"from"`
	To   *CellPosition `json:"to,omitempty"`
}

// stepRecorder collects steps in strict append order. A disabled recorder
// drops everything, which is the fast path when no replay is wanted.
type stepRecorder struct {
	enabled bool
	steps   []Step
}

func newStepRecorder(enabled bool) *stepRecorder {
	return &stepRecorder{enabled: enabled}
}

// cell appends a single-cell event.
func (r *stepRecorder) cell(kind StepKind, pos CellPosition) {
	if !r.enabled {
		return
	}
	r.steps = append(r.steps, Step{Kind: kind, From: pos})
}

// wall appends a from/to wall event.
func (r *stepRecorder) wall(kind StepKind, from, to CellPosition) {
	if !r.enabled {
		return
	}
	r.steps = append(r.steps, Step{Kind: kind, From: from, To: &to})
}

// recorded returns the collected steps in chronological order.
func (r *stepRecorder) recorded() []Step {
	return r.steps
}
