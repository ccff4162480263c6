package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInvalidFactor indicates a relaxation factor outside [0, 1].
	ErrInvalidFactor = errors.New("relaxation factors must be within [0, 1]")
	// ErrUnknownAlgorithm indicates an algorithm name the engine does not implement.
	ErrUnknownAlgorithm = errors.New("unknown generation algorithm")
)

// Algorithm selects the generation strategy.
type Algorithm string

const (
	// Backtracking is the iterative depth-first strategy.
	Backtracking Algorithm = "backtrack"
	// Kruskal is the randomized Kruskal strategy over a shuffled wall list.
	Kruskal Algorithm = "kruskal"
	// HuntAndKill alternates random walks with row-major hunts.
	HuntAndKill Algorithm = "huntAndKill"
)

// Config describes one generation run. Invalid values are rejected by
// NewEngine rather than clamped: dimensions must be at least 1, both factors
// must fall within [0, 1] and the algorithm must be one of the three
// constants above.
type Config struct {
	Width            int        // Number of columns
	Height           int        // Number of rows
	Algorithm        Algorithm  // Generation strategy
	BraidingFactor   float64    // Fraction of dead ends to open up, 0 to 1
	ExtraWallRemoval float64    // Fraction of remaining walls to drop, 0 to 1
	Rand             *rand.Rand // Random source; time-seeded when nil
}

// Engine generates mazes for a fixed configuration. Every Generate call
// builds a fresh grid; the engine itself only carries the configuration, the
// random source and the step log of the most recent recorded run.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	steps []Step
}

// NewEngine validates the configuration and returns an engine ready to
// generate. Callers wanting reproducible mazes inject a seeded rand.Rand
// through the configuration.
func NewEngine(cfg Config) (*Engine, error) {
	if min(cfg.Width, cfg.Height) < 1 {
		return nil, ErrInvalidDimensions
	}
	if cfg.BraidingFactor < 0 || cfg.BraidingFactor > 1 ||
		cfg.ExtraWallRemoval < 0 || cfg.ExtraWallRemoval > 1 {
		return nil, ErrInvalidFactor
	}

	switch cfg.Algorithm {
	case Backtracking, Kruskal, HuntAndKill:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{cfg: cfg, rng: rng}, nil
}

// Generate runs one full generation pass: a fresh fully walled grid is carved
// into a perfect maze by the configured algorithm, then braiding and extra
// wall removal relax it in that fixed order. When recordSteps is true every
// structural mutation is logged and available through GenerationSteps.
func (e *Engine) Generate(recordSteps bool) (*Grid, error) {
	grid, err := NewGrid(e.cfg.Width, e.cfg.Height)
	if err != nil {
		return nil, err
	}

	rec := newStepRecorder(recordSteps)

	switch e.cfg.Algorithm {
	case Backtracking:
		err = backtrack(grid, e.rng, rec)
	case Kruskal:
		_, err = kruskal(grid, e.rng, rec)
	case HuntAndKill:
		err = huntAndKill(grid, e.rng, rec)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAlgorithm, e.cfg.Algorithm)
	}
	if err != nil {
		return nil, err
	}

	if err := braid(grid, e.cfg.BraidingFactor, e.rng, rec); err != nil {
		return nil, err
	}
	if err := removeExtraWalls(grid, e.cfg.ExtraWallRemoval, e.rng, rec); err != nil {
		return nil, err
	}

	e.steps = rec.recorded()
	return grid, nil
}

// GenerationSteps returns the ordered step log of the most recent Generate
// call. It is empty unless that call recorded steps.
func (e *Engine) GenerationSteps() []Step {
	return e.steps
}

// StartPosition returns the fixed entry corner of every generated maze.
func (e *Engine) StartPosition() CellPosition {
	return CellPosition{Row: 0, Col: 0}
}

// ExitPosition returns the fixed exit corner of every generated maze. It is
// purely positional and not guaranteed to terminate the longest path.
func (e *Engine) ExitPosition() CellPosition {
	return CellPosition{Row: e.cfg.Height - 1, Col: e.cfg.Width - 1}
}

// ReplaySteps applies a recorded step log to a fresh fully walled grid of the
// given dimensions and returns it. Replaying the full log of a recorded run
// reproduces that run's final wall state exactly, which is what animation
// consumers rely on.
func ReplaySteps(width, height int, steps []Step) (*Grid, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	for i, step := range steps {
		switch step.Kind {
		case StepCarve, StepBraid, StepExtra:
			if step.To == nil {
				return nil, fmt.Errorf("step %d: %s event without destination", i, step.Kind)
			}
			if err := grid.RemoveWall(step.From, *step.To); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		case StepVisit, StepHunt:
			if !grid.InBounds(step.From) {
				return nil, fmt.Errorf("step %d: cell (%d,%d) out of bounds", i, step.From.Row, step.From.Col)
			}
			grid.CellAt(step.From).Visited = true
		case StepBacktrack:
			// Cursor movement only; no structural effect.
		default:
			return nil, fmt.Errorf("step %d: unknown kind %q", i, step.Kind)
		}
	}

	return grid, nil
}
