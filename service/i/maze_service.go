package i

import (
	"time"

	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/google/uuid"
)

// MazeRun is one finished generation run kept for later retrieval. Steps is
// the ordered mutation log and stays empty when the run was not recorded.
type MazeRun struct {
	ID        uuid.UUID
	Algorithm mazegen.Algorithm
	Grid      *mazegen.Grid
	Steps     []mazegen.Step
	Start     mazegen.CellPosition
	Exit      mazegen.CellPosition
	CreatedAt time.Time
}

// MazeService runs maze generations and retains finished runs in memory.
type MazeService interface {
	// Generate runs one generation with the given configuration and returns
	// the stored run.
	Generate(cfg mazegen.Config, recordSteps bool) (*MazeRun, error)

	// RunByID returns a previously generated run.
	RunByID(id uuid.UUID) (*MazeRun, error)

	// StepsByID returns the ordered step log of a previously generated run.
	StepsByID(id uuid.UUID) ([]mazegen.Step, error)
}
