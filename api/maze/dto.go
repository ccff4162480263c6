// Package mazeapi provides structures and utilities for requesting maze
// generations and returning their results and step logs.
package mazeapi

import (
	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Width            int     `json:"width" binding:"required,min=1,max=100"`
	Height           int     `json:"height" binding:"required,min=1,max=100"`
	Algorithm        string  `json:"algorithm" binding:"required,oneof=backtrack kruskal huntAndKill"`
	BraidingFactor   float64 `json:"braiding_factor" binding:"gte=0,lte=1"`
	ExtraWallRemoval float64 `json:"extra_wall_removal" binding:"gte=0,lte=1"`
	RecordSteps      bool    `json:"record_steps"`
	Seed             *int64  `json:"seed"` // Optional; fixes the random source for reproducible mazes
}

// CellResponse describes the wall state of a single cell.
type CellResponse struct {
	NorthWall bool `json:"north_wall"`
	SouthWall bool `json:"south_wall"`
	EastWall  bool `json:"east_wall"`
	WestWall  bool `json:"west_wall"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID        uuid.UUID            `json:"id"`
	Algorithm string               `json:"algorithm"`
	Width     int                  `json:"width"`
	Height    int                  `json:"height"`
	Start     mazegen.CellPosition `json:"start"`
	Exit      mazegen.CellPosition `json:"exit"`
	Cells     [][]CellResponse     `json:"cells"`
	StepCount int                  `json:"step_count"`
}

// StepsResponse represents the ordered step log of a generation run.
type StepsResponse struct {
	ID    uuid.UUID      `json:"id"`
	Steps []mazegen.Step `json:"steps"`
}

// fromRun converts a stored generation run to its response representation.
func fromRun(run *i.MazeRun) *MazeResponse {
	cells := make([][]CellResponse, run.Grid.Height)
	for row := range cells {
		cells[row] = make([]CellResponse, run.Grid.Width)
		for col := range cells[row] {
			cell := run.Grid.Cells[row][col]
			cells[row][col] = CellResponse{
				NorthWall: cell.NorthWall,
				SouthWall: cell.SouthWall,
				EastWall:  cell.EastWall,
				WestWall:  cell.WestWall,
			}
		}
	}

	return &MazeResponse{
		ID:        run.ID,
		Algorithm: string(run.Algorithm),
		Width:     run.Grid.Width,
		Height:    run.Grid.Height,
		Start:     run.Start,
		Exit:      run.Exit,
		Cells:     cells,
		StepCount: len(run.Steps),
	}
}
