/*
Package mazegen provides tools for generating and inspecting rectangular mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry wall
configurations and visited markers. Mazes are carved by one of three
interchangeable algorithms (iterative backtracking, randomized Kruskal's and
Hunt-and-Kill) and can afterwards be relaxed with braiding and extra wall
removal to introduce loops.

Every structural mutation can be recorded as an ordered step log so that a
consumer can replay the generation at its own pace, for example to animate it.
Utility functions enable neighbor detection, dead-end discovery and ASCII
visualization of the maze.
*/
package mazegen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions indicates a grid request with a side smaller than one cell.
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 1x1")
)

// Grid represents a rectangular maze consisting of cells with walls.
type Grid struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Cells  [][]*Cell // 2D grid of cells forming the maze, indexed row first
}

// NewGrid initializes a fully walled, fully unvisited grid of the given
// dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBounds reports whether the position falls inside the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.Height && pos.Col >= 0 && pos.Col < g.Width
}

// CellAt returns the cell at the given position. The position must be in bounds.
func (g *Grid) CellAt(pos CellPosition) *Cell {
	return g.Cells[pos.Row][pos.Col]
}

// flatIndex maps a position to its row-major index, used as a union-find key.
func (g *Grid) flatIndex(pos CellPosition) int {
	return pos.Row*g.Width + pos.Col
}

// neighbors finds all in-bounds moves from a given cell position, probing
// sides in the fixed order north, east, south, west.
func (g *Grid) neighbors(pos CellPosition) []Move {
	var result []Move
	for _, d := range directionOrder {
		neighbor := pos.shifted(d)
		if g.InBounds(neighbor) {
			result = append(result, Move{From: pos, To: neighbor, Direction: d})
		}
	}
	return result
}

// UnvisitedNeighbors returns the moves from pos to adjacent cells that have
// not been visited yet.
func (g *Grid) UnvisitedNeighbors(pos CellPosition) []Move {
	var result []Move
	for _, move := range g.neighbors(pos) {
		if !g.CellAt(move.To).Visited {
			result = append(result, move)
		}
	}
	return result
}

// VisitedNeighbors returns the moves from pos to adjacent cells that have
// already been visited.
func (g *Grid) VisitedNeighbors(pos CellPosition) []Move {
	var result []Move
	for _, move := range g.neighbors(pos) {
		if g.CellAt(move.To).Visited {
			result = append(result, move)
		}
	}
	return result
}

// WalledNeighbors returns the moves from pos to adjacent cells whose shared
// wall is still present.
func (g *Grid) WalledNeighbors(pos CellPosition) []Move {
	var result []Move
	for _, move := range g.neighbors(pos) {
		if g.CellAt(move.From).HasWall(move.Direction) {
			result = append(result, move)
		}
	}
	return result
}

// RemoveWall removes the wall between two grid-adjacent cells, clearing the
// flag on both sides so the wall state never disagrees. It fails if the cells
// are out of bounds or not adjacent.
func (g *Grid) RemoveWall(from, to CellPosition) error {
	if !g.InBounds(from) || !g.InBounds(to) {
		return fmt.Errorf("wall removal out of bounds: (%d,%d)-(%d,%d)", from.Row, from.Col, to.Row, to.Col)
	}

	dir, err := directionBetween(from, to)
	if err != nil {
		return err
	}

	g.CellAt(from).setWall(dir, false)
	g.CellAt(to).setWall(dir.opposite(), false)
	return nil
}

// DeadEnds returns every cell that has exactly three walls still present,
// i.e. the leaves of the carved structure.
func (g *Grid) DeadEnds() []CellPosition {
	var result []CellPosition
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Cells[row][col].WallCount() == 3 {
				result = append(result, CellPosition{Row: row, Col: col})
			}
		}
	}
	return result
}

// wallCandidate records two adjacent cells sharing a still-present wall.
type wallCandidate struct {
	From CellPosition
	To   CellPosition
}

// presentWalls enumerates every internal wall still present, listing each
// wall exactly once through its east and south side only.
func (g *Grid) presentWalls() []wallCandidate {
	var walls []wallCandidate
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if col+1 < g.Width && cell.EastWall {
				walls = append(walls, wallCandidate{
					From: CellPosition{Row: row, Col: col},
					To:   CellPosition{Row: row, Col: col + 1},
				})
			}
			if row+1 < g.Height && cell.SouthWall {
				walls = append(walls, wallCandidate{
					From: CellPosition{Row: row, Col: col},
					To:   CellPosition{Row: row + 1, Col: col},
				})
			}
		}
	}
	return walls
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.Width) + "\n"

	for row := 0; row < g.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.Width; col++ {
			cellRow += "   "

			// Add east wall or space
			if g.Cells[row][col].EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			// Add south wall or space
			if g.Cells[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
