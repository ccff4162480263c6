package mazegen

import "fmt"

// Direction identifies one side of a cell.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// directionOrder fixes the probe order for neighbor queries: top, right,
// bottom, left. A slice is used instead of a map so the order is stable.
var directionOrder = []Direction{North, East, South, West}

// directionDeltas maps each direction to its row and column offset.
var directionDeltas = map[Direction]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// opposite returns the direction facing back at d.
func (d Direction) opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and a visited marker used
// during generation.
type Cell struct {
	NorthWall bool `json:"north_wall"` // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool `json:"south_wall"` // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool `json:"east_wall"`  // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool `json:"west_wall"`  // WestWall indicates whether there is a wall on the west side of the cell.
	Visited   bool `json:"-"`          // Visited marks the cell as reached by the generation algorithm.
}

// HasWall returns true if the cell still has a wall on the given side.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	default:
		return c.WestWall
	}
}

// setWall sets the presence of the wall on the given side.
func (c *Cell) setWall(d Direction, hasWall bool) {
	switch d {
	case North:
		c.NorthWall = hasWall
	case South:
		c.SouthWall = hasWall
	case East:
		c.EastWall = hasWall
	default:
		c.WestWall = hasWall
	}
}

// WallCount returns the number of walls still present around the cell.
func (c *Cell) WallCount() int {
	count := 0
	for _, d := range directionOrder {
		if c.HasWall(d) {
			count++
		}
	}
	return count
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// shifted returns the position one step away in the given direction.
func (cp CellPosition) shifted(d Direction) CellPosition {
	delta := directionDeltas[d]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// directionBetween returns the direction that leads from one position to a
// grid-adjacent other. It fails if the two positions are not adjacent.
func directionBetween(from, to CellPosition) (Direction, error) {
	for _, d := range directionOrder {
		if from.shifted(d) == to {
			return d, nil
		}
	}
	return "", fmt.Errorf("cells (%d,%d) and (%d,%d) are not adjacent", from.Row, from.Col, to.Row, to.Col)
}

// Move represents a movement from one cell to another in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move (North, South, East, West)
}
