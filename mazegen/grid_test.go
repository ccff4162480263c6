package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("starts fully walled and unvisited", func(t *testing.T) {
		grid, err := NewGrid(3, 2)
		assert.NoError(t, err)
		assert.Equal(t, 3, grid.Width)
		assert.Equal(t, 2, grid.Height)

		for row := 0; row < grid.Height; row++ {
			for col := 0; col < grid.Width; col++ {
				cell := grid.Cells[row][col]
				assert.Equal(t, 4, cell.WallCount())
				assert.False(t, cell.Visited)
			}
		}
	})

	t.Run("accepts a 1x1 grid", func(t *testing.T) {
		grid, err := NewGrid(1, 1)
		assert.NoError(t, err)
		assert.Empty(t, grid.neighbors(CellPosition{Row: 0, Col: 0}))
		assert.Empty(t, grid.presentWalls())
	})
}

func TestNeighborQueries(t *testing.T) {
	grid, err := NewGrid(3, 3)
	assert.NoError(t, err)
	center := CellPosition{Row: 1, Col: 1}

	t.Run("probes sides in north, east, south, west order", func(t *testing.T) {
		moves := grid.neighbors(center)
		assert.Len(t, moves, 4)
		assert.Equal(t, []Direction{North, East, South, West}, []Direction{
			moves[0].Direction, moves[1].Direction, moves[2].Direction, moves[3].Direction,
		})
	})

	t.Run("bounds-checks corner cells", func(t *testing.T) {
		moves := grid.neighbors(CellPosition{Row: 0, Col: 0})
		assert.Len(t, moves, 2)
		assert.Equal(t, East, moves[0].Direction)
		assert.Equal(t, South, moves[1].Direction)
	})

	t.Run("filters by visited flag", func(t *testing.T) {
		grid.CellAt(CellPosition{Row: 0, Col: 1}).Visited = true

		unvisited := grid.UnvisitedNeighbors(center)
		assert.Len(t, unvisited, 3)

		visited := grid.VisitedNeighbors(center)
		assert.Len(t, visited, 1)
		assert.Equal(t, CellPosition{Row: 0, Col: 1}, visited[0].To)

		grid.CellAt(CellPosition{Row: 0, Col: 1}).Visited = false
	})

	t.Run("filters by wall presence", func(t *testing.T) {
		assert.Len(t, grid.WalledNeighbors(center), 4)

		assert.NoError(t, grid.RemoveWall(center, CellPosition{Row: 1, Col: 2}))
		walled := grid.WalledNeighbors(center)
		assert.Len(t, walled, 3)
		for _, move := range walled {
			assert.NotEqual(t, East, move.Direction)
		}
	})
}

func TestRemoveWall(t *testing.T) {
	t.Run("clears the flag on both sides", func(t *testing.T) {
		grid, err := NewGrid(2, 2)
		assert.NoError(t, err)

		from := CellPosition{Row: 0, Col: 0}
		to := CellPosition{Row: 0, Col: 1}
		assert.NoError(t, grid.RemoveWall(from, to))
		assert.False(t, grid.CellAt(from).EastWall)
		assert.False(t, grid.CellAt(to).WestWall)

		assert.NoError(t, grid.RemoveWall(to, CellPosition{Row: 1, Col: 1}))
		assert.False(t, grid.CellAt(to).SouthWall)
		assert.False(t, grid.CellAt(CellPosition{Row: 1, Col: 1}).NorthWall)
	})

	t.Run("fails on non-adjacent cells", func(t *testing.T) {
		grid, err := NewGrid(3, 3)
		assert.NoError(t, err)

		assert.Error(t, grid.RemoveWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 2}))
		assert.Error(t, grid.RemoveWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 1}))
		assert.Error(t, grid.RemoveWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 0}))
	})

	t.Run("fails out of bounds", func(t *testing.T) {
		grid, err := NewGrid(2, 2)
		assert.NoError(t, err)

		assert.Error(t, grid.RemoveWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: -1}))
		assert.Error(t, grid.RemoveWall(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 2, Col: 1}))
	})
}

func TestDeadEnds(t *testing.T) {
	grid, err := NewGrid(3, 1)
	assert.NoError(t, err)

	// Carve a corridor: both end cells become dead ends, the middle does not.
	assert.NoError(t, grid.RemoveWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1}))
	assert.NoError(t, grid.RemoveWall(CellPosition{Row: 0, Col: 1}, CellPosition{Row: 0, Col: 2}))

	deadEnds := grid.DeadEnds()
	assert.Equal(t, []CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, deadEnds)
}

func TestPresentWalls(t *testing.T) {
	t.Run("lists each internal wall exactly once", func(t *testing.T) {
		grid, err := NewGrid(4, 3)
		assert.NoError(t, err)

		// 4x3 has 3 east-facing walls per row and 4 south-facing walls per
		// internal row boundary.
		assert.Len(t, grid.presentWalls(), 3*3+4*2)
	})

	t.Run("skips removed walls", func(t *testing.T) {
		grid, err := NewGrid(2, 2)
		assert.NoError(t, err)
		assert.Len(t, grid.presentWalls(), 4)

		assert.NoError(t, grid.RemoveWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 0}))
		assert.Len(t, grid.presentWalls(), 3)
	})
}
