package mazegen

import "math/rand"

// huntAndKill carves a perfect maze by alternating two phases: a random walk
// through unvisited cells (kill) and a row-major scan for a fresh cell
// touching the visited region (hunt). The long-range jumps of the hunt phase
// give the maze more isolated dead-end clusters than plain backtracking.
func huntAndKill(g *Grid, rng *rand.Rand, rec *stepRecorder) error {
	current := CellPosition{Row: 0, Col: 0}
	g.CellAt(current).Visited = true
	rec.cell(StepVisit, current)

	for {
		moves := g.UnvisitedNeighbors(current)
		if len(moves) > 0 {
			move := moves[rng.Intn(len(moves))]
			if err := g.RemoveWall(move.From, move.To); err != nil {
				return err
			}
			g.CellAt(move.To).Visited = true
			rec.wall(StepCarve, move.From, move.To)
			current = move.To
			continue
		}

		// The walk is stuck; hunt for a new place to grow from.
		target, found := huntTarget(g)
		if !found {
			return nil
		}

		visitedMoves := g.VisitedNeighbors(target)
		entry := visitedMoves[rng.Intn(len(visitedMoves))]
		rec.cell(StepHunt, target)
		// The carve runs from the chosen visited neighbor into the target.
		if err := g.RemoveWall(entry.To, entry.From); err != nil {
			return err
		}
		g.CellAt(target).Visited = true
		rec.wall(StepCarve, entry.To, entry.From)
		current = target
	}
}

// huntTarget scans the grid in row-major order for the first unvisited cell
// that has at least one visited neighbor. The second return value is false
// when no such cell remains, which means every cell has been visited.
func huntTarget(g *Grid) (CellPosition, bool) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if g.CellAt(pos).Visited {
				continue
			}
			if len(g.VisitedNeighbors(pos)) > 0 {
				return pos, true
			}
		}
	}
	return CellPosition{}, false
}
