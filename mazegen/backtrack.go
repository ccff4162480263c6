package mazegen

import "math/rand"

// backtrack carves a perfect maze with an iterative depth-first walk. It
// exhausts depth before retreating, which yields long corridors with little
// branching.
func backtrack(g *Grid, rng *rand.Rand, rec *stepRecorder) error {
	start := CellPosition{Row: 0, Col: 0}
	g.CellAt(start).Visited = true
	rec.cell(StepVisit, start)

	stack := []CellPosition{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		moves := g.UnvisitedNeighbors(current)
		if len(moves) == 0 {
			// Dead end for the walk: retreat. The event still names the
			// popped cell so a replaying consumer can move its cursor back.
			stack = stack[:len(stack)-1]
			rec.cell(StepBacktrack, current)
			continue
		}

		move := moves[rng.Intn(len(moves))]
		if err := g.RemoveWall(move.From, move.To); err != nil {
			return err
		}
		g.CellAt(move.To).Visited = true
		stack = append(stack, move.To)
		rec.wall(StepCarve, move.From, move.To)
	}

	return nil
}
