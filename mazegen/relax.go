package mazegen

import "math/rand"

// braid opens a random still-present wall of floor(deadEnds*factor) dead
// ends, trading perfection for loops. The dead-end list is computed once up
// front; dead ends created by the removals themselves are intentionally not
// reconsidered, which keeps the statistical character of the pass stable.
func braid(g *Grid, factor float64, rng *rand.Rand, rec *stepRecorder) error {
	deadEnds := g.DeadEnds()
	rng.Shuffle(len(deadEnds), func(i, j int) {
		deadEnds[i], deadEnds[j] = deadEnds[j], deadEnds[i]
	})

	count := int(float64(len(deadEnds)) * factor)
	for _, pos := range deadEnds[:count] {
		moves := g.WalledNeighbors(pos)
		if len(moves) == 0 {
			// Cannot happen on a valid carved grid of 2x2 or larger, but a
			// wall-less cell is skipped rather than trusted not to exist.
			continue
		}

		move := moves[rng.Intn(len(moves))]
		if err := g.RemoveWall(move.From, move.To); err != nil {
			return err
		}
		rec.wall(StepBraid, move.From, move.To)
	}

	return nil
}

// removeExtraWalls removes floor(walls*factor) of the still-present internal
// walls with no connectivity check, deliberately introducing shortcuts.
func removeExtraWalls(g *Grid, factor float64, rng *rand.Rand, rec *stepRecorder) error {
	walls := g.presentWalls()
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	count := int(float64(len(walls)) * factor)
	for _, wall := range walls[:count] {
		if err := g.RemoveWall(wall.From, wall.To); err != nil {
			return err
		}
		rec.wall(StepExtra, wall.From, wall.To)
	}

	return nil
}
