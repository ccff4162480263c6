package mazegen

import "math/rand"

// kruskal carves a perfect maze by shuffling the full internal wall list and
// removing every wall whose endpoints still belong to different components.
// The union-find structure it scans with is returned so callers can inspect
// the final partitioning; the engine discards it.
func kruskal(g *Grid, rng *rand.Rand, rec *stepRecorder) (*disjointSet, error) {
	ds := newDisjointSet(g.Width * g.Height)

	// All cells count as visited up front so the output matches the other
	// algorithms, which mark cells as they reach them.
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			g.Cells[row][col].Visited = true
		}
	}

	walls := g.presentWalls()
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	for _, wall := range walls {
		from := g.flatIndex(wall.From)
		to := g.flatIndex(wall.To)
		if ds.find(from) == ds.find(to) {
			// Same component already; removing this wall would close a cycle.
			continue
		}

		if err := g.RemoveWall(wall.From, wall.To); err != nil {
			return nil, err
		}
		ds.union(from, to)
		rec.wall(StepCarve, wall.From, wall.To)
	}

	return ds, nil
}
