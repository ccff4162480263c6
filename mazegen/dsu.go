package mazegen

// disjointSet tracks set membership over flat cell indices. It is used by the
// Kruskal generator to decide whether removing a wall would merge two
// components or create a cycle, and is discarded once generation completes.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet returns a structure in which every index is its own root.
func newDisjointSet(size int) *disjointSet {
	parent := make([]int, size)
	rank := make([]int, size)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent, rank: rank}
}

// find returns the root of the set containing x. It walks up iteratively,
// pointing each visited index at its grandparent so later lookups shorten.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the sets holding a and b by repointing one root at the other,
// attaching the smaller-rank tree under the larger-rank root. Callers check
// find equality first; union on a shared root is a no-op.
func (d *disjointSet) union(a, b int) {
	rootA := d.find(a)
	rootB := d.find(b)
	if rootA == rootB {
		return
	}
	if d.rank[rootA] < d.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	d.parent[rootB] = rootA
	if d.rank[rootA] == d.rank[rootB] {
		d.rank[rootA]++
	}
}
