// Package dsu implements a disjoint-set union (union-find) over the dense
// integer elements 0..n-1, with path compression and union by rank.
//
// The structure answers "are u and v already in the same set?" and merges
// sets, each in near-constant amortized time O(α(n)). It is the cycle oracle
// behind Kruskal's algorithm: an edge {u, v} closes a cycle exactly when
// Find(u) == Find(v).
//
// A DisjointSetUnion is not safe for concurrent use; each planner run owns
// its own instance.
package dsu

// DisjointSetUnion tracks a partition of 0..n-1 into disjoint sets.
//
// Invariant: parent[r] == r exactly for the representative r of each set,
// and following parent pointers from any element terminates at its
// representative.
type DisjointSetUnion struct {
	parent []int // parent[v] is v's parent in its set tree
	rank   []int // rank[r] bounds the height of the tree rooted at r
	sets   int   // number of disjoint sets
}

// New returns a DisjointSetUnion of n singleton sets {0}, {1}, …, {n-1}.
// A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSetUnion {
	if n < 0 {
		n = 0
	}
	d := &DisjointSetUnion{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSetUnion) Len() int {
	return len(d.parent)
}

// Sets returns the current number of disjoint sets.
func (d *DisjointSetUnion) Sets() int {
	return d.sets
}

// Find returns the representative of v's set.
//
// It runs in two passes without recursion: first walk to the root, then
// rewrite every parent pointer on the walked path to point at that root.
// v must be in [0, Len()); anything else panics with an index error.
// Complexity: O(α(n)) amortized.
func (d *DisjointSetUnion) Find(v int) int {
	// Pass 1: locate the root.
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Pass 2: compress the path v → root.
	for v != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}

	return root
}

// Union merges the sets containing u and v and reports whether a merge
// happened. It is a no-op returning false when u and v already share a
// representative.
//
// The root of smaller rank is attached under the root of larger rank; on a
// tie u's root becomes the parent and its rank grows by one.
// Complexity: O(α(n)) amortized.
func (d *DisjointSetUnion) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}

	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}
	d.sets--

	return true
}

// Connected reports whether u and v are in the same set.
func (d *DisjointSetUnion) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Rank returns the rank of v's representative.
func (d *DisjointSetUnion) Rank(v int) int {
	return d.rank[d.Find(v)]
}
