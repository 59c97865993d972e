package dsu

// DSU is a disjoint-set forest over string IDs.
// The zero value is not usable; construct with New.
type DSU struct {
	parent map[string]string
	rank   map[string]int
	count  int
}

// New returns a DSU holding one singleton set per given ID.
// Duplicate IDs are collapsed.
// Complexity: O(n).
func New(ids ...string) *DSU {
	d := &DSU{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.Add(id)
	}

	return d
}

// Add registers id as a new singleton set. Adding a known ID is a no-op.
// Complexity: O(1).
func (d *DSU) Add(id string) {
	if _, ok := d.parent[id]; ok {
		return
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.count++
}

// Contains reports whether id has been registered.
func (d *DSU) Contains(id string) bool {
	_, ok := d.parent[id]

	return ok
}

// Find returns the representative of id's set, compressing the path as it
// walks: every visited element is re-pointed at its grandparent, halving
// tree depth over time. Unknown IDs are registered as singletons first.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(id string) string {
	if _, ok := d.parent[id]; !ok {
		d.Add(id)
	}
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets holding a and b, attaching the lower-rank root
// under the higher. Returns false if a and b were already in the same set.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b string) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.count--

	return true
}

// Connected reports whether a and b currently share a set.
// Complexity: O(α(n)) amortized.
func (d *DSU) Connected(a, b string) bool {
	return d.Find(a) == d.Find(b)
}

// Count returns the current number of disjoint sets.
// Complexity: O(1).
func (d *DSU) Count() int {
	return d.count
}
