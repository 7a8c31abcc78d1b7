package maze

// ConnectionTable tracks which door paths have been linked together.
// It is a union-find over the four path indices, so a path linked to a path
// that is linked to a third counts as connected to both.
type ConnectionTable struct {
	parent    [PathCount]int
	connected [PathCount]bool
}

// NewConnectionTable returns a table where every path is its own component
func NewConnectionTable() ConnectionTable {
	var t ConnectionTable
	for i := range t.parent {
		t.parent[i] = i
	}
	return t
}

// Find returns the representative path of p's component
func (t *ConnectionTable) Find(p int) int {
	for t.parent[p] != p {
		t.parent[p] = t.parent[t.parent[p]]
		p = t.parent[p]
	}
	return p
}

// SameNetwork reports whether a and b are in the same component
func (t *ConnectionTable) SameNetwork(a, b int) bool {
	return t.Find(a) == t.Find(b)
}

// Link merges the component of from into the component of to and marks both
// paths as connected. Returns false if they already shared a component.
func (t *ConnectionTable) Link(from, to int) bool {
	rf, rt := t.Find(from), t.Find(to)
	t.connected[from] = true
	t.connected[to] = true
	if rf == rt {
		return false
	}
	t.parent[rf] = rt
	return true
}

// Connected reports whether path p has taken part in a link
func (t *ConnectionTable) Connected(p int) bool {
	return t.connected[p]
}

// AllConnected reports whether every active path is in a single component.
// Zero or one active path is trivially connected.
func (t *ConnectionTable) AllConnected(doors Doors) bool {
	root := -1
	for p, active := range doors {
		if !active {
			continue
		}
		r := t.Find(p)
		if root == -1 {
			root = r
		} else if r != root {
			return false
		}
	}
	return true
}

// Components returns the number of distinct components among active paths
func (t *ConnectionTable) Components(doors Doors) int {
	var seen [PathCount]bool
	n := 0
	for p, active := range doors {
		if !active {
			continue
		}
		r := t.Find(p)
		if !seen[r] {
			seen[r] = true
			n++
		}
	}
	return n
}
