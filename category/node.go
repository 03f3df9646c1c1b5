package category

import "strings"

// NewLeaf constructs a terminal node with the given id and label.
// Complexity: O(1)
func NewLeaf(id, label string) *Node {
	return &Node{ID: id, Label: label, Children: []*Node{}}
}

// NewNode constructs an internal node owning the given children.
// Children are referenced, not copied; trees are built bottom-up, so a
// node can never reference an ancestor and no cycle can form.
// Complexity: O(len(children))
func NewNode(id, label string, children ...*Node) *Node {
	kids := make([]*Node, len(children))
	copy(kids, children)
	return &Node{ID: id, Label: label, Children: kids}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Find returns the first node with the given id in a depth-first,
// children-in-order traversal, or nil if the id does not occur.
// Complexity: O(V)
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	var hit *Node
	for _, c := range n.Children {
		if hit = c.Find(id); hit != nil {
			return hit
		}
	}

	return nil
}

// Walk visits every node of the tree in depth-first, children-in-order
// sequence, invoking fn once per node.
// Complexity: O(V)
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Leaves returns the terminal nodes of the tree in left-to-right order.
// Complexity: O(V)
func (n *Node) Leaves() []*Node {
	var out []*Node
	n.Walk(func(m *Node) {
		if m.IsLeaf() {
			out = append(out, m)
		}
	})

	return out
}

// Yield returns the space-joined terminal labels of the tree — the
// surface string the derivation produces.
// Complexity: O(V)
func (n *Node) Yield() string {
	leaves := n.Leaves()
	labels := make([]string, len(leaves))
	for i, l := range leaves {
		labels[i] = l.Label
	}

	return strings.Join(labels, " ")
}

// Size returns the total number of nodes in the tree.
// Complexity: O(V)
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node) { count++ })

	return count
}

// Clone returns a deep copy of the tree: every node is duplicated, ids
// and labels preserved.
// Complexity: O(V)
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	kids := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		kids[i] = c.Clone()
	}

	return &Node{ID: n.ID, Label: n.Label, Children: kids}
}

// Equal reports structural equality: same id, same label, and pairwise
// equal children in the same order.
// Complexity: O(V)
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.ID != o.ID || n.Label != o.Label || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}

	return true
}

// ids returns the set of node ids occurring in the tree.
func (n *Node) ids() map[string]struct{} {
	set := make(map[string]struct{})
	n.Walk(func(m *Node) { set[m.ID] = struct{}{} })

	return set
}
