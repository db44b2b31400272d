package motionplan

import "go.viam.com/jointplan/referenceframe"

// Index of the root's parent. Valid node indices are always >= 0.
const noParent = -1

// treeNode is one entry in the tree arena. Parent and children are recorded as indices into
// the arena rather than pointers, so nodes can be appended freely without aliasing hazards.
type treeNode struct {
	q        []referenceframe.Input
	parent   int
	children []int
	cost     float64 // distance from parent; 0 for the root
}

// rrtTree is a rooted search tree stored as a growable arena. The node at index 0 is always
// the root. Nodes are only ever added, never removed, so indices stay stable for the life of
// the tree.
type rrtTree struct {
	nodes []treeNode
}

func newRRTTree(root []referenceframe.Input) *rrtTree {
	return &rrtTree{nodes: []treeNode{{q: root, parent: noParent}}}
}

func (t *rrtTree) size() int {
	return len(t.nodes)
}

// addChild appends a new node holding q as a child of the node at parent, returning the new
// node's index. Children are kept in insertion order.
func (t *rrtTree) addChild(parent int, q []referenceframe.Input) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, treeNode{
		q:      q,
		parent: parent,
		cost:   referenceframe.InputsL2Distance(t.nodes[parent].q, q),
	})
	t.nodes[parent].children = append(t.nodes[parent].children, idx)
	return idx
}

// bfsOrder returns every node index exactly once in breadth-first order from the root,
// parents before children and siblings in insertion order. The traversal uses an explicit
// queue over the arena rather than recursion.
func (t *rrtTree) bfsOrder() []int {
	order := make([]int, 0, len(t.nodes))
	queue := []int{0}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		order = append(order, idx)
		queue = append(queue, t.nodes[idx].children...)
	}
	return order
}

// pathFromRoot walks parent indices from the given node to the root, then reverses the
// collected configurations so the path runs root-first.
func (t *rrtTree) pathFromRoot(idx int) [][]referenceframe.Input {
	path := make([][]referenceframe.Input, 0)
	for cur := idx; cur != noParent; cur = t.nodes[cur].parent {
		path = append(path, t.nodes[cur].q)
	}

	// reverse the slice
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// sumCosts returns the total configuration-space length of the path from the root to the
// given node.
func (t *rrtTree) sumCosts(idx int) float64 {
	cost := 0.
	for cur := idx; cur != noParent; cur = t.nodes[cur].parent {
		cost += t.nodes[cur].cost
	}
	return cost
}
