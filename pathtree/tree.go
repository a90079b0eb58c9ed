package pathtree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trailseek/terrain"
)

// ErrNodeNotFound indicates a NodeID that does not belong to the tree.
var ErrNodeNotFound = errors.New("pathtree: node not found")

// NodeID addresses a node in a Tree. IDs are assigned in creation order.
type NodeID int

// Root is the ID of the root node of every Tree.
const Root NodeID = 0

// noParent marks the root's parent link.
const noParent NodeID = -1

type node struct {
	coord    terrain.Coord
	parent   NodeID
	children []NodeID
}

// Tree is an arena of position-labelled nodes rooted at a start coordinate.
type Tree struct {
	nodes []node
	first map[terrain.Coord]NodeID
}

// New returns a tree holding only the root node labelled root.
func New(root terrain.Coord) *Tree {
	return &Tree{
		nodes: []node{{coord: root, parent: noParent}},
		first: map[terrain.Coord]NodeID{root: Root},
	}
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Add creates a child of parent labelled c and returns its ID.
// The child is appended after the parent's existing children.
func (t *Tree) Add(parent NodeID, c terrain.Coord) (NodeID, error) {
	if !t.valid(parent) {
		return 0, fmt.Errorf("%w: parent %d", ErrNodeNotFound, parent)
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{coord: c, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	if _, ok := t.first[c]; !ok {
		t.first[c] = id
	}
	return id, nil
}

// Find returns the first-created node labelled c.
func (t *Tree) Find(c terrain.Coord) (NodeID, bool) {
	id, ok := t.first[c]
	return id, ok
}

// Coord returns the label of id.
func (t *Tree) Coord(id NodeID) (terrain.Coord, error) {
	if !t.valid(id) {
		return terrain.Coord{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return t.nodes[id].coord, nil
}

// Parent returns the parent of id; ok is false for the root.
func (t *Tree) Parent(id NodeID) (parent NodeID, ok bool, err error) {
	if !t.valid(id) {
		return 0, false, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	p := t.nodes[id].parent
	return p, p != noParent, nil
}

// Children returns the children of id in insertion order.
// The returned slice is a copy.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	if !t.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return append([]NodeID(nil), t.nodes[id].children...), nil
}

// Depth returns the number of edges between id and the root.
func (t *Tree) Depth(id NodeID) (int, error) {
	if !t.valid(id) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	d := 0
	for p := t.nodes[id].parent; p != noParent; p = t.nodes[p].parent {
		d++
	}
	return d, nil
}

// PathTo returns the labels from the root to id, both inclusive.
// Complexity: O(depth).
func (t *Tree) PathTo(id NodeID) ([]terrain.Coord, error) {
	if !t.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	// 1) walk ancestors goal → root
	var path []terrain.Coord
	for cur := id; cur != noParent; cur = t.nodes[cur].parent {
		path = append(path, t.nodes[cur].coord)
	}
	// 2) reverse to root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
