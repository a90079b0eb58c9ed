// Package pathtree records the parent links discovered during a grid search
// so the traversed path can be rebuilt once the search stops.
//
// The tree is an arena: nodes live in one slice and are addressed by NodeID,
// in creation order. Each node stores its coordinate and its parent's ID
// directly, so walking from any node back to the root is a chain of index
// lookups with no label parsing.
//
// Several nodes may carry the same coordinate, because a search can reach a
// cell from more than one parent before it is expanded. Find returns the
// first-created node for a coordinate; that node is authoritative for
// strategies that locate nodes by coordinate.
//
// Complexity:
//
//   - Add, Find, Parent, Coord: O(1) (amortised for Add).
//   - PathTo:                   O(depth).
//
// A Tree belongs to a single search run and is not safe for concurrent use.
package pathtree
