// Package graph provides a symmetric adjacency structure over comparable ids.
// Membership is always mutual: if A lists B, B lists A.
package graph

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"

	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Bidirectional maps each node id to the set of its neighbors.
// Not safe for concurrent mutation.
type Bidirectional[T comparable] struct {
	nodes map[T]mapset.Set[T]
}

// New creates an empty graph.
func New[T comparable]() *Bidirectional[T] {
	return &Bidirectional[T]{nodes: make(map[T]mapset.Set[T])}
}

// Insert adds id linked to every node in neighbors. Neighbors must already be
// present; an edge can only point back to a node inserted earlier.
// The graph is left untouched when Insert fails.
func (g *Bidirectional[T]) Insert(id T, neighbors mapset.Set[T]) error {
	if _, ok := g.nodes[id]; ok {
		return apperrors.Duplicatef("node %v already in graph", id)
	}

	var missing []T
	neighbors.Each(func(n T) {
		if _, ok := g.nodes[n]; !ok {
			missing = append(missing, n)
		}
	})
	if len(missing) > 0 {
		return apperrors.Missingf("node %v references absent neighbors %v", id, missing)
	}

	own := mapset.New[T]()
	neighbors.Each(func(n T) {
		own.Put(n)
		set := g.nodes[n]
		set.Put(id)
	})
	g.nodes[id] = own
	return nil
}

// Remove deletes id and strips it from every other node's neighbor set.
func (g *Bidirectional[T]) Remove(id T) error {
	if _, ok := g.nodes[id]; !ok {
		return apperrors.Missingf("node %v not in graph", id)
	}
	delete(g.nodes, id)
	for _, set := range g.nodes {
		set.Remove(id)
	}
	return nil
}

// Has reports whether id is a node.
func (g *Bidirectional[T]) Has(id T) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the node count.
func (g *Bidirectional[T]) Len() int {
	return len(g.nodes)
}

// Neighbors returns the neighbor set of id. The set is owned by the graph.
func (g *Bidirectional[T]) Neighbors(id T) (mapset.Set[T], bool) {
	set, ok := g.nodes[id]
	return set, ok
}

// Adjacency exposes the raw id -> neighbor set mapping, e.g. for pathfinding.
// Callers must not modify it.
func (g *Bidirectional[T]) Adjacency() map[T]mapset.Set[T] {
	return g.nodes
}

// Equal reports whether both graphs hold the same nodes with the same neighbor sets.
func (g *Bidirectional[T]) Equal(other *Bidirectional[T]) bool {
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for id, set := range g.nodes {
		o, ok := other.nodes[id]
		if !ok || !sameSet(set, o) {
			return false
		}
	}
	return true
}

func sameSet[T comparable](a, b mapset.Set[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(v T) {
		if !b.Has(v) {
			same = false
		}
	})
	return same
}

// SortedIDs returns the node ids in ascending order.
func SortedIDs[T constraints.Ordered](g *Bidirectional[T]) []T {
	ids := make([]T, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedNeighbors returns the neighbors of id in ascending order, or nil when
// id is absent.
func SortedNeighbors[T constraints.Ordered](g *Bidirectional[T], id T) []T {
	set, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]T, 0, set.Size())
	set.Each(func(n T) { out = append(out, n) })
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
