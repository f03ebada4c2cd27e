// Package pathfind computes node-weighted shortest paths over an adjacency mapping.
// Entering a node costs that node's weight; the edge used to reach it is free.
package pathfind

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Infinity marks nodes the source cannot reach.
const Infinity = math.MaxInt

// Result holds accumulated distances for every node of the adjacency and the
// predecessor of every reached node other than the source.
type Result[T comparable] struct {
	Source T
	Dist   map[T]int
	Prev   map[T]T
}

// Reached reports whether id was reached from the source.
func (r *Result[T]) Reached(id T) bool {
	d, ok := r.Dist[id]
	return ok && d != Infinity
}

type item[T comparable] struct {
	id   T
	dist int
}

type queue[T comparable] []item[T]

func (q queue[T]) Len() int            { return len(q) }
func (q queue[T]) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q queue[T]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *queue[T]) Push(x interface{}) { *q = append(*q, x.(item[T])) }
func (q *queue[T]) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// Dijkstra runs single-source shortest path from source. weights[v] is the
// cost of entering v and must lie in [0, Infinity). Every node relaxed during
// the search needs a weight; the source's own weight is never charged.
// A path whose accumulated cost would reach Infinity is reported as an error.
func Dijkstra[T comparable](adjacency map[T]mapset.Set[T], source T, weights map[T]int) (*Result[T], error) {
	if _, ok := adjacency[source]; !ok {
		return nil, apperrors.Missingf("source %v not in adjacency", source)
	}

	dist := make(map[T]int, len(adjacency))
	for id := range adjacency {
		dist[id] = Infinity
	}
	dist[source] = 0
	prev := make(map[T]T)

	open := &queue[T]{{id: source, dist: 0}}
	done := make(map[T]bool, len(adjacency))

	var err error
	for open.Len() > 0 && err == nil {
		cur := heap.Pop(open).(item[T])
		if done[cur.id] {
			continue
		}
		done[cur.id] = true

		neighbors, ok := adjacency[cur.id]
		if !ok {
			continue
		}
		neighbors.Each(func(v T) {
			if err != nil {
				return
			}
			w, ok := weights[v]
			if !ok {
				err = apperrors.Missingf("no weight for node %v", v)
				return
			}
			if w < 0 || w == Infinity {
				err = apperrors.Validationf("weight %d for node %v outside [0, Infinity)", w, v)
				return
			}
			if done[v] {
				return
			}
			if w >= Infinity-cur.dist {
				err = apperrors.Validationf("distance to node %v overflows", v)
				return
			}
			candidate := cur.dist + w
			old, seen := dist[v]
			if !seen || candidate < old {
				dist[v] = candidate
				prev[v] = cur.id
				heap.Push(open, item[T]{id: v, dist: candidate})
			}
		})
	}
	if err != nil {
		return nil, err
	}

	return &Result[T]{Source: source, Dist: dist, Prev: prev}, nil
}
