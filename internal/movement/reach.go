package movement

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/talgya/combat-theater/internal/battlefield"
	"github.com/talgya/combat-theater/internal/hex"
	"github.com/talgya/combat-theater/internal/pathfind"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Reachable lists the hexes a unit can enter from Origin within Points.
type Reachable struct {
	Origin hex.Coord
	Points int

	source battlefield.SiteID
	result *pathfind.Result[battlefield.SiteID]
	cells  map[hex.Coord]battlefield.SiteID
}

// Reach computes the cells reachable from the hex at from within points.
func Reach(m *battlefield.Map, costs Costs, from hex.Coord, points int) (*Reachable, error) {
	weights, err := Weights(m, costs)
	if err != nil {
		return nil, err
	}
	return reach(m, weights, from, points)
}

func reach(m *battlefield.Map, weights map[battlefield.SiteID]int, from hex.Coord, points int) (*Reachable, error) {
	source, ok := m.HexAt(from)
	if !ok {
		return nil, apperrors.Missingf("no hex at %v", from)
	}

	res, err := pathfind.Dijkstra(m.Graph().Adjacency(), source, weights)
	if err != nil {
		return nil, fmt.Errorf("reach from %v: %w", from, err)
	}

	cells := make(map[hex.Coord]battlefield.SiteID)
	for id, d := range res.Dist {
		if d == pathfind.Infinity || d > points {
			continue
		}
		if h, ok := m.Hex(id); ok {
			cells[h.Coord] = id
		}
	}

	return &Reachable{
		Origin: from,
		Points: points,
		source: source,
		result: res,
		cells:  cells,
	}, nil
}

// CostTo returns the points needed to enter c, if c is within reach.
func (r *Reachable) CostTo(c hex.Coord) (int, bool) {
	id, ok := r.cells[c]
	if !ok {
		return 0, false
	}
	return r.result.Dist[id], true
}

// Cells returns the reachable coordinates ordered by cost, then by axial q and r.
func (r *Reachable) Cells() []hex.Coord {
	out := make([]hex.Coord, 0, len(r.cells))
	for c := range r.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := r.result.Dist[r.cells[out[i]]], r.result.Dist[r.cells[out[j]]]
		if di != dj {
			return di < dj
		}
		if out[i].Q() != out[j].Q() {
			return out[i].Q() < out[j].Q()
		}
		return out[i].R() < out[j].R()
	})
	return out
}

// PathTo returns the site ids from the origin to c, both included, following
// the cheapest route. River sites crossed on the way appear in the path.
func (r *Reachable) PathTo(c hex.Coord) ([]battlefield.SiteID, bool) {
	target, ok := r.cells[c]
	if !ok {
		return nil, false
	}

	path := []battlefield.SiteID{target}
	for cur := target; cur != r.source; {
		p, ok := r.result.Prev[cur]
		if !ok {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Origin names a unit position to plan from.
type Origin struct {
	Name   string
	From   hex.Coord
	Points int
}

// ReachAll plans several origins concurrently. The map is only read; callers
// must not insert sites while ReachAll runs.
func ReachAll(ctx context.Context, m *battlefield.Map, costs Costs, origins []Origin) (map[string]*Reachable, error) {
	weights, err := Weights(m, costs)
	if err != nil {
		return nil, err
	}

	results := make([]*Reachable, len(origins))
	g, ctx := errgroup.WithContext(ctx)
	for i, o := range origins {
		i, o := i, o
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := reach(m, weights, o.From, o.Points)
			if err != nil {
				return fmt.Errorf("%s: %w", o.Name, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*Reachable, len(origins))
	for i, o := range origins {
		if _, dup := out[o.Name]; dup {
			return nil, apperrors.Duplicatef("origin %q planned twice", o.Name)
		}
		out[o.Name] = results[i]
	}
	return out, nil
}
