// Package movement turns battlefield terrain into pathfinding weights and
// answers how far a unit can move in one turn.
package movement

import (
	"github.com/talgya/combat-theater/internal/battlefield"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Costs gives the movement points needed to enter each kind of site.
type Costs struct {
	Terrain map[battlefield.Terrain]int
	River   map[battlefield.RiverKind]int
}

// DefaultCosts returns the standard entry costs.
func DefaultCosts() Costs {
	return Costs{
		Terrain: map[battlefield.Terrain]int{
			battlefield.TerrainPlain:  1,
			battlefield.TerrainForest: 2,
		},
		River: map[battlefield.RiverKind]int{
			battlefield.RiverSmall:  2,
			battlefield.RiverStream: 3,
		},
	}
}

// Weights builds the per-site entry cost table for m.
func Weights(m *battlefield.Map, costs Costs) (map[battlefield.SiteID]int, error) {
	weights := make(map[battlefield.SiteID]int, m.Len())
	for id, h := range m.Hexes() {
		w, ok := costs.Terrain[h.Terrain]
		if !ok {
			return nil, apperrors.Missingf("no movement cost for terrain %s", h.Terrain)
		}
		weights[id] = w
	}
	for id, r := range m.Rivers() {
		w, ok := costs.River[r.Kind]
		if !ok {
			return nil, apperrors.Missingf("no movement cost for river kind %s", r.Kind)
		}
		weights[id] = w
	}
	return weights, nil
}
