// Package battlefield owns the terrain and river sites of a hex battlefield and
// keeps their adjacency graph in step with the grid geometry.
package battlefield

import (
	"fmt"
	"maps"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/combat-theater/internal/graph"
	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// Map holds the battlefield sites and their adjacency.
//
// Hex-to-hex edges follow grid adjacency; each river node links to the two
// hexes it separates. Ids come from a monotonic counter and are never reused.
// Sites are never removed. A failed insert leaves the map unchanged, but
// earlier inserts by the same caller stay in place.
type Map struct {
	graph  *graph.Bidirectional[SiteID]
	hexes  map[SiteID]HexSite
	rivers map[SiteID]RiverSite
	nextID SiteID
}

// New creates an empty map.
func New() *Map {
	return &Map{
		graph:  graph.New[SiteID](),
		hexes:  make(map[SiteID]HexSite),
		rivers: make(map[SiteID]RiverSite),
	}
}

// InsertHex places a hex and links it to the hexes already on its neighbor cells.
func (m *Map) InsertHex(site HexSite) (SiteID, error) {
	if id, ok := m.HexAt(site.Coord); ok {
		return 0, apperrors.Duplicatef("hex %v already placed as site %d", site.Coord, id)
	}

	wanted := site.Coord.Neighbors()
	neighbors := mapset.New[SiteID]()
	for id, h := range m.hexes {
		for _, c := range wanted {
			if h.Coord == c {
				neighbors.Put(id)
				break
			}
		}
	}

	id := m.nextID
	if err := m.graph.Insert(id, neighbors); err != nil {
		return 0, fmt.Errorf("insert hex %v: %w", site.Coord, err)
	}
	m.hexes[id] = site
	m.nextID++
	return id, nil
}

// InsertRiver places a river between two hexes that are already on the map.
func (m *Map) InsertRiver(site RiverSite) (SiteID, error) {
	found := mapset.New[SiteID]()
	for id, h := range m.hexes {
		if site.Touches(h.Coord) {
			found.Put(id)
		}
	}
	switch {
	case found.Size() < 2:
		return 0, apperrors.Missingf("%v: found %d of its 2 hexes", site, found.Size())
	case found.Size() > 2:
		return 0, apperrors.Internalf("%v: found %d hexes for 2 sides", site, found.Size())
	}

	for id, r := range m.rivers {
		if r.SameSides(site) {
			return 0, apperrors.Duplicatef("%v duplicates river site %d", site, id)
		}
	}

	id := m.nextID
	if err := m.graph.Insert(id, found); err != nil {
		return 0, fmt.Errorf("insert %v: %w", site, err)
	}
	m.rivers[id] = site
	m.nextID++
	return id, nil
}

// Hexes returns a snapshot of all hex sites by id.
func (m *Map) Hexes() map[SiteID]HexSite {
	return maps.Clone(m.hexes)
}

// Rivers returns a snapshot of all river sites by id.
func (m *Map) Rivers() map[SiteID]RiverSite {
	return maps.Clone(m.rivers)
}

// Hex returns the hex site with the given id.
func (m *Map) Hex(id SiteID) (HexSite, bool) {
	h, ok := m.hexes[id]
	return h, ok
}

// River returns the river site with the given id.
func (m *Map) River(id SiteID) (RiverSite, bool) {
	r, ok := m.rivers[id]
	return r, ok
}

// HexAt returns the id of the hex placed at coord.
func (m *Map) HexAt(coord hex.Coord) (SiteID, bool) {
	for id, h := range m.hexes {
		if h.Coord == coord {
			return id, true
		}
	}
	return 0, false
}

// Graph returns the adjacency graph. Callers must treat it as read-only.
func (m *Map) Graph() *graph.Bidirectional[SiteID] {
	return m.graph
}

// Len returns the total number of sites.
func (m *Map) Len() int {
	return len(m.hexes) + len(m.rivers)
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(hexes=%d, rivers=%d, next_id=%d)", len(m.hexes), len(m.rivers), m.nextID)
}
