package battlefield

import (
	"fmt"

	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// SiteID identifies a hex or river on a Map. Hexes and rivers share one id space.
type SiteID int

// Terrain types for hex sites.
type Terrain uint8

const (
	TerrainPlain  Terrain = iota // Open ground
	TerrainForest                // Slows movement
)

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainPlain:
		return "Plain"
	case TerrainForest:
		return "Forest"
	default:
		return "Unknown"
	}
}

func (t Terrain) String() string { return TerrainName(t) }

// RiverKind classifies rivers by width.
type RiverKind uint8

const (
	RiverSmall  RiverKind = iota // Fordable brook
	RiverStream                  // Wider water course
)

// RiverName returns a human-readable name for a river kind.
func RiverName(k RiverKind) string {
	switch k {
	case RiverSmall:
		return "Small"
	case RiverStream:
		return "Stream"
	default:
		return "Unknown"
	}
}

func (k RiverKind) String() string { return RiverName(k) }

// HexSite is a terrain cell placed on the map.
type HexSite struct {
	Coord   hex.Coord
	Terrain Terrain
}

// NewHexSite pairs a coordinate with its terrain.
func NewHexSite(coord hex.Coord, terrain Terrain) HexSite {
	return HexSite{Coord: coord, Terrain: terrain}
}

// RiverSite is a river running along the side shared by two adjacent cells.
// The pair of sides is unordered.
type RiverSite struct {
	side1, side2 hex.Coord
	Kind         RiverKind
}

// NewRiverSite validates that the two sides are adjacent cells.
func NewRiverSite(side1, side2 hex.Coord, kind RiverKind) (RiverSite, error) {
	if side1.DistanceTo(side2) != 1 {
		return RiverSite{}, apperrors.InvalidGeometryf("river sides %v and %v are not adjacent", side1, side2)
	}
	return RiverSite{side1: side1, side2: side2, Kind: kind}, nil
}

// Sides returns the two cells the river runs between, in construction order.
func (s RiverSite) Sides() (hex.Coord, hex.Coord) {
	return s.side1, s.side2
}

// Touches reports whether c is one of the river's sides.
func (s RiverSite) Touches(c hex.Coord) bool {
	return s.side1 == c || s.side2 == c
}

// SameSides reports whether both rivers run between the same pair of cells,
// in either order.
func (s RiverSite) SameSides(o RiverSite) bool {
	return (s.side1 == o.side1 && s.side2 == o.side2) ||
		(s.side1 == o.side2 && s.side2 == o.side1)
}

func (s RiverSite) String() string {
	return fmt.Sprintf("%s river %v-%v", RiverName(s.Kind), s.side1, s.side2)
}
