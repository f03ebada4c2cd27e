package battlefield

import (
	"fmt"
	"log/slog"

	"github.com/talgya/combat-theater/internal/hex"
)

// NewSkirmishMap builds the small reference battlefield: a 3×3 axial block of
// plains (q, r in -1..1, r outer) crossed by four streams.
// Hexes receive ids 0–8 in insertion order and rivers ids 9–12.
func NewSkirmishMap() (*Map, error) {
	slog.Debug("building skirmish map")
	m := New()
	for r := -1; r <= 1; r++ {
		for q := -1; q <= 1; q++ {
			if _, err := m.InsertHex(NewHexSite(hex.Axial(q, r), TerrainPlain)); err != nil {
				return nil, fmt.Errorf("skirmish map: %w", err)
			}
		}
	}

	streams := [][2]hex.Coord{
		{hex.Axial(0, -1), hex.Axial(1, -1)},
		{hex.Axial(0, 0), hex.Axial(1, -1)},
		{hex.Axial(0, 0), hex.Axial(1, 0)},
		{hex.Axial(1, 0), hex.Axial(0, 1)},
	}
	for _, s := range streams {
		site, err := NewRiverSite(s[0], s[1], RiverStream)
		if err != nil {
			return nil, fmt.Errorf("skirmish map: %w", err)
		}
		if _, err := m.InsertRiver(site); err != nil {
			return nil, fmt.Errorf("skirmish map: %w", err)
		}
	}
	return m, nil
}
