// Battlefield generation using layered simplex noise.
// One noise layer decides forest cover, a second acts as elevation for tracing rivers.
package battlefield

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/combat-theater/internal/graph"
	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

// GenConfig holds battlefield generation parameters.
type GenConfig struct {
	Radius      int     // Cells within this distance of the origin are generated
	Seed        int64   // Random seed (0 = random)
	ForestLevel float64 // Cover noise above this threshold becomes forest (0.0–1.0)
	Rivers      int     // Number of river sources to trace
	StreamMin   int     // Runs at least this long are streams, shorter ones small rivers
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:      8,
		Seed:        0,
		ForestLevel: 0.58,
		Rivers:      4,
		StreamMin:   4,
	}
}

// SmallTestConfig returns a tiny battlefield for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Radius:      3,
		Seed:        42,
		ForestLevel: 0.55,
		Rivers:      2,
		StreamMin:   3,
	}
}

// Generate creates a battlefield of hexes and rivers. The same seed always
// yields the same sites with the same ids.
func Generate(cfg GenConfig) (*Map, error) {
	if cfg.Radius < 0 {
		return nil, apperrors.InvalidGeometryf("negative radius %d", cfg.Radius)
	}
	if cfg.Rivers < 0 {
		return nil, apperrors.Validationf("negative river count %d", cfg.Rivers)
	}
	if cfg.StreamMin < 0 {
		return nil, apperrors.Validationf("negative stream length %d", cfg.StreamMin)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	coverNoise := opensimplex.NewNormalized(seed)
	elevNoise := opensimplex.NewNormalized(seed + 1)

	m := New()
	elevation := make(map[hex.Coord]float64)

	// Row-major, r outer, so ids are reproducible.
	for r := -cfg.Radius; r <= cfg.Radius; r++ {
		for q := -cfg.Radius; q <= cfg.Radius; q++ {
			coord := hex.Axial(q, r)
			if coord.DistanceTo(hex.Origin()) > cfg.Radius {
				continue
			}

			// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
			x := float64(q) + float64(r)*0.5
			y := float64(r) * math.Sqrt(3.0) / 2.0

			cover := octaveNoise(coverNoise, x, y, 3, 0.15, 0.5)
			elevation[coord] = octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)

			terrain := TerrainPlain
			if cover > cfg.ForestLevel {
				terrain = TerrainForest
			}
			if _, err := m.InsertHex(NewHexSite(coord, terrain)); err != nil {
				return nil, fmt.Errorf("generate: %w", err)
			}
		}
	}

	placed, err := placeRivers(m, elevation, cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	slog.Debug("battlefield generated",
		"seed", seed,
		"radius", cfg.Radius,
		"hexes", len(m.hexes),
		"rivers", placed,
	)
	return m, nil
}

// placeRivers picks high cells as sources and traces a river from each.
// Returns the number of river sites inserted.
func placeRivers(m *Map, elevation map[hex.Coord]float64, cfg GenConfig, seed int64) (int, error) {
	rng := rand.New(rand.NewSource(seed + 100))

	// Walk ids in order so the shuffle below is deterministic.
	var sources []hex.Coord
	for _, id := range graph.SortedIDs(m.graph) {
		h, ok := m.hexes[id]
		if !ok {
			continue
		}
		if elevation[h.Coord] > 0.55 {
			sources = append(sources, h.Coord)
		}
	}

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > cfg.Rivers {
		sources = sources[:cfg.Rivers]
	}

	placed := 0
	for _, start := range sources {
		n, err := traceRiver(m, elevation, start, cfg.StreamMin)
		if err != nil {
			return placed, err
		}
		placed += n
	}
	return placed, nil
}

// traceRiver follows the steepest descent from a source cell, laying a river
// along each side it crosses, until no lower neighbor remains.
func traceRiver(m *Map, elevation map[hex.Coord]float64, start hex.Coord, streamMin int) (int, error) {
	var steps [][2]hex.Coord
	current := start
	visited := map[hex.Coord]bool{start: true}
	maxSteps := 12

	for len(steps) < maxSteps {
		var next *hex.Coord
		best := elevation[current]

		for _, nc := range current.Neighbors() {
			if visited[nc] {
				continue
			}
			elev, ok := elevation[nc]
			if !ok {
				continue
			}
			if elev < best {
				best = elev
				c := nc // capture
				next = &c
			}
		}

		if next == nil {
			break // No downhill path
		}
		steps = append(steps, [2]hex.Coord{current, *next})
		visited[*next] = true
		current = *next
	}

	kind := RiverSmall
	if len(steps) >= streamMin {
		kind = RiverStream
	}

	placed := 0
	for _, s := range steps {
		site, err := NewRiverSite(s[0], s[1], kind)
		if err != nil {
			return placed, err
		}
		if _, err := m.InsertRiver(site); err != nil {
			if apperrors.GetType(err) == apperrors.ErrorTypeDuplicateEntity {
				continue // Another river already runs here
			}
			return placed, err
		}
		placed++
	}
	return placed, nil
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, h := range m.hexes {
		counts[h.Terrain]++
	}
	return counts
}

// RiverCounts returns a summary of river kind distribution.
func RiverCounts(m *Map) map[RiverKind]int {
	counts := make(map[RiverKind]int)
	for _, r := range m.rivers {
		counts[r.Kind]++
	}
	return counts
}
