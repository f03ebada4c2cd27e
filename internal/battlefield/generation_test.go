package battlefield

import (
	"errors"
	"reflect"
	"testing"

	"github.com/talgya/combat-theater/internal/graph"
	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

func mustGenerate(t *testing.T, cfg GenConfig) *Map {
	t.Helper()
	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return m
}

func TestGenerateHexCount(t *testing.T) {
	for _, radius := range []int{0, 1, 3, 6} {
		cfg := SmallTestConfig()
		cfg.Radius = radius
		m := mustGenerate(t, cfg)

		want := 3*radius*(radius+1) + 1
		if got := len(m.Hexes()); got != want {
			t.Fatalf("radius %d: %d hexes, want %d", radius, got, want)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	a := mustGenerate(t, cfg)
	b := mustGenerate(t, cfg)

	if !reflect.DeepEqual(a.Hexes(), b.Hexes()) {
		t.Fatalf("hexes differ between runs with the same seed")
	}
	if !reflect.DeepEqual(a.Rivers(), b.Rivers()) {
		t.Fatalf("rivers differ between runs with the same seed")
	}
	if !a.Graph().Equal(b.Graph()) {
		t.Fatalf("graphs differ between runs with the same seed")
	}
}

func TestGenerateKeepsMapInvariants(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 1234
	cfg.Rivers = 10
	m := mustGenerate(t, cfg)
	g := m.Graph()

	hexes := m.Hexes()
	byCoord := make(map[hex.Coord]SiteID)
	for id, h := range hexes {
		if prev, ok := byCoord[h.Coord]; ok {
			t.Fatalf("hexes %d and %d share %v", prev, id, h.Coord)
		}
		byCoord[h.Coord] = id
	}

	// Hex-to-hex edges match grid adjacency exactly.
	for id, h := range hexes {
		var want []SiteID
		for _, n := range h.Coord.Neighbors() {
			if nid, ok := byCoord[n]; ok {
				want = append(want, nid)
			}
		}
		var got []SiteID
		for _, n := range graph.SortedNeighbors(g, id) {
			if _, isHex := hexes[n]; isHex {
				got = append(got, n)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("hex %d at %v: %d hex neighbors in graph, %d on grid", id, h.Coord, len(got), len(want))
		}
	}

	// Each river links exactly its two sides, and no side pair repeats.
	rivers := m.Rivers()
	for id, r := range rivers {
		a, b := r.Sides()
		want := []SiteID{byCoord[a], byCoord[b]}
		if want[0] > want[1] {
			want[0], want[1] = want[1], want[0]
		}
		if got := graph.SortedNeighbors(g, id); !reflect.DeepEqual(got, want) {
			t.Fatalf("river %d neighbors %v, want %v", id, got, want)
		}
		for other, o := range rivers {
			if other != id && o.SameSides(r) {
				t.Fatalf("rivers %d and %d share sides", id, other)
			}
		}
	}

	if g.Len() != len(hexes)+len(rivers) {
		t.Fatalf("graph has %d nodes for %d sites", g.Len(), len(hexes)+len(rivers))
	}
}

func TestTerrainCounts(t *testing.T) {
	m := mustGenerate(t, SmallTestConfig())
	counts := TerrainCounts(m)
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != len(m.Hexes()) {
		t.Fatalf("terrain counts sum to %d, want %d", total, len(m.Hexes()))
	}

	rivers := 0
	for _, c := range RiverCounts(m) {
		rivers += c
	}
	if rivers != len(m.Rivers()) {
		t.Fatalf("river counts sum to %d, want %d", rivers, len(m.Rivers()))
	}
}

func TestGenerateRejectsNegativeRadius(t *testing.T) {
	cfg := SmallTestConfig()
	cfg.Radius = -1
	if _, err := Generate(cfg); err == nil {
		t.Fatalf("expected an error for a negative radius")
	}
}

func TestGenerateRejectsNegativeCounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenConfig)
	}{
		{"rivers", func(c *GenConfig) { c.Rivers = -1 }},
		{"stream length", func(c *GenConfig) { c.StreamMin = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := SmallTestConfig()
			tt.mutate(&cfg)
			_, err := Generate(cfg)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
