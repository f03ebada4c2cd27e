package movement

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/talgya/combat-theater/internal/battlefield"
	"github.com/talgya/combat-theater/internal/hex"
	apperrors "github.com/talgya/combat-theater/internal/shared/errors"
)

func mustSkirmish(t *testing.T) *battlefield.Map {
	t.Helper()
	m, err := battlefield.NewSkirmishMap()
	if err != nil {
		t.Fatalf("NewSkirmishMap failed: %v", err)
	}
	return m
}

// forestLine builds a row of five hexes along r = 0 with a forest in the middle
// and a second, open row along r = 1 to detour through.
func forestLine(t *testing.T) *battlefield.Map {
	t.Helper()
	m := battlefield.New()
	for r := 0; r <= 1; r++ {
		for q := 0; q < 5; q++ {
			terrain := battlefield.TerrainPlain
			if r == 0 && q == 2 {
				terrain = battlefield.TerrainForest
			}
			if _, err := m.InsertHex(battlefield.NewHexSite(hex.Axial(q, r), terrain)); err != nil {
				t.Fatalf("InsertHex failed: %v", err)
			}
		}
	}
	return m
}

func TestWeights(t *testing.T) {
	m := mustSkirmish(t)
	w, err := Weights(m, DefaultCosts())
	if err != nil {
		t.Fatalf("Weights failed: %v", err)
	}
	if len(w) != 13 {
		t.Fatalf("%d weights, want 13", len(w))
	}
	for id := battlefield.SiteID(0); id <= 8; id++ {
		if w[id] != 1 {
			t.Fatalf("plain hex %d weight %d", id, w[id])
		}
	}
	for id := battlefield.SiteID(9); id <= 12; id++ {
		if w[id] != 3 {
			t.Fatalf("stream %d weight %d", id, w[id])
		}
	}

	costs := DefaultCosts()
	delete(costs.River, battlefield.RiverStream)
	if _, err := Weights(m, costs); !errors.Is(err, apperrors.ErrMissingEntity) {
		t.Fatalf("expected missing entity, got %v", err)
	}
}

func TestReachOnSkirmishMap(t *testing.T) {
	m := mustSkirmish(t)

	tests := []struct {
		points int
		cells  int
	}{
		{0, 1},
		{1, 7},
		{2, 9},
	}
	for _, tt := range tests {
		r, err := Reach(m, DefaultCosts(), hex.Origin(), tt.points)
		if err != nil {
			t.Fatalf("Reach failed: %v", err)
		}
		if got := len(r.Cells()); got != tt.cells {
			t.Fatalf("%d points: %d cells, want %d", tt.points, got, tt.cells)
		}
	}

	r, err := Reach(m, DefaultCosts(), hex.Origin(), 2)
	if err != nil {
		t.Fatal(err)
	}
	cells := r.Cells()
	if cells[0] != hex.Origin() {
		t.Fatalf("first cell %v, want origin", cells[0])
	}
	if cost, ok := r.CostTo(hex.Axial(1, 1)); !ok || cost != 2 {
		t.Fatalf("cost to (1, 1) = %d, %v", cost, ok)
	}
	if _, ok := r.CostTo(hex.Axial(4, 4)); ok {
		t.Fatalf("off-map cell reported reachable")
	}
}

func TestReachDetoursAroundForest(t *testing.T) {
	m := forestLine(t)
	costs := DefaultCosts()
	costs.Terrain[battlefield.TerrainForest] = 3

	r, err := Reach(m, costs, hex.Axial(0, 0), 10)
	if err != nil {
		t.Fatal(err)
	}
	if cost, _ := r.CostTo(hex.Axial(2, 0)); cost != 4 {
		t.Fatalf("cost into forest = %d, want 4", cost)
	}
	// Through the forest costs 1+3+1+1; the detour over the second row takes
	// five open steps.
	if cost, _ := r.CostTo(hex.Axial(4, 0)); cost != 5 {
		t.Fatalf("cost to (4, 0) = %d, want 5", cost)
	}
	path, ok := r.PathTo(hex.Axial(4, 0))
	if !ok {
		t.Fatalf("no path to (4, 0)")
	}
	if len(path) != 6 {
		t.Fatalf("path %v, want 6 sites", path)
	}
	forest, _ := m.HexAt(hex.Axial(2, 0))
	for _, id := range path {
		if id == forest {
			t.Fatalf("path %v crosses the forest", path)
		}
	}
	start, _ := m.HexAt(hex.Axial(0, 0))
	end, _ := m.HexAt(hex.Axial(4, 0))
	if path[0] != start || path[len(path)-1] != end {
		t.Fatalf("path %v does not run from %d to %d", path, start, end)
	}
}

func TestPathToOrigin(t *testing.T) {
	m := mustSkirmish(t)
	r, err := Reach(m, DefaultCosts(), hex.Axial(-1, -1), 3)
	if err != nil {
		t.Fatal(err)
	}
	path, ok := r.PathTo(hex.Axial(-1, -1))
	if !ok || !reflect.DeepEqual(path, []battlefield.SiteID{0}) {
		t.Fatalf("path to origin = %v, %v", path, ok)
	}
	if _, ok := r.PathTo(hex.Axial(7, 7)); ok {
		t.Fatalf("path to unknown cell")
	}
}

func TestReachFromMissingHex(t *testing.T) {
	m := mustSkirmish(t)
	if _, err := Reach(m, DefaultCosts(), hex.Axial(3, 3), 5); !errors.Is(err, apperrors.ErrMissingEntity) {
		t.Fatalf("expected missing entity, got %v", err)
	}
}

func TestReachAll(t *testing.T) {
	m := mustSkirmish(t)
	origins := []Origin{
		{Name: "alpha", From: hex.Axial(-1, -1), Points: 1},
		{Name: "bravo", From: hex.Axial(1, 1), Points: 2},
		{Name: "charlie", From: hex.Origin(), Points: 0},
	}

	plans, err := ReachAll(context.Background(), m, DefaultCosts(), origins)
	if err != nil {
		t.Fatalf("ReachAll failed: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("%d plans, want 3", len(plans))
	}
	for _, o := range origins {
		want, err := Reach(m, DefaultCosts(), o.From, o.Points)
		if err != nil {
			t.Fatal(err)
		}
		if got := plans[o.Name].Cells(); !reflect.DeepEqual(got, want.Cells()) {
			t.Fatalf("%s: cells %v, want %v", o.Name, got, want.Cells())
		}
	}
}

func TestReachAllFailures(t *testing.T) {
	m := mustSkirmish(t)

	_, err := ReachAll(context.Background(), m, DefaultCosts(), []Origin{
		{Name: "lost", From: hex.Axial(9, 9), Points: 3},
	})
	if !errors.Is(err, apperrors.ErrMissingEntity) {
		t.Fatalf("expected missing entity, got %v", err)
	}

	_, err = ReachAll(context.Background(), m, DefaultCosts(), []Origin{
		{Name: "twin", From: hex.Origin(), Points: 1},
		{Name: "twin", From: hex.Axial(1, 0), Points: 1},
	})
	if !errors.Is(err, apperrors.ErrDuplicateEntity) {
		t.Fatalf("expected duplicate entity, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReachAll(ctx, m, DefaultCosts(), []Origin{{Name: "late", From: hex.Origin(), Points: 1}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
