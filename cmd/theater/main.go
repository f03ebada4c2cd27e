// Command theater generates a battlefield and reports movement reach across it.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"

	"github.com/talgya/combat-theater/internal/battlefield"
	"github.com/talgya/combat-theater/internal/hex"
	"github.com/talgya/combat-theater/internal/movement"
	"github.com/talgya/combat-theater/internal/shared/config"
	"github.com/talgya/combat-theater/internal/shared/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging)

	slog.Info("Combat theater: hex battlefield")

	// ── Battlefield ───────────────────────────────────────────────────
	gen := battlefield.DefaultGenConfig()
	gen.Radius = cfg.Map.Radius
	gen.Seed = cfg.Map.Seed
	gen.ForestLevel = cfg.Map.ForestLevel
	gen.Rivers = cfg.Map.Rivers

	m, err := battlefield.Generate(gen)
	if err != nil {
		slog.Error("failed to generate battlefield", "error", err)
		os.Exit(1)
	}
	slog.Info("battlefield generated",
		"sites", humanize.Comma(int64(m.Len())),
		"seed", gen.Seed,
		"radius", gen.Radius,
	)
	for t, c := range battlefield.TerrainCounts(m) {
		slog.Info("terrain", "type", battlefield.TerrainName(t), "count", humanize.Comma(int64(c)))
	}
	for k, c := range battlefield.RiverCounts(m) {
		slog.Info("river", "kind", battlefield.RiverName(k), "count", humanize.Comma(int64(c)))
	}

	// ── Geometry ──────────────────────────────────────────────────────
	orientation, _ := hex.ParseOrientation(cfg.Layout.Orientation)
	layout, err := hex.NewLayout(orientation,
		orb.Point{cfg.Layout.CellSize, cfg.Layout.CellSize},
		orb.Point{0, 0},
	)
	if err != nil {
		slog.Error("invalid layout", "error", err)
		os.Exit(1)
	}

	viewport, err := battlefield.NewViewport(m, layout)
	if err != nil {
		slog.Error("failed to index battlefield", "error", err)
		os.Exit(1)
	}
	half := cfg.Layout.CellSize * 4
	screen := orb.Bound{Min: orb.Point{-half, -half}, Max: orb.Point{half, half}}
	hexes, rivers, err := viewport.Visible(screen)
	if err != nil {
		slog.Error("viewport query failed", "error", err)
		os.Exit(1)
	}
	slog.Info("viewport",
		"orientation", orientation.Name,
		"indexed", humanize.Comma(int64(viewport.Size())),
		"visible_hexes", len(hexes),
		"visible_rivers", len(rivers),
	)

	// ── Movement ──────────────────────────────────────────────────────
	edge := cfg.Map.Radius / 2
	origins := []movement.Origin{
		{Name: "center", From: hex.Origin(), Points: cfg.Movement.Points},
		{Name: "west", From: hex.Axial(-edge, 0), Points: cfg.Movement.Points},
		{Name: "east", From: hex.Axial(edge, 0), Points: cfg.Movement.Points},
	}
	plans, err := movement.ReachAll(context.Background(), m, movement.DefaultCosts(), origins)
	if err != nil {
		slog.Error("movement planning failed", "error", err)
		os.Exit(1)
	}
	for _, o := range origins {
		plan := plans[o.Name]
		cells := plan.Cells()
		far := cells[len(cells)-1]
		cost, _ := plan.CostTo(far)
		path, _ := plan.PathTo(far)
		slog.Info("reach",
			"unit", o.Name,
			"from", o.From.String(),
			"points", o.Points,
			"cells", len(cells),
			"farthest", far.String(),
			"farthest_world", layout.HexToWorld(far),
			"cost", cost,
			"path_sites", len(path),
		)
	}
}
