// Command battlemap generates a campaign map, samples the battle location,
// and prints the resulting battle map with its deployment zones.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/LafeWessel/BattleMapGenerator/internal/battlemap"
	"github.com/LafeWessel/BattleMapGenerator/internal/campaign"
	"github.com/LafeWessel/BattleMapGenerator/internal/config"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("BATTLEMAP_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			setupLogger(os.Stderr, "info")
			slog.Error("failed to load config", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	setupLogger(os.Stderr, cfg.Log.Level)

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("battle map generation failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the default logger: text on a terminal, JSON otherwise.
func setupLogger(w *os.File, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func run(cfg *config.Config, out io.Writer) error {
	// ── Campaign Map ─────────────────────────────────────────────────
	slog.Info("generating campaign map...", "seed", cfg.Campaign.Seed, "radius", cfg.Campaign.Radius)
	campaignMap := campaign.Generate(cfg.GenConfig())

	for t, c := range campaign.TerrainCounts(campaignMap) {
		slog.Debug("campaign terrain", "type", campaign.TerrainName(t), "count", c)
	}
	slog.Info("campaign ready", "hexes", humanize.Comma(int64(campaignMap.HexCount())))

	// ── Battle Inputs ────────────────────────────────────────────────
	base, err := campaign.GenerationTilesAt(campaignMap, cfg.Campaign.Center, cfg.Campaign.AttackFrom)
	if err != nil {
		return fmt.Errorf("read generation tiles: %w", err)
	}

	density, explicit, err := cfg.ExplicitDensity()
	if err != nil {
		return fmt.Errorf("density config: %w", err)
	}
	if !explicit {
		density, err = campaign.SampleDensity(campaignMap, cfg.Campaign.Center, cfg.Campaign.SampleRadius)
		if err != nil {
			return fmt.Errorf("sample density: %w", err)
		}
	}

	slog.Info("battle inputs",
		"center", fmt.Sprintf("(%d,%d)", cfg.Campaign.Center.Q, cfg.Campaign.Center.R),
		"attacker", campaign.TerrainName(base.Attacker),
		"defender", campaign.TerrainName(base.Defender),
		"left_flank", campaign.TerrainName(base.LeftFlank),
		"right_flank", campaign.TerrainName(base.RightFlank),
		"density_radius", density.Radius(),
		"explicit_density", explicit,
	)

	// ── Battle Map ───────────────────────────────────────────────────
	gen := battlemap.NewMapGenerator(base, density)
	gen.FlankWidth = cfg.Battle.FlankWidth

	battle, err := gen.Generate(cfg.Battle.Width, cfg.Battle.Height)
	if err != nil {
		return fmt.Errorf("generate battle map: %w", err)
	}

	for _, f := range campaign.Features {
		slog.Info("feature target",
			"feature", f.String(),
			"density", humanize.FtoaWithDigits(density.Of(f), 4),
			"tiles", battle.Targets[f],
		)
	}
	slog.Info("battle map ready",
		"id", battle.ID,
		"grid", battle.Grid.String(),
		"flank_width", battle.Plan.FlankWidth,
		"vertical_depth", battle.Plan.VerticalDepth,
		"split_row", battle.Plan.HasSplitRow(),
	)

	if err := battlemap.RenderTiles(out, battle.Grid); err != nil {
		return fmt.Errorf("render tiles: %w", err)
	}
	if err := battlemap.RenderOwners(out, battle.Grid); err != nil {
		return fmt.Errorf("render owners: %w", err)
	}
	return nil
}
