package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LafeWessel/BattleMapGenerator/internal/campaign"
)

var ErrInvalid = errors.New("invalid config")

// Config holds all generator configuration
type Config struct {
	Battle   BattleConfig   `yaml:"battle"`
	Campaign CampaignConfig `yaml:"campaign"`
	Density  *DensityConfig `yaml:"density,omitempty"`
	Log      LogConfig      `yaml:"log"`
}

// BattleConfig holds battle map dimensions
type BattleConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	FlankWidth *int `yaml:"flank_width,omitempty"` // nil = width/4
}

// CampaignConfig holds campaign map generation and sampling settings
type CampaignConfig struct {
	Seed         int64             `yaml:"seed"` // 0 = random
	Radius       int               `yaml:"radius"`
	Center       campaign.HexCoord `yaml:"center"`      // Hex the defender holds
	AttackFrom   int               `yaml:"attack_from"` // Neighbor direction 0-5
	SampleRadius int               `yaml:"sample_radius"`
	Rivers       int               `yaml:"rivers"`
	Towns        int               `yaml:"towns"`
	Outposts     int               `yaml:"outposts"`
}

// DensityConfig supplies feature counts directly instead of sampling the campaign map
type DensityConfig struct {
	Towns     int `yaml:"towns"`
	Rivers    int `yaml:"rivers"`
	Mountains int `yaml:"mountains"`
	Hills     int `yaml:"hills"`
	Radius    int `yaml:"radius"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given
func Default() *Config {
	gen := campaign.DefaultGenConfig()
	return &Config{
		Battle: BattleConfig{
			Width:  15,
			Height: 11,
		},
		Campaign: CampaignConfig{
			Seed:         42,
			Radius:       gen.Radius,
			SampleRadius: 2,
			Rivers:       gen.Rivers,
			Towns:        gen.Towns,
			Outposts:     gen.Outposts,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration over the defaults and validates the result.
// Keys absent from data keep their default; explicit zeros are kept as zeros.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects negative counts and out-of-range settings
func (c *Config) Validate() error {
	type field struct {
		name string
		v    int
	}
	checks := []field{
		{"battle.width", c.Battle.Width},
		{"battle.height", c.Battle.Height},
		{"campaign.radius", c.Campaign.Radius},
		{"campaign.sample_radius", c.Campaign.SampleRadius},
		{"campaign.rivers", c.Campaign.Rivers},
		{"campaign.towns", c.Campaign.Towns},
		{"campaign.outposts", c.Campaign.Outposts},
	}
	if c.Battle.FlankWidth != nil {
		checks = append(checks, field{"battle.flank_width", *c.Battle.FlankWidth})
	}
	if d := c.Density; d != nil {
		checks = append(checks,
			field{"density.towns", d.Towns},
			field{"density.rivers", d.Rivers},
			field{"density.mountains", d.Mountains},
			field{"density.hills", d.Hills},
			field{"density.radius", d.Radius},
		)
	}
	for _, ch := range checks {
		if ch.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, ch.name, ch.v)
		}
	}

	radii := []field{
		{"campaign.radius", c.Campaign.Radius},
		{"campaign.sample_radius", c.Campaign.SampleRadius},
	}
	if c.Density != nil {
		radii = append(radii, field{"density.radius", c.Density.Radius})
	}
	for _, r := range radii {
		if r.v > campaign.MaxRadius {
			return fmt.Errorf("%w: %s must be at most %d, got %d", ErrInvalid, r.name, campaign.MaxRadius, r.v)
		}
	}

	if c.Campaign.AttackFrom < 0 || c.Campaign.AttackFrom > 5 {
		return fmt.Errorf("%w: campaign.attack_from must be 0-5, got %d", ErrInvalid, c.Campaign.AttackFrom)
	}
	if campaign.Distance(campaign.HexCoord{}, c.Campaign.Center) > c.Campaign.Radius {
		return fmt.Errorf("%w: campaign.center %v outside radius %d", ErrInvalid, c.Campaign.Center, c.Campaign.Radius)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// GenConfig returns the campaign generation parameters for this configuration
func (c *Config) GenConfig() campaign.GenConfig {
	gen := campaign.DefaultGenConfig()
	gen.Seed = c.Campaign.Seed
	gen.Radius = c.Campaign.Radius
	gen.Rivers = c.Campaign.Rivers
	gen.Towns = c.Campaign.Towns
	gen.Outposts = c.Campaign.Outposts
	return gen
}

// ExplicitDensity returns the configured density model, if the file supplies one
func (c *Config) ExplicitDensity() (campaign.Density, bool, error) {
	if c.Density == nil {
		return campaign.Density{}, false, nil
	}
	d, err := campaign.NewDensity(c.Density.Towns, c.Density.Rivers, c.Density.Mountains, c.Density.Hills, c.Density.Radius)
	if err != nil {
		return campaign.Density{}, false, err
	}
	return d, true, nil
}
