package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Weights collects every tunable constant of the AI decision engine. The
// defaults reproduce the engine's observed behavior; they are configuration,
// not semantics, and may be overridden through the environment.
type Weights struct {
	// Plain move scoring.
	FlipWeight  int `mapstructure:"flip_weight"`
	CornerBonus int `mapstructure:"corner_bonus"`
	EdgeBonus   int `mapstructure:"edge_bonus"`

	// Board evaluation (hard difficulty).
	EvalCorner   int `mapstructure:"eval_corner"`
	EvalEdge     int `mapstructure:"eval_edge"`
	EvalMobility int `mapstructure:"eval_mobility"`
	StallBonus   int `mapstructure:"stall_bonus"`

	// Skill-vs-move arbitration.
	SkillTieBonus  int     `mapstructure:"skill_tie_bonus"`
	SkillMargin    int     `mapstructure:"skill_margin"`
	EasyRandomMove float64 `mapstructure:"easy_random_move"`
	EasySkillProb  float64 `mapstructure:"easy_skill_prob"`

	// Per-skill target scoring.
	ConvertBase   int `mapstructure:"convert_base"`
	RemoveBase    int `mapstructure:"remove_base"`
	ShieldPerFoe  int `mapstructure:"shield_per_foe"`
	BarrierPerCap int `mapstructure:"barrier_per_cap"`
	WarpBase      int `mapstructure:"warp_base"`
	WarpTileBonus int `mapstructure:"warp_tile_bonus"`
}

type Config struct {
	HTTPAddr     string  `mapstructure:"http_addr"`
	AIDelayMs    int     `mapstructure:"ai_delay_ms"`
	TilesPerKind int     `mapstructure:"tiles_per_kind"`
	Weights      Weights `mapstructure:"weights"`
}

// Load builds the configuration from defaults overridable via REVERSI_*
// environment variables (e.g. REVERSI_WEIGHTS_FLIP_WEIGHT=12).
func Load() (Config, error) {
	v := defaults()
	v.SetEnvPrefix("REVERSI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment.
func Default() Config {
	var cfg Config
	if err := defaults().Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return cfg
}

func defaults() *viper.Viper {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("ai_delay_ms", 600)
	v.SetDefault("tiles_per_kind", 2)

	v.SetDefault("weights.flip_weight", 10)
	v.SetDefault("weights.corner_bonus", 100)
	v.SetDefault("weights.edge_bonus", 20)

	v.SetDefault("weights.eval_corner", 25)
	v.SetDefault("weights.eval_edge", 5)
	v.SetDefault("weights.eval_mobility", 2)
	v.SetDefault("weights.stall_bonus", 50)

	v.SetDefault("weights.skill_tie_bonus", 15)
	v.SetDefault("weights.skill_margin", 25)
	v.SetDefault("weights.easy_random_move", 0.75)
	v.SetDefault("weights.easy_skill_prob", 0.25)

	v.SetDefault("weights.convert_base", 30)
	v.SetDefault("weights.remove_base", 25)
	v.SetDefault("weights.shield_per_foe", 15)
	v.SetDefault("weights.barrier_per_cap", 20)
	v.SetDefault("weights.warp_base", 10)
	v.SetDefault("weights.warp_tile_bonus", 35)

	return v
}
