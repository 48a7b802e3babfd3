// Package config provides YAML/TOML game configuration loading and
// difficulty management for Rekt Runner.
package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// RektConfig contains all tunables of the runner simulation.
// Distances are world units (one terminal cell is 8x16 units), velocities are
// units per frame, and decay rates are per millisecond.
type RektConfig struct {
	World      RektWorld        `yaml:"world" toml:"world"`
	Terrain    RektTerrain      `yaml:"terrain" toml:"terrain"`
	Physics    RektPhysics      `yaml:"physics" toml:"physics"`
	Spawns     RektSpawns       `yaml:"spawns" toml:"spawns"`
	Scoring    RektScoring      `yaml:"scoring" toml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// RektWorld defines scroll speed and boost behaviour.
type RektWorld struct {
	BaseSpeed        float64 `yaml:"base_speed" toml:"base_speed"`
	BoostSpeedFactor float64 `yaml:"boost_speed_factor" toml:"boost_speed_factor"`
	BoostDecay       float64 `yaml:"boost_decay" toml:"boost_decay"` // per ms
	BoostCap         float64 `yaml:"boost_cap" toml:"boost_cap"`
	CandleBoost      float64 `yaml:"candle_boost" toml:"candle_boost"`
	ExternalBoost    float64 `yaml:"external_boost" toml:"external_boost"`
}

// RektTerrain defines the procedural ground profile.
type RektTerrain struct {
	Step            float64 `yaml:"step" toml:"step"`
	Margin          int     `yaml:"margin" toml:"margin"`
	Amplitude       float64 `yaml:"amplitude" toml:"amplitude"`
	BaselineRatio   float64 `yaml:"baseline_ratio" toml:"baseline_ratio"`
	PruneX          float64 `yaml:"prune_x" toml:"prune_x"`
	CrashFrequency  float64 `yaml:"crash_frequency" toml:"crash_frequency"`
	CrashThreshold  float64 `yaml:"crash_threshold" toml:"crash_threshold"`
	CrashDrop       float64 `yaml:"crash_drop" toml:"crash_drop"`
	CrashVolatility float64 `yaml:"crash_volatility" toml:"crash_volatility"`
}

// RektPhysics defines actor motion.
type RektPhysics struct {
	Gravity          float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	JumpBoostFactor  float64 `yaml:"jump_boost_factor" toml:"jump_boost_factor"`
	JumpBoostCap     float64 `yaml:"jump_boost_cap" toml:"jump_boost_cap"`
	ActorX           float64 `yaml:"actor_x" toml:"actor_x"`
	ActorRadius      float64 `yaml:"actor_radius" toml:"actor_radius"`
	GroundOffset     float64 `yaml:"ground_offset" toml:"ground_offset"`
	SpawnHeightRatio float64 `yaml:"spawn_height_ratio" toml:"spawn_height_ratio"`
	FallMargin       float64 `yaml:"fall_margin" toml:"fall_margin"`
}

// RektSpawns defines hazard and boost entities.
type RektSpawns struct {
	Gate         float64 `yaml:"gate" toml:"gate"`
	HazardChance float64 `yaml:"hazard_chance" toml:"hazard_chance"`
	BoostChance  float64 `yaml:"boost_chance" toml:"boost_chance"`
	SpawnOffset  float64 `yaml:"spawn_offset" toml:"spawn_offset"`
	CullX        float64 `yaml:"cull_x" toml:"cull_x"`
	HazardWidth  float64 `yaml:"hazard_width" toml:"hazard_width"`
	HazardHeight float64 `yaml:"hazard_height" toml:"hazard_height"`
	HazardLift   float64 `yaml:"hazard_lift" toml:"hazard_lift"`
	BoostWidth   float64 `yaml:"boost_width" toml:"boost_width"`
	BoostHeight  float64 `yaml:"boost_height" toml:"boost_height"`
	BoostLift    float64 `yaml:"boost_lift" toml:"boost_lift"`
}

// RektScoring defines how score maps to PnL.
type RektScoring struct {
	PnLScale     float64 `yaml:"pnl_scale" toml:"pnl_scale"`
	PnLFloor     float64 `yaml:"pnl_floor" toml:"pnl_floor"`
	CrashPenalty float64 `yaml:"crash_penalty" toml:"crash_penalty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedBonus float64 `yaml:"speed_bonus" toml:"speed_bonus"` // Speed added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty input means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyRektPreset modifies the config based on a difficulty preset.
func ApplyRektPreset(cfg *RektConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate rejects values the simulation cannot run with.
func (c RektConfig) Validate() error {
	errs := finiteErrors(reflect.ValueOf(c), "")
	if c.Terrain.Step <= 0 {
		errs = append(errs, fmt.Errorf("terrain.step must be positive, got %v", c.Terrain.Step))
	}
	if !(c.Terrain.PruneX < 0) {
		errs = append(errs, fmt.Errorf("terrain.prune_x must be negative, got %v", c.Terrain.PruneX))
	}
	if c.Terrain.Margin < 1 {
		errs = append(errs, fmt.Errorf("terrain.margin must be at least 1, got %d", c.Terrain.Margin))
	}
	if c.World.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("world.base_speed must be positive, got %v", c.World.BaseSpeed))
	}
	if c.World.BoostCap < 0 {
		errs = append(errs, fmt.Errorf("world.boost_cap must not be negative, got %v", c.World.BoostCap))
	}
	if c.Physics.ActorRadius <= 0 {
		errs = append(errs, fmt.Errorf("physics.actor_radius must be positive, got %v", c.Physics.ActorRadius))
	}
	for name, p := range map[string]float64{
		"spawns.gate":          c.Spawns.Gate,
		"spawns.hazard_chance": c.Spawns.HazardChance,
		"spawns.boost_chance":  c.Spawns.BoostChance,
	} {
		if !(p >= 0 && p <= 1) {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, p))
		}
	}
	switch c.Difficulty.Progression.Type {
	case ProgressScore, ProgressTime, ProgressNone:
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// finiteErrors reports every NaN or infinite float tunable, named by its
// yaml key path.
func finiteErrors(v reflect.Value, prefix string) []error {
	var errs []error
	t := v.Type()
	for i, n := 0, v.NumField(); i < n; i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if prefix != "" {
			name = prefix + "." + name
		}
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Struct:
			errs = append(errs, finiteErrors(f, name)...)
		case reflect.Float64:
			if x := f.Float(); math.IsNaN(x) || math.IsInf(x, 0) {
				errs = append(errs, fmt.Errorf("%s must be a finite number, got %v", name, x))
			}
		}
	}
	return errs
}
