package config

import (
	_ "embed"
)

//go:embed defaults/rekt.yaml
var defaultRektYAML []byte

// DefaultRektConfig returns the default Rekt Runner configuration.
func DefaultRektConfig() RektConfig {
	return RektConfig{
		World: RektWorld{
			BaseSpeed:        3.2,
			BoostSpeedFactor: 0.55,
			BoostDecay:       0.0016,
			BoostCap:         6,
			CandleBoost:      3.2,
			ExternalBoost:    2.5,
		},
		Terrain: RektTerrain{
			Step:            10,
			Margin:          3,
			Amplitude:       46,
			BaselineRatio:   0.62,
			PruneX:          -20,
			CrashFrequency:  0.0031,
			CrashThreshold:  -0.985,
			CrashDrop:       90,
			CrashVolatility: 40,
		},
		Physics: RektPhysics{
			Gravity:          0.62,
			JumpImpulse:      -11.6,
			JumpBoostFactor:  0.4,
			JumpBoostCap:     2.2,
			ActorX:           64,
			ActorRadius:      10,
			GroundOffset:     10,
			SpawnHeightRatio: 0.45,
			FallMargin:       80,
		},
		Spawns: RektSpawns{
			Gate:         0.18,
			HazardChance: 0.028,
			BoostChance:  0.018,
			SpawnOffset:  40,
			CullX:        -60,
			HazardWidth:  22,
			HazardHeight: 18,
			HazardLift:   18,
			BoostWidth:   14,
			BoostHeight:  54,
			BoostLift:    4,
		},
		Scoring: RektScoring{
			PnLScale:     0.021,
			PnLFloor:     -9999,
			CrashPenalty: 66,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1820,
			},
			Scaling: ScalingConfig{
				SpeedBonus: 2.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `rekt config`.
func DefaultYAML() []byte {
	return defaultRektYAML
}
