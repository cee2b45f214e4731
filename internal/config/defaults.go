package config

import (
	_ "embed"
)

//go:embed defaults/ski.yaml
var defaultSkiYAML []byte

// DefaultSkiConfig returns the default ski configuration.
// These are the reference difficulty-curve numbers; the qualitative
// relationships (monotonic scaling, caps) matter more than exact values.
func DefaultSkiConfig() SkiConfig {
	return SkiConfig{
		Physics: SkiPhysics{
			TurnRate:       0.08,
			MaxDirection:   2.0,
			DirAngle:       0.4,
			Accel:          0.08,
			GravityAccel:   0.05,
			Drag:           0.04,
			CruiseMax:      4.0,
			CruiseTurnLoss: 0.5,
			BoostCeiling:   6.0,
			SpeedLimit:     9.0,
			BoostPadSpeed:  9.0,
			JumpImpulse:    1.1,
			JumpGravity:    0.08,
			JumpSpeedBonus: 0.4,
			MoundDamping:   0.4,
			PowerDuration:  600, // 10 seconds at 60 FPS
			PowerHitbox:    1.5,
			HitboxW:        14,
			HitboxH:        10,
		},
		World: SkiWorld{
			RowStep:         16,
			BaseDensity:     0.12,
			CosmeticDensity: 0.30,
			SpawnHalfWidth:  600,
			LookaheadMargin: 400,
			CullBehind:      200,
			WeightTree:      30,
			WeightRock:      15,
			WeightStump:     12,
			WeightMushroom:  6,
			WeightBoostPad:  5,
			WeightAmmo:      6,
			WeightMound:     10,
		},
		Yeti: SkiYeti{
			SpawnDepth:     1000,
			SpawnChance:    0.004,
			BaseSpeed:      3.5,
			TopSpeed:       5.5,
			UrgencyRange:   400,
			LungeFactor:    2.2,
			RetreatSpeed:   5.0,
			AccelRate:      0.12,
			LungeAccel:     0.5,
			MinChaseTicks:  120,
			LungeChance:    0.01,
			PreLungeTicks:  45,
			LungeTicks:     30,
			RetreatTicks:   240, // 4 seconds of breathing room
			HitRadius:      28,
			LungeHitRadius: 42,
			DespawnRadius:  1500,
			SwerveAmp:      1.6,
			SwerveFreq:     0.05,
			SpawnBehind:    350,
			SpawnSpread:    200,
		},
		Weapon: SkiWeapon{
			FireCooldown:    12,
			ProjectileSpeed: 9.0,
			MaxRange:        600,
			AmmoPerPickup:   3,
			StartAmmo:       0,
		},
		Difficulty: SkiDifficulty{
			Enabled:          true,
			TierDepth:        2000,
			DensityPerTier:   0.02,
			DensityCap:       0.25,
			YetiSpeedPerTier: 0.05,
			YetiSpeedCap:     0.5,
			MoundPerTier:     4,
			MoundCap:         40,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, used by `ski config`
// to give players a starting point for customization.
func GetDefaultYAML() []byte {
	return defaultSkiYAML
}
