// Package config provides YAML-based game configuration loading and
// difficulty management for the ski platform.
package config

// SkiConfig contains all configuration for the ski game.
type SkiConfig struct {
	Physics    SkiPhysics    `yaml:"physics"`
	World      SkiWorld      `yaml:"world"`
	Yeti       SkiYeti       `yaml:"yeti"`
	Weapon     SkiWeapon     `yaml:"weapon"`
	Difficulty SkiDifficulty `yaml:"difficulty"`
}

// SkiPhysics defines the player movement model.
// All rates are per simulation tick, distances in world units.
type SkiPhysics struct {
	TurnRate       float64 `yaml:"turn_rate"`        // Direction change per tick while steering
	MaxDirection   float64 `yaml:"max_direction"`    // Direction is clamped to ±this
	DirAngle       float64 `yaml:"dir_angle"`        // Radians per direction unit
	Accel          float64 `yaml:"accel"`            // Speed gain per tick while tucking
	GravityAccel   float64 `yaml:"gravity_accel"`    // Speed gain per tick below cruise target
	Drag           float64 `yaml:"drag"`             // Speed loss per tick above cruise target
	CruiseMax      float64 `yaml:"cruise_max"`       // Cruise target at direction 0
	CruiseTurnLoss float64 `yaml:"cruise_turn_loss"` // Fraction of cruise bled at full turn
	BoostCeiling   float64 `yaml:"boost_ceiling"`    // Max speed reachable by tucking
	SpeedLimit     float64 `yaml:"speed_limit"`      // Global hard cap, boost pads only
	BoostPadSpeed  float64 `yaml:"boost_pad_speed"`  // Speed set by hitting a boost pad
	JumpImpulse    float64 `yaml:"jump_impulse"`     // Initial upward jump velocity
	JumpGravity    float64 `yaml:"jump_gravity"`     // Jump velocity decay per tick
	JumpSpeedBonus float64 `yaml:"jump_speed_bonus"` // One-time speed bump on takeoff
	MoundDamping   float64 `yaml:"mound_damping"`    // Speed multiplier on hitting a mound
	PowerDuration  int     `yaml:"power_duration"`   // Power-up length in ticks
	PowerHitbox    float64 `yaml:"power_hitbox"`     // Hitbox scale while powered up
	HitboxW        float64 `yaml:"hitbox_w"`         // Player hitbox width
	HitboxH        float64 `yaml:"hitbox_h"`         // Player hitbox height
}

// SkiWorld defines procedural slope generation.
type SkiWorld struct {
	RowStep         float64 `yaml:"row_step"`         // Depth interval between spawn rolls
	BaseDensity     float64 `yaml:"base_density"`     // Obstacle probability per row at tier 0
	CosmeticDensity float64 `yaml:"cosmetic_density"` // Independent roll for ground texture
	SpawnHalfWidth  float64 `yaml:"spawn_half_width"` // Lateral band around the player
	LookaheadMargin float64 `yaml:"lookahead_margin"` // Minimum pre-generated buffer
	CullBehind      float64 `yaml:"cull_behind"`      // Drop entities this far above the player

	// Base obstacle weights for the weighted kind roll.
	// The mound weight additionally grows with difficulty tier.
	WeightTree     int `yaml:"weight_tree"`
	WeightRock     int `yaml:"weight_rock"`
	WeightStump    int `yaml:"weight_stump"`
	WeightMushroom int `yaml:"weight_mushroom"`
	WeightBoostPad int `yaml:"weight_boost_pad"`
	WeightAmmo     int `yaml:"weight_ammo"`
	WeightMound    int `yaml:"weight_mound"`
}

// SkiYeti defines the pursuit state machine.
type SkiYeti struct {
	SpawnDepth     float64 `yaml:"spawn_depth"`      // Minimum depth before spawning
	SpawnChance    float64 `yaml:"spawn_chance"`     // Per-tick roll once past SpawnDepth
	BaseSpeed      float64 `yaml:"base_speed"`       // Chase speed at zero urgency
	TopSpeed       float64 `yaml:"top_speed"`        // Chase speed at full urgency
	UrgencyRange   float64 `yaml:"urgency_range"`    // Distance over which urgency saturates
	LungeFactor    float64 `yaml:"lunge_factor"`     // Lunge speed = TopSpeed * this
	RetreatSpeed   float64 `yaml:"retreat_speed"`    // Flee speed (moves away, Y axis only)
	AccelRate      float64 `yaml:"accel_rate"`       // Smoothed speed gain per tick
	LungeAccel     float64 `yaml:"lunge_accel"`      // Faster acceleration during lunge
	MinChaseTicks  int     `yaml:"min_chase_ticks"`  // Chase time before a lunge may roll
	LungeChance    float64 `yaml:"lunge_chance"`     // Per-tick lunge roll after MinChaseTicks
	PreLungeTicks  int     `yaml:"pre_lunge_ticks"`  // Wind-up duration
	LungeTicks     int     `yaml:"lunge_ticks"`      // Burst duration
	RetreatTicks   int     `yaml:"retreat_ticks"`    // Flee duration
	HitRadius      float64 `yaml:"hit_radius"`       // Catch distance outside lunge
	LungeHitRadius float64 `yaml:"lunge_hit_radius"` // Catch distance during lunge
	DespawnRadius  float64 `yaml:"despawn_radius"`   // Removed beyond this distance
	SwerveAmp      float64 `yaml:"swerve_amp"`       // Lateral sine noise amplitude
	SwerveFreq     float64 `yaml:"swerve_freq"`      // Lateral sine noise frequency
	SpawnBehind    float64 `yaml:"spawn_behind"`     // Spawns this far uphill of the player
	SpawnSpread    float64 `yaml:"spawn_spread"`     // Lateral spawn offset range
}

// SkiWeapon defines the snowball deterrent.
type SkiWeapon struct {
	FireCooldown    int     `yaml:"fire_cooldown"`     // Minimum ticks between shots
	ProjectileSpeed float64 `yaml:"projectile_speed"`  // Units per tick
	MaxRange        float64 `yaml:"max_range"`         // Discarded beyond this distance
	AmmoPerPickup   int     `yaml:"ammo_per_pickup"`   // Snowballs gained per ammo crate
	StartAmmo       int     `yaml:"start_ammo"`        // Ammo at run start
}

// SkiDifficulty defines how the slope escalates with depth.
// Every scaling term is capped so deep runs stay statistically survivable.
type SkiDifficulty struct {
	Enabled          bool    `yaml:"enabled"`
	TierDepth        float64 `yaml:"tier_depth"`          // Depth per difficulty tier
	DensityPerTier   float64 `yaml:"density_per_tier"`    // Added obstacle probability per tier
	DensityCap       float64 `yaml:"density_cap"`         // Max added probability
	YetiSpeedPerTier float64 `yaml:"yeti_speed_per_tier"` // Yeti multiplier growth per tier
	YetiSpeedCap     float64 `yaml:"yeti_speed_cap"`      // Max added multiplier
	MoundPerTier     int     `yaml:"mound_per_tier"`      // Mound weight growth per tier
	MoundCap         int     `yaml:"mound_cap"`           // Max added mound weight
}

// Tier returns the difficulty tier for the given depth.
func (d SkiDifficulty) Tier(depth float64) int {
	if !d.Enabled || d.TierDepth <= 0 || depth <= 0 {
		return 0
	}
	return int(depth / d.TierDepth)
}

// ExtraDensity returns the added obstacle spawn probability at depth.
func (d SkiDifficulty) ExtraDensity(depth float64) float64 {
	extra := float64(d.Tier(depth)) * d.DensityPerTier
	if extra > d.DensityCap {
		return d.DensityCap
	}
	return extra
}

// YetiSpeedMul returns the yeti speed multiplier at depth, always >= 1.
func (d SkiDifficulty) YetiSpeedMul(depth float64) float64 {
	extra := float64(d.Tier(depth)) * d.YetiSpeedPerTier
	if extra > d.YetiSpeedCap {
		extra = d.YetiSpeedCap
	}
	return 1 + extra
}

// MoundBonus returns the extra mound weight at depth. Mounds progressively
// crowd out simpler hazards as the run gets deeper.
func (d SkiDifficulty) MoundBonus(depth float64) int {
	bonus := d.Tier(depth) * d.MoundPerTier
	if bonus > d.MoundCap {
		return d.MoundCap
	}
	return bonus
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
