package ski

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// YetiMode is the behavior state of the pursuing yeti.
type YetiMode int

const (
	ModeChase    YetiMode = iota // Default pursuit
	ModePreLunge                 // Telegraphed wind-up, near-stationary
	ModeLunge                    // Short high-speed burst at the player
	ModeRetreat                  // Fleeing uphill
)

// String returns the mode name.
func (m YetiMode) String() string {
	switch m {
	case ModeChase:
		return "chase"
	case ModePreLunge:
		return "pre-lunge"
	case ModeLunge:
		return "lunge"
	case ModeRetreat:
		return "retreat"
	default:
		return "unknown"
	}
}

// Yeti is the singleton pursuer. It is nil on the Game until the spawn
// condition fires, and removed again when it falls too far away.
// CurSpeed is a smoothed scalar distinct from the mode's instantaneous
// target; acceleration is modeled, not snapped.
type Yeti struct {
	Pos        core.Vec2
	Mode       YetiMode
	Timer      int // Ticks remaining in the current mode
	CurSpeed   float64
	chaseTicks int // Ticks spent chasing since the last lunge
}

// spawnYeti places a new yeti uphill of the player with a lateral offset.
func spawnYeti(player core.Vec2, cfg *config.SkiYeti, rng *rand.Rand) *Yeti {
	return &Yeti{
		Pos: core.Vec2{
			X: player.X + (rng.Float64()*2-1)*cfg.SpawnSpread,
			Y: player.Y - cfg.SpawnBehind,
		},
		Mode: ModeChase,
	}
}

// targetSpeed returns the instantaneous speed goal for the current mode.
// Chase speed scales with proximity urgency and the depth-derived
// difficulty multiplier; retreat is negative, moving away.
func (y *Yeti) targetSpeed(dist float64, cfg *config.SkiYeti, diffMul float64) float64 {
	switch y.Mode {
	case ModeChase:
		urgency := 1.0
		if cfg.UrgencyRange > 0 {
			urgency = math.Min(dist/cfg.UrgencyRange, 1)
		}
		return core.Lerp(cfg.BaseSpeed, cfg.TopSpeed, urgency) * diffMul
	case ModePreLunge:
		return 0
	case ModeLunge:
		return cfg.TopSpeed * cfg.LungeFactor * diffMul
	case ModeRetreat:
		return -cfg.RetreatSpeed
	default:
		return 0
	}
}

// setMode switches modes and arms the mode timer. Self-transitions are
// disallowed for every mode except chase, whose self-loop is the
// "no lunge roll" case.
func (y *Yeti) setMode(mode YetiMode, cfg *config.SkiYeti) {
	if mode == y.Mode && mode != ModeChase {
		return
	}
	y.Mode = mode
	switch mode {
	case ModeChase:
		y.Timer = 0
		y.chaseTicks = 0
	case ModePreLunge:
		y.Timer = cfg.PreLungeTicks
	case ModeLunge:
		y.Timer = cfg.LungeTicks
	case ModeRetreat:
		y.Timer = cfg.RetreatTicks
	}
}

// startRetreat forces the retreat mode, triggered by a player power-up or a
// projectile hit. Valid from any mode.
func (y *Yeti) startRetreat(cfg *config.SkiYeti) {
	y.Mode = ModeRetreat
	y.Timer = cfg.RetreatTicks
}

// update advances the yeti by one tick. Returns true when the yeti catches
// an unshielded player.
func (y *Yeti) update(p *Player, cfg *config.SkiYeti, diffMul float64, rng *rand.Rand, tick uint64) bool {
	// A powered-up player repels the yeti immediately.
	if p.Powered() && y.Mode != ModeRetreat {
		y.startRetreat(cfg)
	}

	// Mode transitions.
	switch y.Mode {
	case ModeChase:
		y.chaseTicks++
		if y.chaseTicks > cfg.MinChaseTicks && rng.Float64() < cfg.LungeChance {
			y.setMode(ModePreLunge, cfg)
		}
	case ModePreLunge:
		y.Timer--
		if y.Timer <= 0 {
			y.setMode(ModeLunge, cfg)
		}
	case ModeLunge:
		y.Timer--
		if y.Timer <= 0 {
			y.setMode(ModeChase, cfg)
		}
	case ModeRetreat:
		y.Timer--
		if y.Timer <= 0 && !p.Powered() {
			y.setMode(ModeChase, cfg)
		}
	}

	// Smoothed speed: approach the mode target at a fixed rate, much faster
	// during the lunge so the burst feels sudden.
	toPlayer := p.Pos.Sub(y.Pos)
	dist := toPlayer.Len()
	target := y.targetSpeed(dist, cfg, diffMul)
	rate := cfg.AccelRate
	if y.Mode == ModeLunge {
		rate = cfg.LungeAccel
	}
	if y.CurSpeed < target {
		y.CurSpeed = math.Min(y.CurSpeed+rate, target)
	} else if y.CurSpeed > target {
		y.CurSpeed = math.Max(y.CurSpeed-rate, target)
	}

	// Movement.
	switch y.Mode {
	case ModeRetreat:
		// Flees along the Y axis only, away from the player.
		y.Pos.Y += y.CurSpeed // CurSpeed is negative here
	case ModePreLunge:
		// Near-stationary jitter while telegraphing.
		y.Pos.X += math.Sin(float64(tick)*0.9) * 2
	default:
		dir := toPlayer.Normalized() // Zero vector at zero distance, no NaN
		y.Pos = y.Pos.Add(dir.Scale(y.CurSpeed))
		if y.Mode == ModeChase {
			// Lateral swerve for organic motion.
			y.Pos.X += math.Sin(float64(tick)*cfg.SwerveFreq) * cfg.SwerveAmp
		}
	}

	// Catch check. Lunging extends the reach.
	radius := cfg.HitRadius
	if y.Mode == ModeLunge {
		radius = cfg.LungeHitRadius
	}
	dist = p.Pos.Sub(y.Pos).Len()
	return dist < radius && !p.Powered() && !p.State.Terminal()
}

// tooFar reports whether the yeti should despawn entirely.
func (y *Yeti) tooFar(p *Player, cfg *config.SkiYeti) bool {
	return y.Pos.Sub(p.Pos).Len() > cfg.DespawnRadius
}
