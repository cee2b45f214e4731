package ski

import (
	"math"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// PlayerState is the player's lifecycle state.
type PlayerState int

const (
	StateSkiing PlayerState = iota
	StateJumping
	StateCrashed
	StateEaten
)

// String returns a human-readable state name.
func (s PlayerState) String() string {
	switch s {
	case StateSkiing:
		return "skiing"
	case StateJumping:
		return "jumping"
	case StateCrashed:
		return "crashed"
	case StateEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the run.
func (s PlayerState) Terminal() bool {
	return s == StateCrashed || s == StateEaten
}

// Player holds the full player physics state for one run.
// Pos.Y grows monotonically downhill and doubles as the score.
type Player struct {
	Pos        core.Vec2
	Speed      float64
	Direction  float64 // Signed heading, clamped to ±MaxDirection
	State      PlayerState
	JumpHeight float64 // Valid only while jumping
	JumpVel    float64 // Valid only while jumping
	PowerTicks int     // Remaining invulnerability/size-boost ticks
	Ammo       int
	cooldown   int // Ticks until the next shot is allowed
}

// reset reinitializes the player for a new run.
func (p *Player) reset(cfg *config.SkiConfig) {
	*p = Player{
		State: StateSkiing,
		Ammo:  cfg.Weapon.StartAmmo,
	}
}

// Powered reports whether a power-up is currently active.
func (p *Player) Powered() bool {
	return p.PowerTicks > 0
}

// Hitbox returns the player's effective collision box, enlarged while a
// power-up is active.
func (p *Player) Hitbox(phys *config.SkiPhysics) core.Box {
	box := core.BoxAround(p.Pos.X, p.Pos.Y, phys.HitboxW, phys.HitboxH)
	if p.Powered() {
		box = box.Grow(phys.PowerHitbox)
	}
	return box
}

// update advances player physics by exactly one tick from the current input
// flags. Terminal states freeze in place.
func (p *Player) update(in core.InputFrame, phys *config.SkiPhysics) {
	if p.State.Terminal() {
		return
	}

	// Turning: direction moves toward the held side and persists when
	// released. There is no implicit decay toward straight-ahead.
	if in.Has(core.ActionLeft) {
		p.Direction -= phys.TurnRate
	}
	if in.Has(core.ActionRight) {
		p.Direction += phys.TurnRate
	}
	p.Direction = core.ClampF(p.Direction, -phys.MaxDirection, phys.MaxDirection)

	// Speed: tucking ramps toward the boost ceiling; otherwise decay toward
	// a cruise target that shrinks as the turn sharpens.
	if in.Has(core.ActionAccelerate) {
		// Ramps toward the boost ceiling from either side, so boost-pad
		// overspeed bleeds off at drag rate rather than snapping down.
		if p.Speed < phys.BoostCeiling {
			p.Speed += phys.Accel
			if p.Speed > phys.BoostCeiling {
				p.Speed = phys.BoostCeiling
			}
		} else if p.Speed > phys.BoostCeiling {
			p.Speed -= phys.Drag
			if p.Speed < phys.BoostCeiling {
				p.Speed = phys.BoostCeiling
			}
		}
	} else {
		turn := math.Abs(p.Direction) / phys.MaxDirection
		target := phys.CruiseMax * (1 - phys.CruiseTurnLoss*turn)
		if p.Speed > target {
			p.Speed -= phys.Drag
			if p.Speed < target {
				p.Speed = target
			}
		} else if p.Speed < target {
			p.Speed += phys.GravityAccel
			if p.Speed > target {
				p.Speed = target
			}
		}
	}

	// Jump: takeoff from skiing only; gravity brings the arc back down and
	// landing snaps height to exactly zero.
	if in.Has(core.ActionJump) && p.State == StateSkiing {
		p.State = StateJumping
		p.JumpVel = phys.JumpImpulse
		p.Speed += phys.JumpSpeedBonus
	}
	if p.State == StateJumping {
		p.JumpHeight += p.JumpVel
		p.JumpVel -= phys.JumpGravity
		if p.JumpHeight <= 0 {
			p.JumpHeight = 0
			p.JumpVel = 0
			p.State = StateSkiing
		}
	}

	// Hard global cap after all adjustments, then clamp at zero.
	p.Speed = core.ClampF(p.Speed, 0, phys.SpeedLimit)

	// The canonical heading/speed integration. Direction 0 is straight
	// downhill; keep the sin/cos split exact for consistent feel.
	angle := p.Direction * phys.DirAngle
	p.Pos.X += math.Sin(angle) * p.Speed
	p.Pos.Y += math.Cos(angle) * p.Speed

	if p.PowerTicks > 0 {
		p.PowerTicks--
	}
	if p.cooldown > 0 {
		p.cooldown--
	}
}

// tryFire reports whether a shot is allowed this tick, consuming ammo and
// arming the cooldown when it is.
func (p *Player) tryFire(weapon *config.SkiWeapon) bool {
	if p.State.Terminal() || p.Ammo <= 0 || p.cooldown > 0 {
		return false
	}
	p.Ammo--
	p.cooldown = weapon.FireCooldown
	return true
}

// crash transitions to the crashed state: speed zeroed, jump reset.
func (p *Player) crash() {
	p.State = StateCrashed
	p.Speed = 0
	p.JumpHeight = 0
	p.JumpVel = 0
}

// eaten transitions to the eaten state.
func (p *Player) eaten() {
	p.State = StateEaten
	p.Speed = 0
	p.JumpHeight = 0
	p.JumpVel = 0
}
