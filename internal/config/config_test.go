package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDifficultyTierScaling(t *testing.T) {
	d := DefaultSkiConfig().Difficulty

	if got := d.Tier(0); got != 0 {
		t.Errorf("Tier(0) = %d, want 0", got)
	}
	if got := d.Tier(d.TierDepth*3 + 1); got != 3 {
		t.Errorf("Tier at 3 tiers deep = %d, want 3", got)
	}

	// Every scaling term is capped.
	deep := d.TierDepth * 1000
	if got := d.ExtraDensity(deep); got != d.DensityCap {
		t.Errorf("ExtraDensity very deep = %v, want cap %v", got, d.DensityCap)
	}
	if got := d.YetiSpeedMul(deep); got != 1+d.YetiSpeedCap {
		t.Errorf("YetiSpeedMul very deep = %v, want %v", got, 1+d.YetiSpeedCap)
	}
	if got := d.MoundBonus(deep); got != d.MoundCap {
		t.Errorf("MoundBonus very deep = %d, want cap %d", got, d.MoundCap)
	}
}

func TestDifficultyDisabledStaysFlat(t *testing.T) {
	d := DefaultSkiConfig().Difficulty
	d.Enabled = false

	deep := d.TierDepth * 10
	if d.Tier(deep) != 0 || d.ExtraDensity(deep) != 0 || d.MoundBonus(deep) != 0 {
		t.Error("disabled difficulty still scales with depth")
	}
	if d.YetiSpeedMul(deep) != 1 {
		t.Errorf("YetiSpeedMul = %v with difficulty disabled, want 1", d.YetiSpeedMul(deep))
	}
}

func TestApplySkiPreset(t *testing.T) {
	base := DefaultSkiConfig()

	fixed := DefaultSkiConfig()
	ApplySkiPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset left depth scaling enabled")
	}

	easy := DefaultSkiConfig()
	ApplySkiPreset(&easy, DifficultyEasy)
	if easy.World.BaseDensity >= base.World.BaseDensity {
		t.Error("easy preset did not thin the slope")
	}
	if easy.Yeti.SpawnChance >= base.Yeti.SpawnChance {
		t.Error("easy preset did not calm the yeti")
	}

	hard := DefaultSkiConfig()
	ApplySkiPreset(&hard, DifficultyHard)
	if hard.World.BaseDensity <= base.World.BaseDensity {
		t.Error("hard preset did not densify the slope")
	}
	if hard.Yeti.TopSpeed <= base.Yeti.TopSpeed {
		t.Error("hard preset did not speed up the yeti")
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg SkiConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultSkiConfig()
	if cfg.Physics.SpeedLimit != def.Physics.SpeedLimit {
		t.Errorf("speed_limit = %v, want %v", cfg.Physics.SpeedLimit, def.Physics.SpeedLimit)
	}
	if cfg.Yeti.DespawnRadius != def.Yeti.DespawnRadius {
		t.Errorf("despawn_radius = %v, want %v", cfg.Yeti.DespawnRadius, def.Yeti.DespawnRadius)
	}
	if cfg.World.RowStep != def.World.RowStep {
		t.Errorf("row_step = %v, want %v", cfg.World.RowStep, def.World.RowStep)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("embedded YAML ships with difficulty disabled")
	}
}

func TestLoadSkiMissingCustomPathErrors(t *testing.T) {
	if _, err := LoadSki("/nonexistent/ski.yaml"); err == nil {
		t.Error("LoadSki with a missing explicit path should error")
	}
}
