package prefabs

import (
	"fmt"
	"path/filepath"
)

// Spec file names, relative to the prefabs directory.
const (
	PlayerFile      = "player.yaml"
	EnemyFile       = "enemy.yaml"
	FlyingEnemyFile = "flying_enemy.yaml"
	ProjectileFile  = "projectile.yaml"
	CombatFile      = "combat.yaml"
	ControlsFile    = "controls.yaml"
	MixerFile       = "audio.yaml"
	GraphicsFile    = "graphics.yaml"
)

// Config is every tunable of the game. It is built once at startup and
// passed to whatever needs it.
type Config struct {
	Player      PlayerSpec
	Enemy       EnemySpec
	FlyingEnemy FlyingEnemySpec
	Projectile  ProjectileSpec
	Combat      CombatSpec
	Controls    ControlsSpec
	Mixer       MixerSpec
	Graphics    GraphicsSpec
}

// LoadConfig reads all spec files.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	for _, name := range Files() {
		if err := cfg.Reload(name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Files lists the spec files LoadConfig reads.
func Files() []string {
	return []string{PlayerFile, EnemyFile, FlyingEnemyFile, ProjectileFile, CombatFile, ControlsFile, MixerFile, GraphicsFile}
}

// Reload re-reads one spec file into cfg. The section is only replaced when
// the file decodes cleanly.
func (cfg *Config) Reload(path string) error {
	switch name := filepath.Base(path); name {
	case PlayerFile:
		return reloadInto(&cfg.Player, name)
	case EnemyFile:
		return reloadInto(&cfg.Enemy, name)
	case FlyingEnemyFile:
		return reloadInto(&cfg.FlyingEnemy, name)
	case ProjectileFile:
		return reloadInto(&cfg.Projectile, name)
	case CombatFile:
		return reloadInto(&cfg.Combat, name)
	case ControlsFile:
		return reloadInto(&cfg.Controls, name)
	case MixerFile:
		return reloadInto(&cfg.Mixer, name)
	case GraphicsFile:
		return reloadInto(&cfg.Graphics, name)
	default:
		return fmt.Errorf("prefabs: unknown spec %s", name)
	}
}

func reloadInto[T any](dst *T, name string) error {
	spec, err := LoadSpec[T](name)
	if err != nil {
		return err
	}
	*dst = spec
	return nil
}
