package system

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/fx"
	"github.com/milk9111/mageknight/levels"
	"github.com/milk9111/mageknight/obj"
	"github.com/milk9111/mageknight/prefabs"
)

// World owns the level, the actors and the per-tick update order.
type World struct {
	Level  *levels.Level
	Grid   *levels.Grid
	Player *obj.Player
	// Hostiles holds every non-player actor: enemies and projectiles.
	Hostiles []obj.Actor
	Effects  []*fx.HitEffect
	Camera   *obj.Camera
	// Hits lists the contact hits the player took during the last tick.
	Hits []component.Hit

	cfg      *prefabs.Config
	deps     obj.Deps
	controls obj.Controls
	logger   *log.Logger
	spawns   []spawnRecord
	// roster holds one enemy per spawn record, dead or alive.
	roster  []obj.Actor
	pending []obj.Actor
	ticks   int
}

// NewWorld creates a world and loads the named level.
func NewWorld(cfg *prefabs.Config, level string, controls obj.Controls, deps obj.Deps, logger *log.Logger) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("system: world needs a config")
	}
	if logger == nil {
		logger = log.Default()
	}
	if deps.Rand == nil {
		deps.Rand = newRand()
	}
	w := &World{
		cfg:      cfg,
		deps:     deps,
		controls: controls,
		logger:   logger,
		Camera:   obj.NewCamera(common.BaseWidth, common.BaseHeight, common.BaseWidth, common.BaseHeight),
	}
	w.Camera.Smooth = cfg.Graphics.Camera.Smoothing
	if err := w.Load(level); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the level and rebuilds the player and hostiles.
func (w *World) Load(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("system: load level %q: %w", name, err)
	}
	grid, err := lvl.Grid()
	if err != nil {
		return fmt.Errorf("system: %w", err)
	}

	w.Level = lvl
	w.Grid = grid
	w.spawns = w.spawnRecordsFromGrid(grid, lvl.PatrolDistances)
	w.roster = w.spawnHostiles()
	w.Hostiles = slices.Clone(w.roster)
	w.Effects = nil
	w.Hits = nil
	w.pending = nil

	spawn := grid.SpawnOr(lvl.DefaultSpawn)
	w.Player = obj.NewPlayer(spawn.X, spawn.Y, &w.cfg.Player, w.controls, w.deps)

	w.Camera.SetLevelSize(grid.Width(), grid.Height())
	w.Camera.Snap(w.Player.Bounds())

	w.logger.Info("level loaded",
		"level", lvl.Name,
		"tiles", len(grid.Tiles),
		"ground", len(grid.GroundSpawns),
		"flying", len(grid.FlyingSpawns),
		"spawn", fmt.Sprintf("%.0f,%.0f", spawn.X, spawn.Y))
	return nil
}

// Now is the game time derived from the tick counter.
func (w *World) Now() time.Duration {
	return time.Duration(w.ticks) * time.Second / common.TPS
}

func (w *World) Ticks() int { return w.ticks }

func (w *World) env() *obj.Env {
	return &obj.Env{
		Tiles:       w.Grid.Tiles,
		LevelHeight: w.Grid.Height(),
		Player:      w.Player,
		Now:         w.Now(),
		Spawn:       w.queue,
	}
}

func (w *World) queue(a obj.Actor) { w.pending = append(w.pending, a) }

// Update advances the simulation one tick: player, camera, death zones,
// hostiles, contact damage, melee, effects, then deferred removal and spawns.
func (w *World) Update() {
	env := w.env()
	w.Hits = w.Hits[:0]

	wasDead := w.Player.Dead
	w.Player.Update(env)
	if wasDead && !w.Player.Dead {
		w.respawnHostiles()
		w.Camera.Snap(w.Player.Bounds())
	}
	w.Camera.Update(w.Player.Bounds())

	removed := make(map[obj.Actor]bool)
	w.applyDeathZones(removed)

	for _, a := range w.Hostiles {
		if removed[a] {
			continue
		}
		if !a.Update(env) {
			removed[a] = true
			if a.Kind() != obj.KindProjectile && a.IsAlive() {
				w.logger.Debug("hostile left the world", "kind", a.Kind(), "x", a.Bounds().X, "y", a.Bounds().Y)
			}
		}
	}

	w.resolveContacts(removed)
	if w.Player.Swung() {
		w.resolveMelee(removed)
	}

	w.updateEffects()
	w.commit(removed)
	w.ticks++
}

// applyDeathZones kills the player and drops hostiles whose feet touch a
// death zone.
func (w *World) applyDeathZones(removed map[obj.Actor]bool) {
	if len(w.Grid.DeathZones) == 0 {
		return
	}
	if !w.Player.Dead && w.inDeathZone(w.Player.Bounds()) {
		w.logger.Info("player hit a death zone")
		w.Player.Die()
	}
	for _, a := range w.Hostiles {
		if w.inDeathZone(a.Bounds()) {
			removed[a] = true
			w.logger.Debug("hostile hit a death zone", "kind", a.Kind())
		}
	}
}

func (w *World) inDeathZone(body common.Rect) bool {
	feet := body.Feet()
	for _, z := range w.Grid.DeathZones {
		if feet.Intersects(z) {
			return true
		}
	}
	return false
}

// respawnHostiles puts every enemy back at its spawn record, including the
// ones already killed, and clears stray projectiles.
func (w *World) respawnHostiles() {
	for _, a := range w.roster {
		if r, ok := a.(resetter); ok {
			r.Reset()
		}
	}
	w.Hostiles = append(w.Hostiles[:0], w.roster...)
	w.pending = nil
	w.logger.Info("player respawned", "hostiles", len(w.Hostiles))
}

func (w *World) updateEffects() {
	kept := w.Effects[:0]
	for _, e := range w.Effects {
		e.Update()
		if !e.Finished() {
			kept = append(kept, e)
		}
	}
	w.Effects = kept
}

// commit drops removed or dead actors and admits this tick's spawns.
func (w *World) commit(removed map[obj.Actor]bool) {
	kept := w.Hostiles[:0]
	for _, a := range w.Hostiles {
		if removed[a] || !a.IsAlive() {
			continue
		}
		kept = append(kept, a)
	}
	w.Hostiles = append(kept, w.pending...)
	w.pending = w.pending[:0]
}

// Count returns how many hostiles of kind k are alive.
func (w *World) Count(k obj.Kind) int {
	n := 0
	for _, a := range w.Hostiles {
		if a.Kind() == k && a.IsAlive() {
			n++
		}
	}
	return n
}

// ApplyConfig pushes reloaded tuning into live actors.
func (w *World) ApplyConfig(cfg *prefabs.Config) {
	w.cfg = cfg
	w.Player.ApplySpec(&cfg.Player)
	w.Camera.Smooth = cfg.Graphics.Camera.Smoothing
	for _, a := range w.roster {
		switch a := a.(type) {
		case *obj.GroundEnemy:
			a.ApplySpec(&cfg.Enemy)
		case *obj.FlyingEnemy:
			a.ApplySpec(&cfg.FlyingEnemy, &cfg.Projectile)
		}
	}
	w.logger.Info("config applied")
}

// DrawHostiles draws enemies and projectiles.
func (w *World) DrawHostiles(dst component.Canvas) {
	now := w.Now()
	for _, a := range w.Hostiles {
		a.Draw(dst, w.Camera, now)
	}
}

// DrawPlayer draws the player unless the invulnerability blink hides it.
func (w *World) DrawPlayer(dst component.Canvas) {
	if !w.Player.Visible(w.cfg.Combat.BlinkFrames) {
		return
	}
	w.Player.Draw(dst, w.Camera, w.Now())
}

func (w *World) DrawEffects(dst component.Canvas) {
	for _, e := range w.Effects {
		e.Draw(dst, w.Camera.X, w.Camera.Y)
	}
}
