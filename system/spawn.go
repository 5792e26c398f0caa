package system

import (
	"github.com/milk9111/mageknight/levels"
	"github.com/milk9111/mageknight/obj"
)

type resetter interface {
	Reset()
}

// spawnRecord remembers where a hostile started so it can be rebuilt when the
// player respawns.
type spawnRecord struct {
	kind   obj.Kind
	x, y   float64
	patrol float64
}

// spawnRecordsFromGrid lists the ground then flying spawns of g. Ground
// enemies are lifted so their feet rest on the marker cell's top edge, and
// take patrol distances from the level's cycle in marker order.
func (w *World) spawnRecordsFromGrid(g *levels.Grid, patrols []float64) []spawnRecord {
	if len(patrols) == 0 {
		patrols = []float64{w.cfg.Enemy.Width * 3}
	}

	records := make([]spawnRecord, 0, len(g.GroundSpawns)+len(g.FlyingSpawns))
	for i, p := range g.GroundSpawns {
		records = append(records, spawnRecord{
			kind:   obj.KindGroundEnemy,
			x:      p.X,
			y:      p.Y + w.cfg.Enemy.SpawnOffsetY,
			patrol: patrols[i%len(patrols)],
		})
	}
	for _, p := range g.FlyingSpawns {
		records = append(records, spawnRecord{kind: obj.KindFlyingEnemy, x: p.X, y: p.Y})
	}
	return records
}

// spawnHostiles builds a fresh actor for every record.
func (w *World) spawnHostiles() []obj.Actor {
	actors := make([]obj.Actor, 0, len(w.spawns))
	for _, r := range w.spawns {
		switch r.kind {
		case obj.KindGroundEnemy:
			actors = append(actors, obj.NewGroundEnemy(r.x, r.y, r.patrol, &w.cfg.Enemy, w.deps))
		case obj.KindFlyingEnemy:
			actors = append(actors, obj.NewFlyingEnemy(r.x, r.y, &w.cfg.FlyingEnemy, &w.cfg.Projectile, w.deps))
		}
	}
	return actors
}
