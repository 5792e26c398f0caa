package levels

import (
	"fmt"

	"github.com/milk9111/mageknight/common"
)

// Cell roles in a map row.
const (
	CellEmpty       = '.'
	CellTile        = '#'
	CellPlayer      = 'S'
	CellGroundEnemy = 'E'
	CellFlyingEnemy = 'F'
	CellDeathZone   = 'X'
)

// MalformedMapError reports a row whose length differs from the first row.
type MalformedMapError struct {
	Row  int
	Want int
	Got  int
}

func (e *MalformedMapError) Error() string {
	return fmt.Sprintf("levels: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Grid is the parsed, read-only geometry of a level.
type Grid struct {
	TileSize     float64
	Cols, Rows   int
	Tiles        []common.Rect
	DeathZones   []common.Rect
	PlayerSpawn  *Point
	GroundSpawns []Point
	FlyingSpawns []Point
}

// Width and Height are the level size in pixels.
func (g *Grid) Width() float64  { return float64(g.Cols) * g.TileSize }
func (g *Grid) Height() float64 { return float64(g.Rows) * g.TileSize }

// SpawnOr returns the map's player spawn, or def when the map has none.
func (g *Grid) SpawnOr(def Point) Point {
	if g.PlayerSpawn == nil {
		return def
	}
	return *g.PlayerSpawn
}

// Parse classifies every cell of rows. Unknown characters are empty. With
// several player markers the last one in row-major order is kept.
func Parse(rows []string, tileSize float64) (*Grid, error) {
	g := &Grid{TileSize: tileSize, Rows: len(rows)}
	if len(rows) > 0 {
		g.Cols = len(rows[0])
	}
	for r, line := range rows {
		if len(line) != g.Cols {
			return nil, &MalformedMapError{Row: r, Want: g.Cols, Got: len(line)}
		}
		for c := 0; c < len(line); c++ {
			x, y := float64(c)*tileSize, float64(r)*tileSize
			cell := common.NewRect(x, y, tileSize, tileSize)
			switch line[c] {
			case CellTile:
				g.Tiles = append(g.Tiles, cell)
			case CellDeathZone:
				g.DeathZones = append(g.DeathZones, cell)
			case CellPlayer:
				g.PlayerSpawn = &Point{X: x, Y: y}
			case CellGroundEnemy:
				g.GroundSpawns = append(g.GroundSpawns, Point{X: x, Y: y})
			case CellFlyingEnemy:
				g.FlyingSpawns = append(g.FlyingSpawns, Point{X: x, Y: y})
			}
		}
	}
	return g, nil
}

// Grid parses the level's rows.
func (l *Level) Grid() (*Grid, error) {
	g, err := Parse(l.Rows, l.TileSize)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", l.Name, err)
	}
	return g, nil
}
