package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "mageknight"

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Level is the on-disk description of a stage.
type Level struct {
	Name            string    `yaml:"name"`
	TileSize        float64   `yaml:"tile_size"`
	DefaultSpawn    Point     `yaml:"default_spawn"`
	PatrolDistances []float64 `yaml:"patrol_distances"`
	Rows            []string  `yaml:"rows"`
}

// LoadLevelFromFS decodes a level from any filesystem.
func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, fileName(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decode(name, data)
}

// Load reads levels/<name>.yaml from disk when present, else the embedded copy.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	clean := fileName(name)
	if data, err := os.ReadFile(filepath.Join("levels", clean)); err == nil {
		return decode(name, data)
	}
	if data, err := os.ReadFile(name); err == nil && filepath.Ext(name) != "" {
		return decode(name, data)
	}
	return LoadLevelFromFS(LevelsFS, clean)
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func decode(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = 32
	}
	return &lvl, nil
}

func fileName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
