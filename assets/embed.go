package assets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed images
var assetsFS embed.FS

// Dir is the on-disk override directory, checked before the embedded copy.
const Dir = "assets"

// LoadFile reads an asset by assets-relative path, preferring a file on disk
// so art can be swapped without rebuilding.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
