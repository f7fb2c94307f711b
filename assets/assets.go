package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/tilerun/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelDir = "levels"

// DefaultLevel is loaded when no level is given on the command line.
const DefaultLevel = "demo.lvl"

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	return leveldata.ListLevels(assetFS, levelDir)
}

// LoadLevel decodes an embedded level by file name.
func LoadLevel(name string) (*leveldata.Grid, error) {
	p := path.Join(levelDir, name)
	if strings.EqualFold(path.Ext(name), leveldata.TMXExt) {
		return leveldata.LoadTMX(assetFS, p)
	}
	raw, err := fs.ReadFile(assetFS, p)
	if err != nil {
		return nil, fmt.Errorf("read embedded level %s: %w", name, err)
	}
	g, err := leveldata.Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode embedded level %s: %w", name, err)
	}
	return g, nil
}

// LevelName strips the extension from a level file name.
func LevelName(file string) string {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}
