package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/tilerun/shared/tiles"
)

const (
	// TileLayer is the TMX tile layer imported as the grid.
	TileLayer = "tiles"
	// SpawnGroup is the TMX object group whose first object marks the spawn.
	SpawnGroup = "PlayerSpawn"
	// CodeProperty overrides the tile-sheet index of a tileset tile.
	CodeProperty = "code"

	// LevelExt and TMXExt are the recognised level file extensions.
	LevelExt = ".lvl"
	TMXExt   = ".tmx"
)

// LoadTMX imports a Tiled map as a grid. Each tile's local ID is its code
// unless the tileset tile carries a "code" property. A PlayerSpawn object
// places the spawn marker when the layer has none. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != tiles.Size || levelMap.TileHeight != tiles.Size {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d, want %d", tmxPath, levelMap.TileWidth, levelMap.TileHeight, tiles.Size)
	}

	g, err := NewGrid(levelMap.Width, levelMap.Height)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				g.Set(x, y, tileCode(tile))
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, TileLayer)
	}

	if g.SpawnIndex() < 0 {
		for _, og := range levelMap.ObjectGroups {
			if og.Name != SpawnGroup || len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			g.Set(int(o.X)/tiles.Size, int(o.Y)/tiles.Size, tiles.Spawn)
			break
		}
	}

	return g, nil
}

func tileCode(tile *tiled.LayerTile) tiles.Code {
	code := tiles.Code(tile.ID)
	if tile.Tileset == nil {
		return code
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return code
	}
	if s := tilesetTile.Properties.GetString(CodeProperty); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			code = tiles.Code(v)
		}
	}
	return code
}

// LoadFile reads a level from disk, picking the decoder by extension: .tmx
// goes through LoadTMX, anything else is treated as level text.
func LoadFile(path string) (*Grid, error) {
	if strings.EqualFold(filepath.Ext(path), TMXExt) {
		return LoadTMX(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	g, err := Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", path, err)
	}
	return g, nil
}

// SaveFile writes a grid as level text, creating the directory if needed.
func SaveFile(path string, g *Grid) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write level %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(Encode(g)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write level %s: %w", path, err)
	}
	return nil
}

// ListLevels returns the sorted file names of every level (.lvl or .tmx) in
// dir within fsys.
func ListLevels(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list levels %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case LevelExt, TMXExt:
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
