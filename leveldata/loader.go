package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/pigem/gamemath"
)

// LoadLevelData parses a TMX file and returns its walls, apples, edges and
// spawn point. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevelData(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, LevelName(tmxPath))
}

// FromMap extracts level data from an already loaded map.
func FromMap(levelMap *tiled.Map, name string) (*LevelData, error) {
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("level %s: invalid tile size %dx%d", name, levelMap.TileWidth, levelMap.TileHeight)
	}

	data := &LevelData{
		Name:       name,
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case LayerWalls:
			for _, t := range layerTiles(levelMap, layer) {
				data.Walls = append(data.Walls, t.Rect)
			}
		case LayerApples:
			data.Apples = append(data.Apples, layerTiles(levelMap, layer)...)
		case LayerEdges:
			for _, t := range layerTiles(levelMap, layer) {
				x, y, w, h := gamemath.ShrinkRect(t.X, t.Y, t.W, t.H, EdgeHitboxScale)
				data.Edges = append(data.Edges, Rect{X: x, Y: y, W: w, H: h})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != GroupPlayerSpawn || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		data.Spawn = Point{X: o.X, Y: o.Y}
		// Tile objects hang from their bottom-left corner.
		if o.GID != 0 {
			data.Spawn.Y -= o.Height
		}
		data.HasSpawn = true
		break
	}

	return data, nil
}

func layerTiles(levelMap *tiled.Map, layer *tiled.Layer) []Tile {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	var tiles []Tile
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			idx := y*levelMap.Width + x
			if idx >= len(layer.Tiles) {
				return tiles
			}
			tile := layer.Tiles[idx]
			if tile == nil || tile.IsNil() {
				continue
			}
			tiles = append(tiles, Tile{
				Col:  x,
				Row:  y,
				Rect: Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH},
			})
		}
	}
	return tiles
}

// LevelName returns the stem of a TMX path: "levels/level01.tmx" -> "level01".
func LevelName(tmxPath string) string {
	return strings.TrimSuffix(path.Base(tmxPath), ".tmx")
}

// ListLevels returns the sorted stems of every .tmx file in levelsDir.
func ListLevels(fsys fs.FS, levelsDir string) ([]string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, LevelName(m))
	}
	sort.Strings(names)
	return names, nil
}
