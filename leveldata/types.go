// Package leveldata parses the gameplay layers of a TMX farm map.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// Layer and object group names a farm map is expected to carry.
const (
	LayerGround      = "Ground"
	LayerWalls       = "Walls"
	LayerApples      = "Apples"
	LayerEdges       = "Edges"
	GroupPlayerSpawn = "PlayerSpawn"
)

// EdgeHitboxScale is the fraction of a tile an edge hazard occupies.
const EdgeHitboxScale = 0.5

// LevelData holds everything gameplay needs from a TMX level file.
type LevelData struct {
	Name       string
	Walls      []Rect
	Apples     []Tile
	Edges      []Rect
	Spawn      Point
	HasSpawn   bool
	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int
}

// Rect is an axis-aligned rectangle in map pixels.
type Rect struct {
	X, Y, W, H float64
}

// Tile is a non-empty tile cell of a layer, with its pixel rectangle.
type Tile struct {
	Col, Row int
	Rect
}

// Point is a position in map pixels.
type Point struct {
	X, Y float64
}

// SpawnPoint returns where the player starts: the first PlayerSpawn object,
// or the center of the map when the level has none.
func (d *LevelData) SpawnPoint() Point {
	if d.HasSpawn {
		return d.Spawn
	}
	return Point{X: float64(d.MapWidth) / 2, Y: float64(d.MapHeight) / 2}
}

// Goal is the number of apples to collect to clear the level.
func (d *LevelData) Goal() int {
	return len(d.Apples)
}
