package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/archetypes"
	"github.com/automoto/pigem/components"
	"github.com/automoto/pigem/leveldata"
	"github.com/automoto/pigem/tags"
)

// CreateApple places one collectable apple tile. img may be nil.
func CreateApple(ecs *ecs.ECS, index int, tile leveldata.Tile, img *ebiten.Image) *donburi.Entry {
	apple := archetypes.Apple.Spawn(ecs)

	obj := resolv.NewObject(tile.X, tile.Y, tile.W, tile.H, tags.ResolvApple)
	obj.SetShape(resolv.NewRectangle(0, 0, tile.W, tile.H))
	addToSpace(ecs, apple, obj)

	components.Apple.SetValue(apple, components.AppleData{
		Index: index,
		Image: img,
	})
	return apple
}
