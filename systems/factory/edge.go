package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/archetypes"
	"github.com/automoto/pigem/tags"
)

// CreateEdge creates an invisible hazard zone. The rectangle is the already
// shrunk hit box, not the full tile.
func CreateEdge(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	edge := archetypes.Edge.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvEdge)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, edge, obj)

	return edge
}
