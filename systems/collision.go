package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/gamemath"
	"github.com/automoto/pigem/tags"
)

// UpdateMovement moves every body along X and then along Y, stopping it
// flush against solid tiles.
func UpdateMovement(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		moveAxis(obj, physics.SpeedX, 0)
		moveAxis(obj, 0, physics.SpeedY)
	})
}

// moveAxis moves obj by (dx, dy), one axis at a time, shortening the move so
// the object ends up touching rather than overlapping a wall. The space's
// Check works on whole cells, so every candidate is confirmed against the
// object's actual box first.
func moveAxis(obj *resolv.Object, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}

	if check := obj.Check(dx, dy, tags.ResolvSolid); check != nil {
		for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsAt(obj, dx, dy, wall) {
				continue
			}
			contact := check.ContactWithObject(wall)
			switch {
			case dx > 0:
				dx = math.Max(0, math.Min(dx, contact.X()))
			case dx < 0:
				dx = math.Min(0, math.Max(dx, contact.X()))
			case dy > 0:
				dy = math.Max(0, math.Min(dy, contact.Y()))
			case dy < 0:
				dy = math.Min(0, math.Max(dy, contact.Y()))
			}
		}
	}

	obj.X += dx
	obj.Y += dy
	obj.Update()
}

func overlapsAt(obj *resolv.Object, dx, dy float64, other *resolv.Object) bool {
	return gamemath.Overlaps(obj.X+dx, obj.Y+dy, obj.W, obj.H, other.X, other.Y, other.W, other.H)
}

// touching returns the objects with tag that share area with obj.
func touching(obj *resolv.Object, tag string) []*resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var hits []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if overlapsAt(obj, 0, 0, o) {
			hits = append(hits, o)
		}
	}
	return hits
}

// UpdateApples eats every apple the pig overlaps.
func UpdateApples(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	round := GetRound(ecs)
	if round == nil || round.Finished() {
		return
	}

	playerObj := components.Object.Get(playerEntry).Object
	for _, appleObj := range touching(playerObj, tags.ResolvApple) {
		appleEntry, ok := appleObj.Data.(*donburi.Entry)
		if !ok || !appleEntry.Valid() {
			continue
		}
		eatApple(ecs, round, appleEntry)
	}
}

func eatApple(ecs *ecs.ECS, round *components.RoundData, appleEntry *donburi.Entry) {
	obj := components.Object.Get(appleEntry).Object
	apple := components.Apple.Get(appleEntry)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}

	SpawnPickupEffect(ecs, apple.Image, obj.X, obj.Y)
	ecs.World.Remove(appleEntry.Entity())

	round.Score++
	PlaySFX(ecs, cfg.SoundPickup)
	AppleEaten.Publish(ecs.World, AppleEatenEvent{
		Level:     round.LevelName,
		Position:  Position{X: obj.X, Y: obj.Y},
		Score:     round.Score,
		Remaining: round.Remaining(),
	})
}

// TouchingEdge reports whether the pig stands on an edge tile.
func TouchingEdge(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	return len(touching(components.Object.Get(playerEntry).Object, tags.ResolvEdge)) > 0
}

// UpdateBounds keeps the pig's box inside the map.
func UpdateBounds(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || level.LevelData == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		x, y := gamemath.ClampBox(obj.X, obj.Y, obj.W, obj.H, float64(level.MapWidth), float64(level.MapHeight))
		if x != obj.X || y != obj.Y {
			obj.X, obj.Y = x, y
			obj.Update()
		}
	})
}
