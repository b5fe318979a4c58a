package archetypes

import (
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
		components.Hitbox,
		components.Body,
		components.Sprite,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Object,
		components.Lifespan,
		components.Shrink,
	)
	VFXEffect = newArchetype(
		components.Object,
		components.Animation,
		components.AutoDestroy,
	)
	CutHalf = newArchetype(
		tags.CutHalf,
		components.CutHalf,
		components.Object,
		components.Body,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Decoration,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
