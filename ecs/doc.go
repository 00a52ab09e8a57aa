// Package ecs provides ECS adapters for sprig.
//
// [MoverComponent] and [BoundsComponent] attach a sprig Mover and its bounds
// to a [Donburi] entity. [StepMovers] advances every entity carrying both and
// publishes a [MovedEvent] for each one whose cell changed. [System] wraps
// that as a sprig Ticker so it can be added to a sprig Host:
//
//	world := donburi.NewWorld()
//	ecs.NewMoverEntity(world, sprig.NewMover(5, 5, sprig.South), ecs.MoverBounds{
//		Rect:     sprig.RectI{Width: 10, Height: 10},
//		Reaction: sprig.ReactionBounce,
//	})
//	host.Add(ecs.NewSystem(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
