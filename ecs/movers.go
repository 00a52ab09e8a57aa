package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// MoverBounds is the bounding rectangle and reaction applied to an entity's
// mover every step.
type MoverBounds struct {
	Rect     sprig.RectI
	Reaction sprig.BoundsReaction
}

// MovedEvent reports an entity whose cell changed during StepMovers.
type MovedEvent struct {
	Entity  donburi.Entity
	From    sprig.Point
	To      sprig.Point
	Heading sprig.CardinalDirection
}

var (
	// MoverComponent holds an entity's sprig.Mover.
	MoverComponent = donburi.NewComponentType[sprig.Mover]()

	// BoundsComponent holds an entity's MoverBounds.
	BoundsComponent = donburi.NewComponentType[MoverBounds]()

	// MovedEventType is published once per moved entity by StepMovers.
	MovedEventType = events.NewEventType[MovedEvent]()

	moverQuery = donburi.NewQuery(filter.Contains(MoverComponent, BoundsComponent))
)

// NewMoverEntity creates an entity carrying m and b.
func NewMoverEntity(world donburi.World, m sprig.Mover, b MoverBounds) donburi.Entity {
	e := world.Create(MoverComponent, BoundsComponent)
	entry := world.Entry(e)
	MoverComponent.SetValue(entry, m)
	BoundsComponent.SetValue(entry, b)
	return e
}

// StepMovers steps every entity with both components once and returns how
// many changed cell. Events are queued; process them with
// MovedEventType.ProcessEvents.
func StepMovers(world donburi.World) int {
	moved := 0
	moverQuery.Each(world, func(entry *donburi.Entry) {
		m := MoverComponent.Get(entry)
		b := BoundsComponent.Get(entry)
		from := m.Position()
		m.MoveWithinBounds(b.Rect, b.Reaction)
		if to := m.Position(); to != from {
			moved++
			MovedEventType.Publish(world, MovedEvent{
				Entity:  entry.Entity(),
				From:    from,
				To:      to,
				Heading: m.Heading,
			})
		}
	})
	return moved
}

// System steps a world's movers once per tick and delivers the resulting
// MovedEvents to subscribers.
type System struct {
	World donburi.World
}

// NewSystem returns a System for world.
func NewSystem(world donburi.World) *System {
	return &System{World: world}
}

// Tick implements sprig.Ticker.
func (s *System) Tick(float64) {
	StepMovers(s.World)
	MovedEventType.ProcessEvents(s.World)
}
