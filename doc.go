// Package sprig is a grab-bag of small helpers for [Ebitengine] games that
// run on a fixed tick: integer grid movement with boundary reactions, compass
// headings, square-grid coordinate math, value interpolation, frame timers,
// layer masks, a factory registration table, and background task helpers
// driven from the game loop.
//
// # Quick start
//
// Wrap your game in a [Host] and add [Ticker] values. Each Update ticks them
// with dt = 1/TPS before calling your game's Update:
//
//	m := sprig.NewMover(5, 5, sprig.South)
//	host := sprig.NewHost(game)
//	host.Add(sprig.NewMoverTicker(&m, sprig.RectI{Width: 10, Height: 10}, sprig.ReactionBounce, 8))
//	sprig.Run(host, sprig.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// # Movement
//
// A [Mover] steps one cell per call along its [CardinalDirection]. Cell
// deltas follow the engine convention: West is +X, East is -X, North is -Y
// and South is +Y. [Mover.MoveWithinBounds] applies a [BoundsReaction] when a
// step leaves the rectangle; [Mover.TryMoveWithinBounds] only checks the edge
// ahead and reports success.
//
// Movers can be described in YAML with [MoverConfig] and replayed headlessly
// with a JSON [MoverScript].
//
// # Interpolation
//
// [TargetValue] chases a target through an [Interpolator]: [EaseInOut] for a
// proportional approach, or [TweenInterpolator] for fixed-duration easing via
// [gween].
//
// # Registration
//
// [Registry] maps keys to factories and is filled explicitly at start-up,
// typically through a [Builder]. Scenes registered with
// [Registry.RegisterScene] are loaded once and instantiated per call.
//
// # Background work
//
// [BackgroundUpdater] and [BlockingUpdater] run one update at a time off the
// game loop, [TaskSweeper] collects fire-and-forget tasks, and [WorkerHost]
// launches long-running workers once.
//
// # Debug mode
//
// [SetDebugMode] turns on diagnostic checks, printed to stderr with a
// "[sprig]" prefix. They never change behaviour.
//
// ECS integration lives in the separate sprig/ecs module (via [Donburi]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sprig
