// Package ecs bridges pager transition events into a [Donburi] world.
//
// [NewBridge] subscribes to a Controller's start and end notifications and
// publishes each one as a [TransitionMessage] on [TransitionEventType].
// Subscribe to it in your ECS systems and drain it with ProcessEvents:
//
//	bridge := ecs.NewBridge(world, ctrl)
//	defer bridge.Close()
//	ecs.TransitionEventType.Subscribe(world, onTransition)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
