// Package pager is a full-screen paging controller for [Ebitengine].
//
// Pager divides a container into N screens of viewport height and moves
// between them one at a time. Wheel input, vertical touch swipes and nav
// buttons request a screen; the controller animates the container offset to
// it with an eased slide and then briefly ignores further input so a single
// flick does not skip several screens.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	surface := pager.NewEbitenSurface(4, 640, 480, pager.SurfaceStyle{})
//	ctrl, err := pager.New(surface, pager.Config{
//		OnScreenEnable: func(n int) { log.Printf("screen %d", n) },
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	pager.Run(ctrl, surface, pager.RunConfig{Title: "Pager"})
//
// For full control, implement [ebiten.Game] yourself, attach an
// [EbitenInput] and call [Controller.Update] from Update and
// [EbitenSurface.Draw] from Draw.
//
// # Surfaces and input
//
// The controller never draws. It talks to a [Surface], which it measures
// and pushes offsets and active markers to, and it listens to any number of
// [InputSource]s. [EbitenSurface] and [EbitenInput] are the Ebitengine
// implementations; [InputQueue] is a source you feed yourself, and
// [TestRunner] drives one from a JSON script.
//
// # Timing
//
// Every frame, [Controller.Update] advances the animation using the
// configured [Clock]. Progress reaches 1 exactly when ScrollDuration has
// elapsed, and lifecycle callbacks fire once per transition, when the offset
// lands on the target. Use [ManualClock] to step time deterministically.
//
// A Controller is single-threaded: call it only from the goroutine that
// calls Update.
//
// Transition notifications can also be forwarded to a [Donburi] world with
// the pager/ecs package.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package pager
