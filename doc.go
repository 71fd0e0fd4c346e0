// Package strobe choreographs "repeating image" transitions for [Ebitengine].
//
// When a thumbnail is selected, a short train of transient copies of its
// image (movers) appears along the path to a destination rectangle. Each
// mover wipes into view and back out along a configurable axis, one slightly
// after the other, producing a stroboscopic motion from source to
// destination.
//
// # Quick start
//
//	stage := strobe.NewStage()
//	thumb := strobe.NewPicture("thumb", img, strobe.Rect{X: 40, Y: 40, Width: 120, Height: 160})
//	stage.Content().AddChild(thumb)
//
//	ctrl := strobe.NewController(stage)
//	ctrl.SetSource(strobe.AnchorFor(thumb))
//	ctrl.SetDestination(&strobe.RectAnchor{Rect: panelRect})
//	ctrl.OnComplete(func() { showPanel() })
//	ctrl.SetActive(true)
//
//	strobe.RunGame(stage, strobe.RunConfig{Title: "Gallery", Width: 960, Height: 640})
//
// # Pieces
//
// [GeneratePath] interpolates the frames between two rectangles. A
// [MoverSet] turns frames into nodes on the stage's overlay layer. A [Run]
// drives each mover through entry, hold and exit on a [Scheduler], fires its
// completion callback once, and sweeps up after itself. A [Controller] keeps
// at most one run alive, restarting or cancelling it as its inputs change.
//
// Everything runs on the game loop goroutine. [Stage.Update] advances the
// stage's [Timeline] once per tick; tests call [Timeline.Advance] directly.
//
// Tween easing comes from [gween]; [EaseByName] accepts GSAP-style names
// such as "sine.in" or "expo.inOut".
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package strobe
