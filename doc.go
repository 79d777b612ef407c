// Package nothofagus is a small toolkit for pixel-art 2D programs on top of
// [Ebitengine].
//
// A [Canvas] owns a fixed-resolution drawing surface in canvas pixels, with
// the origin at the bottom-left corner, scaled up by [Config.PixelSize] in
// the window. The program describes what to draw and the canvas keeps GPU
// state in sync with it every frame.
//
// # Quick start
//
//	canvas := nothofagus.NewCanvas(nothofagus.DefaultConfig())
//	tex := nothofagus.NewTexture(2, 2, nothofagus.ColorWhite)
//	id := canvas.AddBellota(nothofagus.NewBellota(
//		nothofagus.NewTransform(nothofagus.Vec2{X: 128, Y: 120}),
//		canvas.AddTexture(tex),
//	))
//	err := canvas.Run(func(dt float64) {
//		canvas.Bellota(id).Transform.Angle += 0.1 * dt
//	}, nil)
//
// # Textures
//
// Textures are CPU-side pixel grids. [Texture] stores palette indices into a
// [ColorPalette] of up to 256 colors, [TextureArray] stores several
// same-sized layers with one palette each, and [DirectTexture] stores colors
// directly. Adding a texture to a canvas returns a handle; the GPU copy is
// created lazily on the first frame that draws it, and re-uploaded after
// [Canvas.MarkTextureDirty]. A texture removed while still referenced keeps
// its GPU copy until the last bellota using it goes away.
//
// # Bellotas
//
// A [Bellota] is a drawable entity: a [Transform], a texture handle, a
// visibility flag and a depth offset. Higher depth offsets draw on top; ties
// draw in creation order. An [AnimatedBellota] shows one layer of a
// [TextureArray] and is usually driven by an [AnimationStateMachine], whose
// named [AnimationState] values step through layers on a per-frame timer.
//
// A [Tint] blends a color into every pixel of a bellota:
//
//	canvas.SetTint(id, nothofagus.Tint{Intensity: 0.5, Color: nothofagus.Color{R: 1, A: 1}})
//
// # Input
//
// A [Controller] maps [KeyboardTrigger] values (a key plus [Press] or
// [Release]) to actions. Triggers are queued as they arrive and run in
// order from [Controller.ProcessInputs], once per frame. Key events can also
// be injected with [Canvas.InjectTap] or scripted with [LoadTestScript] for
// automated runs and [Canvas.Screenshot] captures.
//
// # Rendering without a window
//
// The GPU side sits behind the [Device] interface. [Canvas.Step] runs one
// update and render without opening a window, which together with a custom
// Device makes the canvas testable headless.
//
// # Logging
//
// The canvas logs through the [go.uber.org/zap] logger in [Config.Logger].
// With [Canvas.SetDebugMode] enabled it logs per-frame timings and resource
// counts at debug level.
//
// [Ebitengine]: https://ebitengine.org
package nothofagus
