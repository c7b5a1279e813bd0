// Package pge is a small software renderer for pixel-oriented games.
//
// A [Context] owns an in-memory frame buffer (a [Sprite]) and draws into it
// pixel by pixel: lines with stipple patterns, rectangle outlines, text in a
// built-in 8x8 bitmap font, and scaled or flipped sprite blits. Every
// primitive goes through [Context.Draw], so the active [PixelMode] (overwrite,
// opaque-only mask, or alpha blending) applies to all of them.
//
// # Running a game
//
// Implement [Game] and hand it to a host. The ebitenhost package opens a
// window:
//
//	type demo struct{}
//
//	func (demo) OnCreate() error  { return nil }
//	func (demo) OnDestroy() error { return nil }
//	func (demo) OnUpdate(ctx *pge.Context, elapsed float32) error {
//		ctx.Clear(pge.White)
//		return ctx.DrawString(10, 10, "Hello world!", pge.Black, 1)
//	}
//
//	ebitenhost.Run(demo{}, pge.Config{
//		Title: "Hello", ScreenWidth: 200, ScreenHeight: 100,
//		PixelWidth: 4, PixelHeight: 4,
//	})
//
// [RunHeadless] drives the same Game without a window, and [Engine] exposes
// the frame loop to custom hosts.
//
// # Errors
//
// Drawing outside a sprite, importing an unsupported pixel layout, drawing a
// glyph outside ASCII 32-127 and invalid screen sizes all fail with [*Error].
// Nothing is clipped silently except the blend factor, which is clamped to
// [0, 1].
package pge
