// Package arcade provides a simple 2D game framework for Go.
//
// # Overview
//
// arcade is a code-first 2D framework in the GoGPU ecosystem. It owns the
// window, the frame loop and a small graphics device abstraction, and leaves
// the game itself to you: implement [State], hand it to [Context.Run], and
// draw textures, canvases and cameras from your Draw method.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/arcade"
//	    "github.com/gogpu/arcade/graphics"
//	)
//
//	type Game struct {
//	    player *graphics.Texture
//	}
//
//	func (g *Game) Update(ctx *arcade.Context, dt float64) error { return nil }
//
//	func (g *Game) Draw(ctx *arcade.Context, gfx *graphics.Context) error {
//	    gfx.Clear(graphics.RGB(0.1, 0.1, 0.1))
//	    g.player.Draw(gfx, graphics.NewDrawParams())
//	    return nil
//	}
//
//	func main() {
//	    ctx, err := arcade.NewContext("My Game", 640, 480)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer ctx.Close()
//
//	    g := &Game{}
//	    g.player, _ = graphics.NewTexture(ctx.Graphics(), "player.png")
//
//	    if err := ctx.Run(g); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Architecture
//
// The framework is organized into:
//   - Root package: Context, game loop, window, events, settings
//   - graphics: textures, canvases (render targets), cameras, draw parameters
//   - backend: pluggable graphics device backends (software, wgpu)
//   - internal/software: CPU reference device, always available
//   - internal/platform: SDL2 window and event pump
//
// Rendering runs through a narrow device contract (graphics.Device), so the
// same game code works against the CPU device in tests and the GPU device in
// production. Import the wgpu backend to enable GPU rendering:
//
//	import _ "github.com/gogpu/arcade/backend/wgpu"
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Threading
//
// All graphics operations are single-threaded: the frame loop calls Update,
// Draw and Event on one goroutine, and device resources must only be touched
// from that goroutine.
package arcade

// Version information
const (
	// Version is the current version of the framework
	Version = "0.2.0"
)
