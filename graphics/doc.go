// Package graphics provides the rendering primitives of the arcade
// framework: textures, canvases (off-screen render targets), cameras and
// draw parameters.
//
// # Render targets
//
// Draw calls write to whatever render target is active on the Context: the
// window backbuffer by default, or a Canvas bound with SetCanvas:
//
//	ctx.SetCanvas(canvas)
//	// ... draw to the canvas ...
//	ctx.ResetCanvas()
//
//	// Draw the result to the screen:
//	canvas.Draw(ctx, graphics.NewDrawParams())
//
// # Cameras
//
// A Camera turns a position, rotation and zoom into a transform matrix.
// Mutate its fields directly, call Update, and install the matrix:
//
//	camera.Position.X += 4
//	camera.Update()
//	ctx.SetTransformMatrix(camera.AsMatrix())
//
// # Devices
//
// Everything renders through the narrow Device contract. The software
// device (internal/software) is always available and is what the tests
// run against; the wgpu backend provides GPU rendering.
package graphics
