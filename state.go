package arcade

import "github.com/gogpu/arcade/graphics"

// State holds the game's logic and rendering. The run loop calls Update
// once per tick and Draw once per frame. Returning a non-nil error from
// either stops the loop and surfaces the error from [Context.Run].
type State interface {
	// Update advances the game simulation. dt is the time since the last
	// update, in seconds.
	Update(ctx *Context, dt float64) error

	// Draw renders the current frame into the graphics context.
	Draw(ctx *Context, g *graphics.Context) error
}

// EventHandler is implemented by states that want window and input
// events. Events are delivered before Update each frame, in arrival
// order.
type EventHandler interface {
	// Event handles a single window or input event.
	Event(ctx *Context, event Event) error
}
