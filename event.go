package arcade

import "github.com/gogpu/arcade/internal/platform"

// Event is a window or input event delivered to a [State] that
// implements [EventHandler]. The concrete types are [Resized],
// [KeyPressed], [KeyReleased], [FocusGained], [FocusLost] and [Quit].
type Event = platform.Event

// Resized is delivered when the window's drawable size changes. The
// backbuffer has already been resized to match when the event arrives.
type Resized = platform.ResizedEvent

// KeyPressed is delivered when a key is pressed. Key repeats are
// filtered.
type KeyPressed = platform.KeyDownEvent

// KeyReleased is delivered when a key is released.
type KeyReleased = platform.KeyUpEvent

// FocusGained is delivered when the window gains input focus.
type FocusGained = platform.FocusGainedEvent

// FocusLost is delivered when the window loses input focus.
type FocusLost = platform.FocusLostEvent

// Quit is delivered when the user asks to close the window. The run loop
// stops after the event is dispatched; the state sees the event and can
// save state, but cannot veto the shutdown.
type Quit = platform.QuitEvent

// Key identifies a keyboard key.
type Key = platform.Key

// Keyboard keys.
const (
	KeyUnknown = platform.KeyUnknown

	KeyA = platform.KeyA
	KeyB = platform.KeyB
	KeyC = platform.KeyC
	KeyD = platform.KeyD
	KeyE = platform.KeyE
	KeyF = platform.KeyF
	KeyG = platform.KeyG
	KeyH = platform.KeyH
	KeyI = platform.KeyI
	KeyJ = platform.KeyJ
	KeyK = platform.KeyK
	KeyL = platform.KeyL
	KeyM = platform.KeyM
	KeyN = platform.KeyN
	KeyO = platform.KeyO
	KeyP = platform.KeyP
	KeyQ = platform.KeyQ
	KeyR = platform.KeyR
	KeyS = platform.KeyS
	KeyT = platform.KeyT
	KeyU = platform.KeyU
	KeyV = platform.KeyV
	KeyW = platform.KeyW
	KeyX = platform.KeyX
	KeyY = platform.KeyY
	KeyZ = platform.KeyZ

	Key0 = platform.Key0
	Key1 = platform.Key1
	Key2 = platform.Key2
	Key3 = platform.Key3
	Key4 = platform.Key4
	Key5 = platform.Key5
	Key6 = platform.Key6
	Key7 = platform.Key7
	Key8 = platform.Key8
	Key9 = platform.Key9

	KeyUp    = platform.KeyUp
	KeyDown  = platform.KeyDown
	KeyLeft  = platform.KeyLeft
	KeyRight = platform.KeyRight

	KeySpace      = platform.KeySpace
	KeyEnter      = platform.KeyEnter
	KeyEscape     = platform.KeyEscape
	KeyTab        = platform.KeyTab
	KeyBackspace  = platform.KeyBackspace
	KeyLeftShift  = platform.KeyLeftShift
	KeyRightShift = platform.KeyRightShift
	KeyLeftCtrl   = platform.KeyLeftCtrl
	KeyRightCtrl  = platform.KeyRightCtrl
	KeyLeftAlt    = platform.KeyLeftAlt
	KeyRightAlt   = platform.KeyRightAlt

	KeyF1  = platform.KeyF1
	KeyF2  = platform.KeyF2
	KeyF3  = platform.KeyF3
	KeyF4  = platform.KeyF4
	KeyF5  = platform.KeyF5
	KeyF6  = platform.KeyF6
	KeyF7  = platform.KeyF7
	KeyF8  = platform.KeyF8
	KeyF9  = platform.KeyF9
	KeyF10 = platform.KeyF10
	KeyF11 = platform.KeyF11
	KeyF12 = platform.KeyF12
)
