// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import "github.com/veandco/go-sdl2/sdl"

// Key identifies a keyboard key, independent of layout position.
type Key int

// Keys understood by the framework. Keys not listed here arrive as
// KeyUnknown.
const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyUnknown: "Unknown",
	KeyA:       "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E",
	KeyF: "F", KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J",
	KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N", KeyO: "O",
	KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T",
	KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
	KeySpace: "Space", KeyEnter: "Enter", KeyEscape: "Escape",
	KeyTab: "Tab", KeyBackspace: "Backspace",
	KeyLeftShift: "LeftShift", KeyRightShift: "RightShift",
	KeyLeftCtrl: "LeftCtrl", KeyRightCtrl: "RightCtrl",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4",
	KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8",
	KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

var sdlKeys = map[sdl.Keycode]Key{
	sdl.K_a: KeyA, sdl.K_b: KeyB, sdl.K_c: KeyC, sdl.K_d: KeyD,
	sdl.K_e: KeyE, sdl.K_f: KeyF, sdl.K_g: KeyG, sdl.K_h: KeyH,
	sdl.K_i: KeyI, sdl.K_j: KeyJ, sdl.K_k: KeyK, sdl.K_l: KeyL,
	sdl.K_m: KeyM, sdl.K_n: KeyN, sdl.K_o: KeyO, sdl.K_p: KeyP,
	sdl.K_q: KeyQ, sdl.K_r: KeyR, sdl.K_s: KeyS, sdl.K_t: KeyT,
	sdl.K_u: KeyU, sdl.K_v: KeyV, sdl.K_w: KeyW, sdl.K_x: KeyX,
	sdl.K_y: KeyY, sdl.K_z: KeyZ,
	sdl.K_0: Key0, sdl.K_1: Key1, sdl.K_2: Key2, sdl.K_3: Key3,
	sdl.K_4: Key4, sdl.K_5: Key5, sdl.K_6: Key6, sdl.K_7: Key7,
	sdl.K_8: Key8, sdl.K_9: Key9,
	sdl.K_UP: KeyUp, sdl.K_DOWN: KeyDown,
	sdl.K_LEFT: KeyLeft, sdl.K_RIGHT: KeyRight,
	sdl.K_SPACE: KeySpace, sdl.K_RETURN: KeyEnter, sdl.K_ESCAPE: KeyEscape,
	sdl.K_TAB: KeyTab, sdl.K_BACKSPACE: KeyBackspace,
	sdl.K_LSHIFT: KeyLeftShift, sdl.K_RSHIFT: KeyRightShift,
	sdl.K_LCTRL: KeyLeftCtrl, sdl.K_RCTRL: KeyRightCtrl,
	sdl.K_LALT: KeyLeftAlt, sdl.K_RALT: KeyRightAlt,
	sdl.K_F1: KeyF1, sdl.K_F2: KeyF2, sdl.K_F3: KeyF3, sdl.K_F4: KeyF4,
	sdl.K_F5: KeyF5, sdl.K_F6: KeyF6, sdl.K_F7: KeyF7, sdl.K_F8: KeyF8,
	sdl.K_F9: KeyF9, sdl.K_F10: KeyF10, sdl.K_F11: KeyF11, sdl.K_F12: KeyF12,
}

// keyFromSDL maps an SDL keycode to a Key.
func keyFromSDL(code sdl.Keycode) Key {
	if k, ok := sdlKeys[code]; ok {
		return k
	}
	return KeyUnknown
}
