// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

// Event is a window or input event produced by PollEvents. It is a
// sealed interface: the concrete types are defined in this package.
type Event interface {
	isEvent()
}

// QuitEvent signals that the user asked to close the window.
type QuitEvent struct{}

// ResizedEvent signals that the window's drawable size changed.
type ResizedEvent struct {
	Width  int
	Height int
}

// KeyDownEvent signals a key press. Key repeats are filtered out.
type KeyDownEvent struct {
	Key Key
}

// KeyUpEvent signals a key release.
type KeyUpEvent struct {
	Key Key
}

// FocusGainedEvent signals that the window gained input focus.
type FocusGainedEvent struct{}

// FocusLostEvent signals that the window lost input focus.
type FocusLostEvent struct{}

func (QuitEvent) isEvent()        {}
func (ResizedEvent) isEvent()     {}
func (KeyDownEvent) isEvent()     {}
func (KeyUpEvent) isEvent()       {}
func (FocusGainedEvent) isEvent() {}
func (FocusLostEvent) isEvent()   {}
