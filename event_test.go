package arcade

import (
	"testing"

	"github.com/gogpu/arcade/graphics"
	"github.com/gogpu/arcade/internal/software"
)

func TestKeyEventsCarryKeyConstants(t *testing.T) {
	// Event types and key constants are distinct names: a KeyPressed
	// event can carry the KeyDown arrow key.
	var event Event = KeyPressed{Key: KeyDown}
	pressed, ok := event.(KeyPressed)
	if !ok {
		t.Fatalf("event type: got %T, want KeyPressed", event)
	}
	if pressed.Key != KeyDown {
		t.Errorf("key: got %v, want KeyDown", pressed.Key)
	}

	event = KeyReleased{Key: KeyUp}
	released, ok := event.(KeyReleased)
	if !ok {
		t.Fatalf("event type: got %T, want KeyReleased", event)
	}
	if released.Key != KeyUp {
		t.Errorf("key: got %v, want KeyUp", released.Key)
	}
}

func TestHandleEventQuitStopsLoop(t *testing.T) {
	c := &Context{running: true}
	if err := c.handleEvent(Quit{}); err != nil {
		t.Fatalf("handleEvent: %v", err)
	}
	if c.running {
		t.Error("loop should stop on Quit")
	}
}

func TestHandleEventEscape(t *testing.T) {
	tests := []struct {
		name         string
		quitOnEscape bool
		key          Key
		wantRunning  bool
	}{
		{"escape quits when enabled", true, KeyEscape, false},
		{"escape ignored when disabled", false, KeyEscape, true},
		{"other keys never quit", true, KeySpace, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Context{running: true, quitOnEscape: tt.quitOnEscape}
			if err := c.handleEvent(KeyPressed{Key: tt.key}); err != nil {
				t.Fatalf("handleEvent: %v", err)
			}
			if c.running != tt.wantRunning {
				t.Errorf("running: got %v, want %v", c.running, tt.wantRunning)
			}
		})
	}
}

func TestHandleEventResized(t *testing.T) {
	device, err := software.New(4, 4)
	if err != nil {
		t.Fatalf("software device: %v", err)
	}
	defer device.Close()

	c := &Context{
		gfx:     graphics.NewContext(device, 4, 4),
		device:  device,
		running: true,
	}
	if err := c.handleEvent(Resized{Width: 8, Height: 6}); err != nil {
		t.Fatalf("handleEvent: %v", err)
	}
	if w, h := c.gfx.Size(); w != 8 || h != 6 {
		t.Errorf("backbuffer size: got %dx%d, want 8x6", w, h)
	}
}
