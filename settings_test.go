package arcade

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/arcade/graphics"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
title: Test Game
width: 800
height: 600
resizable: true
fullscreen: false
vsync: false
show_mouse: false
filter_mode: linear
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Title != "Test Game" || s.Width != 800 || s.Height != 600 {
		t.Errorf("window fields: %+v", s)
	}
	if !s.Resizable || s.Fullscreen || s.Vsync || s.ShowMouse {
		t.Errorf("flag fields: %+v", s)
	}
	if s.filter() != graphics.FilterModeLinear {
		t.Errorf("filter: got %v, want linear", s.filter())
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("title: Partial\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	def := DefaultSettings()
	if s.Title != "Partial" {
		t.Errorf("title: got %q", s.Title)
	}
	if s.Width != def.Width || s.Height != def.Height || s.Vsync != def.Vsync {
		t.Errorf("defaults not kept: %+v", s)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "title: [unclosed"},
		{"zero width", "width: 0\nheight: 600"},
		{"bad filter", "filter_mode: cubic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSettings(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
