package shell

import (
	"errors"
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	want := Config{
		Title:        "GUI Standalone OpenGL",
		Width:        900,
		Height:       500,
		VSync:        true,
		GLMajor:      3,
		GLMinor:      3,
		Background:   [4]float32{0.1, 0.1, 0.1, 1},
		TabListWidth: 200,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DefaultConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigRegisterFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{"-width", "1280", "-height", "720", "-vsync=false", "-title", "demo"})
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Width, want.Height, want.VSync, want.Title = 1280, 720, false, "demo"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"old GL", func(c *Config) { c.GLMajor, c.GLMinor = 3, 2 }},
		{"GL 2", func(c *Config) { c.GLMajor, c.GLMinor = 2, 1 }},
		{"no tab list", func(c *Config) { c.TabListWidth = 0 }},
		{"background", func(c *Config) { c.Background[3] = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, errInvalidConfig) {
				t.Errorf("Validate() = %v, want errInvalidConfig", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.GLMajor, cfg.GLMinor = 4, 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("GL 4.1 rejected: %v", err)
	}
}
