package main

import (
	"github.com/rs/zerolog"

	"github.com/go-theft-auto/standalone/gui/backend/opengl"
	"github.com/go-theft-auto/standalone/internal/shell"
)

// platform adapts the GLFW/OpenGL backend to shell.Platform.
type platform struct {
	*opengl.Platform
}

func newPlatform(log zerolog.Logger) platform {
	return platform{Platform: opengl.NewPlatform(log)}
}

func (p platform) CreateWindow(cfg shell.Config) (shell.Window, error) {
	w, err := p.Platform.CreateWindow(opengl.WindowConfig{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		GLMajor: cfg.GLMajor,
		GLMinor: cfg.GLMinor,
		VSync:   cfg.VSync,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (p platform) NewRenderer(width, height int) (shell.Renderer, error) {
	r, err := opengl.NewRenderer(width, height)
	if err != nil {
		return nil, err
	}
	return r, nil
}

var _ shell.Platform = platform{}
