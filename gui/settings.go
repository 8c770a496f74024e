package gui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLayoutFile is where window positions are kept unless WithLayoutFile
// says otherwise.
const DefaultLayoutFile = "gui_layout.yaml"

// settingsSaveInterval is the frame time between saves of a dirty layout.
const settingsSaveInterval = 5.0

// WindowSettings is the persisted placement of one window.
type WindowSettings struct {
	Name      string     `yaml:"name"`
	Pos       [2]float32 `yaml:"pos,flow"`
	Size      [2]float32 `yaml:"size,flow,omitempty"`
	Collapsed bool       `yaml:"collapsed,omitempty"`
}

type layoutFile struct {
	Windows []WindowSettings `yaml:"windows"`
}

type layoutSettings struct {
	path    string
	windows map[string]WindowSettings
	dirty   bool
	timer   float32
}

func newLayoutSettings(path string) *layoutSettings {
	return &layoutSettings{path: path, windows: make(map[string]WindowSettings)}
}

// load reads the layout file. A missing file is not an error.
func (s *layoutSettings) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse layout %s: %w", s.path, err)
	}
	for _, ws := range f.Windows {
		s.windows[ws.Name] = ws
	}
	return nil
}

// apply restores a new window's placement.
func (s *layoutSettings) apply(w *window) {
	ws, ok := s.windows[w.name]
	if !ok {
		return
	}
	w.pos = Vec2{X: ws.Pos[0], Y: ws.Pos[1]}
	if ws.Size[0] > 0 && ws.Size[1] > 0 {
		w.size = Vec2{X: ws.Size[0], Y: ws.Size[1]}
		w.autoFit = false
	}
	w.collapsed = ws.Collapsed
	w.fromSettings = true
}

// record copies the placement of every saved window.
func (s *layoutSettings) record(windows []*window) {
	for _, w := range windows {
		if w.flags&WindowNoSavedSettings != 0 {
			continue
		}
		ws := WindowSettings{
			Name:      w.name,
			Pos:       [2]float32{w.pos.X, w.pos.Y},
			Collapsed: w.collapsed,
		}
		if !w.autoFit {
			ws.Size = [2]float32{w.size.X, w.size.Y}
		}
		s.windows[w.name] = ws
	}
}

// save writes the layout file, sorted by window name.
func (s *layoutSettings) save(windows []*window) error {
	s.record(windows)

	f := layoutFile{Windows: make([]WindowSettings, 0, len(s.windows))}
	for _, ws := range s.windows {
		f.Windows = append(f.Windows, ws)
	}
	sortWindowSettings(f.Windows)

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write layout: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	s.dirty = false
	s.timer = 0
	return nil
}

func sortWindowSettings(ws []WindowSettings) {
	slices.SortFunc(ws, func(a, b WindowSettings) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// tick advances the save timer and reports whether a save is due.
func (s *layoutSettings) tick(dt float32) bool {
	if !s.dirty {
		return false
	}
	s.timer += dt
	return s.timer >= settingsSaveInterval
}

// LoadLayout returns the window placements stored in a layout file.
func LoadLayout(path string) ([]WindowSettings, error) {
	s := newLayoutSettings(path)
	if err := s.load(); err != nil {
		return nil, err
	}
	out := make([]WindowSettings, 0, len(s.windows))
	for _, ws := range s.windows {
		out = append(out, ws)
	}
	sortWindowSettings(out)
	return out, nil
}
