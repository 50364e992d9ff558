// Package settings holds the user's style choices and keeps them in sync
// with a YAML file on disk.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/trails/components"
)

// Settings is an immutable snapshot of the style choices the core reads.
type Settings struct {
	Tracking   components.TrackingType   `yaml:"tracking_type"`
	Background components.BackgroundType `yaml:"background_type"`
	Style      components.ParticleStyle  `yaml:"particle_style"`
	DarkMode   bool                      `yaml:"dark_mode"`
}

// Defaults returns subtle tracking, no background, default style, dark mode.
func Defaults() Settings {
	return Settings{
		Tracking:   components.TrackingSubtle,
		Background: components.BackgroundNone,
		Style:      components.StyleDefault,
		DarkMode:   true,
	}
}

// Store owns the current settings. Readers take snapshots; subscribers are
// called after every change, on the goroutine that made it.
type Store struct {
	mu     sync.RWMutex
	cur    Settings
	subs   map[int]func(Settings)
	nextID int
}

// NewStore creates a store holding initial.
func NewStore(initial Settings) *Store {
	return &Store{cur: initial, subs: make(map[int]func(Settings))}
}

// Snapshot returns the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Settings)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Update applies fn to a copy of the settings and stores the result.
// Subscribers are notified only when something changed.
func (s *Store) Update(fn func(*Settings)) {
	s.mu.Lock()
	next := s.cur
	fn(&next)
	if next == s.cur {
		s.mu.Unlock()
		return
	}
	s.cur = next
	subs := make([]func(Settings), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	slog.Debug("settings changed",
		"tracking", next.Tracking,
		"background", next.Background,
		"style", next.Style,
		"dark_mode", next.DarkMode,
	)
	for _, sub := range subs {
		sub(next)
	}
}

// SetTracking switches the particle tracking style.
func (s *Store) SetTracking(t components.TrackingType) {
	s.Update(func(st *Settings) { st.Tracking = t })
}

// SetBackground switches the background theme. Choosing fluid also turns
// particle tracking off, since the fluid theme follows the pointer itself.
func (s *Store) SetBackground(b components.BackgroundType) {
	s.Update(func(st *Settings) { setBackground(st, b) })
}

func setBackground(st *Settings, b components.BackgroundType) {
	st.Background = b
	if b == components.BackgroundFluid {
		st.Tracking = components.TrackingNone
	}
}

// SetStyle switches the particle drawing style.
func (s *Store) SetStyle(p components.ParticleStyle) {
	s.Update(func(st *Settings) { st.Style = p })
}

// SetDarkMode switches between the dark and light palettes.
func (s *Store) SetDarkMode(dark bool) {
	s.Update(func(st *Settings) { st.DarkMode = dark })
}

// CycleTracking advances to the next tracking style, wrapping around.
func (s *Store) CycleTracking() {
	n := len(components.TrackingTypes())
	s.Update(func(st *Settings) { st.Tracking = components.TrackingType((int(st.Tracking) + 1) % n) })
}

// CycleBackground advances to the next background theme, wrapping around.
func (s *Store) CycleBackground() {
	n := len(components.BackgroundTypes())
	s.Update(func(st *Settings) { setBackground(st, components.BackgroundType((int(st.Background)+1)%n)) })
}

// CycleStyle advances to the next particle style, wrapping around.
func (s *Store) CycleStyle() {
	n := len(components.ParticleStyles())
	s.Update(func(st *Settings) { st.Style = components.ParticleStyle((int(st.Style) + 1) % n) })
}

// ToggleDarkMode flips between dark and light mode.
func (s *Store) ToggleDarkMode() {
	s.Update(func(st *Settings) { st.DarkMode = !st.DarkMode })
}

// Load reads settings from path. Keys missing from the file keep their
// current values; unknown names fall back to the defaults of their type.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	loaded := s.Snapshot()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing settings: %w", err)
	}
	s.Update(func(st *Settings) { *st = loaded })
	return nil
}

// LoadOrDefault is Load that treats a missing file as empty.
func (s *Store) LoadOrDefault(path string) error {
	err := s.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Save writes the current settings to path, replacing it atomically.
func (s *Store) Save(path string) error {
	data, err := yaml.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}

// Watch reloads the settings whenever path is written or recreated, until
// ctx is cancelled. The parent directory is watched so atomic replacements
// are seen. It returns once the watcher is running.
func (s *Store) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating settings watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("resolving settings path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching settings directory: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(abs); err != nil {
					slog.Error("settings reload failed", "path", abs, "error", err)
					continue
				}
				slog.Info("settings reloaded", "path", abs)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("settings watcher", "error", err)
			}
		}
	}()
	return nil
}
