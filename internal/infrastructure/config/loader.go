package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the tuning file name looked up by Loader.Load
const DefaultFile = "physics.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load loads physics.yaml
func (l *Loader) Load() (*GameConfig, error) {
	return l.LoadFile(DefaultFile)
}

// LoadFile loads a named tuning file relative to the loader root
func (l *Loader) LoadFile(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return cfg, nil
}

// Path returns the on-disk path of a file under the loader root
func (l *Loader) Path(name string) string {
	return filepath.Join(l.basePath, name)
}

// Parse decodes YAML on top of Default, so omitted keys keep their
// default values, and validates the result.
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEmbedded parses the embedded default tuning file
func LoadEmbedded() (*GameConfig, error) {
	return Parse(defaultPhysicsYAML)
}

// Resolve loads the tuning file at path, or the embedded defaults when
// path is empty.
func Resolve(path string) (*GameConfig, error) {
	if path == "" {
		cfg, err := LoadEmbedded()
		if err != nil {
			return Default(), nil
		}
		return cfg, nil
	}
	return NewLoader(filepath.Dir(path)).LoadFile(filepath.Base(path))
}

// Validate checks the values the simulation divides by or indexes with
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, errors.New("display size must be positive"))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, errors.New("framerate must be positive"))
	}
	if c.Physics.MaxFrameDelta <= 0 {
		errs = append(errs, errors.New("max_frame_delta must be positive"))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("friction %v outside [0, 1]", c.Physics.Friction))
	}
	if c.World.LevelsPerWorld <= 0 || c.World.WorldCount <= 0 {
		errs = append(errs, errors.New("levels_per_world and world_count must be positive"))
	}
	if c.Player.MaxJumps < 1 {
		errs = append(errs, errors.New("max_jumps must be at least 1"))
	}
	if c.Progress.StartLives < 1 {
		errs = append(errs, errors.New("start_lives must be at least 1"))
	}
	if c.Progress.CoinsPerLife < 1 {
		errs = append(errs, errors.New("coins_per_life must be at least 1"))
	}
	if c.Progress.ModeCycleEvery < 1 {
		errs = append(errs, errors.New("mode_cycle_every must be at least 1"))
	}
	if c.Scoring.ComboThreshold < 1 {
		errs = append(errs, errors.New("combo_threshold must be at least 1"))
	}
	if c.Progress.LeaderboardSize < 1 {
		errs = append(errs, errors.New("leaderboard_size must be at least 1"))
	}
	return errors.Join(errs...)
}
