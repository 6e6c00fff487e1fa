// Package session owns one run of the game: it ties input, physics,
// enemies and progression together once per frame and performs the level
// transitions and persistence that follow each step.
package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/neotower/internal/application/state"
	"github.com/younwookim/neotower/internal/application/system"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
	"github.com/younwookim/neotower/internal/infrastructure/storage"
)

// ErrLevelLocked is returned when selecting a level above the unlocked one
var ErrLevelLocked = errors.New("level locked")

// Options configures a session
type Options struct {
	Seed   int64
	Logger *log.Logger
	Clock  func() time.Time
}

// Session is a single run: player, level, progress and the systems that
// advance them.
type Session struct {
	config *config.GameConfig
	store  storage.KVStore
	logger *log.Logger
	clock  func() time.Time
	rng    *rand.Rand

	progress entity.RunProgress
	world    *system.World
	state    state.GameState
	board    []entity.LeaderboardEntry
	runTime  float64 // final time once the run is complete

	inputSystem       *system.InputSystem
	physicsSystem     *system.PhysicsSystem
	combatSystem      *system.CombatSystem
	progressionSystem *system.ProgressionSystem

	pending *config.GameConfig

	// OnEvent receives every gameplay event after the step that raised it
	OnEvent func(system.Event)
}

// New loads saved progress and the leaderboard from store and starts the
// saved level. Unreadable saves fall back to a fresh run.
func New(cfg *config.GameConfig, store storage.KVStore, opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := &Session{
		config: cfg,
		store:  store,
		logger: opts.Logger,
		clock:  opts.Clock,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		state:  state.StatePlaying,
	}
	s.buildSystems()

	progress, err := storage.LoadProgress(store, cfg, s.clock())
	if err != nil {
		s.logger.Warn("ignoring saved progress", "error", err)
	}
	s.progress = progress

	board, err := storage.LoadLeaderboard(store)
	if err != nil {
		s.logger.Warn("ignoring saved leaderboard", "error", err)
	}
	s.board = board

	s.world = system.NewWorld(cfg, &s.progress)
	if err := s.startLevel(s.progress.Level); err != nil {
		return nil, err
	}
	s.flushEvents()
	return s, nil
}

func (s *Session) buildSystems() {
	s.inputSystem = system.NewInputSystem(s.config)
	s.physicsSystem = system.NewPhysicsSystem(s.config)
	s.combatSystem = system.NewCombatSystem(s.config, s.rng)
	s.progressionSystem = system.NewProgressionSystem(s.config)
}

// Tick advances the run by one frame. dt is clamped to the configured
// maximum and a NaN dt counts as zero. After the run completes Tick does
// nothing.
func (s *Session) Tick(dt float64, input system.InputState) state.StepResult {
	if s.state == state.StateRunComplete {
		return state.Continue
	}
	if math.IsNaN(dt) {
		dt = 0
	}

	result := s.step(entity.Clamp(dt, 0, s.config.Physics.MaxFrameDelta), input)
	s.finish(result)
	s.flushEvents()
	return result
}

// step runs the systems in order and stops at the first result that ends
// the frame.
func (s *Session) step(dt float64, input system.InputState) state.StepResult {
	w := s.world

	w.AdvanceTimers(dt)
	s.inputSystem.UpdatePlayer(w, input)
	s.physicsSystem.Update(w)

	if r := s.combatSystem.UpdateHazards(w); r.Halts() {
		return r
	}

	s.progressionSystem.CollectCoins(w)
	s.progressionSystem.UsePortals(w)
	s.progressionSystem.TouchCheckpoints(w)
	s.progressionSystem.RevealHiddenRooms(w)

	if r := s.combatSystem.Update(w, dt); r.Halts() {
		return r
	}

	if s.physicsSystem.FellOut(w) {
		return w.Hit(state.CauseFall)
	}

	return s.progressionSystem.CheckGoal(w)
}

func (s *Session) finish(result state.StepResult) {
	switch result {
	case state.LifeLost:
		s.loseLife()
	case state.LevelComplete:
		s.advance()
	case state.RunComplete:
		s.complete()
	}
	s.state = s.state.Next(result)
}

// loseLife takes a life. The last life resets the run. A fall returns the
// player to the active checkpoint; every other death restarts the level.
func (s *Session) loseLife() {
	p := &s.progress
	p.Lives--
	s.logger.Debug("life lost", "cause", s.world.Cause, "level", p.Level, "lives", p.Lives)

	if p.Lives <= 0 {
		s.logger.Info("run reset", "level", p.Level, "score", p.Score)
		p.Level = 1
		p.Lives = s.config.Progress.StartLives
		p.Score = 0
		p.Coins = 0
		p.Mode = entity.PowerNormal
		p.SpeedrunStart = s.clock()
		s.world.Emit(system.RunResetEvent{})
		s.mustStartLevel(1)
		return
	}

	if cp := s.world.Player.Checkpoint; cp != nil && s.world.Cause == state.CauseFall {
		s.world.Player.Respawn(cp.X, cp.Y, s.config.Player.MaxJumps)
		s.save()
		return
	}

	s.mustStartLevel(p.Level)
}

func (s *Session) advance() {
	s.mustStartLevel(s.progress.Level + 1)
}

// complete ends the run and records it on the leaderboard
func (s *Session) complete() {
	elapsed := s.clock().Sub(s.progress.SpeedrunStart).Seconds()
	s.runTime = elapsed
	entry := entity.LeaderboardEntry{Name: s.config.Progress.RunnerName, Time: elapsed}

	board, err := storage.RecordRun(s.store, entry, s.config.Progress.LeaderboardSize)
	if err != nil {
		s.logger.Warn("failed to record run", "error", err)
	}
	if board != nil {
		s.board = board
	}
	s.save()

	s.logger.Info("run complete", "time", fmt.Sprintf("%.1fs", elapsed), "score", s.progress.Score)
	s.world.Emit(system.RunCompleteEvent{Time: elapsed})
}

// startLevel generates level n, spawns the player at its default spawn
// and clears the checkpoint. A pending config takes effect here.
func (s *Session) startLevel(n int) error {
	if s.pending != nil {
		s.config = s.pending
		s.pending = nil
		s.world.Config = s.config
		s.buildSystems()
		s.logger.Info("applied reloaded config")
	}

	lvl, err := system.GenerateLevel(s.config, n)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	w := s.world
	s.progress.Level = n
	w.Level = lvl
	w.LevelTime = 0
	w.BossPhase = 0

	p := w.Player
	p.SetMode(s.progress.Mode, system.PlayerSize(s.config, s.progress.Mode))
	p.Checkpoint = nil
	spawn := system.SpawnPoint(s.config, lvl)
	p.Respawn(spawn.X, spawn.Y, s.config.Player.MaxJumps)

	s.logger.Debug("level start", "level", n, "world", lvl.World, "theme", lvl.Theme.Name)
	w.Emit(system.LevelStartEvent{Level: n, World: lvl.World})
	s.save()
	return nil
}

// mustStartLevel starts a level reached by normal play. Those are always
// in range, so a failure falls back to level 1.
func (s *Session) mustStartLevel(n int) {
	if err := s.startLevel(n); err != nil {
		s.logger.Error("cannot start level", "level", n, "error", err)
		_ = s.startLevel(1)
	}
}

func (s *Session) save() {
	if err := storage.SaveProgress(s.store, s.progress); err != nil {
		s.logger.Warn("failed to save progress", "error", err)
	}
}

func (s *Session) flushEvents() {
	events := s.world.DrainEvents()
	if s.OnEvent == nil {
		return
	}
	for _, e := range events {
		s.OnEvent(e)
	}
}

// Restart begins a new run from level 1, forgetting unlocked levels
func (s *Session) Restart() {
	p := &s.progress
	p.Level = 1
	p.Unlocked = 1
	p.Lives = s.config.Progress.StartLives
	p.Coins = 0
	p.Score = 0
	p.Mode = entity.PowerNormal
	p.SpeedrunStart = s.clock()
	s.state = state.StatePlaying

	s.logger.Info("run restarted")
	s.mustStartLevel(1)
	s.flushEvents()
}

// SelectLevel starts an already unlocked level
func (s *Session) SelectLevel(n int) error {
	if n < 1 || n > s.progress.Unlocked {
		return fmt.Errorf("session: select level %d (unlocked %d): %w", n, s.progress.Unlocked, ErrLevelLocked)
	}
	if err := s.startLevel(n); err != nil {
		return err
	}
	s.state = state.StatePlaying
	s.flushEvents()
	return nil
}

// Reconfigure queues cfg to replace the current tuning at the next level
// start
func (s *Session) Reconfigure(cfg *config.GameConfig) {
	s.pending = cfg
}

// World returns the simulation context for rendering
func (s *Session) World() *system.World {
	return s.world
}

// Progress returns a copy of the run progress
func (s *Session) Progress() entity.RunProgress {
	return s.progress
}

// State returns the current game state
func (s *Session) State() state.GameState {
	return s.state
}

// Ended reports whether the run is complete
func (s *Session) Ended() bool {
	return s.state == state.StateRunComplete
}

// Leaderboard returns the stored runs, fastest first
func (s *Session) Leaderboard() []entity.LeaderboardEntry {
	return s.board
}

// Config returns the tuning in effect
func (s *Session) Config() *config.GameConfig {
	return s.config
}

// RunTime returns the seconds elapsed since the run started, frozen once
// the run is complete
func (s *Session) RunTime() float64 {
	if s.Ended() {
		return s.runTime
	}
	return s.clock().Sub(s.progress.SpeedrunStart).Seconds()
}
