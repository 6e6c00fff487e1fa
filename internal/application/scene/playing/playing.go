// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/neotower/internal/application/replay"
	"github.com/younwookim/neotower/internal/application/scene"
	"github.com/younwookim/neotower/internal/application/session"
	"github.com/younwookim/neotower/internal/application/system"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
	"github.com/younwookim/neotower/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorPlatform   = color.RGBA{0x5a, 0x4a, 0x3a, 255}
	colorMoving     = color.RGBA{0x8a, 0x6a, 0x4a, 255}
	colorSpike      = color.RGBA{0xd0, 0xd0, 0xd0, 255}
	colorLava       = color.RGBA{0xff, 0x55, 0x22, 255}
	colorFireball   = color.RGBA{0xff, 0x99, 0x00, 255}
	colorCoin       = color.RGBA{0xff, 0xd7, 0x00, 255}
	colorRareCoin   = color.RGBA{0x9b, 0x5c, 0xff, 255}
	colorPortal     = color.RGBA{0x6f, 0x3c, 0xff, 180}
	colorCheckpoint = color.RGBA{0xcc, 0xcc, 0xcc, 255}
	colorActiveCP   = color.RGBA{0x3c, 0xd0, 0x70, 255}
	colorHiddenRoom = color.RGBA{0xff, 0xff, 0xff, 60}
	colorGoal       = color.RGBA{0xff, 0xff, 0x66, 255}
	colorEnemy      = color.RGBA{0xc8, 0x3c, 0x3c, 255}
	colorFlyer      = color.RGBA{0x70, 0x50, 0xa0, 255}
	colorHopper     = color.RGBA{0x4c, 0xa8, 0x4c, 255}
	colorBoss       = color.RGBA{0x80, 0x10, 0x30, 255}
	colorPlayerFire = color.RGBA{0xff, 0x81, 0x3a, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{0xe0, 0x30, 0x30, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 170}
)

const (
	skyBands     = 12
	bossBarWidth = 180.0
	bannerTime   = 1.2 // seconds a gameplay message stays on screen
	shakeDecay   = 0.85
)

// Options configures a Playing scene
type Options struct {
	Logger *log.Logger

	// RecordPath enables input recording, saved on exit
	RecordPath string
	Seed       int64

	// Watcher feeds tuning reloads into the session
	Watcher *config.Watcher
}

// Playing is the main gameplay scene
type Playing struct {
	session *session.Session
	input   *system.InputSystem
	logger  *log.Logger
	screenW int
	screenH int
	paused  bool

	// Feedback
	banner      string
	bannerTimer float64
	shake       float64

	watcher *config.Watcher

	// Input recording
	recorder   *Recorder
	recordPath string
}

// New creates a new Playing scene around a running session.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(sess *session.Session, opts Options) *Playing {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := sess.Config()

	p := &Playing{
		session:    sess,
		input:      system.NewInputSystem(cfg),
		logger:     opts.Logger,
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		watcher:    opts.Watcher,
		recordPath: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Seed, replay.StartFromProgress(sess.Progress()))
		p.logger.Info("recording enabled", "path", opts.RecordPath, "seed", opts.Seed)
	}

	sess.OnEvent = p.onEvent
	return p
}

// Session returns the session driven by this scene
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollReloads()
	p.decayFeedback(dt)

	if p.session.Ended() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.restart()
		}
		return nil, nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.input.GetInput()
	p.step(dt, input)

	return nil, nil // nil = stay on this scene
}

// step records and applies one frame of input
func (p *Playing) step(dt float64, input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input, dt)
	}
	p.session.Tick(dt, input)
}

func (p *Playing) pollReloads() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case r, ok := <-p.watcher.Reloads:
			if !ok {
				p.watcher = nil
				return
			}
			if r.Err != nil {
				p.logger.Warn("config reload failed", "error", r.Err)
				continue
			}
			p.logger.Info("config reloaded, applies at next level")
			p.session.Reconfigure(r.Config)
			p.endRecording("config reloaded")
		default:
			return
		}
	}
}

// restart begins a fresh run. The recording ends first since a replay
// cannot reproduce the reset.
func (p *Playing) restart() {
	p.endRecording("run restarted")
	p.session.Restart()
}

// endRecording stops and saves an active recording
func (p *Playing) endRecording(reason string) {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()
	p.logger.Info("recording stopped", "reason", reason)
	p.saveRecording()
}

func (p *Playing) decayFeedback(dt float64) {
	p.bannerTimer = math.Max(0, p.bannerTimer-dt)
	p.shake *= shakeDecay
	if p.shake < 0.1 {
		p.shake = 0
	}
}

func (p *Playing) showBanner(text string) {
	p.banner = text
	p.bannerTimer = bannerTime
}

// onEvent turns gameplay events into on-screen feedback
func (p *Playing) onEvent(e system.Event) {
	switch ev := e.(type) {
	case system.ComboEvent:
		p.showBanner(fmt.Sprintf("Combo x%d +%d", ev.Length, ev.Bonus))
	case system.ExtraLifeEvent:
		p.showBanner("1UP!")
	case system.CheckpointEvent:
		p.showBanner("Checkpoint!")
	case system.HiddenRoomEvent:
		p.showBanner("Secret room!")
	case system.BossPhaseEvent:
		p.showBanner(fmt.Sprintf("Boss phase %d", ev.Phase+1))
		p.shake = 4
	case system.HitEvent:
		p.shake = 6
		p.logger.Debug("hit", "cause", ev.Cause)
	case system.LevelStartEvent:
		p.showBanner(fmt.Sprintf("Level %d", ev.Level))
	case system.LevelCompleteEvent:
		p.logger.Debug("level complete", "level", ev.Level, "time_bonus", ev.TimeBonus)
	case system.RunCompleteEvent:
		p.showBanner("Tower cleared!")
	case system.RunResetEvent:
		p.showBanner("Game over")
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	if err := p.recorder.Save(p.recordPath); err != nil {
		p.logger.Error("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "path", p.recordPath, "frames", p.recorder.FrameCount())
}

// cameraY keeps the player slightly below the middle of the screen,
// clamped to the level.
func cameraY(playerY, levelHeight float64, screenH int) float64 {
	h := float64(screenH)
	return entity.Clamp(playerY-h*0.55, 0, math.Max(0, levelHeight-h))
}

// bossBarFill returns the filled width of the boss health bar
func bossBarFill(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	return bossBarWidth * entity.Clamp(float64(hp)/float64(maxHP), 0, 1)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func enemyColor(e *entity.Enemy) color.RGBA {
	switch e.Category() {
	case entity.CategoryFlyer:
		return colorFlyer
	case entity.CategoryHopper:
		return colorHopper
	case entity.CategoryBoss:
		return colorBoss
	case entity.CategoryProjectile:
		return colorPlayerFire
	default:
		return colorEnemy
	}
}

func fillRect(screen *ebiten.Image, r entity.Rect, camY float64, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y-camY), float32(r.W), float32(r.H), clr, false)
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	w := p.session.World()
	lvl := w.Level
	camY := cameraY(w.Player.Y, lvl.Height, p.screenH)
	if p.shake > 0 {
		camY += math.Sin(w.TotalTime*60) * p.shake
	}

	p.drawSky(screen, lvl.Theme)
	p.drawLevel(screen, lvl, camY)
	p.drawEnemies(screen, lvl, camY)
	p.drawPlayer(screen, w.Player, camY)
	p.drawUI(screen)

	if p.paused {
		p.drawPauseOverlay(screen)
	}
	if p.session.Ended() {
		p.drawRunCompleteOverlay(screen)
	}
}

func (p *Playing) drawSky(screen *ebiten.Image, theme entity.Theme) {
	bandH := float64(p.screenH) / skyBands
	for i := 0; i < skyBands; i++ {
		c := lerpColor(theme.SkyTop, theme.SkyBot, float64(i)/float64(skyBands-1))
		vector.FillRect(screen, 0, float32(float64(i)*bandH), float32(p.screenW), float32(bandH+1), c, false)
	}
}

func (p *Playing) drawLevel(screen *ebiten.Image, lvl *entity.Level, camY float64) {
	for i, pl := range lvl.Platforms {
		c := colorPlatform
		switch {
		case i == 0:
			c = lvl.Theme.Ground
		case pl.Moving:
			c = colorMoving
		}
		fillRect(screen, pl.Rect, camY, c)
	}

	for _, hr := range lvl.HiddenRooms {
		if hr.Open {
			fillRect(screen, hr.Rect, camY, colorHiddenRoom)
		}
	}

	for _, h := range lvl.Hazards {
		c := colorSpike
		switch h.Kind {
		case entity.HazardLava:
			c = colorLava
		case entity.HazardFireball:
			c = colorFireball
		}
		fillRect(screen, h.Rect, camY, c)
	}

	for _, c := range lvl.Coins {
		if c.Taken {
			continue
		}
		clr := colorCoin
		if c.Rare {
			clr = colorRareCoin
		}
		fillRect(screen, c.Rect, camY, clr)
	}

	for _, pt := range lvl.Portals {
		fillRect(screen, pt.Rect, camY, colorPortal)
	}

	for _, cp := range lvl.Checkpoints {
		c := colorCheckpoint
		if cp.Active {
			c = colorActiveCP
		}
		fillRect(screen, cp.Rect, camY, c)
	}

	fillRect(screen, lvl.Goal, camY, colorGoal)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, lvl *entity.Level, camY float64) {
	for _, e := range lvl.Enemies {
		if e.Dead {
			continue
		}
		fillRect(screen, e.Rect, camY, enemyColor(e))
	}

	if boss := lvl.Boss(); boss != nil {
		x := float32(float64(p.screenW)/2 - bossBarWidth/2)
		vector.FillRect(screen, x, 28, bossBarWidth, 8, colorHealthBG, false)
		vector.FillRect(screen, x, 28, float32(bossBarFill(boss.HP, boss.MaxHP)), 8, colorHealthFG, false)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pl *entity.Player, camY float64) {
	c, ok := entity.PowerColors[pl.Mode]
	if !ok {
		c = entity.PowerColors[entity.PowerNormal]
	}
	body := pl.Rect
	if pl.IsSliding() {
		// crouched silhouette
		body.Y += body.H / 2
		body.H /= 2
	}
	fillRect(screen, body, camY, c)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	for i, line := range hudLines(p.session) {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*14)
	}
	if p.bannerTimer > 0 {
		ebitenutil.DebugPrintAt(screen, p.banner, p.screenW/2-len(p.banner)*3, p.screenH/3)
	}
}

// hudLines returns the heads-up display text
func hudLines(s *session.Session) []string {
	w := s.World()
	prog := s.Progress()
	return []string{
		fmt.Sprintf("World %d: %s", w.Level.World, w.Level.Theme.Name),
		fmt.Sprintf("Level %d/%d  Lives %d  Coins %d", prog.Level, s.Config().World.MaxLevel(), prog.Lives, prog.Coins),
		fmt.Sprintf("Score %d  Time %s", prog.Score, formatTime(s.RunTime())),
		fmt.Sprintf("Mode %s (%s)", prog.Mode, w.Player.Animation()),
	}
}

// formatTime renders seconds as m:ss.t
func formatTime(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	m := int(sec) / 60
	return fmt.Sprintf("%d:%04.1f", m, sec-float64(m*60))
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

func (p *Playing) drawRunCompleteOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	for i, line := range leaderboardLines(p.session) {
		ebitenutil.DebugPrintAt(screen, line, p.screenW/2-90, p.screenH/3+i*16)
	}
}

// leaderboardLines returns the end-of-run summary and best times
func leaderboardLines(s *session.Session) []string {
	lines := []string{
		"TOWER CLEARED",
		fmt.Sprintf("Time %s  Score %d", formatTime(s.RunTime()), s.Progress().Score),
		"",
		"Best runs",
	}
	for i, e := range storage.Top(s.Leaderboard(), s.Config().Progress.LeaderboardShown) {
		lines = append(lines, fmt.Sprintf("%d. %-8s %s", i+1, e.Name, formatTime(e.Time)))
	}
	return append(lines, "", "Press R to play again")
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("playing", "level", p.session.Progress().Level)
}

// OnExit saves the recording and stops the config watcher
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.recorder.Stop()
		p.saveRecording()
	}
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			p.logger.Warn("failed to close config watcher", "error", err)
		}
		p.watcher = nil
	}
}
