package replay

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/neotower/internal/application/session"
	"github.com/younwookim/neotower/internal/application/state"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
	"github.com/younwookim/neotower/internal/infrastructure/storage"
)

// Result summarises a headless playback
type Result struct {
	Frames      int
	Progress    entity.RunProgress
	Player      entity.Player
	Ended       bool
	RunTime     float64
	LivesLost   int
	Levels      int // levels completed during playback
	Leaderboard []entity.LeaderboardEntry
}

// virtualClock advances only by recorded frame times
type virtualClock struct {
	now time.Time
}

func (c *virtualClock) Now() time.Time { return c.now }

// Run plays data back without a window. The session starts from the
// recorded progress in a throwaway store, and its clock advances by each
// recorded delta so speedrun times match the original run.
func Run(cfg *config.GameConfig, data ReplayData, logger *log.Logger) (*Result, error) {
	r := NewReplayer(data)
	clock := &virtualClock{now: r.StartTime()}

	store := storage.NewMemoryStore()
	if err := storage.SaveProgress(store, data.Start.Progress(clock.now)); err != nil {
		return nil, fmt.Errorf("replay: seed progress: %w", err)
	}

	s, err := session.New(cfg, store, session.Options{
		Seed:   r.Seed(),
		Logger: logger,
		Clock:  clock.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	res := &Result{}
	for {
		input, dt, ok := r.GetInput()
		if !ok || s.Ended() {
			break
		}
		clock.now = clock.now.Add(time.Duration(entity.Clamp(dt, 0, cfg.Physics.MaxFrameDelta) * float64(time.Second)))

		switch s.Tick(dt, input) {
		case state.LifeLost:
			res.LivesLost++
		case state.LevelComplete, state.RunComplete:
			res.Levels++
		}
		res.Frames++
	}

	res.Progress = s.Progress()
	res.Player = *s.World().Player
	res.Ended = s.Ended()
	res.RunTime = s.RunTime()
	res.Leaderboard = s.Leaderboard()
	return res, nil
}
