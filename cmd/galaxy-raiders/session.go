package main

import (
	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/galaxy-raiders/engine"
	"github.com/lixenwraith/galaxy-raiders/input"
	"github.com/lixenwraith/galaxy-raiders/render"
	"github.com/lixenwraith/galaxy-raiders/status"
)

// session binds one game to a screen for the lifetime of the process
type session struct {
	game     *engine.Game
	renderer *render.TerminalRenderer
	stats    *status.Registry
	fire     *rate.Limiter
}

func newSession(screen tcell.Screen, game *engine.Game, stats *status.Registry, fireRate float64) *session {
	return &session{
		game:     game,
		renderer: render.NewTerminalRenderer(screen),
		stats:    stats,
		fire:     rate.NewLimiter(rate.Limit(fireRate), 1),
	}
}

// apply executes one intent, returns false on quit
func (s *session) apply(intent input.IntentType) bool {
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentPause:
		s.game.TogglePause()
	case input.IntentBoostUp:
		s.game.Boost(engine.DirectionUp)
	case input.IntentBoostDown:
		s.game.Boost(engine.DirectionDown)
	case input.IntentBoostLeft:
		s.game.Boost(engine.DirectionLeft)
	case input.IntentBoostRight:
		s.game.Boost(engine.DirectionRight)
	case input.IntentFire:
		// Key auto-repeat is throttled to the fire rate
		if s.fire.Allow() {
			s.game.Fire()
		}
	}
	return true
}

// step advances the simulation one tick and draws the result
func (s *session) step() {
	s.game.Tick()
	field := s.game.Field()
	s.renderer.RenderFrame(render.Frame{
		Objects:     field.SpaceObjects(),
		FieldWidth:  field.Width(),
		FieldHeight: field.Height(),
		Metrics:     s.stats.Snapshot(),
		Paused:      s.game.Paused(),
	})
}
