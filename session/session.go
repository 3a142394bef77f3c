// session/session.go
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wfunc/numberguess/game"
	"github.com/wfunc/numberguess/logger"
	"github.com/wfunc/numberguess/random"
)

// Recorder receives game activity. monitor.Monitor implements it.
type Recorder interface {
	ObserveStart(bound int)
	ObserveGuess(res game.Result)
	ObserveRejected(kind game.Kind)
}

type nopRecorder struct{}

func (nopRecorder) ObserveStart(int) {}

func (nopRecorder) ObserveGuess(game.Result) {}

func (nopRecorder) ObserveRejected(game.Kind) {}

// Session is the host's single game slot. The game is created lazily so a
// failed bootstrap can be retried with Restart.
type Session struct {
	ID           string
	DefaultBound int
	CreatedAt    time.Time
	LastActive   time.Time

	game     *game.Game
	provider random.Provider
	recorder Recorder
	lastErr  error
}

func NewSession(defaultBound int, provider random.Provider, recorder Recorder) *Session {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	now := time.Now()
	return &Session{
		ID:           uuid.New().String(),
		DefaultBound: defaultBound,
		CreatedAt:    now,
		LastActive:   now,
		provider:     provider,
		recorder:     recorder,
	}
}

func (s *Session) GetID() string {
	return s.ID
}

// Bootstrap starts the first game with the default bound.
func (s *Session) Bootstrap() error {
	return s.Start(s.DefaultBound)
}

// Start begins a new game over [1, bound], replacing any game in progress.
func (s *Session) Start(bound int) error {
	s.LastActive = time.Now()

	var err error
	if s.game == nil {
		var g *game.Game
		g, err = game.New(bound, s.provider)
		if err == nil {
			s.game = g
		}
	} else {
		err = s.game.Start(bound)
	}
	if err != nil {
		return s.reject("start", err)
	}

	s.lastErr = nil
	s.recorder.ObserveStart(bound)
	logger.Log.Infow("game started", "session", s.ID, "bound", bound)
	return nil
}

// Restart resets the game, keeping the current bound unless one is given.
// Before any game exists it falls back to the default bound.
func (s *Session) Restart(bound ...int) error {
	if len(bound) > 1 {
		return s.reject("restart", &game.Error{
			Kind:    game.KindInvalidBound,
			Message: fmt.Sprintf("restart takes at most one bound, got %d", len(bound)),
		})
	}
	if s.game == nil {
		b := s.DefaultBound
		if len(bound) == 1 {
			b = bound[0]
		}
		return s.Start(b)
	}

	s.LastActive = time.Now()
	if err := s.game.Reset(bound...); err != nil {
		return s.reject("restart", err)
	}
	s.lastErr = nil
	s.recorder.ObserveStart(s.game.Bound())
	logger.Log.Infow("game restarted", "session", s.ID, "bound", s.game.Bound())
	return nil
}

// Guess submits raw player input.
func (s *Session) Guess(raw string) (game.Result, error) {
	s.LastActive = time.Now()
	if s.game == nil {
		return game.Result{}, s.reject("guess", s.noGame())
	}

	res, err := s.game.GuessInput(raw)
	if err != nil {
		return res, s.reject("guess", err)
	}

	s.recorder.ObserveGuess(res)
	logger.Log.Debugw("guess accepted", "session", s.ID, "outcome", res.Outcome, "attempts", res.Attempts)
	if res.Outcome == game.OutcomeCorrect {
		logger.Log.Infow("game won", "session", s.ID, "attempts", res.Attempts, "bound", s.game.Bound())
	}
	return res, nil
}

// Ready reports whether a game exists.
func (s *Session) Ready() bool {
	return s.game != nil
}

// Attempts returns 0 while no game exists.
func (s *Session) Attempts() int {
	if s.game == nil {
		return 0
	}
	return s.game.Attempts()
}

// Bound falls back to DefaultBound while no game exists.
func (s *Session) Bound() int {
	if s.game == nil {
		return s.DefaultBound
	}
	return s.game.Bound()
}

func (s *Session) Finished() bool {
	return s.game != nil && s.game.Finished()
}

// noGame explains why there is nothing to guess: the only way to be without
// a game is a failed start.
func (s *Session) noGame() error {
	return &game.Error{
		Kind:    game.KindRandomnessUnavailable,
		Message: "no game in progress",
		Err:     s.lastErr,
	}
}

func (s *Session) reject(op string, err error) error {
	kind := game.KindOf(err)
	s.recorder.ObserveRejected(kind)
	if kind == game.KindRandomnessUnavailable && op != "guess" {
		s.lastErr = err
	}

	switch kind {
	case game.KindRandomnessUnavailable, game.KindUnknown:
		logger.Log.Errorw(op+" failed", "session", s.ID, "kind", kind, "error", err)
	default:
		logger.Log.Debugw(op+" rejected", "session", s.ID, "kind", kind, "error", err)
	}
	return err
}
