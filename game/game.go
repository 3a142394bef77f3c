// Package game holds the state of a single number guessing game.
//
// A Game owns the secret, the inclusive upper bound of the range [1, bound],
// the attempt count and whether the secret has been found. It is not safe for
// concurrent use; the host calls it from one goroutine.
package game

import (
	"fmt"

	"github.com/wfunc/numberguess/logger"
	"github.com/wfunc/numberguess/random"
	"github.com/wfunc/numberguess/state"
)

// DefaultBound is used by hosts that do not ask the player for a range.
const DefaultBound = 100

const (
	PhaseActive = "active"
	PhaseWon    = "won"
)

// Outcome compares a guess to the secret.
type Outcome string

const (
	OutcomeLow     Outcome = "low"
	OutcomeHigh    Outcome = "high"
	OutcomeCorrect Outcome = "correct"
)

// Result is returned for every accepted guess.
type Result struct {
	Outcome  Outcome `json:"result"`
	Attempts int     `json:"attempts"`
}

type Game struct {
	bound    int
	secret   int
	attempts int
	finished bool

	provider random.Provider
	phases   state.StateMachine
	active   *state.Phase
	won      *state.Phase
}

// New starts a game over [1, bound]. A nil provider means crypto/rand.
func New(bound int, provider random.Provider) (*Game, error) {
	if provider == nil {
		provider = random.NewCryptoProvider()
	}
	g := &Game{provider: provider}

	secret, err := g.draw(bound)
	if err != nil {
		return nil, err
	}

	g.bound, g.secret = bound, secret

	g.active = state.NewPhase(PhaseActive)
	g.active.Enter = func() {
		logger.Log.Debugw("game phase entered", "phase", PhaseActive, "bound", g.bound)
	}
	g.won = state.NewPhase(PhaseWon)
	g.won.Enter = func() {
		logger.Log.Debugw("game phase entered", "phase", PhaseWon, "bound", g.bound)
	}
	g.phases = state.NewBaseStateMachine(g.active)
	// Starting over goes through Reset, so active -> won is the only move.
	g.phases.AddTransition(g.active, g.won, nil)
	return g, nil
}

// Start reinitializes the game over [1, bound]. On error the game is left
// exactly as it was.
func (g *Game) Start(bound int) error {
	secret, err := g.draw(bound)
	if err != nil {
		return err
	}

	g.bound = bound
	g.secret = secret
	g.attempts = 0
	g.finished = false
	g.phases.Reset(g.active)
	return nil
}

// Reset starts over. Without an argument the current bound is kept.
func (g *Game) Reset(bound ...int) error {
	switch len(bound) {
	case 0:
		return g.Start(g.bound)
	case 1:
		return g.Start(bound[0])
	default:
		return newError(KindInvalidBound, fmt.Sprintf("reset takes at most one bound, got %d", len(bound)), nil)
	}
}

// Guess checks value against the secret. Rejected guesses do not count as
// attempts.
func (g *Game) Guess(value int) (Result, error) {
	if g.finished {
		return Result{}, g.alreadyWon()
	}
	return g.compare(value)
}

// GuessInput is Guess for unparsed host input. A finished game is reported
// before the input is looked at.
func (g *Game) GuessInput(raw string) (Result, error) {
	if g.finished {
		return Result{}, g.alreadyWon()
	}
	value, err := ParseGuess(raw)
	if err != nil {
		return Result{}, err
	}
	return g.compare(value)
}

func (g *Game) Attempts() int { return g.attempts }

func (g *Game) Bound() int { return g.bound }

func (g *Game) Finished() bool { return g.finished }

// Phase returns PhaseActive or PhaseWon.
func (g *Game) Phase() string {
	return g.phases.GetCurrentState().GetID()
}

func (g *Game) compare(value int) (Result, error) {
	if value < 1 || value > g.bound {
		return Result{}, newError(KindOutOfRange, fmt.Sprintf("guess %d is outside [1, %d]", value, g.bound), nil)
	}

	var outcome Outcome
	switch {
	case value < g.secret:
		outcome = OutcomeLow
	case value > g.secret:
		outcome = OutcomeHigh
	default:
		outcome = OutcomeCorrect
	}

	if outcome == OutcomeCorrect {
		if err := g.phases.ChangeState(g.won); err != nil {
			return Result{}, newError(KindGameAlreadyWon, fmt.Sprintf("cannot leave %s phase", g.Phase()), err)
		}
		g.finished = true
	}
	g.attempts++
	return Result{Outcome: outcome, Attempts: g.attempts}, nil
}

func (g *Game) alreadyWon() error {
	return newError(KindGameAlreadyWon, fmt.Sprintf("secret already found in %d attempts", g.attempts), nil)
}

// draw validates bound and picks a secret without touching the game.
func (g *Game) draw(bound int) (int, error) {
	if err := validateBound(bound); err != nil {
		return 0, err
	}

	secret, err := g.provider.NextUniform(bound)
	if err != nil {
		return 0, newError(KindRandomnessUnavailable, "secure random source unavailable", err)
	}
	if secret < 1 || secret > bound {
		return 0, newError(KindRandomnessUnavailable, fmt.Sprintf("random provider returned %d outside [1, %d]", secret, bound), nil)
	}
	return secret, nil
}
