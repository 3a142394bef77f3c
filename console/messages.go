package console

import (
	"fmt"

	"github.com/wfunc/numberguess/game"
)

const helpText = `Commands:
  <number>          guess the secret
  restart [bound]   start over, optionally with a new range
  range <bound>     start over with the range 1..bound
  status            show the range and attempt count
  help              show this help
  quit              leave the game`

// describeError turns a failed call into the line shown to the player.
func describeError(err error, bound int) string {
	switch game.KindOf(err) {
	case game.KindInvalidBound:
		return "The range must be a whole number of at least 1."
	case game.KindInvalidGuess:
		return fmt.Sprintf("That is not a whole number. Enter a number between 1 and %d.", bound)
	case game.KindOutOfRange:
		return fmt.Sprintf("Enter a number between 1 and %d.", bound)
	case game.KindGameAlreadyWon:
		return "You already won. Type restart to play again."
	case game.KindRandomnessUnavailable:
		return "Could not pick a secret number because secure randomness is unavailable. Type restart to try again."
	default:
		return "Something went wrong. Type restart to try again."
	}
}

func describeResult(res game.Result) string {
	switch res.Outcome {
	case game.OutcomeLow:
		return fmt.Sprintf("Too low. (attempt %d)", res.Attempts)
	case game.OutcomeHigh:
		return fmt.Sprintf("Too high. (attempt %d)", res.Attempts)
	default:
		if res.Attempts == 1 {
			return "Correct! You got it on the first try."
		}
		return fmt.Sprintf("Correct! You got it in %d attempts.", res.Attempts)
	}
}

func describeStart(bound int) string {
	return fmt.Sprintf("I'm thinking of a number between 1 and %d.", bound)
}
