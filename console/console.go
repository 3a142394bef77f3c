// Package console is a line-oriented terminal host for a game session.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wfunc/numberguess/game"
	"github.com/wfunc/numberguess/logger"
	"github.com/wfunc/numberguess/session"
)

type Console struct {
	in      io.Reader
	out     io.Writer
	session *session.Session
}

func New(in io.Reader, out io.Writer, sess *session.Session) *Console {
	return &Console{in: in, out: out, session: sess}
}

// Run bootstraps the session if needed and processes commands until quit,
// end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !c.session.Ready() {
		if err := c.session.Bootstrap(); err != nil {
			c.println(describeError(err, c.session.Bound()))
		} else {
			c.println(describeStart(c.session.Bound()))
		}
	}
	c.println("Type help for commands.")

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		c.prompt()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				c.println("")
				return <-errc
			}
			if c.handle(line) {
				return nil
			}
		}
	}
}

// handle runs one command and reports whether the player asked to quit.
func (c *Console) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		c.println("Bye.")
		return true
	case "help", "?":
		c.println(helpText)
	case "status":
		c.status()
	case "restart", "new", "range":
		if cmd == "range" && len(fields) != 2 {
			c.println("Usage: range <bound>")
			return false
		}
		c.restart(fields[1:])
	default:
		c.guess(line)
	}
	return false
}

func (c *Console) guess(raw string) {
	res, err := c.session.Guess(raw)
	if err != nil {
		c.println(describeError(err, c.session.Bound()))
		return
	}
	c.println(describeResult(res))
	if res.Outcome == game.OutcomeCorrect {
		c.println("Type restart to play again.")
	}
}

func (c *Console) restart(args []string) {
	var err error
	switch len(args) {
	case 0:
		err = c.session.Restart()
	case 1:
		var bound int
		bound, err = game.ParseBound(args[0])
		if err == nil {
			err = c.session.Restart(bound)
		}
	default:
		c.println("Usage: restart [bound]")
		return
	}

	if err != nil {
		c.println(describeError(err, c.session.Bound()))
		return
	}
	c.println(describeStart(c.session.Bound()))
}

func (c *Console) status() {
	if !c.session.Ready() {
		c.println("No game in progress. Type restart to start one.")
		return
	}
	state := "in progress"
	if c.session.Finished() {
		state = "won"
	}
	c.printf("Range 1-%d, %d attempts, %s.\n", c.session.Bound(), c.session.Attempts(), state)
}

func (c *Console) prompt() {
	if c.session.Finished() {
		c.printf("(won) > ")
		return
	}
	c.printf("> ")
}

func (c *Console) println(s string) {
	c.printf("%s\n", s)
}

func (c *Console) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		logger.Log.Warnf("write to console: %v", err)
	}
}
