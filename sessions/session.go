package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/e5"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/displays"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taibf"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

const (
	QuitCommand = "quit"
	TapCommand  = "/tap"

	commandPrompt      = "Next command: "
	continuationPrompt = "... "
	inputPrompt        = "Please enter program input: "
)

type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = new(readline.Instance)

// Session feeds programs read from Lines to one Engine, rendering the tape after every turn.
type Session struct {
	Lines   LineReader
	Out     io.Writer
	Engine  *taibf.Engine
	Radius  bfconfigs.ViewRadius
	Color   bfconfigs.Color
	Logger  logs.Logger
	NewSpan logs.NewSpan
	Tap     debugs.Tap
}

func (s *Session) Run(ctx context.Context) error {
	if err := s.turn(ctx, ""); err != nil {
		return endOrWrap(err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		program, err := s.readProgram()
		if err != nil {
			return endOrWrap(err)
		}
		program = strings.TrimSpace(program)

		switch program {
		case QuitCommand:
			s.Logger.InfoContext(ctx, "session end")
			return nil
		case TapCommand:
			s.tap(ctx)
			continue
		}

		if err := s.turn(ctx, program); err != nil {
			return endOrWrap(err)
		}
	}
}

// Balance is the number of loop starts in text minus the number of loop ends.
func Balance(text string) int {
	return strings.Count(text, string(rune(taibf.OpLoopStart))) -
		strings.Count(text, string(rune(taibf.OpLoopEnd)))
}

// readProgram reads lines until the loops they open are closed.
// A negative balance is returned at once so the engine reports the stray loop end.
func (s *Session) readProgram() (string, error) {
	s.Lines.SetPrompt(commandPrompt)
	var lines []string
	balance := 0
	for {
		line, err := s.Lines.Readline()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
		balance += Balance(line)
		if balance <= 0 {
			return strings.Join(lines, "\n"), nil
		}
		s.Lines.SetPrompt(continuationPrompt)
	}
}

func (s *Session) turn(ctx context.Context, program string) error {
	ctx, _ = s.NewSpan(ctx, "")

	var input string
	if strings.ContainsRune(program, taibf.OpInput) {
		s.Lines.SetPrompt(inputPrompt)
		line, err := s.Lines.Readline()
		if err != nil {
			return err
		}
		input = strings.TrimSpace(line)
	}

	s.Logger.DebugContext(ctx, "execute",
		"program", program,
		"input", input,
	)
	if err := s.Engine.Execute(program, input); err != nil {
		err = logs.WrapSpan(ctx, err)
		s.Logger.ErrorContext(ctx, "execute", "error", err)
		if _, err := fmt.Fprintf(s.Out, "\nerror: %v\n", err); err != nil {
			return err
		}
	}

	return displays.Render(s.Out, s.Engine.View(int(s.Radius)), bool(s.Color))
}

func (s *Session) tap(ctx context.Context) {
	view := s.Engine.View(int(s.Radius))
	s.Tap(ctx, "tape", map[string]any{
		"position": view.Position,
		"pointer":  view.Pointer,
		"start":    view.Start,
		"cells":    view.Cells,
		"len":      view.Len,
		"peek": func(offset int) int {
			v, _ := s.Engine.Peek(offset)
			return int(v)
		},
	})
}

func endOrWrap(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return wrap(err)
}
