package sessions

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taibf"
)

type Module struct {
	dscope.Module
	Taibf  taibf.Module
	Debugs debugs.Module
}

type NewSession func(lines LineReader, out io.Writer) *Session

func (Module) NewSession(
	engine *taibf.Engine,
	radius bfconfigs.ViewRadius,
	color bfconfigs.Color,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
) NewSession {
	return func(lines LineReader, out io.Writer) *Session {
		return &Session{
			Lines:   lines,
			Out:     out,
			Engine:  engine,
			Radius:  radius,
			Color:   color,
			Logger:  logger,
			NewSpan: newSpan,
			Tap:     tap,
		}
	}
}

func NewReadline(history bfconfigs.HistoryFile) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:      commandPrompt,
		HistoryFile: string(history),
	})
}
