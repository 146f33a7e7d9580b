package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/sessions"
	"github.com/reusee/taibf/taibf"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)

	programFile  = cmds.Var[string]("-file")
	programInput = cmds.Var[string]("-input")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(sessions.Module),
		modes.ForProduction(),
	)

	var err error
	if *programFile != "" {
		// one program, no REPL and no tape display
		scope.Call(func(
			engine *taibf.Engine,
		) {
			err = runFile(engine, *programFile, *programInput)
		})
	} else {
		scope.Call(func(
			newSession sessions.NewSession,
			history bfconfigs.HistoryFile,
			logger logs.Logger,
		) {
			err = runREPL(newSession, history, logger)
		})
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runFile(engine *taibf.Engine, path string, input string) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return wrap(err)
	}
	return engine.Execute(string(program), input)
}

func runREPL(newSession sessions.NewSession, history bfconfigs.HistoryFile, logger logs.Logger) error {
	rl, err := sessions.NewReadline(history)
	if err != nil {
		return wrap(err)
	}
	defer rl.Close()
	logger.Debug("repl start", "history", history)
	return newSession(rl, os.Stdout).Run(context.Background())
}
