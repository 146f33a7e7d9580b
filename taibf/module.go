package taibf

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/tapes"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

// Output receives the bytes written by '.'.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Engine(
	opts tapes.Options,
	output Output,
	logger logs.Logger,
) *Engine {
	engine := NewEngine(tapes.New(opts), output)
	engine.Logger = logger
	return engine
}
