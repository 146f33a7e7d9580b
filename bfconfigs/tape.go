package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/tapes"
	"github.com/reusee/taibf/vars"
)

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (TapeSize) ConfigKey() string {
	return "tape.size"
}

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.Lookup[int](loader, TapeSize(0)),
		tapes.DefaultSize,
	))
}

// TapeOrigin is the initial pointer index. Zero means the middle of the tape.
type TapeOrigin int

var _ configs.Configurable = TapeOrigin(0)

func (TapeOrigin) ConfigKey() string {
	return "tape.origin"
}

var tapeOriginFlag = cmds.Var[int]("-tape-origin")

func (Module) TapeOrigin(
	loader configs.Loader,
) TapeOrigin {
	return TapeOrigin(vars.FirstNonZero(
		*tapeOriginFlag,
		configs.Lookup[int](loader, TapeOrigin(0)),
	))
}

type TapeGrowth int

var _ configs.Configurable = TapeGrowth(0)

func (TapeGrowth) ConfigKey() string {
	return "tape.growth"
}

var tapeGrowthFlag = cmds.Var[int]("-tape-growth")

func (Module) TapeGrowth(
	loader configs.Loader,
) TapeGrowth {
	return TapeGrowth(vars.FirstNonZero(
		*tapeGrowthFlag,
		configs.Lookup[int](loader, TapeGrowth(0)),
		tapes.DefaultGrowth,
	))
}

func (Module) TapeOptions(
	size TapeSize,
	origin TapeOrigin,
	growth TapeGrowth,
) tapes.Options {
	return tapes.Options{
		Size:   int(size),
		Origin: int(origin),
		Growth: int(growth),
	}
}
