package bfconfigs

import (
	"os"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"golang.org/x/term"
)

const DefaultViewRadius = 5

// ViewRadius is the number of cells shown on each side of the pointer.
type ViewRadius int

var _ configs.Configurable = ViewRadius(0)

func (ViewRadius) ConfigKey() string {
	return "view.radius"
}

var viewRadiusFlag = cmds.Var[*int]("-view-radius")

func (Module) ViewRadius(
	loader configs.Loader,
) ViewRadius {
	if *viewRadiusFlag != nil {
		return ViewRadius(**viewRadiusFlag)
	}
	if n := configs.Lookup[*int](loader, ViewRadius(0)); n != nil {
		return ViewRadius(*n)
	}
	return DefaultViewRadius
}

type Color bool

var _ configs.Configurable = Color(false)

func (Color) ConfigKey() string {
	return "view.color"
}

var noColor = cmds.Switch("-no-color")

func (Module) Color(
	loader configs.Loader,
) Color {
	if *noColor {
		return false
	}
	if c := configs.Lookup[*bool](loader, Color(false)); c != nil {
		return Color(*c)
	}
	return Color(term.IsTerminal(int(os.Stdout.Fd())))
}
