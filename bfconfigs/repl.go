package bfconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type HistoryFile string

var _ configs.Configurable = HistoryFile("")

func (HistoryFile) ConfigKey() string {
	return "repl.history"
}

var historyFlag = cmds.Var[string]("-history")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	var defaultPath string
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = filepath.Join(home, ".taibf_history")
	}
	return HistoryFile(vars.FirstNonZero(
		*historyFlag,
		configs.Lookup[string](loader, HistoryFile("")),
		defaultPath,
	))
}
