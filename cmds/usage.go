package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stdout)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer, print each command once
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}

	var lines []usageLine
	for command, ns := range names {
		slices.Sort(ns)
		if command != nil && len(command.Aliases) > 0 {
			// put the primary name first
			ns = slices.DeleteFunc(ns, func(n string) bool {
				return slices.Contains(command.Aliases, n)
			})
			ns = append(ns, command.Aliases...)
		}
		lines = append(lines, usageLine{
			names:   ns,
			command: command,
		})
	}
	slices.SortFunc(lines, func(a, b usageLine) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, line := range lines {
		desc := ""
		if line.command != nil {
			desc = line.command.Description
		}
		fmt.Fprintf(w, "%s%-24s %s\n", indent, strings.Join(line.names, ", "), desc)
		if line.command != nil && len(line.command.Subs) > 0 {
			writeCommands(w, line.command.Subs, depth+1)
		}
	}
}

type usageLine struct {
	names   []string
	command *Command
}
