package displays

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/taibf/tapes"
	"github.com/samber/lo"
)

const ruleWidth = 62

const (
	ansiReset     = "\x1b[0m"
	ansiTitle     = "\x1b[1;4m"
	ansiCurrent   = "\x1b[1;44m"
	ansiNeighbour = "\x1b[48;2;50;50;50m"
)

// Render writes a human readable view of the tape around the pointer.
func Render(w io.Writer, view tapes.View, color bool) error {
	b := new(strings.Builder)

	title := "State"
	if color {
		title = ansiTitle + title + ansiReset
	}
	fmt.Fprintf(b, "\n%s\n\n", title)
	fmt.Fprintf(b, "Current position: %d\n\n", view.Position)

	rule := strings.Repeat("-", ruleWidth)
	b.WriteString(rule)
	b.WriteString("\n")

	var left string
	if view.TruncatedLeft() {
		left = "..."
	}
	b.WriteString(left)
	current := view.Pointer - view.Start
	cells := lo.Map(view.Cells, func(c byte, i int) string {
		s := fmt.Sprintf("%4d", c)
		if !color {
			return s
		}
		if i == current {
			return ansiCurrent + s + ansiReset
		}
		return ansiNeighbour + s + ansiReset
	})
	for _, cell := range cells {
		b.WriteString("|")
		b.WriteString(cell)
	}
	b.WriteString("|")
	if view.TruncatedRight() {
		b.WriteString("...")
	}
	b.WriteString("\n")

	if !color {
		// caret under the current cell
		b.WriteString(strings.Repeat(" ", len(left)+current*5+4))
		b.WriteString("^\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
