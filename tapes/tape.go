package tapes

import (
	"errors"
	"fmt"

	"github.com/reusee/taibf/vars"
)

const (
	DefaultSize   = 30_000
	DefaultGrowth = 5_000
)

var ErrLeftBoundExceeded = errors.New("pointer moved left of the first cell")

// Tape is a band of byte cells that extends to the right on demand.
// It never shrinks and has no left extension.
type Tape struct {
	cells   []byte
	pointer int
	origin  int
	growth  int
}

type Options struct {
	Size   int
	Origin int // zero means Size/2
	Growth int
}

func New(opts Options) *Tape {
	if opts.Size < 0 || opts.Origin < 0 || opts.Growth < 0 {
		panic(fmt.Errorf("negative tape option: %+v", opts))
	}
	size := vars.FirstNonZero(opts.Size, DefaultSize)
	origin := vars.FirstNonZero(opts.Origin, size/2)
	if origin >= size {
		panic(fmt.Errorf("tape origin %d out of range [0, %d)", origin, size))
	}
	return &Tape{
		cells:   make([]byte, size),
		pointer: origin,
		origin:  origin,
		growth:  vars.FirstNonZero(opts.Growth, DefaultGrowth),
	}
}

func (t *Tape) MoveRight() {
	if t.pointer+1 >= len(t.cells) {
		t.cells = append(t.cells, make([]byte, t.growth)...)
	}
	t.pointer++
}

func (t *Tape) MoveLeft() error {
	if t.pointer == 0 {
		return ErrLeftBoundExceeded
	}
	t.pointer--
	return nil
}

func (t *Tape) Increment() {
	t.cells[t.pointer]++
}

func (t *Tape) Decrement() {
	t.cells[t.pointer]--
}

func (t *Tape) Read() byte {
	return t.cells[t.pointer]
}

func (t *Tape) Write(b byte) {
	t.cells[t.pointer] = b
}

func (t *Tape) IsZero() bool {
	return t.cells[t.pointer] == 0
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Pointer() int {
	return t.pointer
}

func (t *Tape) Origin() int {
	return t.origin
}

// Peek returns the cell at offset from the pointer without moving it.
func (t *Tape) Peek(offset int) (byte, bool) {
	i := t.pointer + offset
	if i < 0 || i >= len(t.cells) {
		return 0, false
	}
	return t.cells[i], true
}
