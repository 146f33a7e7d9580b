package taibf

import (
	"bufio"
	"io"
	"strings"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/tapes"
)

const notSkipping = -1

type Engine struct {
	Logger logs.Logger

	tape   *tapes.Tape
	output io.Writer

	position  int
	loopStack []int
	skip      int
	stats     Stats
}

// Stats describes the last execution. Instructions counts dispatched data and I/O instructions;
// brackets and comments are not counted.
type Stats struct {
	Instructions int
	Output       int
	Input        int
}

func NewEngine(tape *tapes.Tape, output io.Writer) *Engine {
	return &Engine{
		tape:      tape,
		output:    output,
		loopStack: make([]int, 0, 16),
		skip:      notSkipping,
	}
}

func (e *Engine) reset() {
	e.position = 0
	e.loopStack = e.loopStack[:0]
	e.skip = notSkipping
	e.stats = Stats{}
}

// Execute runs program against the persistent tape. Runes of input are consumed by ',' in order;
// once input is exhausted ',' does nothing. Tape changes made before an error are kept.
func (e *Engine) Execute(program, input string) (err error) {
	e.reset()
	in := strings.NewReader(input)
	out := bufio.NewWriter(e.output)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
		if e.Logger != nil {
			e.Logger.Debug("executed",
				"instructions", e.stats.Instructions,
				"output", e.stats.Output,
				"input", e.stats.Input,
				"error", err,
			)
		}
	}()

	for e.position < len(program) {
		c := program[e.position]

		switch c {
		case OpLoopStart:
			e.loopStart()
		case OpLoopEnd:
			if err := e.loopEnd(); err != nil {
				return err
			}
		}

		if e.skip != notSkipping {
			e.position++
			continue
		}

		switch c {
		case OpIncrement:
			e.tape.Increment()
		case OpDecrement:
			e.tape.Decrement()
		case OpRight:
			e.tape.MoveRight()
		case OpLeft:
			if err := e.tape.MoveLeft(); err != nil {
				return &ExecError{
					Err:      err,
					Position: e.position,
				}
			}
		case OpOutput:
			if err := out.WriteByte(e.tape.Read()); err != nil {
				return err
			}
			e.stats.Output++
		case OpInput:
			if r, _, err := in.ReadRune(); err == nil {
				e.tape.Write(byte(r))
				e.stats.Input++
			}
		default:
			e.position++
			continue
		}
		e.stats.Instructions++
		e.position++
	}

	if len(e.loopStack) > 0 {
		return &ExecError{
			Err:      ErrUnmatchedLoopStart,
			Position: e.loopStack[0],
		}
	}

	return nil
}

func (e *Engine) loopStart() {
	e.loopStack = append(e.loopStack, e.position)
	// starts nested in a skipped body never re-check the guard
	if e.skip == notSkipping && e.tape.IsZero() {
		e.skip = e.position
	}
}

func (e *Engine) loopEnd() error {
	if len(e.loopStack) == 0 {
		return &ExecError{
			Err:      ErrUnmatchedLoopEnd,
			Position: e.position,
		}
	}
	top := e.loopStack[len(e.loopStack)-1]

	if e.skip != notSkipping {
		e.loopStack = e.loopStack[:len(e.loopStack)-1]
		if top == e.skip {
			e.skip = notSkipping
		}
		return nil
	}

	if e.tape.IsZero() {
		e.loopStack = e.loopStack[:len(e.loopStack)-1]
	} else {
		// resumes after the start, which stays on the stack
		e.position = top
	}
	return nil
}

func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) View(radius int) tapes.View {
	return e.tape.View(radius)
}

func (e *Engine) Peek(offset int) (byte, bool) {
	return e.tape.Peek(offset)
}
