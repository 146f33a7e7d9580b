package taibf

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedLoopEnd   = errors.New("unmatched loop end")
	ErrUnmatchedLoopStart = errors.New("unmatched loop start")
)

// ExecError records where in the program text an execution failed.
type ExecError struct {
	Err      error
	Position int
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v at position %d", e.Err, e.Position)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
