package interp

import (
	"fmt"

	"github.com/madeso/lox-go/lang/token"
)

// Note is a clarifying secondary diagnostic attached to a RuntimeError, e.g.
// "did you forget to use new?".
type Note struct {
	Offset  token.Offset
	Message string
}

// RuntimeError is a single runtime diagnostic: it aborts the current program
// run and carries everything the entry point needs to report it through the
// host's diag.Sink.
type RuntimeError struct {
	Offset  token.Offset
	Message string
	Notes   []Note
}

func (e *RuntimeError) Error() string { return e.Message }

func (it *Interpreter) newErr(off token.Offset, format string, args ...any) *RuntimeError {
	return &RuntimeError{Offset: off, Message: fmt.Sprintf(format, args...)}
}

func (it *Interpreter) newErrWithNote(off token.Offset, message string, noteOff token.Offset, note string) *RuntimeError {
	return &RuntimeError{Offset: off, Message: message, Notes: []Note{{Offset: noteOff, Message: note}}}
}

// returnSignal is the control-flow value used to unwind from a `return`
// statement to the enclosing call. It implements error so it can be threaded
// through the same execStmt/eval error-return plumbing as a RuntimeError,
// without resorting to panic/recover for ordinary control flow.
type returnSignal struct {
	Value Value
}

func (r *returnSignal) Error() string { return "return" }

func asReturn(err error) (*returnSignal, bool) {
	rs, ok := err.(*returnSignal)
	return rs, ok
}
