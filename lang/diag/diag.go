// Package diag implements the host-provided error sink used by every stage
// of the pipeline (scanner, parser, resolver, interpreter). It mirrors the
// shape of go/scanner's ErrorList: diagnostics accumulate rather than abort
// a pass, can be sorted into source order, and collapse into a single error
// value for callers that just want pass/fail.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/madeso/lox-go/lang/token"
)

// Severity distinguishes a primary error from a clarifying note.
type Severity int

const (
	SeverityError Severity = iota
	SeverityNote
)

func (s Severity) String() string {
	if s == SeverityNote {
		return "note"
	}
	return "error"
}

// Diagnostic is a single (offset, message) pair tagged with its severity.
type Diagnostic struct {
	Offset   token.Offset
	Message  string
	Severity Severity
}

func (d Diagnostic) String() string {
	if d.Offset.Source == nil {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	line, col := d.Offset.Source.Position(d.Offset.Start)
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Offset.Source.Name, line, col, d.Severity, d.Message)
}

// Sink is the interface every pipeline stage reports diagnostics through. It
// is implemented by *List, and hosts may provide their own to stream
// diagnostics elsewhere (e.g. an LSP).
type Sink interface {
	OnError(off token.Offset, message string)
	OnNote(off token.Offset, message string)
}

// List accumulates diagnostics in the order reported and implements error,
// so a pipeline stage can return it directly: a nil *List (or one with no
// error-severity entries) is considered success.
type List struct {
	Diagnostics []Diagnostic
}

var _ Sink = (*List)(nil)

func (l *List) OnError(off token.Offset, message string) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Offset: off, Message: message, Severity: SeverityError})
}

func (l *List) OnErrorf(off token.Offset, format string, args ...any) {
	l.OnError(off, fmt.Sprintf(format, args...))
}

func (l *List) OnNote(off token.Offset, message string) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Offset: off, Message: message, Severity: SeverityNote})
}

// ErrorCount returns the number of error-severity (non-note) diagnostics.
func (l *List) ErrorCount() int {
	n := 0
	for _, d := range l.Diagnostics {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Sort orders diagnostics by start offset. The sort is stable, so entries
// with equal start offsets keep their insertion order; a note whose offset
// differs from its error's is placed by its own offset, not next to the
// error.
func (l *List) Sort() {
	sort.SliceStable(l.Diagnostics, func(i, j int) bool {
		return l.Diagnostics[i].Offset.Start < l.Diagnostics[j].Offset.Start
	})
}

// Err returns l as an error if it contains at least one error-severity
// diagnostic, else nil. This lets a *List be returned directly from a
// function with an `error` result.
func (l *List) Err() error {
	if l == nil || l.ErrorCount() == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	var sb strings.Builder
	for i, d := range l.Diagnostics {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}
