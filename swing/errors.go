package swing

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies failures raised by the lexer, parser and evaluator.
type ErrorKind int

const (
	IllegalCharacter ErrorKind = iota
	ExpectedCharacter
	InvalidSyntax
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalCharacter:
		return "Illegal Character"
	case ExpectedCharacter:
		return "Expected Character"
	case InvalidSyntax:
		return "Invalid Syntax"
	case RuntimeError:
		return "Runtime Error"
	default:
		return "Error(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a terminal failure from any stage. Start and End delimit the
// offending source span; Context is set for runtime errors only.
type Error struct {
	Kind    ErrorKind
	Details string
	Start   Position
	End     Position
	Context *Context
}

func newError(kind ErrorKind, start, end Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Details: fmt.Sprintf(format, args...), Start: start, End: end}
}

func newRuntimeError(start, end Position, ctx *Context, format string, args ...any) *Error {
	err := newError(RuntimeError, start, end, format, args...)
	err.Context = ctx
	return err
}

func (e *Error) Error() string {
	if e.Kind != RuntimeError {
		return fmt.Sprintf("%s: %s", e.Kind, e.Details)
	}
	var b strings.Builder
	b.WriteString(e.Traceback())
	fmt.Fprintf(&b, "%s: %s", e.Kind, e.Details)
	b.WriteString("\n\n")
	b.WriteString(e.CodeFrame())
	return b.String()
}

// Traceback lists the context frames from the root down to the frame the
// error was raised in.
func (e *Error) Traceback() string {
	var frames []string
	pos := &e.Start
	for ctx := e.Context; ctx != nil; ctx = ctx.Parent {
		line := "?"
		source := "<unknown>"
		if pos != nil {
			line = strconv.Itoa(pos.Line + 1)
			source = pos.Source
		}
		frames = append(frames, fmt.Sprintf("  File %s, line %s, in %s\n", source, line, ctx.DisplayName))
		pos = ctx.ParentEntryPos
	}

	var b strings.Builder
	b.WriteString("Traceback (most recent call last):\n")
	for i := len(frames) - 1; i >= 0; i-- {
		b.WriteString(frames[i])
	}
	return b.String()
}

// CodeFrame draws the source line(s) of the span with carets underneath.
func (e *Error) CodeFrame() string {
	return stringWithArrows(e.Start.Text, e.Start, e.End)
}
