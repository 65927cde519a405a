package oops

import (
	"fmt"

	"github.com/go-stack/stack"
	"github.com/rs/zerolog"
)

// An Error wraps another error with a message and the call stack from the
// point where it was created. It prints like an fmt-wrapped error but carries
// enough context to produce a useful stack trace in log output.
type Error struct {
	Message string
	Wrapped error
	Stack   CallStack
}

func (e *Error) Error() string {
	if e.Wrapped == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func New(wrapped error, format string, args ...any) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Wrapped: wrapped,
		Stack:   Trace(),
	}
}

type CallStack []StackFrame

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// Captures the call stack of the caller, minus runtime frames.
func Trace() CallStack {
	trace := stack.Trace().TrimRuntime()
	frames := make(CallStack, len(trace))
	for i, call := range trace {
		frame := call.Frame()
		frames[i] = StackFrame{
			File:     frame.File,
			Line:     frame.Line,
			Function: frame.Function,
		}
	}
	return frames
}

func (s CallStack) MarshalZerologArray(a *zerolog.Array) {
	for _, frame := range s {
		a.Object(frame)
	}
}

func (f StackFrame) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("file", f.File).
		Int("line", f.Line).
		Str("function", f.Function)
}

// ZerologStackMarshaler teaches zerolog to pull stack traces out of our
// errors. It gets assigned to zerolog.ErrorStackMarshaler at startup.
var ZerologStackMarshaler = func(err error) any {
	if asOops, ok := err.(*Error); ok {
		return asOops.Stack
	}
	return nil
}
