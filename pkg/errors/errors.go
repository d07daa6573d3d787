// Package errors provides structured error handling for the Pulse toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTarget indicates a missing or unusable target element.
	KindTarget
	// KindCallback indicates a failure inside a caller-supplied callback.
	KindCallback
	// KindFrame indicates a frame scheduling or dispatch error.
	KindFrame
	// KindConfig indicates a configuration loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTarget:
		return "target"
	case KindCallback:
		return "callback"
	case KindFrame:
		return "frame"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PulseError represents a structured error in the Pulse toolkit.
type PulseError struct {
	// Op is the operation that failed (e.g., "mutation.Flush").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PulseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PulseError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "frame.Driver.step").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Pulse toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PulseError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
