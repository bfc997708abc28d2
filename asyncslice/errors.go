package asyncslice

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrNotFunction indicates that a required callback was nil.
	ErrNotFunction = errors.New("not a function")

	// ErrReceiverType indicates that the receiver set by WithReceiver does not
	// have the element type of the collection being iterated.
	ErrReceiverType = errors.New("receiver element type does not match collection")
)

// InvocationError is returned before any element is visited when an operation
// cannot call its callback at all.
type InvocationError struct {
	// Op is the operation that rejected the call, e.g. "Map".
	Op string

	// Arg names the offending argument.
	Arg string

	// Err is ErrNotFunction or ErrReceiverType.
	Err error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("asyncslice.%s: %s: %v", e.Op, e.Arg, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// PanicError carries a callback panic whose value was not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("asyncslice: callback panicked: %v", e.Value)
}

// IsNotFunction reports whether err was caused by a nil callback.
func IsNotFunction(err error) bool {
	return errors.Is(err, ErrNotFunction)
}

func notFunction(op, arg string) error {
	return &InvocationError{Op: op, Arg: arg, Err: ErrNotFunction}
}

func recovered(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return &PanicError{Value: p, Stack: debug.Stack()}
}
