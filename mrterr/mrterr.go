// package mrterr is how generated code aborts.
//
// Sorry and Fatal raise a SystemError with panic. Nothing in the runtime
// recovers from them; the host converts them to an error at its boundary
// with Recover. Commit is a control marker, not an error.
package mrterr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

const (
	sorryPrefix = "Sorry, unimplemented: "
	fatalPrefix = "Fatal error: "
)

// SystemError is raised by Sorry and Fatal.
type SystemError struct {
	Msg   string
	Stack []byte
}

func (e SystemError) Error() string {
	return e.Msg
}

// Unimplemented returns true if e was raised by Sorry.
func (e SystemError) Unimplemented() bool {
	return strings.HasPrefix(e.Msg, sorryPrefix)
}

// Fatal returns true if e was raised by Fatal.
func (e SystemError) Fatal() bool {
	return strings.HasPrefix(e.Msg, fatalPrefix)
}

// Sorry reports a feature the runtime does not implement.
func Sorry(msg string) {
	panic(SystemError{Msg: sorryPrefix + msg, Stack: debug.Stack()})
}

// Fatal reports an unrecoverable runtime error.
func Fatal(msg string) {
	panic(SystemError{Msg: fatalPrefix + msg, Stack: debug.Stack()})
}

// Fatalf is Fatal with a format string.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Sprintf(format, args...))
}

// Fault is implemented by the contract violations raised by the value layer,
// e.g. an out of range field index.
type Fault interface {
	error
	IsFault()
}

// Commit is raised by generated code to cut away the choice points of a
// committed-choice goal. It carries nothing.
type Commit struct{}

func (Commit) Error() string {
	return "commit"
}

// Environment marks the enclosing execution environment of a commit.
// It carries nothing.
type Environment struct{}

// IsUnimplemented returns true if err is, or wraps, a SystemError raised by Sorry.
func IsUnimplemented(err error) bool {
	var se SystemError
	return errors.As(err, &se) && se.Unimplemented()
}

// IsFatal returns true if err is, or wraps, a SystemError raised by Fatal.
func IsFatal(err error) bool {
	var se SystemError
	return errors.As(err, &se) && se.Fatal()
}

// IsFault returns true if err is, or wraps, a Fault.
func IsFault(err error) bool {
	var f Fault
	return errors.As(err, &f)
}
