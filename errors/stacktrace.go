package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// Format implements fmt.Formatter. %+v prints the message followed by the
// stack trace, trimmed of the runtime and of this package frames. %v prints
// the message with the file and line where the error was created.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.Error())
			writeStack(s, stackTrace(e))
			return
		}
		fmt.Fprint(s, e.Error())
		for _, f := range stackTrace(e) {
			if internalFrame(f) {
				continue
			}
			file, line := fileLine(f)
			fmt.Fprintf(s, " [%s:%d]", file, line)
			break
		}
	default:
		fmt.Fprint(s, e.Error())
	}
}

func writeStack(w io.Writer, st errors.StackTrace) {
	for _, f := range st {
		if internalFrame(f) {
			continue
		}
		file, line := fileLine(f)
		fmt.Fprintf(w, "\n%s\n\t%s:%d", funcName(f), file, line)
	}
}

// internalFrame returns true for runtime frames and for frames of this
// package that are not tests.
func internalFrame(f errors.Frame) bool {
	if matchesFunc(f, "runtime.") {
		return true
	}
	if !matchesFunc(f, "github.com/iov-one/pausegov/errors.") {
		return false
	}
	file, _ := fileLine(f)
	return !strings.HasSuffix(file, "_test.go")
}

func matchesFunc(f errors.Frame, prefixes ...string) bool {
	name := funcName(f)
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func funcName(f errors.Frame) string {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func fileLine(f errors.Frame) (string, int) {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(uintptr(f) - 1)
}
