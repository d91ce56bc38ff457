package pipe

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PipeError reports the step of a pipe that failed. The original error is
// kept in Source and is reachable through errors.Is / errors.As.
type PipeError struct {
	Message string
	Source  error
	Name    string
	Index   int

	stack errors.StackTrace
}

func newPipeError(index int, fn any, source error) *PipeError {
	name := funcName(fn)

	st, ok := source.(stackTracer)
	if !ok {
		st = errors.WithStack(source).(stackTracer)
	}

	return &PipeError{
		Message: fmt.Sprintf("pipe(%s) at index %d: %s", name, index, source.Error()),
		Source:  source,
		Name:    name,
		Index:   index,
		stack:   st.StackTrace(),
	}
}

func (e *PipeError) Error() string {
	return e.Message
}

func (e *PipeError) Unwrap() error {
	return e.Source
}

// StackTrace is the stack of the source error, or the stack at the point the
// step failed when the source carried none.
func (e *PipeError) StackTrace() errors.StackTrace {
	return e.stack
}

func (e *PipeError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Message)
			e.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Message)
	}
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "unknown"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil || f.Name() == "" {
		return "unknown"
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func panicked(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return errors.Errorf("%v", v)
}
