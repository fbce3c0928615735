package loader

import (
	"fmt"
	"sort"
	"strings"
)

type ParseError struct {
	msg  string
	args map[string]any
	err  error
}

func newParseError(msg string, err error, args map[string]any) *ParseError {
	if args == nil {
		args = make(map[string]any)
	}
	return &ParseError{
		msg:  msg,
		args: args,
		err:  err,
	}
}

// Get the error message
func (e *ParseError) Error() string {
	keys := make([]string, 0, len(e.args))
	for key := range e.args {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(e.msg)
	sb.WriteString(" |")
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(" %s: %v", key, e.args[key]))
	}
	if e.err != nil {
		sb.WriteString(" | ")
		sb.WriteString(e.err.Error())
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// Get the 1-based line (text) or record (YAML) the error was found at
func (e *ParseError) Position() int {
	pos, _ := e.args["position"].(int)
	return pos
}
