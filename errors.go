package lpreader

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind distinguishes the four parse-failure sub-kinds spec.md §7
// calls out as useful for tests. Callers outside this package only ever
// see the single "malformed input" category via the error interface;
// ErrorKind exists so tests can assert on which stage rejected the input.
type ErrorKind int

const (
	// ErrLex: unrecognized leading byte, no viable number or identifier.
	ErrLex ErrorKind = iota
	// ErrClassify: raw-token sequence matches no classifier pattern.
	ErrClassify
	// ErrStructural: duplicate section, unbalanced brackets, missing /2, etc.
	ErrStructural
	// ErrSemantic: RHS not constant, strict < / > where <=/>= required, etc.
	ErrSemantic
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "lex"
	case ErrClassify:
		return "classify"
	case ErrStructural:
		return "structural"
	case ErrSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// ParseError is the diagnostic context attached to a malformed-input
// failure: which stage rejected it, where in the current line, and what
// token (if any) could not be consumed.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Offset int
	Token  string
	msg    string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s error at line %d, offset %d (near %q): %s",
			e.Kind, e.Line, e.Offset, e.Token, e.msg)
	}
	return fmt.Sprintf("%s error at line %d, offset %d: %s", e.Kind, e.Line, e.Offset, e.msg)
}

func newParseError(kind ErrorKind, line, offset int, token, msg string) *ParseError {
	return &ParseError{Kind: kind, Line: line, Offset: offset, Token: token, msg: msg}
}

func lexErrorf(line, offset int, format string, args ...interface{}) error {
	return errors.WithStack(newParseError(ErrLex, line, offset, "", fmt.Sprintf(format, args...)))
}

func classifyErrorf(line, offset int, token string, format string, args ...interface{}) error {
	return errors.WithStack(newParseError(ErrClassify, line, offset, token, fmt.Sprintf(format, args...)))
}

func structuralErrorf(line, offset int, token string, format string, args ...interface{}) error {
	return errors.WithStack(newParseError(ErrStructural, line, offset, token, fmt.Sprintf(format, args...)))
}

func semanticErrorf(line, offset int, token string, format string, args ...interface{}) error {
	return errors.WithStack(newParseError(ErrSemantic, line, offset, token, fmt.Sprintf(format, args...)))
}

// AsParseError unwraps err looking for the *ParseError at the root of the
// errors.Wrap chain, mirroring how the teacher's callers use
// errors.Cause to recover the original failure past several layers of
// errors.Wrap.
func AsParseError(err error) (*ParseError, bool) {
	pe, ok := errors.Cause(err).(*ParseError)
	return pe, ok
}
