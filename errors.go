package airp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why parsing or printing failed.
type ErrorKind uint8

// ErrorKinds reported by ParseError. TypeMismatch is only produced by the
// printer.
const (
	UnrecognizedToken ErrorKind = iota + 1
	UnterminatedString
	UnterminatedContainer
	MissingColon
	InvalidNumber
	TypeMismatch
)

// Sentinel errors matching each ErrorKind. A *ParseError unwraps to the
// sentinel of its kind so callers can use errors.Is.
var (
	ErrUnrecognizedToken     = errors.New("unrecognized token")
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrUnterminatedContainer = errors.New("unterminated container")
	ErrMissingColon          = errors.New("syntax error: colon expected")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrTypeMismatch          = errors.New("type error")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnrecognizedToken:
		return ErrUnrecognizedToken
	case UnterminatedString:
		return ErrUnterminatedString
	case UnterminatedContainer:
		return ErrUnterminatedContainer
	case MissingColon:
		return ErrMissingColon
	case InvalidNumber:
		return ErrInvalidNumber
	case TypeMismatch:
		return ErrTypeMismatch
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ParseError captures information on errors when parsing.
type ParseError struct {
	Kind ErrorKind
	// Offset is the byte offset into the buffer given to Parse.
	Offset int
	// Near is a short excerpt of the input at Offset.
	Near string
	// Msg optionally refines the message of Kind.
	Msg string
}

const nearLen = 16

func newParseError(kind ErrorKind, rest string, offset int, msg string) *ParseError {
	near := rest
	if len(near) > nearLen {
		near = near[:nearLen]
	}
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Near:   near,
		Msg:    msg,
	}
}

func (e *ParseError) Error() string {
	s := e.Kind.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Near == "" {
		return fmt.Sprintf("%s at offset %d (end of input)", s, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d near %q", s, e.Offset, e.Near)
}

// Unwrap returns the sentinel error of the error's kind.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

// Cause implements the causer interface of github.com/pkg/errors.
func (e *ParseError) Cause() error {
	return e.Unwrap()
}

// Where returns the byte offset where the syntax error occurred.
func (e *ParseError) Where() int {
	return e.Offset
}

// rebase shifts the offset of a nested parse error by the position of the
// slice it was produced on.
func rebase(err error, by int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Offset += by
	}
	return err
}
