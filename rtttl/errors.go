package rtttl

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidRTTTLFormat = errors.New("invalid RTTTL format")
	ErrInvalidDefaults    = errors.New("invalid defaults")
	ErrInvalidNote        = errors.New("invalid note")
)

// ParseError reports which stage rejected the input and the text it rejected.
// Kind is one of the Err* sentinels, so errors.Is works on any ParseError.
type ParseError struct {
	Kind  error
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// KindName gives the short name of the error kind carried by err, or "" when
// err is not a parse error.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRTTTLFormat):
		return "InvalidRTTTLFormat"
	case errors.Is(err, ErrInvalidDefaults):
		return "InvalidDefaults"
	case errors.Is(err, ErrInvalidNote):
		return "InvalidNote"
	}
	return ""
}

func invalidFormat(input string) error {
	return &ParseError{Kind: ErrInvalidRTTTLFormat, Input: input}
}

func invalidDefaults(input string) error {
	return &ParseError{Kind: ErrInvalidDefaults, Input: input}
}

func invalidNote(input string) error {
	return &ParseError{Kind: ErrInvalidNote, Input: input}
}
