package config

import (
	"errors"
	"fmt"
)

// Sentinel parse errors. All are terminal: the parser stops at the first
// failure and returns nothing of what it built.
var (
	// ErrUnexpectedEOF means a rule needed a token but the input ended.
	ErrUnexpectedEOF = errors.New("unexpected eof")
	// ErrEmptyServerList means a servers statement named zero hosts.
	ErrEmptyServerList = errors.New("no servers in statement")
	// ErrDuplicateLayout means a second layout statement appeared.
	ErrDuplicateLayout = errors.New("layout already specified")
)

// TokenError reports a mandatory literal that did not match.
type TokenError struct {
	Src      string
	Expected string
	Found    string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: expected %q, have %q", e.Src, e.Expected, e.Found)
}

// UnknownTokenError reports an unrecognized token at a keyword position.
type UnknownTokenError struct {
	Src   string
	Found string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s: unknown token: %q", e.Src, e.Found)
}

// NumberError reports a numeric literal that was malformed or out of range.
type NumberError struct {
	Src    string
	Field  string
	Raw    string
	Reason string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s: bad %s %q: %s", e.Src, e.Field, e.Raw, e.Reason)
}
