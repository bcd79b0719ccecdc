package molparser

import "fmt"

// ParseError is the base error type for all molparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (invalid character, bad UTF-8).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token,
// malformed connection clause, unbalanced brackets).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Message != "" {
		return e.ParseError.Error()
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// ValueError represents a value-level error (unrecognized element
// symbol, malformed label, charge out of range).
type ValueError struct{ ParseError }
