// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

// SyntaxError is the concrete type of errors reported by the parser.
// It records the position of the input at which the grammar mismatch was
// discovered, together with a human-readable description.
type SyntaxError struct {
	Pos     LineCol
	Message string
}

// Error satisfies the error interface. The rendered form is
// "line:column: message".
func (e *SyntaxError) Error() string { return e.Pos.String() + ": " + e.Message }
