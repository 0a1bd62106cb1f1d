// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a recursive-descent parser for JSON.
//
// # Producers
//
// The parser does not read from its input directly. Instead it consumes a
// Producer, an abstraction over a character stream that supports one rune of
// lookahead and tracks the line and column of the read position for
// diagnostics. The Reader type implements Producer over an io.Reader:
//
//	p := jparse.NewReader(strings.NewReader(`{"ok": true}`))
//
// How the underlying bytes are obtained (file, memory buffer, network) is the
// caller's concern; the parser owns no stream management beyond the Producer
// contract.
//
// # Parsing
//
// The ast subpackage defines the value model and the grammar rules. Call
// ast.Parse to decode a complete document, whose root must be an object:
//
//	v, err := ast.Parse(jparse.NewReader(input))
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Errors
//
// Any grammar mismatch aborts the parse and is reported as a *SyntaxError
// carrying the position where the mismatch occurred. No partial tree is
// returned. The rendered form of a SyntaxError is "line:column: message",
// with 1-based line and column.
package jparse
