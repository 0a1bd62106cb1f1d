// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"bufio"
	"io"
)

// EOF is the sentinel rune reported by Peek and Next once the input is
// exhausted. It does not occur in valid JSON text, so the parser can treat it
// as an ordinary mismatch at any structural decision.
const EOF rune = 0

// A Producer supplies characters to the parser. It yields one rune at a time
// with a single rune of lookahead, reports end of stream, and tracks the line
// and column of the read position for diagnostics.
//
// A Producer is not safe for concurrent use. Each parse must own its producer
// exclusively; concurrent parses require separate producer instances.
type Producer interface {
	// Peek returns the next rune without consuming it, or EOF if no input
	// remains.
	Peek() rune

	// Next consumes and returns the next rune, advancing the position, or
	// returns EOF if no input remains.
	Next() rune

	// AtEnd reports whether the input is exhausted.
	AtEnd() bool

	// SkipSpace controls whitespace handling. SkipSpace(true) consumes any
	// whitespace at the current position immediately, and keeps discarding
	// whitespace ahead of subsequent reads. SkipSpace(false) defers skipping,
	// so that whitespace is delivered verbatim; the parser uses this inside
	// string literals, where spacing is content.
	SkipSpace(skip bool)

	// Line and Column report the 1-based position of the next unread rune.
	Line() int
	Column() int
}

// A Reader is a Producer that consumes input from an io.Reader, decoding it
// as UTF-8. The zero value is not usable; use NewReader.
type Reader struct {
	r    *bufio.Reader
	la   rune // lookahead rune, valid when have is true
	have bool
	eof  bool
	err  error // sticky I/O error, if any (io.EOF excluded)
	skip bool  // whitespace skipping enabled

	line, col int
}

// NewReader constructs a Reader that consumes input from r.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br, line: 1, col: 1}
}

// Err returns the first I/O error encountered while reading, if any.
// A read failure is otherwise surfaced as end of input, so callers that need
// to distinguish a truncated stream from a complete one should check Err
// after parsing.
func (r *Reader) Err() error { return r.err }

// Peek implements part of the Producer interface.
func (r *Reader) Peek() rune {
	r.fill()
	if !r.have {
		return EOF
	}
	return r.la
}

// Next implements part of the Producer interface.
func (r *Reader) Next() rune {
	r.fill()
	if !r.have {
		return EOF
	}
	return r.consume()
}

// AtEnd implements part of the Producer interface.
func (r *Reader) AtEnd() bool {
	r.fill()
	return !r.have
}

// SkipSpace implements part of the Producer interface.
func (r *Reader) SkipSpace(skip bool) {
	r.skip = skip
	if skip {
		r.fill()
	}
}

// Line implements part of the Producer interface.
func (r *Reader) Line() int { return r.line }

// Column implements part of the Producer interface.
func (r *Reader) Column() int { return r.col }

// fill ensures the lookahead holds the next significant rune: the next rune
// of input, or the next rune after any whitespace when skipping is enabled.
func (r *Reader) fill() {
	r.fetch()
	for r.skip && r.have && isSpace(r.la) {
		r.consume()
		r.fetch()
	}
}

func (r *Reader) fetch() {
	if r.have || r.eof {
		return
	}
	ch, _, err := r.r.ReadRune()
	if err != nil {
		r.eof = true
		if err != io.EOF {
			r.err = err
		}
		return
	}
	r.la, r.have = ch, true
}

// consume retires the current lookahead rune and advances the position.
// Precondition: r.have.
func (r *Reader) consume() rune {
	ch := r.la
	r.have = false
	if ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return ch
}

// isSpace reports whether ch is JSON whitespace.
func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
