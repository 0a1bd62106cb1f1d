// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jparse"

	"go4.org/mem"
)

// Parse parses a complete JSON document from p and returns its value.
// The document root must be an object; a bare array, string, number, Boolean,
// or null at top level is rejected. In case of error the returned error has
// concrete type [*jparse.SyntaxError] and no value is returned.
//
// Input after the closing brace of the root object is left unread in p.
func Parse(p jparse.Producer) (_ Value, err error) {
	defer recoverSyntaxError(&err)

	p.SkipSpace(true)
	return parseObject(p), nil
}

// ParseValue parses a single JSON value of any kind from p. Unlike Parse it
// does not restrict the kind of the root, but it requires that nothing except
// whitespace remain in p after the value. In case of error the returned error
// has concrete type [*jparse.SyntaxError].
func ParseValue(p jparse.Producer) (_ Value, err error) {
	defer recoverSyntaxError(&err)

	p.SkipSpace(true)
	v := parseValue(p)
	if !p.AtEnd() {
		syntaxErrorf(p, "unexpected %q after value", p.Peek())
	}
	return v, nil
}

// The grammar functions below either return a fully-constructed value or
// panic with a *jparse.SyntaxError. There is no local recovery anywhere in
// the parser; the panic is converted back into an ordinary error at the
// exported entry points.

func recoverSyntaxError(errp *error) {
	if x := recover(); x != nil {
		serr, ok := x.(*jparse.SyntaxError)
		if !ok {
			panic(x)
		}
		*errp = serr
	}
}

// parseValue dispatches on a single rune of lookahead to the grammar rule for
// the value kind it introduces.
func parseValue(p jparse.Producer) Value {
	switch {
	case has(p, '"'):
		return parseString(p)
	case has(p, '['):
		return parseArray(p)
	case has(p, '{'):
		return parseObject(p)
	case has(p, 't'), has(p, 'f'):
		return parseBool(p)
	case has(p, 'n'):
		return parseNull(p)
	case has(p, '-'), isDigit(p.Peek()):
		return parseNumber(p)
	}
	return fail(p, "expected value")
}

// parseObject parses an object: '{' (string ':' value)? (',' string ':' value)* '}'.
// A duplicate key silently overwrites the earlier value at that key.
func parseObject(p jparse.Producer) Value {
	expects(p, '{')
	members := make(map[string]Value)
	if mayHave(p, '}') {
		return NewObject(members)
	}
	for {
		if !has(p, '"') {
			fail(p, "expected key")
		}
		key := scanString(p)
		expects(p, ':')
		members[key] = parseValue(p)
		if !mayHave(p, ',') {
			break
		}
	}
	expects(p, '}')
	return NewObject(members)
}

// parseArray parses an array: '[' value? (',' value)* ']'.
func parseArray(p jparse.Producer) Value {
	expects(p, '[')
	if mayHave(p, ']') {
		return NewArray()
	}
	var elems []Value
	for {
		elems = append(elems, parseValue(p))
		if !mayHave(p, ',') {
			break
		}
	}
	expects(p, ']')
	return NewArray(elems...)
}

func parseString(p jparse.Producer) Value { return NewString(scanString(p)) }

// scanString consumes a quoted string and returns its content.
//
// Escape handling is a deliberate simplification: a backslash passes the
// character that follows it through verbatim. Named escapes (\n, \t, ...)
// and Unicode escapes (\uXXXX) are not decoded. Callers that need standard
// JSON escape semantics must post-process the result.
func scanString(p jparse.Producer) string {
	expects(p, '"')
	p.SkipSpace(false)
	var buf strings.Builder
	for !has(p, '"') {
		if p.AtEnd() {
			syntaxErrorf(p, "unexpected end of input in string")
		}
		if mayHave(p, '\\') && p.AtEnd() {
			syntaxErrorf(p, "unexpected end of input in string")
		}
		buf.WriteRune(p.Next())
	}
	expects(p, '"')
	p.SkipSpace(true)
	return buf.String()
}

// parseNumber parses a number: an optional minus sign; an integer part that
// is a single 0 or a nonzero digit followed by more digits; an optional
// fraction '.' with at least one digit; and an optional exponent 'e'/'E'
// with an optional sign and any number of digits, including none.
func parseNumber(p jparse.Producer) Value {
	p.SkipSpace(false)

	neg := mayHave(p, '-')

	var buf strings.Builder
	if has(p, '0') {
		buf.WriteRune(p.Next())
	} else if c := p.Peek(); '0' < c && c <= '9' {
		buf.WriteRune(p.Next())
		for isDigit(p.Peek()) {
			buf.WriteRune(p.Next())
		}
	} else {
		fail(p, "expected number")
	}

	if mayHave(p, '.') {
		buf.WriteRune('.')
		if !isDigit(p.Peek()) {
			fail(p, "expected number")
		}
		for isDigit(p.Peek()) {
			buf.WriteRune(p.Next())
		}
	}

	num, err := strconv.ParseFloat(buf.String(), 64)
	if err != nil {
		syntaxErrorf(p, "invalid number %q: %v", buf.String(), err)
	}

	if has(p, 'e') || has(p, 'E') {
		p.Next()

		op := '+'
		if has(p, '-') || has(p, '+') {
			op = p.Next()
		}
		var exp strings.Builder
		for isDigit(p.Peek()) {
			exp.WriteRune(p.Next())
		}

		// An exponent marker with no digits is accepted as exponent zero.
		var ev float64
		if exp.Len() != 0 {
			ev, _ = strconv.ParseFloat(exp.String(), 64)
		}
		if op == '-' {
			ev = -ev
		}

		// The exponent is applied as a separate power-of-ten multiply rather
		// than being folded into the decimal conversion above. The result may
		// differ in the last bit from converting the full literal at once.
		num *= math.Pow(10, ev)
	}

	p.SkipSpace(true)
	if neg {
		num = -num
	}
	return NewNumber(num)
}

func parseBool(p jparse.Producer) Value {
	if has(p, 't') {
		matchKeyword(p, kwTrue)
		return NewBool(true)
	}
	if has(p, 'f') {
		matchKeyword(p, kwFalse)
		return NewBool(false)
	}
	return fail(p, "expected boolean")
}

func parseNull(p jparse.Producer) Value {
	if !has(p, 'n') {
		return fail(p, "expected null")
	}
	matchKeyword(p, kwNull)
	return Value{}
}

var (
	kwTrue  = mem.S("true")
	kwFalse = mem.S("false")
	kwNull  = mem.S("null")
)

// matchKeyword consumes the characters of want one by one, reporting a
// mismatch at the exact position of the offending character.
func matchKeyword(p jparse.Producer, want mem.RO) {
	p.SkipSpace(false)
	for i := 0; i < want.Len(); i++ {
		expects(p, rune(want.At(i)))
	}
	p.SkipSpace(true)
}

// has reports whether the next rune of p is c, without consuming it.
func has(p jparse.Producer, c rune) bool { return p.Peek() == c }

// mayHave consumes the next rune of p if it is c, and reports whether it did.
func mayHave(p jparse.Producer, c rune) bool {
	if p.Peek() == c {
		p.Next()
		return true
	}
	return false
}

// expects consumes the next rune of p and reports a syntax error if it is
// not want. The error position is that of the offending rune.
func expects(p jparse.Producer, want rune) {
	at := pos(p)
	if p.AtEnd() {
		panic(&jparse.SyntaxError{Pos: at, Message: fmt.Sprintf("expected %q at end of input", want)})
	}
	if got := p.Next(); got != want {
		panic(&jparse.SyntaxError{Pos: at, Message: fmt.Sprintf("expected %q, got %q", want, got)})
	}
}

// fail reports a failed grammar production at the current position, draining
// the remaining input into the message for diagnostic context. It never
// returns; the result type lets callers use it in return position.
func fail(p jparse.Producer, msg string) Value {
	at := pos(p)
	var rest strings.Builder
	for !p.AtEnd() {
		rest.WriteRune(p.Next())
	}
	panic(&jparse.SyntaxError{
		Pos:     at,
		Message: fmt.Sprintf("%s (remaining input %q)", msg, rest.String()),
	})
}

// syntaxErrorf reports a syntax error at the current position of p.
func syntaxErrorf(p jparse.Producer, format string, args ...any) {
	panic(&jparse.SyntaxError{Pos: pos(p), Message: fmt.Sprintf(format, args...)})
}

func pos(p jparse.Producer) jparse.LineCol {
	return jparse.LineCol{Line: p.Line(), Column: p.Column()}
}

// isDigit reports whether ch is an ASCII decimal digit.
func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
