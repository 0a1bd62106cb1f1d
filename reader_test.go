// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/google/go-cmp/cmp"
)

func TestReader(t *testing.T) {
	r := jparse.NewReader(strings.NewReader("ab\ncd"))

	if got := r.Peek(); got != 'a' {
		t.Errorf("Peek: got %q, want %q", got, 'a')
	}
	if r.Line() != 1 || r.Column() != 1 {
		t.Errorf("Position: got %d:%d, want 1:1", r.Line(), r.Column())
	}

	var got []rune
	for !r.AtEnd() {
		got = append(got, r.Next())
	}
	if diff := cmp.Diff([]rune("ab\ncd"), got); diff != "" {
		t.Errorf("Runes: (-want, +got)\n%s", diff)
	}
	if r.Line() != 2 || r.Column() != 3 {
		t.Errorf("End position: got %d:%d, want 2:3", r.Line(), r.Column())
	}
}

func TestReaderPositions(t *testing.T) {
	type step struct {
		Ch        rune
		Line, Col int // position before the rune is consumed
	}
	r := jparse.NewReader(strings.NewReader("x\ny\nz"))

	var got []step
	for !r.AtEnd() {
		s := step{Line: r.Line(), Col: r.Column()}
		s.Ch = r.Next()
		got = append(got, s)
	}
	want := []step{
		{'x', 1, 1}, {'\n', 1, 2},
		{'y', 2, 1}, {'\n', 2, 2},
		{'z', 3, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Steps: (-want, +got)\n%s", diff)
	}
}

func TestReaderEOF(t *testing.T) {
	r := jparse.NewReader(strings.NewReader(""))
	if !r.AtEnd() {
		t.Error("AtEnd: got false, want true")
	}
	if got := r.Peek(); got != jparse.EOF {
		t.Errorf("Peek at EOF: got %q, want EOF", got)
	}
	// Reading past the end must be safe and keep returning the sentinel.
	for i := 0; i < 3; i++ {
		if got := r.Next(); got != jparse.EOF {
			t.Errorf("Next at EOF: got %q, want EOF", got)
		}
	}
	if r.Err() != nil {
		t.Errorf("Err: got %v, want nil", r.Err())
	}
}

func TestReaderSkipSpace(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		r := jparse.NewReader(strings.NewReader("  a"))
		if got := r.Peek(); got != ' ' {
			t.Errorf("Peek: got %q, want space", got)
		}
	})

	t.Run("Enabled", func(t *testing.T) {
		r := jparse.NewReader(strings.NewReader(" \t\r\n  a  b"))
		r.SkipSpace(true)
		if got := r.Next(); got != 'a' {
			t.Errorf("Next: got %q, want %q", got, 'a')
		}
		if got := r.Next(); got != 'b' {
			t.Errorf("Next: got %q, want %q", got, 'b')
		}
		if !r.AtEnd() {
			t.Error("AtEnd: got false, want true")
		}
	})

	t.Run("Toggle", func(t *testing.T) {
		r := jparse.NewReader(strings.NewReader("  a b"))
		r.SkipSpace(true)
		if got := r.Next(); got != 'a' {
			t.Errorf("Next: got %q, want %q", got, 'a')
		}
		r.SkipSpace(false)
		if got := r.Next(); got != ' ' {
			t.Errorf("Next: got %q, want space", got)
		}
		if got := r.Next(); got != 'b' {
			t.Errorf("Next: got %q, want %q", got, 'b')
		}
	})

	t.Run("Position", func(t *testing.T) {
		// Skipped whitespace still advances the reported position.
		r := jparse.NewReader(strings.NewReader("\n\n  q"))
		r.SkipSpace(true)
		if got := r.Peek(); got != 'q' {
			t.Errorf("Peek: got %q, want %q", got, 'q')
		}
		if r.Line() != 3 || r.Column() != 3 {
			t.Errorf("Position: got %d:%d, want 3:3", r.Line(), r.Column())
		}
	})
}

type failReader struct{ err error }

func (f failReader) Read([]byte) (int, error) { return 0, f.err }

func TestReaderErr(t *testing.T) {
	broken := errors.New("broken pipe")
	r := jparse.NewReader(failReader{err: broken})

	// A read failure is surfaced as end of input with a sticky error.
	if !r.AtEnd() {
		t.Error("AtEnd: got false, want true")
	}
	if got := r.Err(); !errors.Is(got, broken) {
		t.Errorf("Err: got %v, want %v", got, broken)
	}
}

func TestReaderBuffered(t *testing.T) {
	// An existing *bufio.Reader is used as-is.
	br := bufio.NewReader(strings.NewReader(`{"a":1}`))
	r := jparse.NewReader(br)
	var got []rune
	for !r.AtEnd() {
		got = append(got, r.Next())
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Runes: got %q, want %q", string(got), `{"a":1}`)
	}
}
