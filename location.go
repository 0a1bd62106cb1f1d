// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text. Both values are 1-based.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column number, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
