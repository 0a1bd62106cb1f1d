// Package testutil defines support code for unit tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/ast"
)

// MustParse parses src as a JSON document and returns its value.
// It fails t if parsing reports an error.
func MustParse(t *testing.T, src string) ast.Value {
	t.Helper()
	v, err := ast.Parse(jparse.NewReader(strings.NewReader(src)))
	if err != nil {
		t.Fatalf("Parse %q: %v", src, err)
	}
	return v
}

// MustParseValue parses src as a single JSON value of any kind and returns
// it. It fails t if parsing reports an error.
func MustParseValue(t *testing.T, src string) ast.Value {
	t.Helper()
	v, err := ast.ParseValue(jparse.NewReader(strings.NewReader(src)))
	if err != nil {
		t.Fatalf("ParseValue %q: %v", src, err)
	}
	return v
}
