// Package pcblex tokenizes fixture text and checks that its brackets are
// balanced. It does not build objects or look at geometry; it only answers
// whether a generated fixture is lexically well formed and which records it
// holds.
package pcblex

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the tokens of the PCB layout text format. Values are
// written without validation, so the NaN, +Inf and -Inf forms a float can
// take are lexed as numbers too.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	// Whitespace and line breaks
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Quoted strings: names, flags, styles, text content
	{Name: "String", Pattern: `"[^"]*"`},

	// Dimensions carry the unit suffix, e.g. 2500mil, -1.5mil or +Infmil
	{Name: "Mil", Pattern: `(?:-?\d+(?:\.\d+)?|NaN|[-+]?Inf)mil`},

	// Bare numbers: angles, scale, layer numbers, grid offsets
	{Name: "Number", Pattern: `(?:-?\d+(?:\.\d+)?|(?:NaN|[-+]?Inf)\b)`},

	// Record keywords (PCB, Grid, Layer, Line, Hole, ...)
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},

	// Brackets
	{Name: "Punct", Pattern: `[\[\]()]`},
})

// Tokenize lexes r and returns every token except whitespace and EOF.
func Tokenize(r io.Reader) ([]lexer.Token, error) {
	lex, err := Lexer.Lex("", r)
	if err != nil {
		return nil, fmt.Errorf("pcblex: %w", err)
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("pcblex: %w", err)
	}

	ws := Lexer.Symbols()["Whitespace"]
	tokens := make([]lexer.Token, 0, len(all))
	for _, tok := range all {
		if tok.Type == ws || tok.EOF() {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokenizeString is a convenience wrapper around Tokenize.
func TokenizeString(s string) ([]lexer.Token, error) {
	return Tokenize(strings.NewReader(s))
}
