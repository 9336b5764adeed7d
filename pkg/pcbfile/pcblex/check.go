package pcblex

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Summary describes a lexically valid fixture.
type Summary struct {
	Tokens   int            // Number of non-whitespace tokens
	MaxDepth int            // Deepest bracket nesting seen
	Records  map[string]int // Keyword counts, e.g. "Line" -> 3
}

// Count returns how many records with the given keyword were seen.
func (s *Summary) Count(keyword string) int {
	return s.Records[keyword]
}

// Keywords returns the record keywords seen, sorted.
func (s *Summary) Keywords() []string {
	keys := make([]string, 0, len(s.Records))
	for k := range s.Records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var closers = map[string]string{
	"[": "]",
	"(": ")",
}

// Check tokenizes r, verifies that every bracket and parenthesis is closed
// by its partner and counts records. A record is a keyword immediately
// followed by an opening bracket, e.g. `Line[` or `Hole (`.
func Check(r io.Reader) (*Summary, error) {
	tokens, err := Tokenize(r)
	if err != nil {
		return nil, err
	}

	punct := Lexer.Symbols()["Punct"]
	ident := Lexer.Symbols()["Ident"]

	sum := &Summary{
		Tokens:  len(tokens),
		Records: make(map[string]int),
	}
	var stack []lexer.Token

	for i, tok := range tokens {
		if tok.Type == ident {
			if i+1 < len(tokens) && tokens[i+1].Type == punct && closers[tokens[i+1].Value] != "" {
				sum.Records[tok.Value]++
			}
			continue
		}
		if tok.Type != punct {
			continue
		}

		if _, ok := closers[tok.Value]; ok {
			stack = append(stack, tok)
			if len(stack) > sum.MaxDepth {
				sum.MaxDepth = len(stack)
			}
			continue
		}

		if len(stack) == 0 {
			return nil, fmt.Errorf("pcblex: %s: unexpected %q", tok.Pos, tok.Value)
		}
		open := stack[len(stack)-1]
		if want := closers[open.Value]; tok.Value != want {
			return nil, fmt.Errorf("pcblex: %s: got %q, want %q to close %q at %s",
				tok.Pos, tok.Value, want, open.Value, open.Pos)
		}
		stack = stack[:len(stack)-1]
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, fmt.Errorf("pcblex: %s: %q is never closed", open.Pos, open.Value)
	}
	return sum, nil
}

// CheckString is a convenience wrapper around Check.
func CheckString(s string) (*Summary, error) {
	return Check(strings.NewReader(s))
}
