package lispcalc

import (
	"strings"
	"unicode"
)

// Preprocess pads every parenthesis with spaces so that a whitespace split
// of the result yields parentheses as standalone tokens.
func Preprocess(line string) string {
	var buf strings.Builder
	buf.Grow(len(line))
	for _, r := range line {
		if r == '(' || r == ')' {
			buf.WriteByte(' ')
			buf.WriteRune(r)
			buf.WriteByte(' ')
		} else {
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// Tokenizer yields whitespace-delimited tokens of preprocessed text one at
// a time, left to right, with one token of lookahead. One instance per
// input line; not safe for concurrent use.
type Tokenizer struct {
	rest    string
	peeked  string
	hasPeek bool
}

func NewTokenizer(preprocessed string) *Tokenizer {
	return &Tokenizer{rest: preprocessed}
}

func (t *Tokenizer) scan() (string, bool) {
	rest := strings.TrimLeftFunc(t.rest, unicode.IsSpace)
	if rest == "" {
		t.rest = ""
		return "", false
	}
	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		end = len(rest)
	}
	t.rest = rest[end:]
	return rest[:end], true
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (string, bool) {
	if t.hasPeek {
		return t.peeked, true
	}
	tok, ok := t.scan()
	if !ok {
		return "", false
	}
	t.peeked = tok
	t.hasPeek = true
	return tok, true
}

// Next returns the next token and consumes it.
func (t *Tokenizer) Next() (string, bool) {
	if t.hasPeek {
		t.hasPeek = false
		return t.peeked, true
	}
	return t.scan()
}
