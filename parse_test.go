package lispcalc

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "1",
			want:  "1",
		},
		{
			input: "-42",
			want:  "-42",
		},
		{
			input: "0x1f",
			want:  "31",
		},
		{
			input: "0b101",
			want:  "5",
		},
		{
			input: "foo",
			want:  "foo",
		},
		{
			input: "(+ 1 2 3)",
			want:  "(+ 1 2 3)",
		},
		{
			input: "(define x 5)",
			want:  "(define x 5)",
		},
		{
			input: "( * 2 (+ 1 1) )",
			want:  "(* 2 (+ 1 1))",
		},
		{
			input: "(- 10 7) trailing tokens",
			want:  "(- 10 7)",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		expr, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got := expr.String()

		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	deep := strings.Repeat("(+ ", 2000) + "1" + strings.Repeat(")", 2000)
	tests := []struct {
		input string
		want  error
	}{
		{
			input: "",
			want:  ErrUnexpectedEnd,
		},
		{
			input: "(",
			want:  ErrUnexpectedEnd,
		},
		{
			input: "(+ 1",
			want:  ErrUnexpectedEnd,
		},
		{
			input: ")",
			want:  ErrUnexpectedParen,
		},
		{
			input: "()",
			want:  ErrUnknownOperator,
		},
		{
			input: "(foo 1 2)",
			want:  ErrUnknownOperator,
		},
		{
			input: "(+)",
			want:  ErrEmptyList,
		},
		{
			input: deep,
			want:  ErrDepth,
		},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if !errors.Is(err, test.want) {
			t.Errorf("want %v for %q but got %v", test.want, test.input, err)
		}
	}
}
