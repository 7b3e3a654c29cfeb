package lispcalc

import "testing"

func TestPreprocess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "",
			want:  "",
		},
		{
			input: "(+ 1 2)",
			want:  " ( + 1 2 ) ",
		},
		{
			input: "x",
			want:  "x",
		},
		{
			input: "((",
			want:  " (  ( ",
		},
	}
	for _, test := range tests {
		if got := Preprocess(test.input); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestTokenizer(t *testing.T) {
	tz := NewTokenizer(Preprocess("(+ 1 foo)"))
	want := []string{"(", "+", "1", "foo", ")"}
	for _, w := range want {
		p, ok := tz.Peek()
		if !ok || p != w {
			t.Fatalf("peek: want %q but got %q, %v", w, p, ok)
		}
		p, ok = tz.Peek()
		if !ok || p != w {
			t.Fatalf("repeated peek consumed a token: want %q but got %q, %v", w, p, ok)
		}
		n, ok := tz.Next()
		if !ok || n != w {
			t.Fatalf("next: want %q but got %q, %v", w, n, ok)
		}
	}
	if tok, ok := tz.Next(); ok {
		t.Fatalf("want exhausted tokenizer but got %q", tok)
	}
	if tok, ok := tz.Peek(); ok {
		t.Fatalf("want exhausted peek but got %q", tok)
	}
}
