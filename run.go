package lispcalc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Run reads one expression per line from r and writes the rendered tree
// and its result to w as "<tree> = <value>". Each line evaluates against a
// fresh environment. A malformed line is reported on w and processing
// continues with the next line; only a read error on r stops the loop.
// Blank lines and tokens after a line's first complete expression are
// ignored.
func Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		expr, err := Parse(line)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		env := NewEnv()
		ret, err := Eval(expr, env)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "%s = %s\n", expr.Render(env), ret)
	}
	return scanner.Err()
}
