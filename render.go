package lispcalc

import (
	"bytes"
	"fmt"
)

// Render formats the tree in its parenthesized form. Reference atoms show
// their currently bound value when env resolves them, the bare name
// otherwise. env may be nil; rendering never mutates it.
func (e *Expr) Render(env *Env) string {
	var buf bytes.Buffer
	e.render(&buf, env)
	return buf.String()
}

func (e *Expr) render(buf *bytes.Buffer, env *Env) {
	switch e.Kind {
	case ExprAtom:
		v := e.Atom
		if v.Kind == ValueReference && env != nil {
			if bound, ok := env.Lookup(v.Name); ok {
				v = bound
			}
		}
		buf.WriteString(v.String())
	case ExprList:
		fmt.Fprintf(buf, "(%v", e.Op)
		for _, operand := range e.Operands {
			buf.WriteByte(' ')
			operand.render(buf, env)
		}
		buf.WriteByte(')')
	}
}

func (e *Expr) String() string {
	return e.Render(nil)
}
