package lispcalc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrUnexpectedParen = errors.New("unexpected ')'")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrEmptyList       = errors.New("empty list")
	ErrDepth           = errors.New("expression nested too deeply")
)

// maxDepth bounds parser recursion so hostile input fails with ErrDepth
// instead of exhausting the stack.
const maxDepth = 1000

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDefine
)

var operators = map[string]Operator{
	"+":      OpAdd,
	"-":      OpSub,
	"*":      OpMul,
	"define": OpDefine,
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDefine:
		return "define"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueReference
)

// Value is either a 32-bit number or a reference naming a variable.
type Value struct {
	Kind ValueKind
	Num  int32
	Name string
}

func Number(n int32) Value { return Value{Kind: ValueNumber, Num: n} }

func Reference(name string) Value { return Value{Kind: ValueReference, Name: name} }

func (v Value) String() string {
	if v.Kind == ValueReference {
		return v.Name
	}
	return strconv.FormatInt(int64(v.Num), 10)
}

type ExprKind int

const (
	ExprAtom ExprKind = iota
	ExprList
)

// Expr is a parsed expression: an atom holding a Value, or an operator
// applied to one or more operand expressions. Trees are not mutated after
// Parse returns.
type Expr struct {
	Kind     ExprKind
	Atom     Value
	Op       Operator
	Operands []*Expr
}

// Parse reads a single expression from line. Tokens after the first
// complete expression are left unread; validating them is the caller's
// concern.
func Parse(line string) (*Expr, error) {
	return readExpr(NewTokenizer(Preprocess(line)), 0)
}

func readExpr(tz *Tokenizer, depth int) (*Expr, error) {
	if depth > maxDepth {
		return nil, ErrDepth
	}
	tok, ok := tz.Next()
	if !ok {
		return nil, ErrUnexpectedEnd
	}
	if tok == ")" {
		return nil, ErrUnexpectedParen
	}
	if tok == "(" {
		kw, ok := tz.Peek()
		if !ok {
			return nil, ErrUnexpectedEnd
		}
		op, known := operators[kw]
		if !known {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, kw)
		}
		tz.Next()
		var operands []*Expr
		for {
			next, ok := tz.Peek()
			if !ok {
				return nil, ErrUnexpectedEnd
			}
			if next == ")" {
				tz.Next()
				break
			}
			child, err := readExpr(tz, depth+1)
			if err != nil {
				return nil, err
			}
			operands = append(operands, child)
		}
		if len(operands) == 0 {
			return nil, ErrEmptyList
		}
		return &Expr{Kind: ExprList, Op: op, Operands: operands}, nil
	}
	// Base 0 accepts decimal plus 0x, 0o and 0b prefixes.
	if n, err := strconv.ParseInt(tok, 0, 32); err == nil {
		return &Expr{Kind: ExprAtom, Atom: Number(int32(n))}, nil
	}
	return &Expr{Kind: ExprAtom, Atom: Reference(tok)}, nil
}
