package lispcalc

import (
	"errors"
	"fmt"
)

var (
	ErrUndefined = errors.New("undefined symbol")
	ErrType      = errors.New("type mismatch")
	ErrArity     = errors.New("wrong number of arguments")
)

// Env maps variable names to values for a single input line. The driver
// creates a fresh Env per line and discards it afterwards; bindings never
// survive the line that made them.
type Env struct {
	vars map[string]Value
}

func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Bind(name string, v Value) {
	e.vars[name] = v
}

// Eval reduces expr to a single value, resolving references through env
// and recording define bindings in it. Arithmetic is 32-bit and wraps
// around on overflow.
func Eval(expr *Expr, env *Env) (Value, error) {
	switch expr.Kind {
	case ExprAtom:
		if expr.Atom.Kind == ValueNumber {
			return expr.Atom, nil
		}
		v, ok := env.Lookup(expr.Atom.Name)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s", ErrUndefined, expr.Atom.Name)
		}
		return v, nil
	case ExprList:
		if expr.Op == OpDefine {
			return evalDefine(expr, env)
		}
		return evalArith(expr, env)
	}
	return Value{}, fmt.Errorf("%w: bad expression kind %d", ErrType, expr.Kind)
}

func evalNumber(expr *Expr, env *Env) (int32, error) {
	v, err := Eval(expr, env)
	if err != nil {
		return 0, err
	}
	if v.Kind != ValueNumber {
		return 0, fmt.Errorf("%w: %s is not a number", ErrType, v)
	}
	return v.Num, nil
}

// evalArith folds the operands left to right, seeding the accumulator
// with the first. A single-operand list returns that operand unchanged
// for all three operators.
func evalArith(expr *Expr, env *Env) (Value, error) {
	acc, err := evalNumber(expr.Operands[0], env)
	if err != nil {
		return Value{}, err
	}
	for _, operand := range expr.Operands[1:] {
		n, err := evalNumber(operand, env)
		if err != nil {
			return Value{}, err
		}
		switch expr.Op {
		case OpAdd:
			acc += n
		case OpSub:
			acc -= n
		case OpMul:
			acc *= n
		}
	}
	return Number(acc), nil
}

// evalDefine binds a name to the value of its second operand. The first
// operand must be a reference atom and is never evaluated.
func evalDefine(expr *Expr, env *Env) (Value, error) {
	if len(expr.Operands) != 2 {
		return Value{}, fmt.Errorf("%w: define takes 2 arguments, got %d", ErrArity, len(expr.Operands))
	}
	target := expr.Operands[0]
	if target.Kind != ExprAtom || target.Atom.Kind != ValueReference {
		return Value{}, fmt.Errorf("%w: define target must be a name", ErrType)
	}
	v, err := Eval(expr.Operands[1], env)
	if err != nil {
		return Value{}, err
	}
	env.Bind(target.Atom.Name, v)
	return Reference(target.Atom.Name), nil
}
