package numo

import (
	"fmt"
	"math"
)

// MathOp selects one of the ten math operators
type MathOp int

const (
	OpAdd MathOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpSqrt
	OpSin
	OpCos
	OpLog
	OpMod
)

var mathOpNames = [...]string{"add", "subtract", "multiply", "divide", "power", "sqrt", "sin", "cos", "log", "modulo"}

func (op MathOp) String() string {
	if op < OpAdd || op > OpMod {
		return "unknown"
	}
	return mathOpNames[op]
}

// MathOperator reads the operator for the math opcode at position from the
// digit before it. A missing or non-digit predecessor means addition.
func MathOperator(state *ExecutionState, position int) MathOp {
	prev, ok := state.PeekPrev(position)
	if !ok || prev < '0' || prev > '9' {
		return OpAdd
	}
	return MathOp(prev - '0')
}

// EvalMath applies op to b (second most recent) and a (most recent). The
// returned warning is non-empty when a fallback result of 0 was used.
func EvalMath(op MathOp, b, a float64) (result float64, warning string) {
	switch op {
	case OpAdd:
		return b + a, ""
	case OpSub:
		return b - a, ""
	case OpMul:
		return b * a, ""
	case OpDiv:
		if a == 0 {
			return 0, "Division by zero, result set to 0"
		}
		return b / a, ""
	case OpPow:
		return math.Pow(b, a), ""
	case OpSqrt:
		return math.Sqrt(a), ""
	case OpSin:
		return math.Sin(a), ""
	case OpCos:
		return math.Cos(a), ""
	case OpLog:
		if a <= 0 {
			return 0, "Logarithm of non-positive value, result set to 0"
		}
		return math.Log(a), ""
	case OpMod:
		if a == 0 {
			return 0, "Modulo by zero, result set to 0"
		}
		return math.Mod(b, a), ""
	}
	return b + a, ""
}

// handleMath is the math opcode: two most recent numeric variables, operator
// from the preceding digit, result appended as a Float
func handleMath(ctx *Context) Result {
	operands := ctx.State.Store.LastNOfKind(2, KindInt, KindFloat)
	if len(operands) < 2 {
		ctx.LogWarning(CatMath, fmt.Sprintf("%v: need 2 numeric variables, found %d", ErrInsufficientOperands, len(operands)))
		return BoolStatus(false)
	}

	a, _ := AsFloat(operands[0].Value)
	b, _ := AsFloat(operands[1].Value)
	op := MathOperator(ctx.State, ctx.Position)

	result, warning := EvalMath(op, b, a)
	if warning != "" {
		ctx.LogWarning(CatMath, warning)
	}
	ctx.LogDebug(CatMath, "Math %s: %s, %s -> %g", op, operands[1].Name, operands[0].Name, result)

	if !appendResult(ctx, fmt.Sprintf("result_%d", ctx.Position), Float(result)) {
		return BoolStatus(false)
	}
	return BoolStatus(true)
}
