package numo

import (
	"fmt"
	"strconv"
	"strings"
)

// StringOp selects one of the string operations
type StringOp int

const (
	StrConcat StringOp = iota
	StrLength
	StrUpper
	StrLower
	StrReverse
)

var stringOpNames = [...]string{"concat", "length", "upper", "lower", "reverse"}

func (op StringOp) String() string {
	if op < StrConcat || op > StrReverse {
		return "unknown"
	}
	return stringOpNames[op]
}

// StringOpAt selects the operation for a string opcode at position
func StringOpAt(position int) StringOp {
	return StringOp(position % 5)
}

// EvalString applies op to s2 (second most recent) and s1 (most recent)
func EvalString(op StringOp, s2, s1 string) (Text, error) {
	switch op {
	case StrConcat:
		return NewText(s2 + s1)
	case StrLength:
		return NewText(strconv.Itoa(len(s1)))
	case StrUpper:
		return NewText(strings.ToUpper(s1))
	case StrLower:
		return NewText(strings.ToLower(s1))
	case StrReverse:
		r := []rune(s1)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return NewText(string(r))
	}
	return "", fmt.Errorf("unknown string operation %d", int(op))
}

// handleString combines the two most recent Text variables. With fewer than
// two it does nothing.
func handleString(ctx *Context) Result {
	operands := ctx.State.Store.LastNOfKind(2, KindText)
	if len(operands) < 2 {
		ctx.LogDebug(CatString, "string operation skipped: %d text variables", len(operands))
		return BoolStatus(false)
	}

	op := StringOpAt(ctx.Position)
	result, err := EvalString(op, operands[1].Value.String(), operands[0].Value.String())
	if err != nil {
		ctx.LogWarning(CatString, fmt.Sprintf("%s: %v", op, err))
		return BoolStatus(false)
	}
	ctx.LogDebug(CatString, "String %s -> %q", op, string(result))

	if !appendResult(ctx, fmt.Sprintf("str_result_%d", ctx.Position), result) {
		return BoolStatus(false)
	}
	return BoolStatus(true)
}
