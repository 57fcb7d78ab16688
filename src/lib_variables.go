package numo

import (
	"fmt"
)

// CreateVariable appends the variable that the digit for kind creates at
// position. The returned error is ErrStoreFull when the store is at capacity.
func CreateVariable(state *ExecutionState, kind Kind, position int) error {
	var value Value
	switch kind {
	case KindInt:
		// value comes from the following digit when there is one
		if next, ok := state.PeekNext(position); ok && next >= '0' && next <= '9' {
			value = Int(next - '0')
		} else {
			value = Int(position % 10)
		}
	case KindText:
		value = Text(fmt.Sprintf("text_%d", position))
	case KindBool:
		value = Bool(position%2 == 0)
	case KindFloat:
		value = Float(float64(position%100) / 10.0)
	case KindArray:
		items := make([]Int, ArrayCreateLen)
		for i := range items {
			items[i] = Int((position + i) % 10)
		}
		arr, err := NewArray(items)
		if err != nil {
			return err
		}
		value = arr
	default:
		return &NumoError{Message: fmt.Sprintf("kind %d does not create variables", int(kind)), Position: position, Err: ErrInvalidOpcode}
	}
	return state.Store.Append(Variable{Name: VariableName(kind, position), Value: value})
}

// createHandler returns the opcode handler for a variable-creating digit
func createHandler(kind Kind) Handler {
	return func(ctx *Context) Result {
		if err := CreateVariable(ctx.State, kind, ctx.Position); err != nil {
			ctx.capacityDropped(err)
			return BoolStatus(false)
		}
		if v, ok := ctx.State.Store.Last(); ok {
			ctx.LogDebug(CatVariable, "Created %s variable %s = %s", kind, v.Name, v.Value)
		}
		return BoolStatus(true)
	}
}

// appendResult stores a handler result, honoring the capacity policy
func appendResult(ctx *Context, name string, value Value) bool {
	if err := ctx.State.Store.Append(Variable{Name: name, Value: value}); err != nil {
		ctx.capacityDropped(err)
		return false
	}
	return true
}
