package numo

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mathState builds a state whose math opcode sits at position 1 after an
// operator digit, with the given variables already stored in order
func mathState(operator byte, values ...Value) *ExecutionState {
	state := NewExecutionState([]byte{operator, '8'}, nil)
	for i, v := range values {
		state.Store.Append(Variable{Name: fmt.Sprintf("v%d", i), Value: v})
	}
	return state
}

func TestMathOperandOrder(t *testing.T) {
	e, _ := newTestExecutor("")

	// Int(3) is appended after Int(4), so a = 3 and b = 4
	tests := []struct {
		operator byte
		want     float64
	}{
		{'0', 7},  // b+a
		{'1', 1},  // b-a
		{'2', 12}, // b*a
		{'3', 4.0 / 3.0},
		{'4', 64}, // b^a
		{'5', math.Sqrt(3)},
		{'6', math.Sin(3)},
		{'7', math.Cos(3)},
		{'8', math.Log(3)},
		{'9', 1}, // fmod(4, 3)
	}

	for _, tt := range tests {
		t.Run(MathOp(tt.operator-'0').String(), func(t *testing.T) {
			state := mathState(tt.operator, Int(4), Int(3))

			status := handleMath(testContext(e, state, 1))

			require.Equal(t, BoolStatus(true), status)
			require.Equal(t, 3, state.Store.Len())
			last, _ := state.Store.Last()
			assert.Equal(t, "result_1", last.Name)
			assert.InDelta(t, tt.want, float64(last.Value.(Float)), 1e-9)
			assert.Equal(t, 0, state.Warnings())
		})
	}
}

func TestMathDomainFallbacks(t *testing.T) {
	e, _ := newTestExecutor("")

	for _, tt := range []struct {
		name     string
		operator byte
		a        Value
	}{
		{"divide by zero", '3', Int(0)},
		{"log of zero", '8', Int(0)},
		{"log of negative", '8', Float(-2)},
		{"modulo by zero", '9', Float(0)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			state := mathState(tt.operator, Int(5), tt.a)

			status := handleMath(testContext(e, state, 1))

			assert.Equal(t, BoolStatus(true), status)
			last, _ := state.Store.Last()
			assert.Equal(t, Float(0), last.Value)
			assert.Equal(t, 1, state.Warnings())
		})
	}
}

func TestMathInsufficientOperands(t *testing.T) {
	e, _ := newTestExecutor("")
	state := mathState('0', Int(4), Text("x"), Bool(true))

	status := handleMath(testContext(e, state, 1))

	assert.Equal(t, BoolStatus(false), status)
	assert.Equal(t, 3, state.Store.Len())
	assert.Equal(t, 1, state.Warnings())
}

func TestMathSkipsNonNumeric(t *testing.T) {
	e, _ := newTestExecutor("")
	state := mathState('2', Int(2), Text("x"), Bool(false), Float(0.5))

	handleMath(testContext(e, state, 1))

	last, _ := state.Store.Last()
	assert.Equal(t, Float(1), last.Value)
	first, _ := state.Store.At(0)
	assert.Equal(t, Int(2), first.Value, "operands must not be mutated")
}

func TestMathOperatorLookbehind(t *testing.T) {
	state := NewExecutionState([]byte("5848"), nil)

	assert.Equal(t, OpAdd, MathOperator(state, 0), "no preceding digit")
	assert.Equal(t, OpSqrt, MathOperator(state, 1))
	assert.Equal(t, OpPow, MathOperator(state, 3))
}
