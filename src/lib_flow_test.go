package numo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionKindSelection(t *testing.T) {
	assert.Equal(t, CondParity, ConditionKindAt(4))
	assert.Equal(t, CondThreshold, ConditionKindAt(16))
	assert.Equal(t, CondSwitch, ConditionKindAt(23))
	assert.Equal(t, CondCeiling, ConditionKindAt(38))
	assert.Equal(t, CondFloor, ConditionKindAt(47))
	assert.Equal(t, CondParity, ConditionKindAt(50))
}

func TestEvalCondition(t *testing.T) {
	tests := []struct {
		kind    ConditionKind
		compare int
		want    bool
	}{
		{CondParity, 4, true},
		{CondParity, 7, false},
		{CondThreshold, 5, false},
		{CondThreshold, 6, true},
		{CondSwitch, 3, true},
		{CondCeiling, 7, true},
		{CondCeiling, 8, false},
		{CondFloor, 6, false},
		{CondFloor, 7, true},
	}

	for _, tt := range tests {
		if got := EvalCondition(tt.kind, tt.compare); got != tt.want {
			t.Errorf("%s(%d): expected %t, got %t", tt.kind, tt.compare, tt.want, got)
		}
	}
}

func TestConditionTrueRunsNextDigit(t *testing.T) {
	n, _, _ := newTestNumo("", extendedConfig())

	// position 4 is a parity test on 4: the 3 at position 5 runs nested,
	// then once more as an ordinary opcode
	state := n.ExecuteString("444453")

	require.Equal(t, 6, state.Store.Len())
	nested, _ := state.Store.At(4)
	assert.Equal(t, "var_3_5", nested.Name)
	assert.Equal(t, Int(5), nested.Value)

	frames := state.Conditions.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, ConditionFrame{Position: 4, Result: true}, frames[0])
}

func TestConditionFalseSkipsNextDigit(t *testing.T) {
	n, _, _ := newTestNumo("", extendedConfig())

	state := n.ExecuteString("444444453")

	assert.Equal(t, 7, state.Store.Len())
	top, ok := state.Conditions.Top()
	require.True(t, ok)
	assert.False(t, top.Result)
	_, ok = state.Store.LastOfKind(KindInt)
	assert.False(t, ok, "skipped 3 must not create a variable")
}

func TestConditionCursorMovement(t *testing.T) {
	e, _ := newTestExecutor("")

	state := NewExecutionState([]byte("444444453"), nil)
	handleCondition(testContext(e, state, 7))
	assert.Equal(t, 8, state.Position)

	state = NewExecutionState([]byte("444453"), nil)
	handleCondition(testContext(e, state, 4))
	assert.Equal(t, 4, state.Position)
}

func TestConditionStackOverflow(t *testing.T) {
	config := extendedConfig()
	config.MaxConditionDepth = 1
	config.WarnOnCapacity = true
	n, _, _ := newTestNumo("", config)

	// both conditions are false parity tests (positions 1 and 3)
	state := n.ExecuteString("4545")

	assert.Equal(t, 1, state.Conditions.Depth())
	assert.Equal(t, 1, state.Warnings())
}

func TestLoopAt(t *testing.T) {
	tests := []struct {
		position   int
		kind       LoopKind
		iterations int
	}{
		{0, LoopFor, 1},
		{4, LoopFor, 5},
		{1, LoopWhile, 1},
		{9, LoopWhile, 5},
		{2, LoopDoWhile, 3},
		{3, LoopRepeat, 2},
		{7, LoopRepeat, 3},
	}

	for _, tt := range tests {
		kind, iterations := LoopAt(tt.position)
		if kind != tt.kind || iterations != tt.iterations {
			t.Errorf("LoopAt(%d): expected %s x%d, got %s x%d",
				tt.position, tt.kind, tt.iterations, kind, iterations)
		}
	}
}

func TestLoopExecution(t *testing.T) {
	t.Run("for loop with one iteration", func(t *testing.T) {
		n, _, _ := newTestNumo("", extendedConfig())

		state := n.ExecuteString("234")

		require.Equal(t, 2, state.Store.Len())
		first, _ := state.Store.At(0)
		second, _ := state.Store.At(1)
		assert.Equal(t, Int(4), first.Value)
		assert.Equal(t, Text("text_2"), second.Value)
		assert.Equal(t, 0, state.LoopDepth)
	})

	t.Run("repeat loop re-creates its body", func(t *testing.T) {
		n, _, _ := newTestNumo("", extendedConfig())

		state := n.ExecuteString("444235")

		require.Equal(t, 7, state.Store.Len())
		vars := state.Store.Variables()
		for _, i := range []int{3, 5} {
			assert.Equal(t, "var_3_4", vars[i].Name)
			assert.Equal(t, Int(5), vars[i].Value)
		}
		for _, i := range []int{4, 6} {
			assert.Equal(t, Bool(false), vars[i].Value)
		}
	})

	t.Run("body at end of stream", func(t *testing.T) {
		n, _, _ := newTestNumo("", extendedConfig())

		state := n.ExecuteString("442")

		assert.Equal(t, 2, state.Store.Len())
		assert.GreaterOrEqual(t, state.Position, 3)
	})
}

func TestLoopSkipsBody(t *testing.T) {
	e, _ := newTestExecutor("")
	state := NewExecutionState([]byte("234"), nil)

	handleLoop(testContext(e, state, 0))

	assert.Equal(t, 2, state.Position)
	assert.Equal(t, 0, state.LoopDepth)
}
