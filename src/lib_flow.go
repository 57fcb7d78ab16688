package numo

// ConditionKind is one of the five condition tests
type ConditionKind int

const (
	CondParity    ConditionKind = iota // compare is even
	CondThreshold                      // compare > 5
	CondSwitch                         // always true
	CondCeiling                        // compare < 8
	CondFloor                          // compare >= 7
)

var conditionNames = [...]string{"parity", "threshold", "switch", "ceiling", "floor"}

func (k ConditionKind) String() string {
	if k < CondParity || k > CondFloor {
		return "unknown"
	}
	return conditionNames[k]
}

// ConditionKindAt selects the test for a condition opcode at position. The
// decade of the position picks the kind, so positions 0-9 use parity,
// 10-19 threshold, and so on.
func ConditionKindAt(position int) ConditionKind {
	return ConditionKind((position / 10) % 5)
}

// EvalCondition applies kind to compare
func EvalCondition(kind ConditionKind, compare int) bool {
	switch kind {
	case CondParity:
		return compare%2 == 0
	case CondThreshold:
		return compare > 5
	case CondSwitch:
		return true
	case CondCeiling:
		return compare < 8
	case CondFloor:
		return compare >= 7
	}
	return false
}

// handleCondition evaluates a condition against position mod 10. True runs
// the next digit as a nested variable creation; false skips it.
func handleCondition(ctx *Context) Result {
	kind := ConditionKindAt(ctx.Position)
	compare := ctx.Position % 10
	result := EvalCondition(kind, compare)

	if err := ctx.State.Conditions.Push(ConditionFrame{Position: ctx.Position, Result: result}); err != nil {
		ctx.capacityDropped(err)
	}

	if result {
		ctx.LogDebug(CatFlow, "Condition %s(%d) TRUE: executing next instruction", kind, compare)
		ctx.executor.execNested(ctx, ctx.Position+1)
	} else {
		ctx.LogDebug(CatFlow, "Condition %s(%d) FALSE: skipping next instruction", kind, compare)
		ctx.State.Skip(1)
	}
	return BoolStatus(true)
}

// LoopKind is one of the four simulated loop shapes
type LoopKind int

const (
	LoopFor LoopKind = iota
	LoopWhile
	LoopDoWhile
	LoopRepeat
)

// maxWhileIterations caps the while approximation
const maxWhileIterations = 5

// loopBodyLen is how many digits after the loop opcode form its body
const loopBodyLen = 2

var loopNames = [...]string{"for", "while", "do-while", "repeat"}

func (k LoopKind) String() string {
	if k < LoopFor || k > LoopRepeat {
		return "unknown"
	}
	return loopNames[k]
}

// LoopAt returns the loop kind and fixed iteration count for position
func LoopAt(position int) (LoopKind, int) {
	kind := LoopKind(position % 4)
	switch kind {
	case LoopFor:
		return kind, position%5 + 1
	case LoopWhile:
		return kind, min(position%10, maxWhileIterations)
	case LoopDoWhile:
		return kind, 1 + position%3
	default:
		return kind, 2 + position%3
	}
}

// handleLoop re-creates the variables of the two following digits a fixed
// number of times, then skips over them
func handleLoop(ctx *Context) Result {
	kind, iterations := LoopAt(ctx.Position)
	ctx.LogDebug(CatFlow, "Loop %s at position %d: %d iterations", kind, ctx.Position, iterations)

	ctx.State.LoopDepth++
	for i := 0; i < iterations; i++ {
		for off := 1; off <= loopBodyLen; off++ {
			ctx.executor.execNested(ctx, ctx.Position+off)
		}
	}
	ctx.State.LoopDepth--

	ctx.State.Skip(loopBodyLen)
	return BoolStatus(true)
}
