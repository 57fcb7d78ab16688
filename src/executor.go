package numo

import (
	"fmt"
)

// Executor owns the opcode table and runs the fetch-decode-execute loop
type Executor struct {
	opcodes  [10]Handler
	logger   *Logger
	console  *Console
	reporter Reporter
	config   *Config
}

// NewExecutor creates an executor with an empty opcode table
func NewExecutor(logger *Logger, console *Console, config *Config) *Executor {
	if config == nil {
		config = DefaultConfig()
	}
	return &Executor{
		logger:  logger,
		console: console,
		config:  config,
	}
}

// RegisterOpcode binds handler to a digit in 2..9
func (e *Executor) RegisterOpcode(digit byte, handler Handler) error {
	if digit < '2' || digit > '9' {
		return &NumoError{Message: fmt.Sprintf("cannot bind digit %q", digit), Position: -1, Err: ErrInvalidOpcode}
	}
	e.opcodes[digit-'0'] = handler
	e.logger.TraceCat(CatCommand, "Registered opcode: %c", digit)
	return nil
}

// UnregisterOpcode removes the handler for a digit
func (e *Executor) UnregisterOpcode(digit byte) bool {
	if digit < '2' || digit > '9' || e.opcodes[digit-'0'] == nil {
		e.logger.Warn("Attempted to unregister unbound opcode: %c", digit)
		return false
	}
	e.opcodes[digit-'0'] = nil
	return true
}

// SetReporter sets the collaborator used by the report opcode
func (e *Executor) SetReporter(r Reporter) {
	e.reporter = r
}

func (e *Executor) newContext(state *ExecutionState, position int, digit byte) *Context {
	return &Context{
		State:    state,
		Position: position,
		Digit:    digit,
		executor: e,
		logger:   e.logger,
		console:  e.console,
	}
}

// Run executes the whole digit stream held by state
func (e *Executor) Run(state *ExecutionState) {
	for state.Position < state.Len() {
		e.step(state)
		state.Position++
	}

	if state.BinaryRunOpen() {
		e.closeBinaryRun(state, state.Len())
	}
}

// step dispatches the digit under the cursor
func (e *Executor) step(state *ExecutionState) {
	pos := state.Position
	digit, _ := state.DigitAt(pos)

	if state.Debug {
		e.logger.DebugCat(CatCommand, "Position %d: Processing digit '%c'", pos, digit)
	}

	switch {
	case digit == '0' || digit == '1':
		if !state.BinaryRunOpen() {
			state.binaryStart = pos
		}
		return
	case digit == '2' && state.BinaryRunOpen():
		e.closeBinaryRun(state, pos)
		return
	case digit < '0' || digit > '9':
		state.warnings++
		e.logger.Log(LevelWarn, CatParse, fmt.Sprintf("Unknown digit: %q", digit), pos)
		return
	}

	handler := e.opcodes[digit-'0']
	if handler == nil {
		e.logger.TraceCat(CatCommand, "no handler bound for digit %c", digit)
		return
	}

	state.executed++
	if status, ok := handler(e.newContext(state, pos, digit)).(BoolStatus); ok && !bool(status) {
		e.logger.DebugCat(CatCommand, "opcode %c at position %d did not complete", digit, pos)
	}
}

// closeBinaryRun decodes [start, end) and clears the run marker
func (e *Executor) closeBinaryRun(state *ExecutionState, end int) {
	start := state.binaryStart
	state.binaryStart = -1
	state.binaryRuns++

	e.logger.DebugCat(CatBinary, "Executing binary sequence from position %d to %d", start, end)
	text := DecodeBinary(state.code[start:end])
	e.console.Println(text)
}

// execNested runs the variable-creating digit at pos on behalf of a
// condition or loop without moving the cursor
func (e *Executor) execNested(ctx *Context, pos int) bool {
	digit, ok := ctx.State.DigitAt(pos)
	if !ok {
		return false
	}
	kind, ok := KindForDigit(digit)
	if !ok {
		return false
	}
	nested := e.newContext(ctx.State, pos, digit)
	if err := CreateVariable(ctx.State, kind, pos); err != nil {
		nested.capacityDropped(err)
		return false
	}
	return true
}
