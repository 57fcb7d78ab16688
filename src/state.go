package numo

import (
	"fmt"
)

// ExecutionState is the single mutable aggregate of a run. It is created
// once per program and passed explicitly to every handler.
type ExecutionState struct {
	code        []byte
	Position    int
	Store       *VariableStore
	Conditions  *ConditionStack
	Color       Color
	Debug       bool
	LoopDepth   int
	binaryStart int // -1 when no binary run is open

	executed   int
	binaryRuns int
	warnings   int
}

// NewExecutionState creates a state over a digit stream
func NewExecutionState(code []byte, config *Config) *ExecutionState {
	if config == nil {
		config = DefaultConfig()
	}
	buf := make([]byte, len(code))
	copy(buf, code)
	return &ExecutionState{
		code:        buf,
		Store:       NewVariableStore(config.MaxVariables),
		Conditions:  NewConditionStack(config.MaxConditionDepth),
		Color:       ColorDefault,
		Debug:       config.Debug,
		binaryStart: -1,
	}
}

// Len returns the length of the digit stream
func (s *ExecutionState) Len() int {
	return len(s.code)
}

// Code returns the digit stream as a string
func (s *ExecutionState) Code() string {
	return string(s.code)
}

// DigitAt returns the digit at pos
func (s *ExecutionState) DigitAt(pos int) (byte, bool) {
	if pos < 0 || pos >= len(s.code) {
		return 0, false
	}
	return s.code[pos], true
}

// PeekNext returns the digit after pos without moving the cursor
func (s *ExecutionState) PeekNext(pos int) (byte, bool) {
	return s.DigitAt(pos + 1)
}

// PeekPrev returns the digit before pos without moving the cursor
func (s *ExecutionState) PeekPrev(pos int) (byte, bool) {
	return s.DigitAt(pos - 1)
}

// Skip advances the cursor by n extra positions
func (s *ExecutionState) Skip(n int) {
	if n > 0 {
		s.Position += n
	}
}

// BinaryRunOpen reports whether a 0/1 run is being collected
func (s *ExecutionState) BinaryRunOpen() bool {
	return s.binaryStart >= 0
}

// Warnings returns how many handler warnings were logged
func (s *ExecutionState) Warnings() int {
	return s.warnings
}

// Snapshot is an immutable view of the state handed to reporters
type Snapshot struct {
	Position       int
	Variables      []Variable
	TotalVariables int
	StackDepth     int
	LoopDepth      int
	CodeLength     int
	Debug          bool
	Executed       int
	BinaryRuns     int
}

// Snapshot returns a copy of the variables and counters
func (s *ExecutionState) Snapshot() Snapshot {
	return Snapshot{
		Position:       s.Position,
		Variables:      s.Store.Variables(),
		TotalVariables: s.Store.Len(),
		StackDepth:     s.Conditions.Depth(),
		LoopDepth:      s.LoopDepth,
		CodeLength:     len(s.code),
		Debug:          s.Debug,
		Executed:       s.executed,
		BinaryRuns:     s.binaryRuns,
	}
}

// String returns a string representation for debugging
func (s *ExecutionState) String() string {
	return fmt.Sprintf("ExecutionState(pos %d/%d, %d vars, %d conditions)",
		s.Position, len(s.code), s.Store.Len(), s.Conditions.Depth())
}
