package numo

import "fmt"

// Variable is a named value in the store
type Variable struct {
	Name  string
	Value Value
}

func (v Variable) String() string {
	return fmt.Sprintf("%s (%s) = %s", v.Name, v.Value.Kind(), v.Value)
}

// VariableName builds the name of an opcode-created variable
func VariableName(kind Kind, position int) string {
	return fmt.Sprintf("var_%d_%d", int(kind), position)
}

// VariableStore is an append-only, capacity-bounded list of variables.
// Index order is creation order; lookups by kind scan from the tail so that
// later entries shadow earlier ones.
type VariableStore struct {
	vars     []Variable
	capacity int
}

// NewVariableStore creates a store holding at most capacity variables
func NewVariableStore(capacity int) *VariableStore {
	if capacity <= 0 {
		capacity = MaxVariables
	}
	return &VariableStore{capacity: capacity}
}

// Append adds v at the end. A full store is left unchanged.
func (s *VariableStore) Append(v Variable) error {
	if len(s.vars) >= s.capacity {
		return ErrStoreFull
	}
	s.vars = append(s.vars, v)
	return nil
}

// Len returns the number of variables
func (s *VariableStore) Len() int {
	return len(s.vars)
}

// Cap returns the configured capacity
func (s *VariableStore) Cap() int {
	return s.capacity
}

// At returns the variable at index i
func (s *VariableStore) At(i int) (Variable, bool) {
	if i < 0 || i >= len(s.vars) {
		return Variable{}, false
	}
	return s.vars[i], true
}

// Last returns the most recently created variable
func (s *VariableStore) Last() (Variable, bool) {
	return s.At(len(s.vars) - 1)
}

// Variables returns a copy of the variables in creation order
func (s *VariableStore) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}

// LastOfKind returns the most recent variable whose value has one of kinds
func (s *VariableStore) LastOfKind(kinds ...Kind) (Variable, bool) {
	found := s.LastNOfKind(1, kinds...)
	if len(found) == 0 {
		return Variable{}, false
	}
	return found[0], true
}

// LastNOfKind returns up to n variables matching kinds, most recent first
func (s *VariableStore) LastNOfKind(n int, kinds ...Kind) []Variable {
	var out []Variable
	for i := len(s.vars) - 1; i >= 0 && len(out) < n; i-- {
		k := s.vars[i].Value.Kind()
		for _, want := range kinds {
			if k == want {
				out = append(out, s.vars[i])
				break
			}
		}
	}
	return out
}

// ConditionFrame records the outcome of one condition opcode
type ConditionFrame struct {
	Position int
	Result   bool
}

// ConditionStack is a bounded push-only stack of condition frames
type ConditionStack struct {
	frames   []ConditionFrame
	capacity int
}

// NewConditionStack creates a stack holding at most capacity frames
func NewConditionStack(capacity int) *ConditionStack {
	if capacity <= 0 {
		capacity = MaxConditionDepth
	}
	return &ConditionStack{capacity: capacity}
}

// Push records a frame. A full stack is left unchanged.
func (cs *ConditionStack) Push(f ConditionFrame) error {
	if len(cs.frames) >= cs.capacity {
		return ErrStackFull
	}
	cs.frames = append(cs.frames, f)
	return nil
}

// Depth returns the number of frames
func (cs *ConditionStack) Depth() int {
	return len(cs.frames)
}

// Top returns the most recent frame
func (cs *ConditionStack) Top() (ConditionFrame, bool) {
	if len(cs.frames) == 0 {
		return ConditionFrame{}, false
	}
	return cs.frames[len(cs.frames)-1], true
}

// Frames returns a copy of the frames, oldest first
func (cs *ConditionStack) Frames() []ConditionFrame {
	out := make([]ConditionFrame, len(cs.frames))
	copy(out, cs.frames)
	return out
}
