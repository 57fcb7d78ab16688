package numo

// RegisterStandardLibrary binds the core opcode set:
// 3-6 create variables, 7 IO, 8 math, 9 report.
// Digit 2 is left unbound; it only terminates binary runs.
func (n *Numo) RegisterStandardLibrary() {
	n.RegisterOpcode('3', createHandler(KindInt))
	n.RegisterOpcode('4', createHandler(KindText))
	n.RegisterOpcode('5', createHandler(KindBool))
	n.RegisterOpcode('6', createHandler(KindFloat))
	n.RegisterOpcode('7', handleIO)
	n.RegisterOpcode('8', handleMath)
	n.RegisterOpcode('9', handleReport)
}

// RegisterExtendedLibrary binds the control-flow opcodes on top of the core
// set: 2 loops (only when no binary run is open), 5 conditions and 6 string
// operations. Bool and Float variables are still created by the nested
// calls of conditions and loops.
func (n *Numo) RegisterExtendedLibrary() {
	n.RegisterStandardLibrary()
	n.RegisterOpcode('2', handleLoop)
	n.RegisterOpcode('5', handleCondition)
	n.RegisterOpcode('6', handleString)
}
