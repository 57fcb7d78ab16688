package numo

import (
	"io"
	"strings"

	"github.com/kr/pretty"
)

// Numo is the main interpreter
type Numo struct {
	config   *Config
	logger   *Logger
	console  *Console
	executor *Executor
}

// New creates an interpreter on the system console with the opcode set
// selected by config
func New(config *Config) *Numo {
	if config == nil {
		config = DefaultConfig()
	}
	return NewWithConsole(config, NewSystemConsole(config.Seed))
}

// NewWithConsole creates an interpreter bound to console
func NewWithConsole(config *Config, console *Console) *Numo {
	if config == nil {
		config = DefaultConfig()
	}

	logger := NewLogger(config.Debug)
	n := &Numo{
		config:   config,
		logger:   logger,
		console:  console,
		executor: NewExecutor(logger, console, config),
	}
	n.executor.SetReporter(NewFileReporter(config.ReportDir, config.ReportFormat))

	if config.Extended {
		n.RegisterExtendedLibrary()
	} else {
		n.RegisterStandardLibrary()
	}
	return n
}

// Config returns the interpreter configuration
func (n *Numo) Config() *Config {
	return n.config
}

// Logger returns the interpreter logger
func (n *Numo) Logger() *Logger {
	return n.logger
}

// Console returns the console used by IO opcodes
func (n *Numo) Console() *Console {
	return n.console
}

// RegisterOpcode binds a custom handler to a digit in 2..9
func (n *Numo) RegisterOpcode(digit byte, handler Handler) error {
	return n.executor.RegisterOpcode(digit, handler)
}

// UnregisterOpcode removes the handler bound to digit
func (n *Numo) UnregisterOpcode(digit byte) bool {
	return n.executor.UnregisterOpcode(digit)
}

// SetReporter replaces the collaborator used by the report opcode
func (n *Numo) SetReporter(r Reporter) {
	n.executor.SetReporter(r)
}

// SetLogOutput redirects log output
func (n *Numo) SetLogOutput(out, errOut io.Writer) {
	n.logger.SetOutput(out, errOut)
}

// Execute runs a digit stream to completion and returns the final state
func (n *Numo) Execute(code []byte) *ExecutionState {
	state := NewExecutionState(code, n.config)
	n.logger.DebugCat(CatSystem, "Starting execution of %d digits", state.Len())

	n.executor.Run(state)
	n.console.Reset()

	if n.config.Debug {
		n.logger.DebugCat(CatSystem, "Final state:\n%s", pretty.Sprint(state.Snapshot()))
	}
	return state
}

// ExecuteString runs the digits found in source, ignoring everything else
func (n *Numo) ExecuteString(source string) *ExecutionState {
	code, _ := LoadProgram(strings.NewReader(source))
	return n.Execute(code)
}

// ExecuteFile loads and runs a program file
func (n *Numo) ExecuteFile(filename string) (*ExecutionState, error) {
	code, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return n.Execute(code), nil
}
