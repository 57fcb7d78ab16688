package numo

import (
	"errors"
	"fmt"
)

// Fixed capacities of the interpreter
const (
	MaxCodeSize       = 9999 // digits kept by the loader
	MaxVariables      = 1000
	MaxConditionDepth = 100
	MaxStringLen      = 1000
	ArrayCreateLen    = 5
	MaxArrayCapacity  = 100
)

var (
	// ErrStoreFull indicates the variable store is at capacity.
	ErrStoreFull = errors.New("variable store full")

	// ErrStackFull indicates the condition stack is at capacity.
	ErrStackFull = errors.New("condition stack full")

	// ErrTextTooLong indicates a text value would exceed MaxStringLen.
	ErrTextTooLong = errors.New("text exceeds maximum length")

	// ErrArrayTooLarge indicates an array would exceed MaxArrayCapacity.
	ErrArrayTooLarge = errors.New("array exceeds maximum capacity")

	// ErrInsufficientOperands indicates too few typed operands in the store.
	ErrInsufficientOperands = errors.New("insufficient operands")

	// ErrNoInput indicates the console input was exhausted.
	ErrNoInput = errors.New("no input available")

	// ErrInvalidOpcode indicates a non-digit reached the engine.
	ErrInvalidOpcode = errors.New("invalid opcode")
)

// Context is passed to opcode handlers
type Context struct {
	State    *ExecutionState
	Position int
	Digit    byte
	executor *Executor
	logger   *Logger
	console  *Console
}

// Console returns the console the handler should use for terminal I/O
func (c *Context) Console() *Console {
	return c.console
}

// LogWarning logs a handler warning with the opcode position
func (c *Context) LogWarning(cat LogCategory, message string) {
	c.State.warnings++
	c.logger.CommandWarning(cat, string(c.Digit), message, c.Position)
}

// LogDebug logs a handler debug message
func (c *Context) LogDebug(cat LogCategory, format string, args ...interface{}) {
	c.logger.DebugCat(cat, format, args...)
}

// capacityDropped reports a store/stack overflow only when the embedding asked for it
func (c *Context) capacityDropped(err error) {
	if c.executor != nil && c.executor.config.WarnOnCapacity {
		c.LogWarning(CatVariable, err.Error())
		return
	}
	c.logger.TraceCat(CatVariable, "dropped at position %d: %v", c.Position, err)
}

// Handler is a function that handles an opcode digit
type Handler func(*Context) Result

// Result represents the result of an opcode handler
type Result interface {
	isResult()
}

// BoolStatus represents a boolean success/failure status
type BoolStatus bool

func (BoolStatus) isResult() {}

// Config holds configuration for the interpreter
type Config struct {
	Debug             bool
	Extended          bool // bind the loop, condition and string opcodes
	MaxVariables      int
	MaxConditionDepth int
	WarnOnCapacity    bool
	ReportDir         string
	ReportFormat      string // "text" or "yaml"
	Seed              int64
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		Extended:          false,
		MaxVariables:      MaxVariables,
		MaxConditionDepth: MaxConditionDepth,
		WarnOnCapacity:    false,
		ReportDir:         ".",
		ReportFormat:      ReportFormatText,
		Seed:              0,
	}
}

// NumoError represents an error with position information
type NumoError struct {
	Message  string
	Position int
	Err      error
}

func (e *NumoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at position %d: %v", e.Message, e.Position, e.Err)
	}
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}

func (e *NumoError) Unwrap() error {
	return e.Err
}
