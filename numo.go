// Package numo provides an interpreter for Numo 0-9, a language written
// only in digits, that can be embedded in Go applications.
//
// This package re-exports the public API from the implementation in src/.
// For full documentation, see the implementation package.
//
// Basic usage:
//
//	n := numo.New(&numo.Config{Debug: false})
//	state := n.ExecuteString("3348")
//	fmt.Println(state.Store.Len())
package numo

import (
	impl "github.com/phroun/numo/src"
)

// =============================================================================
// CORE TYPES
// =============================================================================

// Numo is the main interpreter instance.
type Numo = impl.Numo

// Config holds configuration options for the interpreter.
type Config = impl.Config

// Context is passed to opcode handlers during execution.
type Context = impl.Context

// Result is the interface returned by opcode handlers.
type Result = impl.Result

// Handler is the function signature for opcode handlers.
type Handler = impl.Handler

// BoolStatus is a boolean result from an opcode handler.
type BoolStatus = impl.BoolStatus

// =============================================================================
// EXECUTION STATE
// =============================================================================

// ExecutionState is the mutable state of one run.
type ExecutionState = impl.ExecutionState

// Snapshot is an immutable view of the state given to reporters.
type Snapshot = impl.Snapshot

// VariableStore is the ordered, bounded variable list.
type VariableStore = impl.VariableStore

// Variable is a named value.
type Variable = impl.Variable

// ConditionFrame records one condition evaluation.
type ConditionFrame = impl.ConditionFrame

// =============================================================================
// VALUES
// =============================================================================

// Value is the closed set of runtime values.
type Value = impl.Value

// Kind is the type tag of a value.
type Kind = impl.Kind

// Value kinds.
const (
	KindInt   = impl.KindInt
	KindText  = impl.KindText
	KindBool  = impl.KindBool
	KindFloat = impl.KindFloat
	KindArray = impl.KindArray
)

// Int is an integer value.
type Int = impl.Int

// Text is a bounded string value.
type Text = impl.Text

// Bool is a boolean value.
type Bool = impl.Bool

// Float is a floating-point value.
type Float = impl.Float

// Array is a bounded array of Int.
type Array = impl.Array

// =============================================================================
// REPORTING
// =============================================================================

// Reporter receives snapshots from the report opcode.
type Reporter = impl.Reporter

// ReporterFunc adapts a function to Reporter.
type ReporterFunc = impl.ReporterFunc

// FileReporter writes report files.
type FileReporter = impl.FileReporter

// Report formats.
const (
	ReportFormatText = impl.ReportFormatText
	ReportFormatYAML = impl.ReportFormatYAML
)

// =============================================================================
// CONSOLE AND LOGGING
// =============================================================================

// Console is the device used by IO opcodes.
type Console = impl.Console

// Logger is the categorized interpreter logger.
type Logger = impl.Logger

// LogCategory identifies the logging subsystem.
type LogCategory = impl.LogCategory

// =============================================================================
// ERRORS
// =============================================================================

// NumoError is an error with position information.
type NumoError = impl.NumoError

// Sentinel errors.
var (
	ErrStoreFull            = impl.ErrStoreFull
	ErrStackFull            = impl.ErrStackFull
	ErrTextTooLong          = impl.ErrTextTooLong
	ErrArrayTooLarge        = impl.ErrArrayTooLarge
	ErrInsufficientOperands = impl.ErrInsufficientOperands
	ErrNoInput              = impl.ErrNoInput
	ErrInvalidOpcode        = impl.ErrInvalidOpcode
)

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// New creates an interpreter on the system console.
func New(config *Config) *Numo {
	return impl.New(config)
}

// NewWithConsole creates an interpreter bound to a console.
func NewWithConsole(config *Config, console *Console) *Numo {
	return impl.NewWithConsole(config, console)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return impl.DefaultConfig()
}

// NewSystemConsole creates a console on stdin/stdout.
func NewSystemConsole(seed int64) *Console {
	return impl.NewSystemConsole(seed)
}

// NewFileReporter creates a reporter writing into dir.
func NewFileReporter(dir, format string) *FileReporter {
	return impl.NewFileReporter(dir, format)
}

// =============================================================================
// LOADING AND BINARY
// =============================================================================

// LoadFile reads a program file, keeping only digits.
func LoadFile(filename string) ([]byte, error) {
	return impl.LoadFile(filename)
}

// DecodeBinary decodes a 0/1 digit run into text.
func DecodeBinary(digits []byte) string {
	return impl.DecodeBinary(digits)
}

// EncodeBinary encodes ASCII text as 0/1 digits.
func EncodeBinary(text string) string {
	return impl.EncodeBinary(text)
}
