package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phroun/numo"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var version = "dev" // set via -ldflags at build time

// ANSI color codes for terminal output
const (
	colorYellow    = "\x1b[93m" // Bright yellow foreground
	colorDarkBrown = "\x1b[33m" // Dark yellow/brown for light backgrounds
	colorReset     = "\x1b[0m"  // Reset to default
)

// CLIConfig holds configuration loaded from ~/.numo/numo-cli.yaml
type CLIConfig struct {
	TermBackground string `yaml:"term_background"` // "light", "dark", or "auto"
	ReportDir      string `yaml:"report_dir"`
	ReportFormat   string `yaml:"report_format"`
	Extended       bool   `yaml:"extended"`
	WarnOnCapacity bool   `yaml:"warn_on_capacity"`
}

// Default CLI config
var cliConfig = CLIConfig{
	TermBackground: "auto",
	ReportDir:      ".",
	ReportFormat:   numo.ReportFormatText,
}

const defaultConfigText = `# Numo 0-9 CLI configuration
# This file is automatically created on first run

# Terminal background color for banner colors: "auto", "dark", "light"
term_background: auto

# Where the 9 opcode writes numo_output_<position>.txt
report_dir: .

# Report format: "text" or "yaml"
report_format: text

# Bind the loop (2), condition (5) and string (6) opcodes
extended: false

# Warn when the variable store or condition stack is full
warn_on_capacity: false
`

// getConfigFilePath returns the path to ~/.numo/numo-cli.yaml
func getConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numo", "numo-cli.yaml")
}

// loadCLIConfig loads configuration, creating the file with defaults if it
// doesn't exist
func loadCLIConfig(configPath string) {
	if configPath == "" {
		return
	}

	content, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err == nil {
			_ = os.WriteFile(configPath, []byte(defaultConfigText), 0644)
		}
		return
	}
	if err != nil {
		return // Graceful failure - use defaults
	}

	loaded := cliConfig
	if err := yaml.Unmarshal(content, &loaded); err != nil {
		errorPrintf("Warning: ignoring %s: %v\n", configPath, err)
		return
	}
	switch strings.ToLower(loaded.TermBackground) {
	case "light", "dark", "auto":
		loaded.TermBackground = strings.ToLower(loaded.TermBackground)
	default:
		loaded.TermBackground = "auto"
	}
	cliConfig = loaded
}

// getBannerColor returns the banner color based on config
func getBannerColor() string {
	if cliConfig.TermBackground == "light" {
		return colorDarkBrown
	}
	return colorYellow
}

// stdoutSupportsColor checks if stdout is a color-capable terminal
func stdoutSupportsColor() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// errorPrintf prints an error message to stderr, using color if supported
func errorPrintf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "%s%s%s", colorYellow, message, colorReset)
	} else {
		fmt.Fprint(os.Stderr, message)
	}
}

// bannerPrintf prints an interpreter banner line
func bannerPrintf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if stdoutSupportsColor() {
		fmt.Printf("%s%s%s", getBannerColor(), message, colorReset)
	} else {
		fmt.Print(message)
	}
}

type options struct {
	help         bool
	debug        bool
	extended     bool
	reportDir    string
	reportFormat string
	trace        string
	seed         int64
	files        []string
}

// parseArgs accepts flags before or after the program file
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("numo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { showUsage(stderr) }

	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.help, "help", false, "Show help")
	fs.BoolVar(&opts.debug, "d", false, "Enable debug mode")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug mode")
	fs.BoolVar(&opts.extended, "extended", cliConfig.Extended, "Bind loop, condition and string opcodes")
	fs.StringVar(&opts.reportDir, "report-dir", cliConfig.ReportDir, "Directory for report files")
	fs.StringVar(&opts.reportFormat, "report-format", cliConfig.ReportFormat, "Report format (text or yaml)")
	fs.StringVar(&opts.trace, "trace", "", "Write a JSON trace of log records to FILE")
	fs.Int64Var(&opts.seed, "seed", 0, "Seed for the random opcode (0 = time based)")

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		opts.files = append(opts.files, rest[0])
		args = rest[1:]
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	loadCLIConfig(getConfigFilePath())

	opts, err := parseArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if opts.help {
		showUsage(os.Stdout)
		return 0
	}
	if len(opts.files) == 0 {
		showUsage(os.Stdout)
		return 1
	}

	config := numo.DefaultConfig()
	config.Debug = opts.debug
	config.Extended = opts.extended
	config.ReportDir = opts.reportDir
	config.ReportFormat = opts.reportFormat
	config.WarnOnCapacity = cliConfig.WarnOnCapacity
	config.Seed = opts.seed

	interp := numo.New(config)

	if opts.trace != "" {
		traceFile, err := os.Create(opts.trace)
		if err != nil {
			errorPrintf("Error: cannot create trace file %s: %v\n", opts.trace, err)
			return 1
		}
		defer traceFile.Close()
		interp.Logger().AttachTrace(traceFile)
	}

	code, err := numo.LoadFile(opts.files[0])
	if err != nil {
		errorPrintf("Error: %v\n", err)
		return 1
	}
	bannerPrintf("Loaded Numo 0-9 program: %d digits\n", len(code))

	bannerPrintf("Starting Numo 0-9 interpretation...\n")
	fmt.Printf("Code: %s\n", string(code))
	fmt.Println(strings.Repeat("=", 50))

	state := interp.Execute(code)

	fmt.Println()
	bannerPrintf("Program execution completed.\n")
	fmt.Printf("Variables created: %d\n", state.Store.Len())
	if w := state.Warnings(); w > 0 {
		fmt.Printf("Warnings: %d\n", w)
	}
	return 0
}

func showUsage(w io.Writer) {
	fmt.Fprintf(w, `Numo 0-9 Programming Language Interpreter %s
=========================================
Usage: numo <file.num> [options]

Numo 0-9 Syntax:
0,1 - Binary code (8 digits per character)
2   - End binary program marker (loop when --extended)
3   - Create integer variable (value from next digit)
4   - Create string variable
5   - Create boolean variable (condition when --extended)
6   - Create float variable (string operation when --extended)
7   - Enhanced input/output
8   - Mathematical operation (operator from previous digit)
9   - File operations

Options:
-d, --debug            Enable debug mode
-h, --help             Show this help
--extended             Bind loop, condition and string opcodes
--report-dir DIR       Directory for report files (default: .)
--report-format FMT    Report format: text or yaml
--trace FILE           Write a JSON trace of log records to FILE
--seed N               Seed for the random opcode

Configuration: ~/.numo/numo-cli.yaml
`, version)
}
