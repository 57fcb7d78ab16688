package numo

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// Color is the ambient display color
type Color int

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	colorCount
)

var colorNames = [...]string{"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var colorCodes = [...]string{"\x1b[39m", "\x1b[31m", "\x1b[32m", "\x1b[33m", "\x1b[34m", "\x1b[35m", "\x1b[36m", "\x1b[37m"}

func (c Color) String() string {
	if c < 0 || c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// TerminalCapabilities holds what the console output device supports
type TerminalCapabilities struct {
	TermType     string
	IsTerminal   bool
	SupportsANSI bool
	Width        int
	Height       int
}

// NewTerminalCapabilities creates a capabilities struct with defaults
func NewTerminalCapabilities() *TerminalCapabilities {
	return &TerminalCapabilities{
		TermType: "unknown",
		Width:    80,
		Height:   24,
	}
}

// DetectTerminalCapabilities inspects f, normally os.Stdout
func DetectTerminalCapabilities(f *os.File) *TerminalCapabilities {
	caps := NewTerminalCapabilities()
	caps.IsTerminal = term.IsTerminal(int(f.Fd()))

	caps.TermType = os.Getenv("TERM")
	if caps.TermType == "" {
		caps.TermType = "unknown"
	}
	caps.SupportsANSI = detectANSISupport(caps.TermType, caps.IsTerminal)

	if caps.IsTerminal {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 && height > 0 {
			caps.Width = width
			caps.Height = height
		}
	}
	return caps
}

// detectANSISupport checks if the terminal likely supports ANSI escape codes
func detectANSISupport(termType string, isTerminal bool) bool {
	if !isTerminal {
		return false
	}
	if termType == "" || termType == "dumb" {
		return false
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return true
}

// Console is the interactive device used by the IO opcodes
type Console struct {
	in     *bufio.Reader
	inFile *os.File // set when input is a real file descriptor
	out    io.Writer
	caps   *TerminalCapabilities
	color  Color
	rng    *rand.Rand

	// Now returns the wall-clock time; replaceable in tests
	Now func() time.Time
}

// NewConsole creates a console over arbitrary streams
func NewConsole(in io.Reader, out io.Writer, seed int64) *Console {
	c := &Console{
		in:   bufio.NewReader(in),
		out:  out,
		caps: NewTerminalCapabilities(),
		rng:  rand.New(rand.NewSource(seed)),
		Now:  time.Now,
	}
	if f, ok := in.(*os.File); ok {
		c.inFile = f
	}
	return c
}

// NewSystemConsole creates a console on stdin/stdout. A zero seed picks a
// time-based seed.
func NewSystemConsole(seed int64) *Console {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c := NewConsole(os.Stdin, os.Stdout, seed)
	c.caps = DetectTerminalCapabilities(os.Stdout)
	return c
}

// Capabilities returns the detected output capabilities
func (c *Console) Capabilities() *TerminalCapabilities {
	return c.caps
}

// SetCapabilities overrides detection
func (c *Console) SetCapabilities(caps *TerminalCapabilities) {
	if caps != nil {
		c.caps = caps
	}
}

// SetColor changes the color used for subsequent output
func (c *Console) SetColor(color Color) {
	c.color = color
	if c.caps.SupportsANSI {
		fmt.Fprint(c.out, colorCodes[color])
	}
}

// Printf writes formatted output
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line of output
func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine reads one line with its trailing line terminator removed
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear clears the terminal, or prints a separator when ANSI is unavailable
func (c *Console) Clear() {
	if c.caps.SupportsANSI {
		fmt.Fprint(c.out, "\x1b[2J\x1b[H")
		return
	}
	fmt.Fprintln(c.out, strings.Repeat("-", c.caps.Width))
}

// Pause blocks until a key (terminal) or a line (redirected input) arrives
func (c *Console) Pause() error {
	fmt.Fprint(c.out, "Press any key to continue...")
	defer fmt.Fprintln(c.out)

	if c.inFile != nil && term.IsTerminal(int(c.inFile.Fd())) && c.in.Buffered() == 0 {
		oldState, err := term.MakeRaw(int(c.inFile.Fd()))
		if err == nil {
			defer term.Restore(int(c.inFile.Fd()), oldState)
			_, err = c.in.ReadByte()
			return err
		}
	}
	_, err := c.ReadLine()
	return err
}

// Bell emits the terminal bell
func (c *Console) Bell() {
	fmt.Fprint(c.out, "\a")
}

// RandomInt returns a pseudo-random integer in [0, n)
func (c *Console) RandomInt(n int) int {
	return c.rng.Intn(n)
}

// Width returns the usable output width
func (c *Console) Width() int {
	return c.caps.Width
}

// Reset restores the default color
func (c *Console) Reset() {
	if c.caps.SupportsANSI && c.color != ColorDefault {
		fmt.Fprint(c.out, colorReset)
	}
	c.color = ColorDefault
}
