package numo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IOOp selects one of the ten enhanced IO operations
type IOOp int

const (
	IOReadInt IOOp = iota
	IOReadLine
	IODisplay
	IOClear
	IOPause
	IORandom
	IOColor
	IOStatus
	IOBell
	IOTime
)

var ioOpNames = [...]string{"read-int", "read-line", "display", "clear", "pause", "random", "color", "status", "bell", "time"}

func (op IOOp) String() string {
	if op < IOReadInt || op > IOTime {
		return "unknown"
	}
	return ioOpNames[op]
}

// IOOpAt selects the operation for an IO opcode at position
func IOOpAt(position int) IOOp {
	return IOOp(position % 10)
}

// randomLimit is the exclusive upper bound of generated integers
const randomLimit = 100

// handleIO dispatches the enhanced IO opcode
func handleIO(ctx *Context) Result {
	con := ctx.Console()
	op := IOOpAt(ctx.Position)
	ctx.LogDebug(CatIO, "IO %s at position %d", op, ctx.Position)

	switch op {
	case IOReadInt:
		con.Printf("Enter a number: ")
		line, err := con.ReadLine()
		if err != nil {
			return ioFailed(ctx, err)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			ctx.LogWarning(CatIO, fmt.Sprintf("not an integer: %q", line))
			return BoolStatus(false)
		}
		return BoolStatus(appendResult(ctx, fmt.Sprintf("input_num_%d", ctx.Position), Int(n)))

	case IOReadLine:
		con.Printf("Enter text: ")
		line, err := con.ReadLine()
		if err != nil {
			return ioFailed(ctx, err)
		}
		text, err := NewText(line)
		if err != nil {
			ctx.LogWarning(CatIO, err.Error())
			return BoolStatus(false)
		}
		return BoolStatus(appendResult(ctx, fmt.Sprintf("input_str_%d", ctx.Position), text))

	case IODisplay:
		v, ok := ctx.State.Store.Last()
		if !ok {
			con.Println("No variables")
			return BoolStatus(false)
		}
		con.Println(v.String())

	case IOClear:
		con.Clear()

	case IOPause:
		if err := con.Pause(); err != nil {
			return ioFailed(ctx, err)
		}

	case IORandom:
		n := con.RandomInt(randomLimit)
		return BoolStatus(appendResult(ctx, fmt.Sprintf("random_%d", ctx.Position), Int(n)))

	case IOColor:
		color := Color((ctx.Position / 10) % int(colorCount))
		ctx.State.Color = color
		con.SetColor(color)

	case IOStatus:
		printStatus(ctx)

	case IOBell:
		con.Bell()

	case IOTime:
		con.Println("Current time: " + con.Now().Format("2006-01-02 15:04:05"))
	}
	return BoolStatus(true)
}

// ioFailed reports an interactive input failure; execution continues
func ioFailed(ctx *Context, err error) Result {
	if errors.Is(err, ErrNoInput) {
		ctx.LogWarning(CatIO, "input exhausted")
	} else {
		ctx.LogWarning(CatIO, err.Error())
	}
	return BoolStatus(false)
}

// printStatus draws the formatted status block
func printStatus(ctx *Context) {
	con := ctx.Console()
	width := min(max(con.Width(), 24), 60)
	rule := strings.Repeat("=", width)
	snap := ctx.State.Snapshot()

	con.Println(rule)
	con.Println("Numo 0-9 status")
	con.Println(strings.Repeat("-", width))
	con.Printf("Position:    %d/%d\n", snap.Position, snap.CodeLength)
	con.Printf("Variables:   %d\n", snap.TotalVariables)
	con.Printf("Conditions:  %d\n", snap.StackDepth)
	con.Printf("Loop depth:  %d\n", snap.LoopDepth)
	con.Printf("Color:       %s\n", ctx.State.Color)
	con.Printf("Debug:       %t\n", snap.Debug)
	con.Println(rule)
}
