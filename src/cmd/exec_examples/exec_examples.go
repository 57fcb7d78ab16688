package main

import (
	"fmt"

	"github.com/phroun/numo"
)

func main() {
	n := numo.New(&numo.Config{
		Debug:    false,
		Extended: true,
	})

	// Keep reports in memory instead of writing files
	n.SetReporter(numo.ReporterFunc(func(snap numo.Snapshot) (string, error) {
		fmt.Printf("  report at %d: %d variables\n", snap.Position, snap.TotalVariables)
		for _, v := range snap.Variables {
			fmt.Printf("    %s\n", v)
		}
		return "memory", nil
	}))

	fmt.Println("=== Numo 0-9 - Embedding Examples ===")

	// Example 1: Binary text
	fmt.Println("--- Example 1: Binary Text ---")
	n.ExecuteString(numo.EncodeBinary("Hi!") + "2")
	fmt.Println()

	// Example 2: Lookahead math
	fmt.Println("--- Example 2: Lookahead Math ---")
	state := n.ExecuteString("3348 9")
	if v, ok := state.Store.Last(); ok {
		fmt.Printf("  last result: %s\n", v)
	}
	fmt.Println()

	// Example 3: Custom opcode
	fmt.Println("--- Example 3: Custom Opcode ---")
	n.RegisterOpcode('7', func(ctx *numo.Context) numo.Result {
		fmt.Printf("  custom opcode at position %d sees %d variables\n", ctx.Position, ctx.State.Store.Len())
		return numo.BoolStatus(true)
	})
	n.ExecuteString("33 7 44 7")
	fmt.Println()

	// Example 4: Loops and conditions
	fmt.Println("--- Example 4: Loops and Conditions ---")
	state = n.ExecuteString("3 234 5 3 9")
	fmt.Printf("  %d variables, %d conditions\n", state.Store.Len(), state.Conditions.Depth())
}
