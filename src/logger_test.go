package numo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(enabled bool) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := NewLogger(enabled)
	l.SetOutput(&out, &errOut)
	return l, &out, &errOut
}

func TestWarningsAlwaysShown(t *testing.T) {
	l, out, errOut := newBufferedLogger(false)

	l.CommandWarning(CatMath, "8", "Division by zero, result set to 0", 4)
	l.DebugCat(CatMath, "hidden")

	assert.Equal(t, "[Numo:math WARN] OPCODE 8: Division by zero, result set to 0 (at position 4)\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestDebugRequiresCategory(t *testing.T) {
	l, out, _ := newBufferedLogger(true)
	l.DisableCategory(CatIO)

	l.DebugCat(CatIO, "io hidden")
	l.DebugCat(CatFlow, "flow shown")
	l.Debug("uncategorized shown")

	assert.Equal(t, "[DEBUG:flow] flow shown\n[DEBUG] uncategorized shown\n", out.String())
	assert.False(t, l.IsCategoryEnabled(CatIO))
}

func TestLogPrefixes(t *testing.T) {
	l, _, errOut := newBufferedLogger(false)

	l.Notice("starting")
	l.ErrorCat(CatReport, "cannot write")
	l.Fatal("bad file")

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	assert.Equal(t, []string{
		"[Numo NOTICE] starting",
		"[Numo:report ERROR] cannot write",
		"[Numo ERROR] bad file",
	}, lines)
}

func TestTraceFanout(t *testing.T) {
	l, _, _ := newBufferedLogger(false)
	var first, second bytes.Buffer
	l.AttachTrace(&first, &second)

	l.CommandWarning(CatMath, "8", "Modulo by zero, result set to 0", 7)
	l.DebugCat(CatMath, "not traced while disabled")

	for _, buf := range []*bytes.Buffer{&first, &second} {
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var record map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "math", record["category"])
		assert.Equal(t, float64(7), record["position"])
		assert.Equal(t, "OPCODE 8: Modulo by zero, result set to 0", record["msg"])
	}

	l.AttachTrace()
	l.Warn("after detach")
	assert.Equal(t, 1, strings.Count(first.String(), "\n"))
}

func TestEngineWarningsReachTrace(t *testing.T) {
	n, _, _ := newTestNumo("", nil)
	var trace bytes.Buffer
	n.Logger().AttachTrace(&trace)

	// math with no numeric operands
	n.ExecuteString("48")

	assert.Contains(t, trace.String(), `"category":"math"`)
}
