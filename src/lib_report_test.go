package numo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Position: 12,
		Variables: []Variable{
			{Name: "var_3_0", Value: Int(7)},
			{Name: "var_4_1", Value: Text("text_1")},
			{Name: "result_2", Value: Float(2.5)},
		},
		TotalVariables: 3,
		StackDepth:     1,
		CodeLength:     20,
	}
}

func TestFormatReportText(t *testing.T) {
	got := string(FormatReportText(sampleSnapshot()))

	want := strings.Join([]string{
		"Numo 0-9 file operation at position 12",
		"Variables created: 3",
		"Condition stack depth: 1",
		"Loop depth: 0",
		"Code length: 20",
		"Debug mode: false",
		"var_3_0 (int) = 7",
		`var_4_1 (string) = "text_1"`,
		"result_2 (float) = 2.50",
	}, "\n") + "\n"

	assert.Equal(t, want, got)
}

func TestFormatReportYAML(t *testing.T) {
	data, err := FormatReportYAML(sampleSnapshot())
	require.NoError(t, err)

	var decoded yamlReport
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 12, decoded.Position)
	assert.Equal(t, 3, decoded.TotalVariables)
	require.Len(t, decoded.Variables, 3)
	assert.Equal(t, yamlVariable{Name: "var_4_1", Kind: "string", Value: "text_1"}, decoded.Variables[1])
}

func TestFileReporter(t *testing.T) {
	for _, format := range []string{ReportFormatText, ReportFormatYAML} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			r := NewFileReporter(dir, format)

			path, err := r.WriteReport(sampleSnapshot())
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "numo_output_12.txt"), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "var_3_0")
		})
	}

	_, err := NewFileReporter(t.TempDir(), "xml").WriteReport(sampleSnapshot())
	assert.Error(t, err)

	_, err = NewFileReporter(filepath.Join(t.TempDir(), "missing"), "").WriteReport(sampleSnapshot())
	assert.Error(t, err)
}

func TestReportOpcodeWritesFile(t *testing.T) {
	dir := t.TempDir()
	config := DefaultConfig()
	config.ReportDir = dir

	var out strings.Builder
	n := NewWithConsole(config, NewConsole(strings.NewReader(""), &out, 1))
	n.SetLogOutput(&out, &out)

	n.ExecuteString("3449")

	data, err := os.ReadFile(filepath.Join(dir, ReportFileName(3)))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Variables created: 3")
	assert.Contains(t, out.String(), "Created file: ")
}

func TestReportWithoutReporter(t *testing.T) {
	n, _, _ := newTestNumo("", nil)
	n.SetReporter(nil)

	state := n.ExecuteString("39")

	assert.Equal(t, 0, state.Warnings())
}

func TestReporterFunc(t *testing.T) {
	var got Snapshot
	r := ReporterFunc(func(snap Snapshot) (string, error) {
		got = snap
		return "", errors.New("rejected")
	})

	_, err := r.WriteReport(sampleSnapshot())

	assert.EqualError(t, err, "rejected")
	assert.Equal(t, 12, got.Position)
}
