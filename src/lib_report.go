package numo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Report formats
const (
	ReportFormatText = "text"
	ReportFormatYAML = "yaml"
)

// Reporter receives a snapshot from the report opcode. It returns a
// description of where the report went (a path, for files).
type Reporter interface {
	WriteReport(snap Snapshot) (string, error)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(snap Snapshot) (string, error)

// WriteReport calls f
func (f ReporterFunc) WriteReport(snap Snapshot) (string, error) {
	return f(snap)
}

// FileReporter writes numo_output_<position>.txt files
type FileReporter struct {
	Dir    string
	Format string
}

// NewFileReporter creates a reporter writing into dir
func NewFileReporter(dir, format string) *FileReporter {
	if dir == "" {
		dir = "."
	}
	if format == "" {
		format = ReportFormatText
	}
	return &FileReporter{Dir: dir, Format: format}
}

// ReportFileName returns the file name used for a report at position
func ReportFileName(position int) string {
	return fmt.Sprintf("numo_output_%d.txt", position)
}

// WriteReport renders snap and writes it to disk
func (r *FileReporter) WriteReport(snap Snapshot) (string, error) {
	var data []byte
	var err error
	switch r.Format {
	case ReportFormatYAML:
		data, err = FormatReportYAML(snap)
	case ReportFormatText:
		data = FormatReportText(snap)
	default:
		return "", fmt.Errorf("unknown report format %q", r.Format)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.Dir, ReportFileName(snap.Position))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// FormatReportText renders the human-readable report
func FormatReportText(snap Snapshot) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Numo 0-9 file operation at position %d\n", snap.Position)
	fmt.Fprintf(&buf, "Variables created: %d\n", snap.TotalVariables)
	fmt.Fprintf(&buf, "Condition stack depth: %d\n", snap.StackDepth)
	fmt.Fprintf(&buf, "Loop depth: %d\n", snap.LoopDepth)
	fmt.Fprintf(&buf, "Code length: %d\n", snap.CodeLength)
	fmt.Fprintf(&buf, "Debug mode: %t\n", snap.Debug)
	for _, v := range snap.Variables {
		switch val := v.Value.(type) {
		case Text:
			fmt.Fprintf(&buf, "%s (%s) = %q\n", v.Name, val.Kind(), string(val))
		default:
			fmt.Fprintf(&buf, "%s (%s) = %s\n", v.Name, val.Kind(), val)
		}
	}
	return buf.Bytes()
}

type yamlVariable struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

type yamlReport struct {
	Position       int            `yaml:"position"`
	TotalVariables int            `yaml:"total_variables"`
	StackDepth     int            `yaml:"stack_depth"`
	LoopDepth      int            `yaml:"loop_depth"`
	CodeLength     int            `yaml:"code_length"`
	Debug          bool           `yaml:"debug"`
	Variables      []yamlVariable `yaml:"variables"`
}

// FormatReportYAML renders the report as YAML
func FormatReportYAML(snap Snapshot) ([]byte, error) {
	report := yamlReport{
		Position:       snap.Position,
		TotalVariables: snap.TotalVariables,
		StackDepth:     snap.StackDepth,
		LoopDepth:      snap.LoopDepth,
		CodeLength:     snap.CodeLength,
		Debug:          snap.Debug,
		Variables:      make([]yamlVariable, 0, len(snap.Variables)),
	}
	for _, v := range snap.Variables {
		report.Variables = append(report.Variables, yamlVariable{
			Name:  v.Name,
			Kind:  v.Value.Kind().String(),
			Value: v.Value.String(),
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// handleReport hands a snapshot to the configured reporter. Failures are
// warnings only.
func handleReport(ctx *Context) Result {
	ctx.LogDebug(CatReport, "File operation at position %d", ctx.Position)
	reporter := ctx.executor.reporter
	if reporter == nil {
		ctx.LogDebug(CatReport, "no reporter configured")
		return BoolStatus(false)
	}

	where, err := reporter.WriteReport(ctx.State.Snapshot())
	if err != nil {
		ctx.LogWarning(CatReport, fmt.Sprintf("report failed: %v", err))
		return BoolStatus(false)
	}
	ctx.Console().Println("Created file: " + where)
	return BoolStatus(true)
}
