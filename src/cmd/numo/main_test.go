package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsFlagsAroundFile(t *testing.T) {
	opts, err := parseArgs([]string{"-d", "prog.num", "--report-format", "yaml", "--seed", "9"}, io.Discard)
	require.NoError(t, err)

	assert.True(t, opts.debug)
	assert.Equal(t, []string{"prog.num"}, opts.files)
	assert.Equal(t, "yaml", opts.reportFormat)
	assert.Equal(t, int64(9), opts.seed)
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"}, io.Discard)
	assert.Error(t, err)
}

func TestLoadCLIConfig(t *testing.T) {
	saved := cliConfig
	t.Cleanup(func() { cliConfig = saved })

	path := filepath.Join(t.TempDir(), ".numo", "numo-cli.yaml")

	loadCLIConfig(path)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "default config should be created")
	assert.Equal(t, defaultConfigText, string(data))

	require.NoError(t, os.WriteFile(path, []byte("term_background: LIGHT\nextended: true\nreport_format: yaml\n"), 0644))
	loadCLIConfig(path)

	assert.Equal(t, "light", cliConfig.TermBackground)
	assert.True(t, cliConfig.Extended)
	assert.Equal(t, "yaml", cliConfig.ReportFormat)
	assert.Equal(t, ".", cliConfig.ReportDir)
	assert.Equal(t, colorDarkBrown, getBannerColor())
}

func TestLoadCLIConfigBadBackground(t *testing.T) {
	saved := cliConfig
	t.Cleanup(func() { cliConfig = saved })

	path := filepath.Join(t.TempDir(), "numo-cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte("term_background: purple\n"), 0644))

	loadCLIConfig(path)

	assert.Equal(t, "auto", cliConfig.TermBackground)
}

func TestRunExitCodes(t *testing.T) {
	saved := cliConfig
	t.Cleanup(func() { cliConfig = saved })
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	prog := filepath.Join(dir, "prog.num")
	require.NoError(t, os.WriteFile(prog, []byte("3 4\n"), 0644))

	assert.Equal(t, 0, run([]string{"--help"}))
	assert.Equal(t, 1, run(nil))
	assert.Equal(t, 1, run([]string{filepath.Join(dir, "missing.num")}))
	assert.Equal(t, 0, run([]string{prog, "--seed", "1"}))

	trace := filepath.Join(dir, "trace.jsonl")
	assert.Equal(t, 0, run([]string{"--trace", trace, prog}))
	_, err := os.Stat(trace)
	assert.NoError(t, err)

	assert.Equal(t, 1, run([]string{"--trace", filepath.Join(dir, "no", "such", "dir.jsonl"), prog}))
}
