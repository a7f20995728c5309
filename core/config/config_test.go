package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	strexterror "github.com/msto63/strext/core/error"
	"github.com/msto63/strext/core/log"
)

const tomlPipeline = `
name       = "clean-names"
log_level  = "debug"
log_format = "console"

[[steps]]
op = "remove-diacritics"

[[steps]]
op   = "take-first-characters"
args = [5, "*"]
`

const yamlPipeline = `
name: clean-names
steps:
  - op: truncate-multiple-spaces
  - op: fixed-width
    args: [12]
  - op: remove-instances-of-string
    args: ["Mr. ", "Mrs. "]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pipeline.toml", tomlPipeline)

	pf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "clean-names", pf.Name)
	assert.Equal(t, "debug", pf.LogLevel)
	assert.Equal(t, "console", pf.LogFormat)
	assert.Equal(t, FormatTOML, pf.Format())
	assert.Equal(t, path, pf.Path())
	require.Len(t, pf.Steps, 2)
	assert.Equal(t, "remove-diacritics", pf.Steps[0].Op)
	assert.Empty(t, pf.Steps[0].Args)
	assert.Equal(t, Args{"5", "*"}, pf.Steps[1].Args)
	assert.Equal(t, "take-first-characters 5 *", pf.Steps[1].String())
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"pipeline.yaml", "pipeline.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), name, yamlPipeline)

			pf, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, FormatYAML, pf.Format())
			require.Len(t, pf.Steps, 3)
			assert.Equal(t, Args{"12"}, pf.Steps[1].Args)
			assert.Equal(t, Args{"Mr. ", "Mrs. "}, pf.Steps[2].Args)
		})
	}
}

func TestScalarArgs(t *testing.T) {
	pf, err := LoadFromString(`
[[steps]]
op = "fixed-width"
args = 8
`, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, Args{"8"}, pf.Steps[0].Args)

	pf, err = LoadFromString("steps:\n  - op: fixed-width\n    args: 8\n", FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Args{"8"}, pf.Steps[0].Args)
}

func TestEnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pipeline.toml", tomlPipeline)
	t.Setenv("STREXT_LOG_LEVEL", "warn")
	t.Setenv("STREXT_LOG_FORMAT", "json")

	pf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", pf.LogLevel)
	assert.Equal(t, "json", pf.LogFormat)

	pf, err = LoadWithOptions(path, LoadOptions{Format: FormatAuto})
	require.NoError(t, err)
	assert.Equal(t, "debug", pf.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code strexterror.Code
	}{
		{"blank path", "  ", strexterror.CodeRequiredField},
		{"missing file", filepath.Join(dir, "nope.toml"), strexterror.CodeMissingConfig},
		{"bad toml", writeFile(t, dir, "bad.toml", "steps = [[["), strexterror.CodeInvalidFormat},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "steps: [\n"), strexterror.CodeInvalidFormat},
		{"unknown toml key", writeFile(t, dir, "extra.toml", "colour = 1\n[[steps]]\nop = \"x\"\n"), strexterror.CodeInvalidFormat},
		{"unknown yaml key", writeFile(t, dir, "extra.yaml", "colour: 1\nsteps:\n  - op: x\n"), strexterror.CodeInvalidFormat},
		{"no steps", writeFile(t, dir, "empty.toml", `name = "empty"`), strexterror.CodeInvalidConfig},
		{"empty yaml", writeFile(t, dir, "empty.yaml", ""), strexterror.CodeInvalidConfig},
		{"step without op", writeFile(t, dir, "noop.toml", "[[steps]]\nargs = [1]\n"), strexterror.CodeInvalidConfig},
		{"bad log level", writeFile(t, dir, "level.toml", "log_level = \"loud\"\n[[steps]]\nop = \"x\"\n"), strexterror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STREXT_LOG_LEVEL", "")
			pf, err := Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, pf)
			assert.True(t, strexterror.HasCode(err, tt.code), "got %v", strexterror.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	pf := &PipelineFile{
		LogFormat: "xml",
		Steps:     []Step{{Op: "get-initials"}, {Op: " "}},
	}

	result := pf.Validate()
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"step 2: op is required", "log_format: invalid format: xml"}, result.Errors)
}

func TestLoggerConfig(t *testing.T) {
	pf := &PipelineFile{LogLevel: "debug"}
	level, format := pf.LoggerConfig(log.LevelInfo, log.FormatText)
	assert.Equal(t, log.LevelDebug, level)
	assert.Equal(t, log.FormatText, format)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "missing"), dir},
		Filenames:  []string{"strext", "pipeline"},
		Extensions: []string{".toml", ".yaml"},
	}

	_, err := FindPipelineFile(options)
	assert.True(t, strexterror.HasCode(err, strexterror.CodeMissingConfig))

	writeFile(t, dir, "pipeline.yaml", yamlPipeline)
	path := writeFile(t, dir, "strext.toml", tomlPipeline)

	found, err := FindPipelineFile(options)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	pf, err := Discover(options)
	require.NoError(t, err)
	assert.Equal(t, "clean-names", pf.Name)

	assert.Len(t, ListCandidates(options), 8)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pipeline.toml", tomlPipeline)

	w, err := NewWatcher(path, WatchOptions{Debounce: 20 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *PipelineFile, 4)
	failures := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(pf *PipelineFile, err error) {
			if err != nil {
				failures <- err
				return
			}
			reloads <- pf
		})
	}()

	writeFile(t, dir, "other.toml", tomlPipeline)
	writeFile(t, dir, "pipeline.toml", "name = \"v2\"\n[[steps]]\nop = \"remove-spaces\"\n")

	select {
	case pf := <-reloads:
		assert.Equal(t, "v2", pf.Name)
		assert.Equal(t, "remove-spaces", pf.Steps[0].Op)
	case err := <-failures:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	writeFile(t, dir, "pipeline.toml", "name = \"broken\"\n")
	select {
	case err := <-failures:
		assert.True(t, strexterror.HasCode(err, strexterror.CodeInvalidConfig))
	case <-time.After(5 * time.Second):
		t.Fatal("no error after invalid write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewWatcherRequiresPath(t *testing.T) {
	_, err := NewWatcher("", WatchOptions{})
	assert.True(t, strexterror.HasCode(err, strexterror.CodeRequiredField))
}
