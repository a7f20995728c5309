package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/strext/core/config"
	strexterror "github.com/msto63/strext/core/error"
	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/internal/pipeline"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("STREXT_LOG_LEVEL", "")
	t.Setenv("STREXT_LOG_FORMAT", "")
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestApplyText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"initials", []string{"apply", "get-initials", "--text", "John Smith"}, "JS\n"},
		{"alias", []string{"apply", "title", "-t", "jOHN sMITH"}, "John Smith\n"},
		{"with args", []string{"apply", "fixed-width", "6", "--text", "abc"}, "abc   \n"},
		{"chain", []string{"apply", "remove-diacritics", "+", "title", "--text", "crème brûlée"}, "Creme Brulee\n"},
		{"dash argument", []string{"apply", "--text", "a--b", "--", "truncate-multiple-occurances-of-char", "-"}, "a-b\n"},
		{"empty text", []string{"apply", "take-first-characters", "3", "*", "--text", ""}, "***\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestApplyStdin(t *testing.T) {
	out, _, err := execute(t, "a  b\nc   d\n", "apply", "truncate-multiple-spaces")
	require.NoError(t, err)
	assert.Equal(t, "a b\nc d\n", out)
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     strexterror.Code
		exitCode int
	}{
		{"unknown op", []string{"apply", "shout", "-t", "x"}, strexterror.CodeUnknownOperation, 4},
		{"negative count", []string{"apply", "take-first-characters", "--text", "x", "--", "-1"}, strexterror.CodeStepFailed, 4},
		{"bad argument", []string{"apply", "fixed-width", "wide", "-t", "x"}, strexterror.CodeInvalidInput, 1},
		{"leading separator", []string{"apply", "+", "title", "-t", "x"}, strexterror.CodeInvalidInput, 1},
		{"trailing separator", []string{"apply", "title", "+", "-t", "x"}, strexterror.CodeInvalidInput, 1},
		{"bad log level", []string{"apply", "title", "-t", "x", "--log-level", "loud"}, strexterror.CodeInvalidInput, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, strexterror.HasCode(err, tt.code), "got %v", strexterror.GetCode(err))
			assert.Equal(t, tt.exitCode, ExitCode(err))
		})
	}
}

func TestParseChain(t *testing.T) {
	steps, err := parseChain([]string{"take", "3", "*", "+", "initials"})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "take", steps[0].Op)
	assert.Equal(t, []string{"3", "*"}, []string(steps[0].Args))
	assert.Equal(t, "initials", steps[1].Op)
	assert.Empty(t, steps[1].Args)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	pipelineFile := filepath.Join(dir, "clean.yaml")
	require.NoError(t, os.WriteFile(pipelineFile, []byte(`
name: clean
log_level: error
steps:
  - op: remove-diacritics
  - op: truncate-multiple-spaces
  - op: to-title-case
`), 0o644))
	input := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(input, []byte("josé  álvarez\nzoë   saldaña\n"), 0o644))

	out, _, err := execute(t, "", "run", "-c", pipelineFile, input)
	require.NoError(t, err)
	assert.Equal(t, "Jose Alvarez\nZoe Saldana\n", out)

	out, _, err = execute(t, "ana  lima\n", "run", "-c", pipelineFile)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima\n", out)

	output := filepath.Join(dir, "out.txt")
	out, _, err = execute(t, "", "run", "-c", pipelineFile, "-o", output, input)
	require.NoError(t, err)
	assert.Empty(t, out)
	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Jose Alvarez\nZoe Saldana\n", string(written))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	pipelineFile := filepath.Join(dir, "p.toml")
	require.NoError(t, os.WriteFile(pipelineFile, []byte("[[steps]]\nop = \"title\"\n"), 0o644))
	badOp := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badOp, []byte("[[steps]]\nop = \"shout\"\n"), 0o644))

	_, _, err := execute(t, "", "run", "-c", filepath.Join(dir, "missing.toml"))
	assert.True(t, strexterror.HasCode(err, strexterror.CodeMissingConfig))
	assert.Equal(t, 3, ExitCode(err))

	_, _, err = execute(t, "", "run", "-c", pipelineFile, "--watch")
	assert.True(t, strexterror.HasCode(err, strexterror.CodeInvalidInput))

	_, _, err = execute(t, "", "run", "-c", pipelineFile, filepath.Join(dir, "missing.txt"))
	assert.True(t, strexterror.HasCode(err, strexterror.CodeNotFound))

	_, _, err = execute(t, "", "run", "-c", badOp)
	assert.True(t, strexterror.HasCode(err, strexterror.CodeUnknownOperation))
}

func TestOps(t *testing.T) {
	out, _, err := execute(t, "", "ops")
	require.NoError(t, err)

	assert.Contains(t, out, "OPERATION")
	assert.Contains(t, out, "take-first-characters")
	assert.Contains(t, out, "<count:int> [padding:char]")
	assert.Contains(t, out, "ALIASES")
	assert.Contains(t, out, "title -> ")

	out, _, err = execute(t, "", "ops", "--names")
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultRegistry().Names(), strings.Fields(out))
}

func TestCompleteOps(t *testing.T) {
	names, directive := completeOps(applyCmd, nil, "remove-t")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, []string{"remove-trailing-instance-of-string", "remove-trailing-instances-of-string"}, names)

	names, _ = completeOps(applyCmd, []string{"fixed-width"}, "")
	assert.Empty(t, names)

	names, _ = completeOps(applyCmd, []string{"fixed-width", "3", "+"}, "get")
	assert.Equal(t, []string{"get-initials"}, names)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "strext v"+Version)
}

func TestLoggingFlags(t *testing.T) {
	_, stderr, err := execute(t, "", "apply", "title", "-t", "x", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"correlation_id"`)
	assert.Contains(t, stderr, `"message":"command started"`)

	_, stderr, err = execute(t, "", "apply", "title", "-t", "x")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestPipelineLoggerFollowsReload(t *testing.T) {
	resetFlags(rootCmd)
	base := log.Discard().WithLevel(log.LevelWarn)

	first, err := config.LoadFromString("log_level = \"error\"\n[[steps]]\nop = \"title\"\n", config.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, log.LevelError, pipelineLogger(runCmd, base, first).GetLevel())

	reloaded, err := config.LoadFromString("log_level = \"debug\"\n[[steps]]\nop = \"title\"\n", config.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, pipelineLogger(runCmd, base, reloaded).GetLevel())

	unset, err := config.LoadFromString("[[steps]]\nop = \"title\"\n", config.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, pipelineLogger(runCmd, base, unset).GetLevel())

	require.NoError(t, runCmd.ParseFlags([]string{"--log-level", "info"}))
	t.Cleanup(func() { resetFlags(rootCmd) })
	assert.Equal(t, log.LevelWarn, pipelineLogger(runCmd, base, reloaded).GetLevel())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(strexterror.New("x").WithCode(strexterror.CodeValueOutOfRange)))
}
