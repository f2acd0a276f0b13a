package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/golury/cmd"
	"github.com/leonardinius/golury/internal/diagfmt"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runApp(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	app := cmd.NewLuryApp(
		cmd.WithStdin(&bytes.Buffer{}),
		cmd.WithStdout(&stdout),
		cmd.WithStderr(&stderr),
	)
	code := app.Main(append([]string{"--color", "off"}, args...))
	return code, stdout.String(), stderr.String()
}

func TestRunScript(t *testing.T) {
	t.Parallel()

	script := writeScript(t, t.TempDir(), "ok.lury", "true;\n(false or true) and !false\n")

	for _, args := range [][]string{{"run", script}, {script}} {
		code, stdout, stderr := runApp(args...)
		assert.Equal(t, 0, code)
		assert.Equal(t, "true\n", stdout)
		assert.Empty(t, stderr)
	}
}

func TestRunScriptWithErrors(t *testing.T) {
	t.Parallel()

	script := writeScript(t, t.TempDir(), "bad.lury", `true and "x"`)

	code, stdout, stderr := runApp("run", script)
	assert.Equal(t, 65, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, script+":1:6: ERROR E0006: operator is not defined for the operand types 'and'\n")
	assert.Contains(t, stderr, "1 error, 0 warnings, 0 infos\n")
}

func TestRunScriptWarningsDoNotFail(t *testing.T) {
	t.Parallel()

	script := writeScript(t, t.TempDir(), "warn.lury", `!!true`)

	code, stdout, stderr := runApp("run", script)
	assert.Equal(t, 0, code)
	assert.Equal(t, "true\n", stdout)
	assert.Contains(t, stderr, "WARN W0002")

	code, _, stderr = runApp("run", "--no-lint", script)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func TestCheckMergesInArgumentOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	scripts := []string{
		writeScript(t, dir, "a.lury", `"a" and true`),
		writeScript(t, dir, "b.lury", `true == true`),
		writeScript(t, dir, "c.lury", `false; not "c"`),
	}

	code, stdout, _ := runApp(append([]string{"check", "--format", "json", "--jobs", "2"}, scripts...)...)
	assert.Equal(t, 65, code)

	doc, err := diagfmt.ReadJSON(bytes.NewBufferString(stdout))
	require.NoError(t, err)
	require.Len(t, doc.Outputs, 3)
	assert.Equal(t, scripts[0], doc.Outputs[0].File)
	assert.Equal(t, "E0006", doc.Outputs[0].ID)
	assert.Equal(t, scripts[1], doc.Outputs[1].File)
	assert.Equal(t, "W0001", doc.Outputs[1].ID)
	assert.Equal(t, scripts[2], doc.Outputs[2].File)
	assert.Equal(t, "E0007", doc.Outputs[2].ID)
	assert.Equal(t, 2, doc.Errors)
	assert.Equal(t, 1, doc.Warnings)
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	script := writeScript(t, t.TempDir(), "ok.lury", `false or true`)

	code, stdout, _ := runApp("check", "--format", "msgpack", "--trace", script)
	assert.Equal(t, 0, code)

	doc, err := diagfmt.ReadMsgpack(bytes.NewBufferString(stdout))
	require.NoError(t, err)
	require.Len(t, doc.Outputs, 1)
	assert.Equal(t, "INFO", doc.Outputs[0].Severity)
	require.NotNil(t, doc.Outputs[0].Appendix)
	assert.Equal(t, "true", *doc.Outputs[0].Appendix)
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	script := writeScript(t, t.TempDir(), "tree.lury", "!true and (false || \"x\" == \"y\")")

	code, stdout, _ := runApp("parse", script)
	assert.Equal(t, 0, code)
	assert.Equal(t, "(and (! true) (group (|| false (== \"x\" \"y\"))))\n", stdout)

	code, stdout, _ = runApp("parse", "--rpn", script)
	assert.Equal(t, 0, code)
	assert.Equal(t, "true ! false \"x\" \"y\" == || and\n", stdout)
}

func TestParseCommandSyntaxErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testcases := []struct {
		name   string
		source string
		stderr string
	}{
		{
			"parser",
			"true false;\n(true",
			"ERROR {script}:1:6: parse error at 'false': expected ';' between expressions.\n" +
				"ERROR {script}:2:6: parse error at end: expected ')' after expression.\n",
		},
		{
			"scanner",
			"true & false",
			"ERROR {script}:1:6: Unexpected character. '&'\n",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			script := writeScript(t, dir, tc.name+".lury", tc.source)
			code, stdout, stderr := runApp("parse", script)
			assert.Equal(t, 65, code)
			assert.Empty(t, stdout)
			assert.Equal(t, strings.ReplaceAll(tc.stderr, "{script}", script), stderr)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		args []string
		err  string
	}{
		{"bad format", []string{"--format", "xml", "run", "x.lury"}, `ERROR unknown output format "xml"`},
		{"missing file", []string{"run", "does-not-exist.lury"}, "ERROR open does-not-exist.lury"},
		{"too many args", []string{"a.lury", "b.lury"}, "ERROR accepts at most 1 arg(s)"},
		{"check without args", []string{"check"}, "ERROR requires at least 1 arg(s)"},
		{"bad jobs", []string{"check", "--jobs", "0", "x.lury"}, "ERROR --jobs must be at least 1"},
		{"negative max diagnostics", []string{"--max-diagnostics=-1", "run", "x.lury"}, "ERROR --max-diagnostics must not be negative, got -1"},
		{"bad log level", []string{"--log-level", "loud", "run", "x.lury"}, "ERROR --log-level"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := runApp(tc.args...)
			assert.Equal(t, 64, code)
			assert.Contains(t, stderr, tc.err)
		})
	}
}
