package runner_test

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/golury/cmd"
)

const testDir = "testdata"

var expectedOutputPattern = regexp.MustCompile(`// expect: ?(.*)`)
var expectedErrorPattern = regexp.MustCompile(`// expect error: (E\d{4})`)
var expectedWarningPattern = regexp.MustCompile(`// expect warning: (W\d{4})`)
var diagnosticPattern = regexp.MustCompile(`^.+:(\d+):\d+: (?:ERROR|WARN|INFO) ([EWI]\d{4}):`)
var summaryPattern = regexp.MustCompile(`^\d+ errors?, \d+ warnings?, \d+ infos?`)
var nonTestPattern = regexp.MustCompile(`// nontest`)

type Suite struct {
	name  string
	args  []string
	tests map[string]string
}

var allSuites = map[string]*Suite{}

func init() {
	defineTestSuites()
}

func TestAll(t *testing.T) {
	names := maps.Keys(allSuites)
	slices.Sort(names)
	runSuites(t, names)
}

func TestNoLint(t *testing.T) {
	runSuites(t, []string{"nolint"})
}

func runSuites(t *testing.T, names []string) {
	t.Helper()
	t.Parallel()
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			runSuite(t, allSuites[name])
		})
	}
}

func runSuite(t *testing.T, suite *Suite) {
	t.Helper()
	require.DirExists(t, testDir)

	var files []string
	err := filepath.Walk(testDir, func(path string, f os.FileInfo, _ error) error {
		if f.IsDir() || filepath.Ext(path) != ".lury" {
			return nil
		}

		relPath, err := filepath.Rel(testDir, path)
		if err == nil {
			files = append(files, filepath.ToSlash(relPath))
		}
		return err
	})
	require.NoError(t, err)

	for _, file := range files {
		runTest(t, suite, file)
	}
}

func runTest(t *testing.T, suite *Suite, path string) {
	if strings.Contains(path, "benchmark") {
		return
	}

	test := &Test{path: path, suite: suite, expectedDiagnostics: make(map[string]string)}

	t.Run(path, func(t *testing.T) {
		test.t = t
		if !test.parse() {
			return
		}
		failures := test.run()
		if len(failures) > 0 {
			t.Fatalf("Test failed:\n%s", strings.Join(failures, "\n"))
		}
	})
}

type ExpectedOutput struct {
	line   int
	output string
}

type Test struct {
	t                   *testing.T
	path                string
	suite               *Suite
	expectedOutput      []ExpectedOutput
	expectedDiagnostics map[string]string
	expectedExitCode    int
	failures            []string
}

func (t *Test) parse() bool {
	parts := strings.Split(t.path, "/")
	var subpath string
	var state string

	// More specific paths override more general ones.
	for _, part := range parts {
		if subpath != "" {
			subpath += "/"
		}
		subpath += part

		if val, ok := t.suite.tests[subpath]; ok {
			state = val
		}
	}

	require.NotEmptyf(t.t, state, "Unknown test state for '%s'", t.path)
	if state == "skip" {
		return false
	}

	lines, err := os.ReadFile(filepath.Join(testDir, t.path))
	require.NoError(t.t, err)

	for lineNum, line := range strings.Split(string(lines), "\n") {
		lineNum++

		if nonTestPattern.MatchString(line) {
			return false
		}

		if match := expectedErrorPattern.FindStringSubmatch(line); match != nil {
			t.expect(lineNum, match[1])
			t.expectedExitCode = 65
			continue
		}

		if match := expectedWarningPattern.FindStringSubmatch(line); match != nil {
			if state != "nolint" {
				t.expect(lineNum, match[1])
			}
			continue
		}

		if match := expectedOutputPattern.FindStringSubmatch(line); match != nil {
			t.expectedOutput = append(t.expectedOutput, ExpectedOutput{line: lineNum, output: match[1]})
		}
	}

	return true
}

func (t *Test) expect(line int, id string) {
	msg := fmt.Sprintf("[%d] %s", line, id)
	t.expectedDiagnostics[msg] = msg
}

func (t *Test) run() []string {
	stdout := new(strings.Builder)
	stderr := new(strings.Builder)

	args := append(slices.Clone(t.suite.args), filepath.Join(testDir, t.path))
	app := cmd.NewLuryApp(cmd.WithStdout(stdout), cmd.WithStderr(stderr))
	exitCode := app.Main(args)

	outputLines := strings.Split(stdout.String(), "\n")
	errorLines := strings.Split(stderr.String(), "\n")

	t.validateDiagnostics(errorLines)
	t.validateExitCode(exitCode, errorLines)
	t.validateOutput(outputLines)

	return t.failures
}

func (t *Test) validateDiagnostics(errorLines []string) {
	found := map[string]bool{}
	unexpectedCount := 0

	for _, line := range errorLines {
		if line == "" || strings.HasPrefix(line, "  ") || summaryPattern.MatchString(line) {
			continue
		}

		match := diagnosticPattern.FindStringSubmatch(line)
		if match == nil {
			if unexpectedCount < 10 {
				t.Errorf("Unexpected output on stderr: %s", line)
			}
			unexpectedCount++
			continue
		}

		lineNum, _ := strconv.Atoi(match[1])
		msg := fmt.Sprintf("[%d] %s", lineNum, match[2])
		if _, ok := t.expectedDiagnostics[msg]; ok {
			found[msg] = true
			continue
		}
		if unexpectedCount < 10 {
			t.Errorf("Unexpected diagnostic: %s", line)
		}
		unexpectedCount++
	}

	if unexpectedCount > 10 {
		t.Errorf("(truncated %d more...)", unexpectedCount-10)
	}

	for msg := range t.expectedDiagnostics {
		if !found[msg] {
			t.Errorf("Missing expected diagnostic: %s", msg)
		}
	}
}

func (t *Test) validateExitCode(exitCode int, errorLines []string) {
	if exitCode == t.expectedExitCode {
		return
	}

	if len(errorLines) > 10 {
		errorLines = errorLines[:10]
		errorLines = append(errorLines, "(truncated...)")
	}

	t.Errorf("Expected return code %d and got %d. Stderr: %v", t.expectedExitCode, exitCode, errorLines)
}

func (t *Test) validateOutput(outputLines []string) {
	if len(outputLines) > 0 && outputLines[len(outputLines)-1] == "" {
		outputLines = outputLines[:len(outputLines)-1]
	}

	if len(outputLines) > len(t.expectedOutput) {
		t.Errorf("Got output '%s' when none was expected.", outputLines[len(t.expectedOutput)])
		return
	}

	for i, line := range outputLines {
		expected := t.expectedOutput[i]
		if expected.output != line {
			t.Errorf("Expected output '%s' on line %d and got '%s'.", expected.output, expected.line, line)
		}
	}

	for i := len(outputLines); i < len(t.expectedOutput); i++ {
		expected := t.expectedOutput[i]
		t.Errorf("Missing expected output '%s' on line %d.", expected.output, expected.line)
	}
}

func (t *Test) Errorf(format string, args ...any) {
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
}

func defineTestSuites() {
	allSuites["lury"] = &Suite{
		name: "lury",
		args: []string{"--color", "off", "run"},
		tests: map[string]string{
			"logic":    "pass",
			"equality": "pass",
			"errors":   "pass",
			"lint":     "pass",
		},
	}

	allSuites["nolint"] = &Suite{
		name: "nolint",
		args: []string{"--color", "off", "--no-lint", "run"},
		tests: map[string]string{
			"logic":    "nolint",
			"equality": "nolint",
			"errors":   "nolint",
			"lint":     "nolint",
		},
	}
}
