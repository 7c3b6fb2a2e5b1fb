package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with the given arguments and
// stdin, in an isolated working directory so no stray config file is
// picked up.
func runCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "umlit "+Version)
	assert.Contains(t, stdout, "go version:")
}

func TestFmtFromStdin(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo\n[B] Bar\nA -> B", "fmt")
	require.NoError(t, err)

	want := "[uml2.5-component] {\n" +
		"  [A] Foo\n" +
		"  [B] Bar\n" +
		"  A -> B\n" +
		"}\n"
	assert.Equal(t, want, stdout)
}

func TestFmtWriteRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diagram.uml")
	require.NoError(t, os.WriteFile(path, []byte("[A]    Foo\nA->A"), 0o644))

	_, _, err := runCommand(t, "", "fmt", "--write", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  [A] Foo\n")
	assert.Contains(t, string(data), "  A -> A\n")
}

func TestFmtWriteRequiresFile(t *testing.T) {
	_, _, err := runCommand(t, "[A] Foo", "fmt", "--write")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--write requires a file argument")
}

func TestFmtSyncPositions(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo", "fmt", "--sync-positions")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[A] Foo @ ")
}

func TestParseJSON(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo\nA -> A", "parse", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"rootNodes"`)
	assert.Contains(t, stdout, `"id": "A"`)
	assert.Contains(t, stdout, `"label": "Foo"`)
}

func TestParseFlatIncludesSynthesis(t *testing.T) {
	input := "[O] Outer {\n[I] Inner\n}\n[Ext] External\nExt -> I"
	stdout, _, err := runCommand(t, input, "parse", "--flat", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"isAutoGenerated": true`)
	assert.Contains(t, stdout, `"isCrossLevel": true`)
	assert.Contains(t, stdout, `"parentId": "O"`)
}

// The configured diagram type is assumed for unwrapped documents.
func TestParseDiagramTypeFlag(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo", "parse", "-o", "json", "--diagram-type", "uml2.5-class")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"type": "uml2.5-class"`)

	// An explicit wrapper wins over the flag.
	stdout, _, err = runCommand(t, "[uml2.5-activity]{\n[A] Foo\n}", "parse", "-o", "json", "--diagram-type", "uml2.5-class")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"type": "uml2.5-activity"`)
}

func TestParseSyntaxErrorAborts(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo {", "parse", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error at line")
	assert.Empty(t, stdout)
}

func TestParseWarningsGoToStderr(t *testing.T) {
	input := "[A] Foo\nport [p1] on [Missing] left"
	stdout, stderr, err := runCommand(t, input, "parse", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "unknown node")
	assert.Contains(t, stdout, `"rootNodes"`)
}

func TestBuildEnvelope(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo", "build", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"theme": "light"`)
	assert.Contains(t, stdout, `"nodes"`)
	// Layout ran: the node has its default leaf size.
	assert.Contains(t, stdout, `"w": 160`)
}

func TestBuildThemeFlag(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo", "build", "--theme", "dark", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"theme": "dark"`)
}

func TestLexJSON(t *testing.T) {
	stdout, _, err := runCommand(t, "A -> B", "lex", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"type": "ARROW"`)
	assert.Contains(t, stdout, `"literal": "A"`)
	assert.NotContains(t, stdout, "WHITESPACE")
}

func TestLexTrivia(t *testing.T) {
	stdout, _, err := runCommand(t, "A -> B", "lex", "--trivia", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "WHITESPACE")
}

func TestListMarkdownTables(t *testing.T) {
	stdout, _, err := runCommand(t, "[A] Foo\n[B] Bar\nA -> B", "list", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, stdout, "| ID |")
	assert.Contains(t, stdout, "| A |")
	assert.Contains(t, stdout, "| From |")
}

func TestInvalidOutputFlag(t *testing.T) {
	_, _, err := runCommand(t, "", "parse", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
