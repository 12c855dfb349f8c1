package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestConfigCmd_PrintsYAML(t *testing.T) {
	d := newTestDeps(&fakeInvoker{}, &mapPrompter{})
	d.Config.Strict = true

	out, err := executeRoot(t, d, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "generator:")
	assert.Contains(t, out, "subcommand: create")
	assert.Contains(t, out, "vscode: code")
	assert.Contains(t, out, "strict: true")
}

func TestLayoutsCmd_All(t *testing.T) {
	out, err := executeRoot(t, newTestDeps(&fakeInvoker{}, &mapPrompter{}), "layouts")
	require.NoError(t, err)

	assert.Contains(t, out, "Clean Architecture")
	assert.Contains(t, out, "MVVM")
	assert.Contains(t, out, "lib/presentation/widgets")
	assert.Contains(t, out, "lib/viewmodels")
}

func TestLayoutsCmd_Single(t *testing.T) {
	out, err := executeRoot(t, newTestDeps(&fakeInvoker{}, &mapPrompter{}), "layouts", "MVVM")
	require.NoError(t, err)

	assert.NotContains(t, out, "Clean Architecture")
	assert.Equal(t, 6, strings.Count(out, "  lib/"))
}

func TestLayoutsCmd_Unknown(t *testing.T) {
	_, err := executeRoot(t, newTestDeps(&fakeInvoker{}, &mapPrompter{}), "layouts", "hexagonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid architecture")
}
