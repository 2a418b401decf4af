package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"Gprompt/internal/config"
)

// execute runs the command tree with args inside a fake home directory
// and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeIn(t, filepath.Join("projects", "app"), args...)
}

// executeIn is execute with the working directory set to dir below the
// fake home directory.
func executeIn(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home", "alice")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".xdg"))
	t.Setenv("PWD", filepath.Join(home, dir))
	t.Setenv("GPROMPT_DEBUG", "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderPlainPrompt(t *testing.T) {
	out, _, err := execute(t, "--raw", "--user=alice", "--host=box")

	require.NoError(t, err)
	assert.Equal(t, "alice@box ~/projects/app $ ", out)
}

func TestRenderGitPrompt(t *testing.T) {
	out, _, err := execute(t,
		"--raw",
		"--git=.git",
		"--head=ref: refs/heads/main",
		"--hash=4f3a9c1d2e5b6a7980c1d2e3f4a5b6c7d8e9f0a1",
		"--status=## main...origin/main [ahead 2, behind 3]\nM  file1\n?? file2\n D file3",
	)

	require.NoError(t, err)
	assert.Equal(t, "~/projects/app main ⇅2/3 +1 ~1 ?1 $ ", out)
}

func TestRenderFromInsideGitDir(t *testing.T) {
	out, _, err := execute(t, "--raw", "--git=.", "--head=ref: refs/heads/main", "--status=## main\n M x")

	require.NoError(t, err)
	assert.Equal(t, "~/projects/app $ ", out)
}

func TestRenderBisect(t *testing.T) {
	out, _, err := execute(t,
		"--raw",
		"--git=.git",
		"--head=ref: refs/heads/main",
		"--hash=4f3a9c1d2e5b",
		"--status=## main",
		"--bisect-log",
	)

	require.NoError(t, err)
	assert.Equal(t, "~/projects/app :4f3a9c1 $ ", out)
}

func TestRenderColouredForBash(t *testing.T) {
	out, _, err := execute(t, "--shell=bash")

	require.NoError(t, err)
	assert.Contains(t, out, `\[`+"\033[32m"+`\]~/projects/app\[`+"\033[0m"+`\]`)
}

func TestRenderEscapesShellExpansionForBash(t *testing.T) {
	out, _, err := executeIn(t, "$(touch pwned)",
		"--shell=bash",
		"--git=.git",
		"--head=ref: refs/heads/`id`",
		"--hash=4f3a9c1d2e5b",
		"--status=## `id`...origin/`id`",
		"--user=$USER",
	)

	require.NoError(t, err)
	assert.Contains(t, out, `~/\$(touch pwned)`)
	assert.Contains(t, out, "\\`id\\`")
	assert.Contains(t, out, `\$USER`)
	assert.NotRegexp(t, "[^\\\\]\\$\\(", out)
	assert.NotRegexp(t, "[^\\\\]`", out)
}

func TestRenderEscapesPercentForZsh(t *testing.T) {
	out, _, err := executeIn(t, "100%", "--shell=zsh", "--raw")

	require.NoError(t, err)
	assert.Equal(t, "~/100%% $ ", out)
}

func TestRenderUsesConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("prompt:\n  path_length: 1\n  template: '{{.Path}}> '\n"), 0o644))

	out, _, err := execute(t, "--raw", "--config="+file)

	require.NoError(t, err)
	assert.Equal(t, "~/...app> ", out)
}

func TestRenderFallsBackOnBrokenConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("prompt:\n  path_length: -4\n"), 0o644))

	out, stderr, err := execute(t, "--raw", "--config="+file)

	require.NoError(t, err)
	assert.Equal(t, "~/projects/app $ ", out)
	assert.Contains(t, stderr, "using default config")
}

func TestRenderDebugLogs(t *testing.T) {
	_, stderr, err := execute(t, "--raw", "--debug")

	require.NoError(t, err)
	assert.Contains(t, stderr, "assembled prompt")
}

func TestRenderRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "unexpected")

	assert.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	out, _, err := execute(t, "init", "zsh", "--binary=/usr/local/bin/gprompt")

	require.NoError(t, err)
	assert.Contains(t, out, "'/usr/local/bin/gprompt' --shell=zsh")
	assert.Contains(t, out, "add-zsh-hook precmd")
}

func TestInitCommandUnsupportedShell(t *testing.T) {
	_, _, err := execute(t, "init", "fish")

	assert.ErrorContains(t, err, "unsupported shell")
}

func TestConfigCommand(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.Default(), cfg)
}

func TestConfigCommandDefaults(t *testing.T) {
	out, _, err := execute(t, "config", "--defaults")

	require.NoError(t, err)
	assert.Contains(t, out, "path_length: 3")
	assert.Contains(t, out, "hash_length: 7")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "gprompt version dev")
}
