// Package shell knows about the shells gprompt runs under: it detects the
// calling shell from the parent process and generates the integration
// snippet that collects git state and assigns the prompt.
package shell

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	ps "github.com/mitchellh/go-ps"

	"Gprompt/internal/painter"
)

// Supported lists the shells an integration snippet exists for.
var Supported = []string{painter.Bash, painter.Zsh}

// Detect returns the name of the parent process when it is a supported
// shell, or "" otherwise.
func Detect() string {
	return detect(os.Getppid(), ps.FindProcess)
}

func detect(ppid int, find func(int) (ps.Process, error)) string {

	process, err := find(ppid)
	if err != nil || process == nil {
		return ""
	}

	return Normalize(process.Executable())
}

// Normalize maps an executable name such as "-bash" or "/bin/zsh" to a
// supported shell name, or "".
func Normalize(executable string) string {

	name := strings.ToLower(filepath.Base(strings.TrimSpace(executable)))
	name = strings.TrimPrefix(name, "-")

	for _, supported := range Supported {
		if name == supported {
			return supported
		}
	}

	return ""
}

const bashSnippet = `# gprompt integration for bash. Add to ~/.bashrc:
#   eval "$({{.Binary}} init bash)"
__gprompt_ps1() {
	local exit_code=$? git_dir bisect=""
	git_dir="$(git rev-parse --git-dir 2>/dev/null)"
	[ -n "$git_dir" ] && [ -f "$git_dir/BISECT_LOG" ] && bisect="--bisect-log"
	PS1="$({{.Binary}} --shell=bash \
		--host="${HOSTNAME%%.*}" \
		--user="$USER" \
		--git="$git_dir" \
		--head="$(cat "$git_dir/HEAD" 2>/dev/null)" \
		--hash="$(git rev-parse HEAD 2>/dev/null)" \
		--status="$(git status --porcelain -b 2>/dev/null)" \
		--merge-head="$(cat "$git_dir/MERGE_HEAD" 2>/dev/null)" \
		--namerev="$(git name-rev --name-only HEAD 2>/dev/null)" \
		${bisect:+"$bisect"})"
	return $exit_code
}
PROMPT_COMMAND="__gprompt_ps1${PROMPT_COMMAND:+; $PROMPT_COMMAND}"
`

const zshSnippet = `# gprompt integration for zsh. Add to ~/.zshrc:
#   eval "$({{.Binary}} init zsh)"
__gprompt_ps1() {
	local exit_code=$? git_dir bisect=""
	git_dir="$(git rev-parse --git-dir 2>/dev/null)"
	[ -n "$git_dir" ] && [ -f "$git_dir/BISECT_LOG" ] && bisect="--bisect-log"
	PROMPT="$({{.Binary}} --shell=zsh \
		--host="${HOST%%.*}" \
		--user="$USER" \
		--git="$git_dir" \
		--head="$(cat "$git_dir/HEAD" 2>/dev/null)" \
		--hash="$(git rev-parse HEAD 2>/dev/null)" \
		--status="$(git status --porcelain -b 2>/dev/null)" \
		--merge-head="$(cat "$git_dir/MERGE_HEAD" 2>/dev/null)" \
		--namerev="$(git name-rev --name-only HEAD 2>/dev/null)" \
		${bisect:+"$bisect"})"
	return $exit_code
}
autoload -Uz add-zsh-hook
add-zsh-hook precmd __gprompt_ps1
`

var snippets = map[string]*template.Template{
	painter.Bash: template.Must(template.New(painter.Bash).Parse(bashSnippet)),
	painter.Zsh:  template.Must(template.New(painter.Zsh).Parse(zshSnippet)),
}

// Snippet returns the integration script for shellName that runs binary
// before every prompt.
func Snippet(shellName, binary string) (string, error) {

	tmpl, ok := snippets[Normalize(shellName)]
	if !ok {
		return "", fmt.Errorf("shell: unsupported shell %q (supported: %s)", shellName, strings.Join(Supported, ", "))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Binary string }{quote(binary)}); err != nil {
		return "", fmt.Errorf("shell: failed to render %s snippet: %w", shellName, err)
	}

	return buf.String(), nil
}

// quote wraps s in single quotes for POSIX shells.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
