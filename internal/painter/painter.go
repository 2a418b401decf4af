// Package painter provides functionality to render coloured and styled
// text for the prompt. Every prompt segment (path, branch, counters...) has
// its own colour and bold setting, pre-defined themes override them, and
// escape sequences are wrapped so the calling shell can measure the prompt.
package painter

import (
	"Gprompt/internal/config"
	"strings"
)

const (
	reset    = "\033[0m"
	makeBold = "\033[1m"
)

// Shell names that need non-printing sequences marked.
const (
	Bash = "bash"
	Zsh  = "zsh"
)

// Symbols used by the templates.
var symbols = map[string]string{
	"ahead":    "↑",
	"behind":   "↓",
	"diverged": "⇅",
	"merging":  "merging",
	"prompt":   "$",
}

// Style is the resolved look of one segment.
type Style struct {
	Colour string // ANSI escape sequence
	Bold   bool
}

// Painter holds the styles of all prompt segments.
type Painter struct {
	Styles map[string]Style // Resolved styles keyed by segment name
	Raw    bool             // Emit plain text only
	Shell  string           // Shell the escapes are wrapped for
}

// NewPainter creates a Painter from the style config. A named theme
// overrides the configured colours of the segments it defines, "none"
// clears all of them and "default" keeps the configured ones.
func NewPainter(cfg config.Style) Painter {

	colours := make(map[string]config.Colour, len(cfg.Colours))
	for segment, colour := range cfg.Colours {
		colours[segment] = colour
	}

	resolveTheme(cfg.Theme, colours)

	styles := make(map[string]Style, len(colours))
	for segment, colour := range colours {
		styles[segment] = Style{Colour: resolveColor(colour.Colour), Bold: colour.Bold}
	}

	return Painter{
		Styles: styles,
		Raw:    cfg.Raw,
		Shell:  strings.ToLower(strings.TrimSpace(cfg.Shell)),
	}
}

// resolveTheme applies a predefined theme to colours.
func resolveTheme(theme string, colours map[string]config.Colour) {

	var overrides map[string]config.Colour

	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "ebash":
		overrides = ebash
	case "wildberries":
		overrides = wildberries
	case "monokai":
		overrides = monokai
	case "ohmybash":
		overrides = ohMyBash
	case "none":
		for segment := range colours {
			colours[segment] = config.Colour{}
		}
		return
	default:
		return
	}

	for segment, colour := range overrides {
		colours[segment] = colour
	}

}

var ebash = map[string]config.Colour{
	"path":   {Colour: "yellow"},
	"branch": {Colour: "default"},
}

var wildberries = map[string]config.Colour{
	"path":      {Colour: "\u001b[38;2;203;17;171m", Bold: true},
	"branch":    {Colour: "default", Bold: true},
	"ahead":     {Colour: "\u001b[38;2;203;17;171m"},
	"behind":    {Colour: "\u001b[38;2;203;17;171m"},
	"modified":  {Colour: "bright yellow"},
	"untracked": {Colour: "default"},
}

var monokai = map[string]config.Colour{
	"path":      {Colour: "\u001b[38;2;249;38;114m", Bold: true},
	"branch":    {Colour: "\u001b[38;2;166;226;46m"},
	"hash":      {Colour: "\u001b[38;2;230;219;116m"},
	"added":     {Colour: "\u001b[38;2;166;226;46m"},
	"modified":  {Colour: "\u001b[38;2;253;151;31m"},
	"untracked": {Colour: "\u001b[38;2;174;129;255m"},
	"host":      {Colour: "\u001b[38;2;102;217;239m"},
	"user":      {Colour: "\u001b[38;2;102;217;239m", Bold: true},
}

var ohMyBash = map[string]config.Colour{
	"path":   {Colour: "green"},
	"branch": {Colour: "blue", Bold: true},
	"user":   {Colour: "green", Bold: true},
	"host":   {Colour: "green", Bold: true},
}

// resolveColor converts a color name or escape sequence string into
// a valid ANSI escape code. If the input is already an escape
// sequence, it is returned unchanged.
func resolveColor(colour string) string {

	colour = strings.TrimSpace(colour)
	if colour == "" {
		return ""
	}

	switch strings.ToLower(colour) {
	case "default":
		return "\u001b[39m"
	case "black":
		return "\033[30m"
	case "red":
		return "\033[31m"
	case "green":
		return "\033[32m"
	case "yellow":
		return "\033[33m"
	case "bright yellow":
		return "\u001b[93m"
	case "blue":
		return "\033[94m"
	case "magenta":
		return "\033[35m"
	case "cyan":
		return "\033[36m"
	case "white":
		return "\033[37m"
	default:
		return colour
	}

}

// Paint applies the style of segment to text. Unknown segments, raw mode
// and empty text are returned unstyled.
func (p Painter) Paint(segment, text string) string {

	style, ok := p.Styles[segment]
	if p.Raw || !ok || text == "" {
		return text
	}

	escape := style.Colour
	if style.Bold {
		escape = makeBold + escape
	}
	if escape == "" {
		return text
	}

	return p.wrap(escape) + text + p.wrap(reset)
}

// Escape quotes text so the target shell prints it literally when it
// expands the prompt: bash would otherwise run $(...) and backticks and
// decode backslash sequences, zsh would interpret % sequences.
func (p Painter) Escape(text string) string {
	switch p.Shell {
	case Bash:
		return bashEscaper.Replace(text)
	case Zsh:
		return zshEscaper.Replace(text)
	default:
		return text
	}
}

var (
	bashEscaper = strings.NewReplacer(`\`, `\\`, "$", `\$`, "`", "\\`")
	zshEscaper  = strings.NewReplacer("%", "%%")
)

// Symbol returns the glyph registered under name, or name itself.
func (p Painter) Symbol(name string) string {
	if symbol, ok := symbols[name]; ok {
		return symbol
	}
	return name
}

// wrap marks escape as zero-width for the target shell.
func (p Painter) wrap(escape string) string {
	switch p.Shell {
	case Bash:
		return `\[` + escape + `\]`
	case Zsh:
		return "%{" + escape + "%}"
	default:
		return escape
	}
}
