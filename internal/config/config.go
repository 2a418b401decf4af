// Package config provides the gprompt configuration. Defaults are overlaid
// by an optional user config file and GPROMPT_* environment variables using
// the Viper library. The result is a plain value that callers pass on by
// parameter; nothing in here is global.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/viper"
)

const (
	// Name is used for the config directory, file name and env prefix.
	Name = "gprompt"

	DefaultPathLength = 3
	DefaultHashLength = 7
)

// DefaultTemplate renders "user@host path branch ↑1 ↓2 +1 ~2 ?3 $ ".
const DefaultTemplate = `
{{- if .User}}{{paint "user" .User}}{{if .Host}}{{paint "separator" "@"}}{{end}}{{end -}}
{{- if .Host}}{{paint "host" .Host}}{{end -}}
{{- if or .User .Host}} {{end -}}
{{- paint "path" .Path -}}
{{- if .Git -}}
	{{- if .Detached}} {{paint "detached" (printf ":%s" .Hash)}}{{if .NameRev}} {{paint "detached" (printf "(%s)" .NameRev)}}{{end}}
	{{- else if .Init}} {{paint "init" "init"}}
	{{- else if .Branch}} {{paint "branch" .Branch}}{{end -}}
	{{- if .Diverged}} {{paint "behind" (printf "%s%d/%d" (symbol "diverged") .Ahead .Behind)}}
	{{- else -}}
		{{- if .Ahead}} {{paint "ahead" (printf "%s%d" (symbol "ahead") .Ahead)}}{{end -}}
		{{- if .Behind}} {{paint "behind" (printf "%s%d" (symbol "behind") .Behind)}}{{end -}}
	{{- end -}}
	{{- if .Added}} {{paint "added" (printf "+%d" .Added)}}{{end -}}
	{{- if .Modified}} {{paint "modified" (printf "~%d" .Modified)}}{{end -}}
	{{- if .Untracked}} {{paint "untracked" (printf "?%d" .Untracked)}}{{end -}}
	{{- if .Merging}} {{paint "merging" (symbol "merging")}}{{end -}}
{{- end}} {{symbol "prompt"}} `

// Config holds every configurable setting: what the prompt shows and how
// it is styled.
type Config struct {
	Prompt Prompt `mapstructure:"prompt" yaml:"prompt"` // Content settings
	Style  Style  `mapstructure:"style" yaml:"style"`   // Colour and shell settings
}

// Prompt defines what ends up in the rendered prompt.
type Prompt struct {
	PathLength int    `mapstructure:"path_length" yaml:"path_length"` // Max visible path segments
	HashLength int    `mapstructure:"hash_length" yaml:"hash_length"` // Displayed commit hash length
	Template   string `mapstructure:"template" yaml:"template"`       // text/template source
}

// Style defines the look of the prompt.
type Style struct {
	Theme   string            `mapstructure:"theme" yaml:"theme"`     // Theme name, overrides Colours
	Shell   string            `mapstructure:"shell" yaml:"shell"`     // bash, zsh or "" for auto-detect
	Raw     bool              `mapstructure:"raw" yaml:"raw"`         // Disable escape sequences
	Colours map[string]Colour `mapstructure:"colours" yaml:"colours"` // Per-segment colours
}

// Colour is the style of one prompt segment.
type Colour struct {
	Colour string `mapstructure:"colour" yaml:"colour"` // Colour name or escape sequence
	Bold   bool   `mapstructure:"bold" yaml:"bold"`
}

// Default returns a Config with the built-in settings. It is also the
// fallback when loading a configuration file fails.
func Default() Config {

	var cfg Config

	cfg.Prompt.PathLength = DefaultPathLength
	cfg.Prompt.HashLength = DefaultHashLength
	cfg.Prompt.Template = DefaultTemplate

	cfg.Style.Theme = "default"
	cfg.Style.Colours = defaultColours()

	return cfg
}

func defaultColours() map[string]Colour {
	return map[string]Colour{
		"path":      {Colour: "green"},
		"branch":    {Colour: "blue", Bold: true},
		"hash":      {Colour: "yellow"},
		"detached":  {Colour: "red", Bold: true},
		"init":      {Colour: "cyan"},
		"ahead":     {Colour: "green"},
		"behind":    {Colour: "red"},
		"added":     {Colour: "green"},
		"modified":  {Colour: "yellow"},
		"untracked": {Colour: "magenta"},
		"merging":   {Colour: "red", Bold: true},
		"host":      {Colour: "cyan"},
		"user":      {Colour: "cyan", Bold: true},
		"separator": {Colour: "default"},
	}
}

// Load reads the configuration. When file is empty a file named "config"
// is searched in $XDG_CONFIG_HOME/gprompt, ~/.config/gprompt and the
// current directory; a missing file is not an error. GPROMPT_* environment
// variables override file values (GPROMPT_PROMPT_PATH_LENGTH and so on).
// On error the returned Config holds the defaults.
func Load(file string) (Config, error) {

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Default(), fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// setDefaults registers every default key, so that environment variables
// are picked up even when no config file sets the key.
func setDefaults(v *viper.Viper) {

	def := Default()

	v.SetDefault("prompt.path_length", def.Prompt.PathLength)
	v.SetDefault("prompt.hash_length", def.Prompt.HashLength)
	v.SetDefault("prompt.template", def.Prompt.Template)
	v.SetDefault("style.theme", def.Style.Theme)
	v.SetDefault("style.shell", def.Style.Shell)
	v.SetDefault("style.raw", def.Style.Raw)

	for segment, colour := range def.Style.Colours {
		v.SetDefault("style.colours."+segment+".colour", colour.Colour)
		v.SetDefault("style.colours."+segment+".bold", colour.Bold)
	}

}

// searchPaths lists the directories a config file is looked up in.
func searchPaths() []string {

	var dirs []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, Name))
	}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", Name))
	}

	return append(dirs, ".")
}

// Validate reports settings that cannot produce a prompt.
func (cfg Config) Validate() error {

	if cfg.Prompt.PathLength < 1 {
		return fmt.Errorf("config: path_length must be at least 1, got %d", cfg.Prompt.PathLength)
	}

	if cfg.Prompt.HashLength < 0 {
		return fmt.Errorf("config: hash_length must not be negative, got %d", cfg.Prompt.HashLength)
	}

	if _, err := template.New(Name).Funcs(templateStubs).Parse(cfg.Prompt.Template); err != nil {
		return fmt.Errorf("config: invalid template: %w", err)
	}

	return nil
}

// templateStubs declares the functions available to prompt templates so
// that a template can be checked without a painter.
var templateStubs = template.FuncMap{
	"paint":  func(segment, text string) string { return text },
	"symbol": func(name string) string { return name },
}
