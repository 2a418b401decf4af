// Package render formats a prompt.Data record into the final PS1 string by
// executing the configured text/template with painter functions.
package render

import (
	"Gprompt/internal/painter"
	"Gprompt/internal/prompt"
	"bytes"
	"fmt"
	"text/template"
)

// DefaultPrompt is printed when the template cannot be executed.
const DefaultPrompt = ">: "

// Renderer executes a parsed prompt template.
type Renderer struct {
	tmpl    *template.Template
	painter painter.Painter
}

// New parses source with the functions of p available as "paint" and
// "symbol".
func New(source string, p painter.Painter) (*Renderer, error) {

	tmpl, err := template.New("prompt").Funcs(template.FuncMap{
		"paint":  p.Paint,
		"symbol": p.Symbol,
	}).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse template: %w", err)
	}

	return &Renderer{tmpl: tmpl, painter: p}, nil
}

// Render returns the prompt for data. Every string that comes from the
// environment or the repository is escaped for the target shell first, so
// it is printed as is whether the template paints it or not.
func (r *Renderer) Render(data prompt.Data) (string, error) {

	var buf bytes.Buffer

	if err := r.tmpl.Execute(&buf, r.escape(data)); err != nil {
		return DefaultPrompt, fmt.Errorf("render: failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (r *Renderer) escape(data prompt.Data) prompt.Data {

	for _, field := range []*string{
		&data.Path, &data.Host, &data.User, &data.Branch,
		&data.Hash, &data.NameRev, &data.Merging,
	} {
		*field = r.painter.Escape(*field)
	}

	return data
}
