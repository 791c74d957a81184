// Package templates provides the embedded feature-page templates and rendering.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed page/*.tmpl
var pageFS embed.FS

// TemplateData contains data for template rendering.
type TemplateData struct {
	// Snake is the lowercase underscore-joined feature name (e.g. "my_page").
	// Used for file names and relative imports.
	Snake string

	// Pascal is the capitalized feature name (e.g. "MyPage"). Used for
	// class identifiers.
	Pascal string
}

// RenderRole renders the template for a role with the given data.
func RenderRole(role Role, data TemplateData) ([]byte, error) {
	content, err := pageFS.ReadFile("page/" + role.Name + ".dart.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading template for role %s: %w", role.Name, err)
	}

	tmpl, err := template.New(role.Name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template for role %s: %w", role.Name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for role %s: %w", role.Name, err)
	}

	return buf.Bytes(), nil
}
