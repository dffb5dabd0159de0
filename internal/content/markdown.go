package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in content files is dropped; only markdown is rendered.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts a markdown snippet to HTML safe for templates.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Prepare renders every project description.
func (c *Catalog) Prepare() error {
	for i := range c.Projects {
		p := &c.Projects[i]
		out, err := RenderMarkdown(p.Description)
		if err != nil {
			return fmt.Errorf("project %s: %w", p.ID, err)
		}
		p.DescriptionHTML = out
	}
	return nil
}
