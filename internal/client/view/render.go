package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer interface {
	Render(w io.Writer, p *Page) error
}

// parse loads the shared panels plus the front-end specific "page",
// "auth", "app" and "action" definitions from <flavor>.html.tmpl.
func parse(flavor string) (*template.Template, error) {
	t, err := template.New(flavor).Funcs(funcs).ParseFS(templateFS,
		"templates/panels.html.tmpl",
		"templates/"+flavor+".html.tmpl",
	)
	if err != nil {
		return nil, fmt.Errorf("parse %s templates: %w", flavor, err)
	}
	return t, nil
}

// HTMLRenderer draws a full HTML document with a form per action.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	t, err := parse("web")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: t}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, p *Page) error {
	return r.tmpl.ExecuteTemplate(w, "page", p)
}

// TextRenderer draws the page for a terminal: the escaped HTML fragment is
// converted to Markdown, with actions shown as CLI command hints.
type TextRenderer struct {
	tmpl *template.Template
	conv *md.Converter
}

func NewTextRenderer() (*TextRenderer, error) {
	t, err := parse("text")
	if err != nil {
		return nil, err
	}
	return &TextRenderer{tmpl: t, conv: md.NewConverter("", true, nil)}, nil
}

func (r *TextRenderer) Render(w io.Writer, p *Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", p); err != nil {
		return err
	}

	out, err := r.conv.ConvertString(buf.String())
	if err != nil {
		return fmt.Errorf("convert page to text: %w", err)
	}

	_, err = io.WriteString(w, strings.TrimSpace(out)+"\n")
	return err
}
