// Package html renders a generated document as a self-contained HTML preview.
// Section content is converted from its paragraph text with goldmark and
// sanitised before it reaches the page.
package html

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-docgen/pkg/layout"
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/render"
)

// Name is the registry key of the HTML renderer.
const Name = "html"

const documentTemplate = "templates/document.html"

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the embedded template bundle. The bundle must
// provide templates/document.html.
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.templates = files
		}
	}
}

// WithStyle overrides the marker and notice text.
func WithStyle(style layout.Style) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// Renderer produces the HTML preview.
type Renderer struct {
	templates fs.FS
	style     layout.Style
	markdown  goldmark.Markdown

	once sync.Once
	tpl  *pongo2.Template
	err  error
}

// New constructs the HTML renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		templates: TemplatesFS(),
		style:     layout.DefaultStyle(),
		markdown:  goldmark.New(goldmark.WithRendererOptions(gmhtml.WithHardWraps())),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var _ render.Renderer = (*Renderer)(nil)

// Name implements render.Renderer.
func (*Renderer) Name() string { return Name }

// ContentType implements render.Renderer.
func (*Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Extension implements render.Renderer.
func (*Renderer) Extension() string { return "html" }

func (r *Renderer) template() (*pongo2.Template, error) {
	r.once.Do(func() {
		set := pongo2.NewSet("docgen-html", pongo2.NewFSLoader(r.templates))
		r.tpl, r.err = set.FromFile(documentTemplate)
		if r.err != nil {
			r.err = fmt.Errorf("html renderer: load template: %w", r.err)
		}
	})
	return r.tpl, r.err
}

type sectionView struct {
	ID     string
	Anchor string
	Title  string
	Level  int
	Page   int
	Body   string
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, doc model.GeneratedDocument, options render.RenderOptions) ([]byte, error) {
	tpl, err := r.template()
	if err != nil {
		return nil, err
	}

	toc := layout.EstimatedTOC(doc.Sections)
	sections := make([]sectionView, 0, len(doc.Sections))
	for i, section := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := r.convert(section.Content)
		if err != nil {
			return nil, fmt.Errorf("html renderer: section %s: %w", section.ID, err)
		}
		title := section.Title
		if title == "" {
			title = "Section " + strconv.Itoa(i+1)
		}
		sections = append(sections, sectionView{
			ID:     section.ID,
			Anchor: "section-" + strconv.Itoa(i+1),
			Title:  title,
			Level:  section.Level,
			Page:   toc[i].Page,
			Body:   body,
		})
	}

	data := pongo2.Context{
		"doc":      doc,
		"parties":  strings.Join(doc.Parties, " and "),
		"sections": sections,
		"marker":   r.style.DocumentMarker,
		"notice":   r.style.ConfidentialNotice,
	}
	applyTheme(data, options.Theme)

	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(data, &buf); err != nil {
		return nil, fmt.Errorf("html renderer: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) convert(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return sanitizer().Sanitize(buf.String()), nil
}

func applyTheme(data pongo2.Context, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	data["theme_name"] = cfg.Theme
	data["theme_variant"] = cfg.Variant
	data["css_vars"] = cssVarsStyle(cfg.CSSVars)
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		value := strings.NewReplacer("<", "", ">", "", ";", "", "}", "").Replace(vars[key])
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
