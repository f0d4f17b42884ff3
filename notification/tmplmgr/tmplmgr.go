package tmplmgr

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sync"
	"text/template"
)

//go:embed templates
var Templates embed.FS

// template names of the slack channel
const (
	SlackChannel         = "slack"
	SlackErrorTemplate   = "error"
	SlackExploreTemplate = "explore"
)

type TemplateManager struct {
	cache sync.Map
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		cache: sync.Map{},
	}
}

// Format renders templates/{channel}/{name}.tpl with data.
func (t *TemplateManager) Format(channel, name string, data any) (string, error) {
	tmplPath := fmt.Sprintf("%s/%s.tpl", channel, name)

	if cached, found := t.cache.Load(tmplPath); found {
		if tmpl, ok := cached.(*template.Template); ok {
			return t.executeTemplate(tmpl, data)
		}
	}

	tmpls, err := fs.Sub(Templates, "templates")
	if err != nil {
		return "", fmt.Errorf("failed to load templates: %v", err)
	}
	tmpl, err := template.New(name + ".tpl").Option("missingkey=error").ParseFS(tmpls, tmplPath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", tmplPath, err)
	}
	t.cache.Store(tmplPath, tmpl)

	return t.executeTemplate(tmpl, data)
}

func (t *TemplateManager) executeTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
