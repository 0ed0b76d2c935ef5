// Package templater renders the embedded scaffolding used when creating
// notes and bootstrapping a vault.
package templater

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates
var embeddedTemplates embed.FS

// NoteData is the payload for the new-note template.
type NoteData struct {
	Title   string
	Created string
}

// Templater manages the embedded template collection.
type Templater struct {
	templates map[string]*template.Template
}

// New parses every embedded template.
func New() (*Templater, error) {
	templates := make(map[string]*template.Template)

	err := fs.WalkDir(embeddedTemplates, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(embeddedTemplates, path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		tmpl, err := template.New(name).Parse(string(data))
		if err != nil {
			return err
		}
		templates[name] = tmpl

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Templater{templates: templates}, nil
}

// Execute renders the named template with the given data.
func (t *Templater) Execute(name string, data interface{}) (string, error) {
	tmpl, ok := t.templates[name]
	if !ok {
		return "", errors.New("template not found")
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}

	return rendered.String(), nil
}
