// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package templates holds the report and web page templates of the
// loaded modules. Templates are written in the pongo2 language and
// declared in XML resource files.
package templates

import (
	"sync"

	"github.com/beevik/etree"
	"github.com/flosch/pongo2"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
	"github.com/pkg/errors"
)

var log logging.Logger

// Registry is the template Collection of the application
var Registry *Collection

func init() {
	log = logging.GetLogger("templates")
	Registry = NewCollection()
}

// A Template is a pongo2 template declared by a module
type Template struct {
	ID       string
	template *pongo2.Template
}

// Render executes this template with the given context
func (t *Template) Render(ctx pongo2.Context) (string, error) {
	res, err := t.template.Execute(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "unable to render template %s", t.ID)
	}
	return res, nil
}

// A Collection of templates
type Collection struct {
	sync.RWMutex
	templates map[string]*Template
}

// NewCollection returns a pointer to a new empty Collection instance
func NewCollection() *Collection {
	return &Collection{
		templates: make(map[string]*Template),
	}
}

// Add adds the given template to this Collection
func (tc *Collection) Add(t *Template) {
	tc.Lock()
	defer tc.Unlock()
	tc.templates[t.ID] = t
}

// GetByID returns the Template with the given id, or nil if there is none
func (tc *Collection) GetByID(id string) *Template {
	tc.RLock()
	defer tc.RUnlock()
	return tc.templates[id]
}

// Render executes the template with the given id and context
func (tc *Collection) Render(id string, ctx pongo2.Context) (string, error) {
	tmpl := tc.GetByID(id)
	if tmpl == nil {
		return "", errors.Errorf("unknown template %s", id)
	}
	return tmpl.Render(ctx)
}

// LoadFromEtree loads the template given as an etree.Element into the
// Registry. The element must be a 'template' tag with an 'id'
// attribute and the pongo2 source as its text content, typically in a
// CDATA section.
func LoadFromEtree(element *etree.Element) {
	xmlID := element.SelectAttrValue("id", "")
	if xmlID == "" {
		log.Panic("Template without id", "element", element)
	}
	tmpl, err := pongo2.FromString(element.Text())
	if err != nil {
		log.Panic("Unable to parse template", "templateID", xmlID, "error", err)
	}
	Registry.Add(&Template{
		ID:       xmlID,
		template: tmpl,
	})
}
