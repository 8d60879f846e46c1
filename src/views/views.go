// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package views holds the registry of the views declared in the XML
// resource files of the loaded modules.
package views

import (
	"strconv"
	"sync"

	"github.com/beevik/etree"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var log logging.Logger

// Registry is the view Collection of the application
var Registry *Collection

func init() {
	log = logging.GetLogger("views")
	Registry = NewCollection()
}

// A ViewType defines the type of a view
type ViewType string

// View types
const (
	ViewTypeForm   ViewType = "form"
	ViewTypeTree   ViewType = "tree"
	ViewTypeSearch ViewType = "search"
)

// A View describes the presentation of a model in the user interface
type View struct {
	ID       string
	Name     string
	Model    string
	Type     ViewType
	Priority int
	Arch     *etree.Element
}

// FieldNames returns the names of the fields displayed in this view
func (v *View) FieldNames() []string {
	var res []string
	for _, fieldEl := range v.Arch.FindElements("//field") {
		res = append(res, fieldEl.SelectAttrValue("name", ""))
	}
	return res
}

// A Collection of views
type Collection struct {
	sync.RWMutex
	views        map[string]*View
	viewsByModel map[string][]*View
}

// NewCollection returns a pointer to a new empty Collection instance
func NewCollection() *Collection {
	return &Collection{
		views:        make(map[string]*View),
		viewsByModel: make(map[string][]*View),
	}
}

// Add adds the given view to this Collection
func (vc *Collection) Add(v *View) {
	vc.Lock()
	defer vc.Unlock()
	vc.views[v.ID] = v
	vc.viewsByModel[v.Model] = append(vc.viewsByModel[v.Model], v)
}

// GetByID returns the View with the given id
func (vc *Collection) GetByID(id string) *View {
	vc.RLock()
	defer vc.RUnlock()
	return vc.views[id]
}

// GetAllViewsForModel returns all the views for the given model
func (vc *Collection) GetAllViewsForModel(model string) []*View {
	vc.RLock()
	defer vc.RUnlock()
	return vc.viewsByModel[model]
}

// GetFirstViewForModel returns the first view of the given type for
// the given model, or nil if there is none.
func (vc *Collection) GetFirstViewForModel(model string, viewType ViewType) *View {
	vc.RLock()
	defer vc.RUnlock()
	for _, v := range vc.viewsByModel[model] {
		if v.Type == viewType {
			return v
		}
	}
	return nil
}

// LoadFromEtree loads the view given as an etree.Element into the
// Registry. The element must be a 'view' tag with at least 'id' and
// 'model' attributes and one child as the view's arch.
func LoadFromEtree(element *etree.Element) {
	xmlID := element.SelectAttrValue("id", "")
	if xmlID == "" {
		log.Panic("View without id", "view", element)
	}
	model := element.SelectAttrValue("model", "")
	if model == "" {
		log.Panic("View without model", "viewID", xmlID)
	}
	priority, err := strconv.Atoi(element.SelectAttrValue("priority", "16"))
	if err != nil {
		log.Panic("Invalid view priority", "viewID", xmlID, "error", err)
	}
	children := element.ChildElements()
	if len(children) != 1 {
		log.Panic("View arch must have exactly one root element", "viewID", xmlID)
	}
	arch := children[0].Copy()
	Registry.Add(&View{
		ID:       xmlID,
		Name:     element.SelectAttrValue("name", xmlID),
		Model:    model,
		Type:     ViewType(arch.Tag),
		Priority: priority,
		Arch:     arch,
	})
}
