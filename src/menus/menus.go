// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package menus holds the hierarchical menu Collection of the
// application, loaded from the XML resource files of the modules.
package menus

import (
	"sort"
	"strconv"
	"sync"

	"github.com/beevik/etree"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var log logging.Logger

// Registry is the menu Collection of the application
var Registry *Collection

func init() {
	log = logging.GetLogger("menus")
	Registry = NewCollection()
}

// A Menu is an entry in the menu of the application
type Menu struct {
	ID          string
	Name        string
	Sequence    int
	Parent      *Menu
	Children    *Collection
	Model       string
	HasChildren bool
}

// A Collection is a hierarchical and sortable collection of menus
type Collection struct {
	sync.RWMutex
	Menus    []*Menu
	menusMap map[string]*Menu
}

// NewCollection returns a pointer to a new empty Collection instance
func NewCollection() *Collection {
	return &Collection{
		menusMap: make(map[string]*Menu),
	}
}

func (mc *Collection) Len() int {
	return len(mc.Menus)
}

func (mc *Collection) Swap(i, j int) {
	mc.Menus[i], mc.Menus[j] = mc.Menus[j], mc.Menus[i]
}

func (mc *Collection) Less(i, j int) bool {
	return mc.Menus[i].Sequence < mc.Menus[j].Sequence
}

// Add adds a menu to the Collection. Menus with a parent are added to
// their parent's children, but all menus are indexed in the Registry.
func (mc *Collection) Add(m *Menu) {
	targetCollection := mc
	if m.Parent != nil {
		if m.Parent.Children == nil {
			m.Parent.Children = NewCollection()
		}
		targetCollection = m.Parent.Children
		m.Parent.HasChildren = true
	}
	targetCollection.Menus = append(targetCollection.Menus, m)
	sort.Sort(targetCollection)

	Registry.Lock()
	defer Registry.Unlock()
	Registry.menusMap[m.ID] = m
}

// GetByID returns the Menu with the given id
func (mc *Collection) GetByID(id string) *Menu {
	mc.RLock()
	defer mc.RUnlock()
	return mc.menusMap[id]
}

// All returns all menus of the Registry, whatever their depth
func (mc *Collection) All() []*Menu {
	mc.RLock()
	defer mc.RUnlock()
	res := make([]*Menu, 0, len(mc.menusMap))
	for _, menu := range mc.menusMap {
		res = append(res, menu)
	}
	return res
}

// LoadFromEtree loads the menu given as an etree.Element into the
// Registry. The element must be a 'menuitem' tag with at least an
// 'id' attribute.
func LoadFromEtree(element *etree.Element) {
	xmlID := element.SelectAttrValue("id", "")
	if xmlID == "" {
		log.Panic("Menu item without id", "element", element)
	}
	seq, err := strconv.Atoi(element.SelectAttrValue("sequence", "10"))
	if err != nil {
		log.Panic("Invalid menu sequence", "menuID", xmlID, "error", err)
	}
	var parent *Menu
	if parentID := element.SelectAttrValue("parent", ""); parentID != "" {
		parent = Registry.GetByID(parentID)
		if parent == nil {
			log.Panic("Unknown parent menu", "menuID", xmlID, "parent", parentID)
		}
	}
	Registry.Add(&Menu{
		ID:       xmlID,
		Name:     element.SelectAttrValue("name", xmlID),
		Sequence: seq,
		Parent:   parent,
		Model:    element.SelectAttrValue("model", ""),
	})
}
