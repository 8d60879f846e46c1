// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package server holds the module registry of the application and the
// web server exposing the loaded modules.
package server

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/hexya-erp/hexya-starter/src/menus"
	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/templates"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
	"github.com/hexya-erp/hexya-starter/src/views"
)

var log logging.Logger

func init() {
	log = logging.GetLogger("server")
}

// A Manifest is the static metadata of a module, mirroring the
// manifest keys of an Odoo module declaration.
type Manifest struct {
	// Name is the technical name of the module. It must be unique.
	Name string
	// Version of the module
	Version string
	// Category of the module, e.g. "Sales"
	Category string
	// Summary is a one line description
	Summary string
	// Description is the long description of the module
	Description string
	// Author of the module
	Author string
	// Website of the author
	Website string
	// Depends lists the names of the modules this module depends on
	Depends []string
	// Data lists the resource files of this module, relative to the
	// module directory. XML files hold views, menus and templates,
	// CSV files hold data records and access control lists.
	Data []string
	// Demo lists the demonstration data files of this module
	Demo []string
	// Sequence orders modules with identical dependencies
	Sequence uint8
}

// A Module is a go package that implements business features.
// This struct is used to register modules.
type Module struct {
	Manifest
	// Dir is the directory holding the module's data files
	Dir string
	// PreInit is called before loading the module's data
	PreInit func()
	// PostInit is called after loading the module's data
	PostInit func()
}

// A ModulesList is a list of Module objects
type ModulesList []*Module

// Names returns a list of all module names in this ModuleList
func (ml ModulesList) Names() []string {
	res := make([]string, len(ml))
	for i, module := range ml {
		res[i] = module.Name
	}
	return res
}

// Modules is the list of registered modules in the application
var Modules ModulesList

// RegisterModule registers the given module in the server.
// This function should be called in the init() function of
// all modules.
func RegisterModule(mod *Module) {
	if mod.Name == "" {
		log.Panic("Trying to register a module without name")
	}
	for _, existing := range Modules {
		if existing.Name == mod.Name {
			log.Panic("Trying to register a duplicate module", "module", mod.Name)
		}
	}
	Modules = append(Modules, mod)
}

// sortedByDependency returns the registered modules sorted so that
// every module comes after the modules it depends on. It panics on
// unknown dependencies and dependency cycles.
func sortedByDependency() ModulesList {
	byName := make(map[string]*Module)
	for _, mod := range Modules {
		byName[mod.Name] = mod
	}
	pending := make(ModulesList, len(Modules))
	copy(pending, Modules)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Sequence < pending[j].Sequence
	})

	var res ModulesList
	loaded := make(map[string]bool)
	for len(pending) > 0 {
		var progress bool
		var next ModulesList
		for _, mod := range pending {
			var blocked bool
			for _, dep := range mod.Depends {
				if _, exists := byName[dep]; !exists {
					log.Panic("Unknown module dependency", "module", mod.Name, "dependency", dep)
				}
				if !loaded[dep] {
					blocked = true
					break
				}
			}
			if blocked {
				next = append(next, mod)
				continue
			}
			res = append(res, mod)
			loaded[mod.Name] = true
			progress = true
		}
		if !progress {
			log.Panic("Dependency cycle in modules", "modules", next.Names())
		}
		pending = next
	}
	return res
}

// LoadModules loads the data of all registered modules in dependency
// order: PreInit hooks, then the manifest's Data files, then Demo
// files if withDemo is true, then PostInit hooks.
func LoadModules(withDemo bool) {
	for _, mod := range sortedByDependency() {
		log.Info("Loading module", "module", mod.Name, "version", mod.Version)
		if mod.PreInit != nil {
			mod.PreInit()
		}
		for _, fileName := range mod.Data {
			loadDataFile(mod, fileName)
		}
		if withDemo {
			for _, fileName := range mod.Demo {
				loadDataFile(mod, fileName)
			}
		}
		if mod.PostInit != nil {
			mod.PostInit()
		}
	}
}

// loadDataFile loads one data file of the given module, dispatching
// on the file extension.
func loadDataFile(mod *Module, fileName string) {
	path := filepath.Join(mod.Dir, fileName)
	if _, err := os.Stat(path); err != nil {
		log.Panic("Missing data file declared in manifest", "module", mod.Name, "file", fileName)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		loadXMLResourceFile(path)
	case ".csv":
		if strings.HasSuffix(filepath.Base(path), "ir.model.access.csv") {
			loadACLFile(path)
			return
		}
		models.LoadCSVDataFile(path)
	default:
		log.Panic("Unknown data file type", "module", mod.Name, "file", fileName)
	}
}

// loadXMLResourceFile loads the data from an XML resource file into
// the views, menus and templates registries.
func loadXMLResourceFile(fileName string) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(fileName); err != nil {
		log.Panic("Error loading XML data file", "file", fileName, "error", err)
	}
	for _, dataTag := range doc.FindElements("starter/data") {
		for _, object := range dataTag.ChildElements() {
			switch object.Tag {
			case "view":
				views.LoadFromEtree(object)
			case "menuitem":
				menus.LoadFromEtree(object)
			case "template":
				templates.LoadFromEtree(object)
			default:
				log.Panic("Unknown XML tag", "filename", fileName, "tag", object.Tag)
			}
		}
	}
}
