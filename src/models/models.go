// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package models provides the minimal model layer of hexya-starter.
//
// Models are declared by addon modules with NewModel and accessed at
// runtime through an Environment, which wraps a database transaction
// and the acting user. This is deliberately a small subset of a full
// ORM: just enough for addons to declare their entities, load CSV data
// records and exercise business workflows in tests.
package models

import (
	"sync"

	"github.com/hexya-erp/hexya-starter/src/models/fieldtype"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
	"github.com/hexya-erp/hexya-starter/src/tools/strutils"
)

var log logging.Logger

func init() {
	log = logging.GetLogger("models")
	Registry = &modelCollection{
		models: make(map[string]*Model),
	}
}

// A Field is the description of one column of a model
type Field struct {
	// Name is the Go-style name of the field, e.g. "AmountTotal"
	Name string
	// JSON is the column name. Derived from Name if empty.
	JSON string
	// Type of the field
	Type fieldtype.Type
	// Required fields cannot be set to their Go zero value
	Required bool
	// Size of Char fields. 0 means no limit.
	Size int
	// Selection lists the authorized values of Selection fields
	Selection []string
	// Relation is the name of the related model of Many2One fields
	Relation string
	// Default value of the field, applied on create when unset
	Default interface{}
}

// A Model is the description of one business entity, e.g. "sale.order"
type Model struct {
	name      string
	table     string
	fields    []*Field
	fieldsMap map[string]*Field
}

// Name returns the dotted name of this model
func (m *Model) Name() string {
	return m.name
}

// Table returns the database table of this model
func (m *Model) Table() string {
	return m.table
}

// Fields returns the fields of this model
func (m *Model) Fields() []*Field {
	return m.fields
}

// FieldByName returns the field with the given name, which may be
// either the Go-style name or the column name. It returns nil if the
// model has no such field.
func (m *Model) FieldByName(name string) *Field {
	return m.fieldsMap[name]
}

// modelCollection is the registry of all declared models
type modelCollection struct {
	sync.RWMutex
	models map[string]*Model
}

// Registry holds all the models declared by the loaded modules
var Registry *modelCollection

// NewModel declares a new model with the given dotted name and fields
// and registers it. It panics if the name is already registered or if
// a relational field references no model.
func NewModel(name string, fields ...*Field) *Model {
	Registry.Lock()
	defer Registry.Unlock()
	if _, exists := Registry.models[name]; exists {
		log.Panic("Trying to declare a duplicate model", "model", name)
	}
	mi := &Model{
		name:      name,
		table:     strutils.DottedToSnake(name),
		fields:    fields,
		fieldsMap: make(map[string]*Field),
	}
	// external_id is an implicit field of every model, holding the
	// record identifier used in CSV data files.
	extID := &Field{Name: "ExternalID", JSON: "external_id", Type: fieldtype.Char}
	mi.fieldsMap[extID.Name] = extID
	mi.fieldsMap[extID.JSON] = extID
	for _, fi := range fields {
		if fi.JSON == "" {
			fi.JSON = strutils.SnakeCase(fi.Name)
			if fi.Type == fieldtype.Many2One {
				fi.JSON += "_id"
			}
		}
		if fi.Type == fieldtype.Many2One && fi.Relation == "" {
			log.Panic("Many2One field without relation", "model", name, "field", fi.Name)
		}
		mi.fieldsMap[fi.Name] = fi
		mi.fieldsMap[fi.JSON] = fi
	}
	Registry.models[name] = mi
	return mi
}

// MustGet returns the model with the given name. It panics if the
// model is not registered.
func (mc *modelCollection) MustGet(name string) *Model {
	mc.RLock()
	defer mc.RUnlock()
	mi, ok := mc.models[name]
	if !ok {
		log.Panic("Unknown model", "model", name)
	}
	return mi
}

// Get returns the model with the given name and a boolean telling
// whether it exists.
func (mc *modelCollection) Get(name string) (*Model, bool) {
	mc.RLock()
	defer mc.RUnlock()
	mi, ok := mc.models[name]
	return mi, ok
}

// All returns all registered models
func (mc *modelCollection) All() []*Model {
	mc.RLock()
	defer mc.RUnlock()
	res := make([]*Model, 0, len(mc.models))
	for _, mi := range mc.models {
		res = append(res, mi)
	}
	return res
}
