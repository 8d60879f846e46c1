// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hexya-erp/hexya-starter/src/models/security"
	"github.com/hexya-erp/hexya-starter/src/tools/typesutils"
)

// A FieldMap maps field names (Go-style or column names) to values
type FieldMap map[string]interface{}

// A RecordCollection is a generic struct pointing to records of a
// model in the database.
type RecordCollection struct {
	env   Environment
	model *Model
	ids   []int64
}

// Env returns the Environment of this RecordCollection
func (rc *RecordCollection) Env() Environment {
	return rc.env
}

// Model returns the Model of this RecordCollection
func (rc *RecordCollection) Model() *Model {
	return rc.model
}

// Ids returns the ids of this RecordCollection
func (rc *RecordCollection) Ids() []int64 {
	return rc.ids
}

// Len returns the number of records in this RecordCollection
func (rc *RecordCollection) Len() int {
	return len(rc.ids)
}

// IsEmpty returns true if this RecordCollection has no records
func (rc *RecordCollection) IsEmpty() bool {
	return len(rc.ids) == 0
}

// ID returns the id of the unique record of this RecordCollection.
// It panics if the collection does not hold exactly one record.
func (rc *RecordCollection) ID() int64 {
	rc.EnsureOne()
	return rc.ids[0]
}

// EnsureOne panics if this RecordCollection does not hold exactly
// one record.
func (rc *RecordCollection) EnsureOne() {
	if len(rc.ids) != 1 {
		log.Panic("Expected singleton", "model", rc.model.name, "received", rc.ids)
	}
}

// First returns a RecordCollection with the first record of this
// collection, or an empty collection if this collection is empty.
func (rc *RecordCollection) First() *RecordCollection {
	if rc.IsEmpty() {
		return rc
	}
	return rc.withIds(rc.ids[:1])
}

// Records returns one RecordCollection per record of this collection
func (rc *RecordCollection) Records() []*RecordCollection {
	res := make([]*RecordCollection, len(rc.ids))
	for i, id := range rc.ids {
		res[i] = rc.withIds([]int64{id})
	}
	return res
}

func (rc *RecordCollection) withIds(ids []int64) *RecordCollection {
	return &RecordCollection{
		env:   rc.env,
		model: rc.model,
		ids:   ids,
	}
}

// checkPermission panics if the user of this collection's Environment
// does not have the given permission on this collection's model.
func (rc *RecordCollection) checkPermission(perm security.Permission) {
	if !security.Registry.CheckPermission(rc.env.uid, rc.model.name, perm) {
		log.Panic("User is not allowed to perform this operation",
			"uid", rc.env.uid, "model", rc.model.name, "operation", perm)
	}
}

// columnsAndValues resolves the given FieldMap into parallel slices of
// column names and values, sorted by column name. Unknown fields panic.
func (rc *RecordCollection) columnsAndValues(data FieldMap) ([]string, []interface{}) {
	cols := make(map[string]interface{})
	for name, value := range data {
		fi := rc.model.FieldByName(name)
		if fi == nil {
			log.Panic("Unknown field in model", "field", name, "model", rc.model.name)
		}
		cols[fi.JSON] = value
	}
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	values := make([]interface{}, len(names))
	for i, name := range names {
		values[i] = cols[name]
	}
	return names, values
}

// applyDefaults adds this model's field defaults to the given FieldMap
// for fields that are not set.
func (rc *RecordCollection) applyDefaults(data FieldMap) {
	for _, fi := range rc.model.fields {
		if fi.Default == nil {
			continue
		}
		if _, okName := data[fi.Name]; okName {
			continue
		}
		if _, okJSON := data[fi.JSON]; okJSON {
			continue
		}
		data[fi.JSON] = fi.Default
	}
}

// checkRequired panics if a required field of this collection's model
// is unset or zero in the given FieldMap.
func (rc *RecordCollection) checkRequired(data FieldMap) {
	for _, fi := range rc.model.fields {
		if !fi.Required {
			continue
		}
		value, ok := data[fi.JSON]
		if !ok {
			value = data[fi.Name]
		}
		if typesutils.IsZero(value) {
			log.Panic("Missing required field", "model", rc.model.name, "field", fi.Name)
		}
	}
}

// Create inserts a new record of this collection's model with the
// given data and returns the inserted record.
func (rc *RecordCollection) Create(data FieldMap) *RecordCollection {
	rc.checkPermission(security.Create)
	rc.applyDefaults(data)
	rc.checkRequired(data)
	names, values := rc.columnsAndValues(data)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		rc.model.table, strings.Join(names, ", "), placeholders)

	var id int64
	switch driver {
	case "postgres":
		query = rc.env.cr.Rebind(query + " RETURNING id")
		if err := rc.env.cr.QueryRow(query, values...).Scan(&id); err != nil {
			log.Panic("Error while creating record", "model", rc.model.name, "error", err)
		}
	default:
		res, err := rc.env.cr.Exec(query, values...)
		if err != nil {
			log.Panic("Error while creating record", "model", rc.model.name, "error", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			log.Panic("Error while creating record", "model", rc.model.name, "error", err)
		}
	}
	return rc.withIds([]int64{id})
}

// Write updates the records of this collection with the given data.
// It returns true if the operation updated at least one row.
func (rc *RecordCollection) Write(data FieldMap) bool {
	rc.checkPermission(security.Write)
	if rc.IsEmpty() {
		return false
	}
	names, values := rc.columnsAndValues(data)
	assignments := make([]string, len(names))
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = ?", name)
	}
	args := append(values, int64SliceToInterfaces(rc.ids)...)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id IN (%s)",
		rc.model.table, strings.Join(assignments, ", "), idPlaceholders(len(rc.ids)))
	query = rc.env.cr.Rebind(query)
	res, err := rc.env.cr.Exec(query, args...)
	if err != nil {
		log.Panic("Error while updating records", "model", rc.model.name, "ids", rc.ids, "error", err)
	}
	num, _ := res.RowsAffected()
	return num > 0
}

// Unlink deletes the records of this collection from the database and
// returns the number of deleted rows.
func (rc *RecordCollection) Unlink() int64 {
	rc.checkPermission(security.Unlink)
	if rc.IsEmpty() {
		return 0
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id IN (%s)",
		rc.model.table, idPlaceholders(len(rc.ids)))
	query = rc.env.cr.Rebind(query)
	res, err := rc.env.cr.Exec(query, int64SliceToInterfaces(rc.ids)...)
	if err != nil {
		log.Panic("Error while deleting records", "model", rc.model.name, "ids", rc.ids, "error", err)
	}
	num, _ := res.RowsAffected()
	return num
}

// Search returns the records of this collection's model whose given
// field equals the given value.
func (rc *RecordCollection) Search(field string, value interface{}) *RecordCollection {
	rc.checkPermission(security.Read)
	fi := rc.model.FieldByName(field)
	if fi == nil {
		log.Panic("Unknown field in model", "field", field, "model", rc.model.name)
	}
	query := rc.env.cr.Rebind(fmt.Sprintf("SELECT id FROM %s WHERE %s = ? ORDER BY id", rc.model.table, fi.JSON))
	var ids []int64
	if err := rc.env.cr.Select(&ids, query, value); err != nil {
		log.Panic("Error while searching records", "model", rc.model.name, "error", err)
	}
	return rc.withIds(ids)
}

// SearchAll returns all the records of this collection's model
func (rc *RecordCollection) SearchAll() *RecordCollection {
	rc.checkPermission(security.Read)
	var ids []int64
	if err := rc.env.cr.Select(&ids, fmt.Sprintf("SELECT id FROM %s ORDER BY id", rc.model.table)); err != nil {
		log.Panic("Error while searching records", "model", rc.model.name, "error", err)
	}
	return rc.withIds(ids)
}

// Browse returns a RecordCollection with the given ids
func (rc *RecordCollection) Browse(ids []int64) *RecordCollection {
	return rc.withIds(ids)
}

// Get returns the value of the given field for the unique record of
// this collection.
func (rc *RecordCollection) Get(field string) interface{} {
	rc.EnsureOne()
	rc.checkPermission(security.Read)
	fi := rc.model.FieldByName(field)
	if fi == nil {
		log.Panic("Unknown field in model", "field", field, "model", rc.model.name)
	}
	query := rc.env.cr.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", fi.JSON, rc.model.table))
	var res interface{}
	if err := rc.env.cr.QueryRow(query, rc.ids[0]).Scan(&res); err != nil {
		log.Panic("Error while reading record", "model", rc.model.name, "id", rc.ids[0], "error", err)
	}
	return res
}

// GetString returns the value of the given field as a string
func (rc *RecordCollection) GetString(field string) string {
	return typesutils.ToString(rc.Get(field))
}

// GetFloat returns the value of the given field as a float64
func (rc *RecordCollection) GetFloat(field string) float64 {
	return typesutils.ToFloat(rc.Get(field))
}

// GetInt returns the value of the given field as an int64
func (rc *RecordCollection) GetInt(field string) int64 {
	return typesutils.ToInt(rc.Get(field))
}

// GetBool returns the value of the given field as a boolean
func (rc *RecordCollection) GetBool(field string) bool {
	return typesutils.ToBool(rc.Get(field))
}

func idPlaceholders(num int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", num), ", ")
}

func int64SliceToInterfaces(ids []int64) []interface{} {
	res := make([]interface{}, len(ids))
	for i, id := range ids {
		res[i] = id
	}
	return res
}
