// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package models

import (
	"fmt"
	"strings"

	"github.com/hexya-erp/hexya-starter/src/models/fieldtype"
)

// BootStrap creates the database tables of all registered models if
// they do not exist yet. It must be called after all modules have
// declared their models and before any Environment is created.
func BootStrap() {
	log.Info("Bootstrapping models", "count", len(Registry.models))
	for _, mi := range Registry.All() {
		createModelTable(mi)
	}
}

// createModelTable issues a CREATE TABLE IF NOT EXISTS for the given model
func createModelTable(mi *Model) {
	cols := []string{
		fmt.Sprintf("id %s", idColumnType()),
		"external_id VARCHAR(255) UNIQUE",
	}
	for _, fi := range mi.fields {
		cols = append(cols, fmt.Sprintf("%s %s", fi.JSON, columnSQLType(fi)))
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", mi.table, strings.Join(cols, ", "))
	db.MustExec(query)
}

// idColumnType returns the id column definition for the current driver
func idColumnType() string {
	if driver == "postgres" {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// columnSQLType returns the SQL type of the column for the given field
func columnSQLType(fi *Field) string {
	var res string
	switch fi.Type {
	case fieldtype.Char, fieldtype.Selection:
		res = "VARCHAR(255)"
		if fi.Size > 0 {
			res = fmt.Sprintf("VARCHAR(%d)", fi.Size)
		}
	case fieldtype.Text, fieldtype.Binary:
		res = "TEXT"
	case fieldtype.Integer, fieldtype.Many2One:
		res = "BIGINT"
	case fieldtype.Float, fieldtype.Monetary:
		res = "NUMERIC"
	case fieldtype.Boolean:
		res = "BOOLEAN"
	case fieldtype.Date, fieldtype.DateTime:
		res = "TIMESTAMP"
	default:
		log.Panic("Unknown field type", "field", fi.Name, "type", fi.Type)
	}
	if fi.Required {
		res += " NOT NULL"
	}
	return res
}
