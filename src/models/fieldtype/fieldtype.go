// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package fieldtype defines the types of fields that can be declared
// on a model.
package fieldtype

// A Type defines a type of a model's field
type Type string

// Types for model fields
const (
	NoType    Type = ""
	Binary    Type = "binary"
	Boolean   Type = "boolean"
	Char      Type = "char"
	Date      Type = "date"
	DateTime  Type = "datetime"
	Float     Type = "float"
	Integer   Type = "integer"
	Many2One  Type = "many2one"
	Monetary  Type = "monetary"
	Selection Type = "selection"
	Text      Type = "text"
)

// IsRelationType returns true if this type is a relational field type
func (t Type) IsRelationType() bool {
	return t == Many2One
}
