// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package typesutils converts values scanned from the database into
// plain Go types.
package typesutils

import (
	"fmt"
	"reflect"
	"strconv"
)

// IsZero returns true if the given value is the zero value of its type
// or nil
func IsZero(value interface{}) bool {
	if value == nil {
		return true
	}
	val := reflect.ValueOf(value)
	return reflect.DeepEqual(val.Interface(), reflect.Zero(val.Type()).Interface())
}

// ToString returns the given database value as a string.
// []byte values are interpreted as UTF-8 text.
func ToString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprintf("%v", value)
}

// ToFloat returns the given database value as a float64.
// Numeric columns may be scanned as []byte or string by some drivers.
func ToFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case []byte:
		res, _ := strconv.ParseFloat(string(v), 64)
		return res
	case string:
		res, _ := strconv.ParseFloat(v, 64)
		return res
	}
	return 0
}

// ToInt returns the given database value as an int64
func ToInt(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		res, _ := strconv.ParseInt(string(v), 10, 64)
		return res
	case string:
		res, _ := strconv.ParseInt(v, 10, 64)
		return res
	}
	return 0
}

// ToBool returns the given database value as a boolean.
// Integer values are true when non-zero, as stored by sqlite.
func ToBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case []byte:
		return string(v) == "1" || string(v) == "true"
	case string:
		return v == "1" || v == "true"
	}
	return false
}
