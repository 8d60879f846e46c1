// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package models

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hexya-erp/hexya-starter/src/models/fieldtype"
	"github.com/hexya-erp/hexya-starter/src/models/security"
)

// imageResizer normalizes base64 images on import. It is set by the
// tools/b64image package consumer at bootstrap to avoid importing
// image libraries when no binary field is used.
var imageResizer = func(data string) string { return data }

// SetImageResizer installs the function used to normalize base64
// images imported from CSV data files.
func SetImageResizer(resizer func(data string) string) {
	imageResizer = resizer
}

// LoadCSVDataFile loads the records of the given CSV file into the
// database. The model name is the base name of the file without its
// extension and without any leading digits and dashes, e.g.
// '01-res.partner.csv' holds records of the 'res.partner' model.
//
// The first line holds the field names. The special 'id' column is the
// record's external id: records are created on first import and
// updated on subsequent imports. A column named 'field/id' references
// another record by external id.
func LoadCSVDataFile(fileName string) {
	log.Info("Importing data file", "fileName", fileName)
	csvFile, err := os.Open(fileName)
	if err != nil {
		log.Panic("Unable to open CSV data file", "error", err, "fileName", fileName)
	}
	defer csvFile.Close()

	modelName := modelNameFromFileName(fileName)

	r := csv.NewReader(csvFile)
	headers, err := r.Read()
	if err != nil {
		log.Panic("Unable to read CSV headers in data file", "error", err, "fileName", fileName)
	}

	err = ExecuteInNewEnvironment(security.SuperUserID, func(env Environment) {
		rc := env.Pool(modelName)
		line := 1
		for {
			record, err := r.Read()
			if err == io.EOF {
				break
			}
			line++
			if err != nil {
				log.Panic("Malformed line in CSV data file", "error", err, "fileName", fileName, "line", line)
			}
			values, externalID := recordValuesMap(rc, headers, record, fileName, line)
			createOrUpdateRecord(rc, externalID, values)
		}
	})
	if err != nil {
		log.Panic("Error while importing data file", "fileName", fileName, "error", err)
	}
}

// modelNameFromFileName extracts the model name from a CSV data file
// name, stripping the extension and any leading ordering prefix.
func modelNameFromFileName(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return strings.TrimLeft(base, "0123456789-_")
}

// recordValuesMap converts one CSV line into a FieldMap, converting
// each value to the Go type of its field. It returns the FieldMap and
// the external id of the record.
func recordValuesMap(rc *RecordCollection, headers, record []string, fileName string, line int) (FieldMap, string) {
	values := make(FieldMap)
	var externalID string
	for i, header := range headers {
		value := record[i]
		if header == "id" {
			externalID = value
			continue
		}
		fieldName := header
		var byExternalID bool
		if strings.HasSuffix(header, "/id") {
			fieldName = strings.TrimSuffix(header, "/id")
			byExternalID = true
		}
		fi := rc.Model().FieldByName(fieldName)
		if fi == nil {
			log.Panic("Unknown field in CSV data file", "field", header,
				"model", rc.Model().Name(), "fileName", fileName, "line", line)
		}
		if value == "" {
			continue
		}
		values[fi.JSON] = convertCSVValue(rc, fi, value, byExternalID, fileName, line)
	}
	if externalID == "" {
		log.Panic("Missing 'id' column in CSV data file", "fileName", fileName, "line", line)
	}
	return values, externalID
}

// convertCSVValue converts the given CSV string value to the Go type
// of the given field.
func convertCSVValue(rc *RecordCollection, fi *Field, value string, byExternalID bool, fileName string, line int) interface{} {
	if byExternalID {
		if !fi.Type.IsRelationType() {
			log.Panic("'/id' reference on non-relational field", "field", fi.Name,
				"fileName", fileName, "line", line)
		}
		relRC := rc.Env().Pool(fi.Relation)
		rel := relRC.Search("external_id", value)
		if rel.Len() != 1 {
			log.Panic("Unknown external id in CSV data file", "externalID", value,
				"model", fi.Relation, "fileName", fileName, "line", line)
		}
		return rel.ids[0]
	}
	switch fi.Type {
	case fieldtype.Integer, fieldtype.Many2One:
		res, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Panic("Invalid integer in CSV data file", "value", value, "fileName", fileName, "line", line)
		}
		return res
	case fieldtype.Float, fieldtype.Monetary:
		res, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Panic("Invalid number in CSV data file", "value", value, "fileName", fileName, "line", line)
		}
		return res
	case fieldtype.Boolean:
		return value == "1" || strings.EqualFold(value, "true")
	case fieldtype.Binary:
		return imageResizer(value)
	case fieldtype.Selection:
		for _, sel := range fi.Selection {
			if sel == value {
				return value
			}
		}
		log.Panic("Value not in selection", "value", value, "field", fi.Name,
			"selection", fi.Selection, "fileName", fileName, "line", line)
	}
	return value
}

// createOrUpdateRecord creates the record with the given external id
// if it does not exist yet, or updates it otherwise.
func createOrUpdateRecord(rc *RecordCollection, externalID string, values FieldMap) {
	existing := rc.Search("external_id", externalID)
	switch existing.Len() {
	case 0:
		values["external_id"] = externalID
		rc.Create(values)
	case 1:
		existing.Write(values)
	default:
		log.Panic("Duplicate external id", "model", rc.Model().Name(), "externalID", externalID)
	}
}
