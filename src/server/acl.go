// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package server

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/models/security"
)

// aclHeaders are the expected columns of an ir.model.access.csv file
var aclHeaders = []string{"id", "name", "model_id", "group_id", "perm_read", "perm_write", "perm_create", "perm_unlink"}

// loadACLFile loads the access control list of the given
// ir.model.access.csv file into the security registry.
func loadACLFile(fileName string) {
	log.Info("Importing access control file", "fileName", fileName)
	csvFile, err := os.Open(fileName)
	if err != nil {
		log.Panic("Unable to open ACL file", "error", err, "fileName", fileName)
	}
	defer csvFile.Close()

	r := csv.NewReader(csvFile)
	headers, err := r.Read()
	if err != nil {
		log.Panic("Unable to read ACL headers", "error", err, "fileName", fileName)
	}
	if len(headers) != len(aclHeaders) {
		log.Panic("Unexpected ACL headers", "headers", headers, "fileName", fileName)
	}
	for i, header := range headers {
		if header != aclHeaders[i] {
			log.Panic("Unexpected ACL header", "header", header, "expected", aclHeaders[i], "fileName", fileName)
		}
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Panic("Malformed line in ACL file", "error", err, "fileName", fileName, "line", line)
		}
		modelName := record[2]
		if _, exists := models.Registry.Get(modelName); !exists {
			log.Panic("Unknown model in ACL file", "model", modelName, "fileName", fileName, "line", line)
		}
		group := security.Registry.GetGroup(record[3])
		if group == nil {
			log.Panic("Unknown group in ACL file", "group", record[3], "fileName", fileName, "line", line)
		}
		var perm security.Permission
		for i, p := range []security.Permission{security.Read, security.Write, security.Create, security.Unlink} {
			if record[4+i] == "1" {
				perm |= p
			}
		}
		security.Registry.GrantAccess(modelName, group, perm)
	}
}
