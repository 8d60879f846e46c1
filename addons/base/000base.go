// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package base is the foundation module of hexya-starter. It declares
// the partner and user models that all other modules build upon.
package base

import (
	"path/filepath"
	"runtime"

	"github.com/hexya-erp/hexya-starter/src/server"
)

const (
	// SEQUENCE of the module in the load order
	SEQUENCE uint8 = 1
	// NAME of the module
	NAME string = "base"
	// VERSION of the module
	VERSION string = "0.1"
	// CATEGORY of the module
	CATEGORY string = "Hidden"
	// SUMMARY of the module
	SUMMARY string = "Base models and users"
	// DESCRIPTION of the module
	DESCRIPTION string = `
Base module
===========

Declares the partner and user models, the base security groups and
the administrator account.
	`
	// AUTHOR of the module
	AUTHOR string = "NDP Systèmes"
	// WEBSITE of the module's author
	WEBSITE string = "http://www.ndp-systemes.fr"
)

func init() {
	_, file, _, _ := runtime.Caller(0)
	server.RegisterModule(&server.Module{
		Manifest: server.Manifest{
			Name:        NAME,
			Version:     VERSION,
			Category:    CATEGORY,
			Summary:     SUMMARY,
			Description: DESCRIPTION,
			Author:      AUTHOR,
			Website:     WEBSITE,
			Sequence:    SEQUENCE,
			Data: []string{
				"security/ir.model.access.csv",
			},
			Demo: []string{
				"demo/res.partner.csv",
			},
		},
		Dir:      filepath.Dir(file),
		PreInit:  preInit,
		PostInit: postInit,
	})
}
