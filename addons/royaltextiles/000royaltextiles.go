// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package royaltextiles is the example module of hexya-starter. It
// implements a small sales and installation vertical for a window
// covering company: products, quotations, confirmed orders and
// installation visits booked through an external scheduling API.
package royaltextiles

import (
	"path/filepath"
	"runtime"

	"github.com/hexya-erp/hexya-starter/src/server"

	// Module dependencies
	_ "github.com/hexya-erp/hexya-starter/addons/base"
)

const (
	// SEQUENCE of the module in the load order
	SEQUENCE uint8 = 14
	// NAME of the module
	NAME string = "royaltextiles"
	// VERSION of the module
	VERSION string = "0.1"
	// CATEGORY of the module
	CATEGORY string = "Sales"
	// SUMMARY of the module
	SUMMARY string = "Sales and installations for window coverings"
	// DESCRIPTION of the module
	DESCRIPTION string = `
Royal Textiles Sales
====================

This module manages the sales workflow of a window covering company:

* **Quotation** -> **Sales order** -> **Installation**

Orders are quoted from the product catalog, confirmed once a customer
and at least one order line are set, and then scheduled for
installation through the company's external scheduling service.
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
			Depends:     []string{"base"},
			Data: []string{
				"resources/royaltextiles.xml",
				"security/ir.model.access.csv",
			},
			Demo: []string{
				"demo/res.partner.csv",
				"demo/product.product.csv",
			},
		},
		Dir:      filepath.Dir(file),
		PostInit: registerRoutes,
	})
}
