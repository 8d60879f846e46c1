// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package royaltextiles

import (
	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/models/fieldtype"
	"github.com/hexya-erp/hexya-starter/src/models/security"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var log logging.Logger

// GroupSales is the group of the sales team
var GroupSales *security.Group

// Order states
const (
	OrderStateDraft  = "draft"
	OrderStateSale   = "sale"
	OrderStateDone   = "done"
	OrderStateCancel = "cancel"
)

// Installation statuses
const (
	InstallationScheduled = "scheduled"
	InstallationCompleted = "completed"
	InstallationCancelled = "cancelled"
)

func init() {
	log = logging.GetLogger("royaltextiles")

	GroupSales = security.Registry.NewGroup("group_sales", "Sales Team")

	models.NewModel("product.product",
		&models.Field{Name: "Name", Type: fieldtype.Char, Required: true},
		&models.Field{Name: "DefaultCode", Type: fieldtype.Char},
		&models.Field{Name: "ListPrice", Type: fieldtype.Monetary},
		&models.Field{Name: "Class", Type: fieldtype.Selection,
			Selection: []string{"blinds", "shades", "drapery", "motorized"}},
	)
	models.NewModel("sale.order",
		&models.Field{Name: "Name", Type: fieldtype.Char, Required: true},
		&models.Field{Name: "Customer", Type: fieldtype.Many2One, Relation: "res.partner"},
		&models.Field{Name: "State", Type: fieldtype.Selection, Default: OrderStateDraft,
			Selection: []string{OrderStateDraft, OrderStateSale, OrderStateDone, OrderStateCancel}},
		&models.Field{Name: "AmountUntaxed", Type: fieldtype.Monetary, Default: 0.0},
		&models.Field{Name: "AmountTax", Type: fieldtype.Monetary, Default: 0.0},
		&models.Field{Name: "AmountTotal", Type: fieldtype.Monetary, Default: 0.0},
	)
	models.NewModel("sale.order.line",
		&models.Field{Name: "Order", Type: fieldtype.Many2One, Relation: "sale.order"},
		&models.Field{Name: "Product", Type: fieldtype.Many2One, Relation: "product.product"},
		&models.Field{Name: "Quantity", Type: fieldtype.Float, Default: 1.0},
		&models.Field{Name: "PriceUnit", Type: fieldtype.Monetary},
		&models.Field{Name: "PriceSubtotal", Type: fieldtype.Monetary},
	)
	models.NewModel("project.installation",
		&models.Field{Name: "Name", Type: fieldtype.Char, Required: true},
		&models.Field{Name: "Order", Type: fieldtype.Many2One, Relation: "sale.order"},
		&models.Field{Name: "Customer", Type: fieldtype.Many2One, Relation: "res.partner"},
		&models.Field{Name: "Status", Type: fieldtype.Selection, Default: InstallationScheduled,
			Selection: []string{InstallationScheduled, InstallationCompleted, InstallationCancelled}},
		&models.Field{Name: "ScheduledDate", Type: fieldtype.Char},
		&models.Field{Name: "ExternalRef", Type: fieldtype.Char},
	)
}
