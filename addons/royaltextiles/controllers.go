// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package royaltextiles

import (
	"net/http"
	"strconv"

	"github.com/flosch/pongo2"
	"github.com/gin-gonic/gin"

	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/models/security"
	"github.com/hexya-erp/hexya-starter/src/server"
	"github.com/hexya-erp/hexya-starter/src/templates"
)

// registerRoutes adds this module's routes to the web server
func registerRoutes() {
	srv := server.GetServer()
	srv.GET("/web/report/quotation/:id", quotationReport)
}

// quotationReport renders the quotation report of the sale order
// given by its id.
func quotationReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var report string
	err = models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
		order := env.Pool("sale.order").Browse([]int64{id})
		customer := env.Pool("res.partner").Browse([]int64{order.GetInt("Customer")})
		var lines []pongo2.Context
		for _, line := range env.Pool("sale.order.line").Search("Order", order.ID()).Records() {
			product := env.Pool("product.product").Browse([]int64{line.GetInt("Product")})
			lines = append(lines, pongo2.Context{
				"product":    product.GetString("Name"),
				"quantity":   line.GetFloat("Quantity"),
				"price_unit": line.GetFloat("PriceUnit"),
				"subtotal":   line.GetFloat("PriceSubtotal"),
			})
		}
		var renderErr error
		report, renderErr = templates.Registry.Render("quotation_report", pongo2.Context{
			"name":           order.GetString("Name"),
			"customer":       customer.GetString("Name"),
			"lines":          lines,
			"amount_untaxed": order.GetFloat("AmountUntaxed"),
			"amount_tax":     order.GetFloat("AmountTax"),
			"amount_total":   order.GetFloat("AmountTotal"),
		})
		if renderErr != nil {
			panic(renderErr)
		}
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown order"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(report))
}
