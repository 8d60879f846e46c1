// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package royaltextiles

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/tools/exceptions"
)

// TaxRate is the flat sales tax rate applied on order amounts
var TaxRate = decimal.New(8, -2)

// NextOrderName returns the name of the next sale order,
// e.g. "SO005".
func NextOrderName(env models.Environment) string {
	count := env.Pool("sale.order").SearchAll().Len()
	return fmt.Sprintf("SO%03d", count+1)
}

// CreateQuotation creates a draft sale order for the given customer
func CreateQuotation(env models.Environment, customer *models.RecordCollection) *models.RecordCollection {
	return env.Pool("sale.order").Create(models.FieldMap{
		"Name":     NextOrderName(env),
		"Customer": customer.ID(),
	})
}

// AddOrderLine adds a line to the given draft order for the given
// product and quantity, priced at the product's list price, and
// recomputes the order amounts.
func AddOrderLine(env models.Environment, order, product *models.RecordCollection, quantity float64) (*models.RecordCollection, error) {
	if order.GetString("State") != OrderStateDraft {
		return nil, exceptions.UserError{
			Message: "Order lines can only be added to draft quotations",
			Debug:   fmt.Sprintf("order %s is in state %s", order.GetString("Name"), order.GetString("State")),
		}
	}
	priceUnit := decimal.NewFromFloat(product.GetFloat("ListPrice"))
	subtotal := priceUnit.Mul(decimal.NewFromFloat(quantity)).Round(2)
	subtotalFloat, _ := subtotal.Float64()
	line := env.Pool("sale.order.line").Create(models.FieldMap{
		"Order":         order.ID(),
		"Product":       product.ID(),
		"Quantity":      quantity,
		"PriceUnit":     product.GetFloat("ListPrice"),
		"PriceSubtotal": subtotalFloat,
	})
	ComputeOrderAmounts(env, order)
	return line, nil
}

// ComputeOrderAmounts recomputes the untaxed, tax and total amounts
// of the given order from its lines. Monetary amounts are computed
// with fixed point arithmetic and rounded to the cent.
func ComputeOrderAmounts(env models.Environment, order *models.RecordCollection) {
	untaxed := decimal.Zero
	for _, line := range env.Pool("sale.order.line").Search("Order", order.ID()).Records() {
		untaxed = untaxed.Add(decimal.NewFromFloat(line.GetFloat("PriceSubtotal")))
	}
	untaxed = untaxed.Round(2)
	tax := untaxed.Mul(TaxRate).Round(2)
	total := untaxed.Add(tax)
	untaxedFloat, _ := untaxed.Float64()
	taxFloat, _ := tax.Float64()
	totalFloat, _ := total.Float64()
	order.Write(models.FieldMap{
		"AmountUntaxed": untaxedFloat,
		"AmountTax":     taxFloat,
		"AmountTotal":   totalFloat,
	})
}

// ConfirmOrder confirms the given quotation, moving it to the 'sale'
// state. The quotation must be in draft state, have a customer and at
// least one order line.
func ConfirmOrder(env models.Environment, order *models.RecordCollection) error {
	name := order.GetString("Name")
	if order.GetString("State") != OrderStateDraft {
		return exceptions.UserError{
			Message: "Only draft quotations can be confirmed",
			Debug:   fmt.Sprintf("order %s is in state %s", name, order.GetString("State")),
		}
	}
	if order.GetInt("Customer") == 0 {
		return exceptions.UserError{
			Message: "A quotation needs a customer before confirmation",
			Debug:   fmt.Sprintf("order %s has no customer", name),
		}
	}
	if env.Pool("sale.order.line").Search("Order", order.ID()).IsEmpty() {
		return exceptions.UserError{
			Message: "A quotation needs at least one order line before confirmation",
			Debug:   fmt.Sprintf("order %s has no lines", name),
		}
	}
	order.Write(models.FieldMap{"State": OrderStateSale})
	return nil
}

// CancelOrder cancels the given order. Done orders cannot be cancelled.
func CancelOrder(env models.Environment, order *models.RecordCollection) error {
	if order.GetString("State") == OrderStateDone {
		return exceptions.UserError{
			Message: "Done orders cannot be cancelled",
			Debug:   fmt.Sprintf("order %s is done", order.GetString("Name")),
		}
	}
	order.Write(models.FieldMap{"State": OrderStateCancel})
	return nil
}

// ScheduleInstallation books an installation visit for the given
// confirmed order on the given date through the external scheduling
// service and creates the matching installation record.
func ScheduleInstallation(env models.Environment, order *models.RecordCollection, date string, client *SchedulingClient) (*models.RecordCollection, error) {
	name := order.GetString("Name")
	if order.GetString("State") != OrderStateSale {
		return nil, exceptions.UserError{
			Message: "Only confirmed orders can be scheduled for installation",
			Debug:   fmt.Sprintf("order %s is in state %s", name, order.GetString("State")),
		}
	}
	ref := fmt.Sprintf("INSTALL-%s", name)
	if err := client.Schedule(ref, date); err != nil {
		return nil, err
	}
	installation := env.Pool("project.installation").Create(models.FieldMap{
		"Name":          fmt.Sprintf("Installation for %s", name),
		"Order":         order.ID(),
		"Customer":      order.GetInt("Customer"),
		"ScheduledDate": date,
		"ExternalRef":   ref,
	})
	return installation, nil
}

// CompleteInstallation marks the given installation as completed and
// its order as done.
func CompleteInstallation(env models.Environment, installation *models.RecordCollection) error {
	if installation.GetString("Status") != InstallationScheduled {
		return exceptions.UserError{
			Message: "Only scheduled installations can be completed",
			Debug:   fmt.Sprintf("installation %s is %s", installation.GetString("Name"), installation.GetString("Status")),
		}
	}
	installation.Write(models.FieldMap{"Status": InstallationCompleted})
	order := env.Pool("sale.order").Browse([]int64{installation.GetInt("Order")})
	order.Write(models.FieldMap{"State": OrderStateDone})
	return nil
}
