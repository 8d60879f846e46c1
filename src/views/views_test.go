// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package views

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hexya-erp/hexya-starter/src/tools/xmlutils"
)

var viewDef = `
<view id="sale_order_form" model="sale.order" priority="10">
	<form>
		<field name="Name"/>
		<field name="Customer"/>
		<field name="State"/>
	</form>
</view>
`

func TestViews(t *testing.T) {
	Convey("Testing view loading", t, func() {
		el, err := xmlutils.XMLToElement(viewDef)
		So(err, ShouldBeNil)
		LoadFromEtree(el)
		Convey("The view should be in the registry", func() {
			view := Registry.GetByID("sale_order_form")
			So(view, ShouldNotBeNil)
			So(view.Model, ShouldEqual, "sale.order")
			So(view.Type, ShouldEqual, ViewTypeForm)
			So(view.Priority, ShouldEqual, 10)
			So(view.FieldNames(), ShouldResemble, []string{"Name", "Customer", "State"})
		})
		Convey("The view should be searchable by model", func() {
			So(Registry.GetAllViewsForModel("sale.order"), ShouldNotBeEmpty)
			So(Registry.GetFirstViewForModel("sale.order", ViewTypeForm).ID, ShouldEqual, "sale_order_form")
			So(Registry.GetFirstViewForModel("sale.order", ViewTypeTree), ShouldBeNil)
		})
		Convey("A view without model should panic", func() {
			bad, err := xmlutils.XMLToElement(`<view id="bad"><form/></view>`)
			So(err, ShouldBeNil)
			So(func() { LoadFromEtree(bad) }, ShouldPanic)
		})
	})
}
