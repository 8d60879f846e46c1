// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package xmlutils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParsingHelpers(t *testing.T) {
	Convey("Testing XML parsing helpers", t, func() {
		Convey("XMLToDocument should parse valid XML", func() {
			doc, err := XMLToDocument(`<data><view id="v"/></data>`)
			So(err, ShouldBeNil)
			So(doc.Root().Tag, ShouldEqual, "data")
		})
		Convey("XMLToDocument should fail on invalid XML", func() {
			_, err := XMLToDocument(`<data><view></data>`)
			So(err, ShouldNotBeNil)
		})
		Convey("XMLToElement should return the root element", func() {
			el, err := XMLToElement(`<menuitem id="m" name="Menu"/>`)
			So(err, ShouldBeNil)
			So(el.Tag, ShouldEqual, "menuitem")
			So(el.SelectAttrValue("name", ""), ShouldEqual, "Menu")
		})
		Convey("HasParentTag should find ancestors", func() {
			doc, err := XMLToDocument(`<data><view><field name="f"/></view></data>`)
			So(err, ShouldBeNil)
			field := doc.FindElement("//field")
			So(HasParentTag(field, "data"), ShouldBeTrue)
			So(HasParentTag(field, "form"), ShouldBeFalse)
		})
	})
}
