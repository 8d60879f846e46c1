// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package typesutils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsZero(t *testing.T) {
	Convey("Testing zero value detection", t, func() {
		So(IsZero(nil), ShouldBeTrue)
		So(IsZero(0), ShouldBeTrue)
		So(IsZero(int64(0)), ShouldBeTrue)
		So(IsZero(""), ShouldBeTrue)
		So(IsZero(0.0), ShouldBeTrue)
		So(IsZero(false), ShouldBeTrue)
		So(IsZero("foo"), ShouldBeFalse)
		So(IsZero(int64(12)), ShouldBeFalse)
		So(IsZero(0.1), ShouldBeFalse)
		So(IsZero(true), ShouldBeFalse)
	})
}

func TestConversions(t *testing.T) {
	Convey("Testing database value conversions", t, func() {
		Convey("ToString", func() {
			So(ToString(nil), ShouldEqual, "")
			So(ToString("foo"), ShouldEqual, "foo")
			So(ToString([]byte("bar")), ShouldEqual, "bar")
			So(ToString(int64(12)), ShouldEqual, "12")
		})
		Convey("ToFloat", func() {
			So(ToFloat(nil), ShouldEqual, 0)
			So(ToFloat(1.5), ShouldEqual, 1.5)
			So(ToFloat(int64(3)), ShouldEqual, 3)
			So(ToFloat([]byte("2.25")), ShouldEqual, 2.25)
			So(ToFloat("4.5"), ShouldEqual, 4.5)
		})
		Convey("ToInt", func() {
			So(ToInt(nil), ShouldEqual, 0)
			So(ToInt(int64(7)), ShouldEqual, 7)
			So(ToInt(7.9), ShouldEqual, 7)
			So(ToInt([]byte("42")), ShouldEqual, 42)
		})
		Convey("ToBool", func() {
			So(ToBool(nil), ShouldBeFalse)
			So(ToBool(true), ShouldBeTrue)
			So(ToBool(int64(1)), ShouldBeTrue)
			So(ToBool(int64(0)), ShouldBeFalse)
			So(ToBool("1"), ShouldBeTrue)
			So(ToBool([]byte("true")), ShouldBeTrue)
		})
	})
}
