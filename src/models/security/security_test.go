// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package security

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGroupRegistry(t *testing.T) {
	group1 := Registry.NewGroup("group1_test", "Group 1")
	group2 := Registry.NewGroup("group2_test", "Group 2")
	group3 := Registry.NewGroup("group3_test", "Group 3", group1)
	Convey("Testing Group Registry", t, func() {
		Convey("Testing basic access methods", func() {
			So(group1.ID(), ShouldEqual, "group1_test")
			So(group2.Name(), ShouldEqual, "Group 2")
			So(group3.String(), ShouldEqual, "Group(group3_test)")
			So(group3.Implies(group1), ShouldBeTrue)
			So(group1.Implies(group3), ShouldBeFalse)
			So(group3.ImpliedGroups(), ShouldContain, group1)
			So(Registry.GetGroup("group3_test"), ShouldEqual, group3)
			So(Registry.AllGroups(), ShouldContain, GroupAdmin)
			So(Registry.AllGroups(), ShouldContain, GroupEveryone)
		})
		Convey("Registering an existing group should panic", func() {
			So(func() { Registry.NewGroup("group1_test", "Group 1 again") }, ShouldPanic)
		})
		Convey("Members of a group should be member of implied groups", func() {
			Registry.AddMembership(12, group3)
			So(Registry.HasMembership(12, group3), ShouldBeTrue)
			So(Registry.HasMembership(12, group1), ShouldBeTrue)
			So(Registry.HasMembership(12, GroupEveryone), ShouldBeTrue)
			So(Registry.HasMembership(12, group2), ShouldBeFalse)
			So(Registry.UserGroups(12), ShouldContainKey, group3)
			Registry.RemoveAllMembershipsForUser(12)
			So(Registry.HasMembership(12, group3), ShouldBeFalse)
		})
	})
}

func TestAccessControl(t *testing.T) {
	sellers := Registry.NewGroup("acl_sellers_test", "Sellers")
	Registry.GrantAccess("sale.order", sellers, Read|Write|Create)
	Registry.AddMembership(13, sellers)
	Convey("Testing access control lists", t, func() {
		Convey("The superuser should have all permissions", func() {
			So(Registry.CheckPermission(SuperUserID, "sale.order", All), ShouldBeTrue)
			So(Registry.CheckPermission(SuperUserID, "unknown.model", Unlink), ShouldBeTrue)
		})
		Convey("Group members should have the granted permissions only", func() {
			So(Registry.CheckPermission(13, "sale.order", Read), ShouldBeTrue)
			So(Registry.CheckPermission(13, "sale.order", Write|Create), ShouldBeTrue)
			So(Registry.CheckPermission(13, "sale.order", Unlink), ShouldBeFalse)
		})
		Convey("Non members should have no permission", func() {
			So(Registry.CheckPermission(14, "sale.order", Read), ShouldBeFalse)
		})
	})
}
