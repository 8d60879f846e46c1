// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package models

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hexya-erp/hexya-starter/src/models/fieldtype"
	"github.com/hexya-erp/hexya-starter/src/models/security"
)

var testUserID int64 = 5

func TestMain(m *testing.M) {
	dbFile := filepath.Join(os.TempDir(), "hexya-starter-models-test.db")
	os.Remove(dbFile)
	DBConnect("sqlite3", dbFile)

	NewModel("test.partner",
		&Field{Name: "Name", Type: fieldtype.Char, Required: true},
		&Field{Name: "Email", Type: fieldtype.Char},
		&Field{Name: "IsCompany", Type: fieldtype.Boolean, Default: false},
	)
	NewModel("test.order",
		&Field{Name: "Name", Type: fieldtype.Char},
		&Field{Name: "Partner", Type: fieldtype.Many2One, Relation: "test.partner"},
		&Field{Name: "State", Type: fieldtype.Selection, Selection: []string{"draft", "done"}, Default: "draft"},
		&Field{Name: "Amount", Type: fieldtype.Float},
	)
	BootStrap()

	readers := security.Registry.NewGroup("test_readers", "Test Readers")
	security.Registry.GrantAccess("test.partner", readers, security.Read)
	security.Registry.GrantAccess("test.order", readers, security.Read)
	security.Registry.AddMembership(testUserID, readers)

	res := m.Run()
	DBClose()
	os.Remove(dbFile)
	os.Exit(res)
}

func TestCreateSearchWrite(t *testing.T) {
	Convey("Testing record creation, search and update", t, func() {
		err := ExecuteInNewEnvironment(security.SuperUserID, func(env Environment) {
			partner := env.Pool("test.partner").Create(FieldMap{
				"Name":  "Agrolait",
				"Email": "info@agrolait.example.com",
			})
			So(partner.Len(), ShouldEqual, 1)
			So(partner.GetString("Name"), ShouldEqual, "Agrolait")
			Convey("Defaults should be applied on create", func() {
				So(partner.GetBool("IsCompany"), ShouldBeFalse)
			})
			Convey("Search should find the record by field value", func() {
				found := env.Pool("test.partner").Search("Email", "info@agrolait.example.com")
				So(found.Len(), ShouldEqual, 1)
				So(found.ID(), ShouldEqual, partner.ID())
			})
			Convey("Write should update the record", func() {
				So(partner.Write(FieldMap{"Name": "Agrolait SA"}), ShouldBeTrue)
				So(partner.GetString("Name"), ShouldEqual, "Agrolait SA")
			})
			Convey("Many2One fields should store the related id", func() {
				order := env.Pool("test.order").Create(FieldMap{
					"Name":    "SO001",
					"Partner": partner.ID(),
					"Amount":  100.5,
				})
				So(order.GetInt("Partner"), ShouldEqual, partner.ID())
				So(order.GetString("State"), ShouldEqual, "draft")
				So(order.GetFloat("Amount"), ShouldEqual, 100.5)
			})
			Convey("Unlink should delete records", func() {
				gone := env.Pool("test.partner").Create(FieldMap{"Name": "Ephemeral"})
				id := gone.ID()
				So(gone.Unlink(), ShouldEqual, 1)
				So(env.Pool("test.partner").Search("Name", "Ephemeral").Len(), ShouldEqual, 0)
				So(id, ShouldBeGreaterThan, 0)
			})
		})
		So(err, ShouldBeNil)
	})
}

func TestEnvironmentIsolation(t *testing.T) {
	Convey("Testing environment transaction semantics", t, func() {
		Convey("SimulateInNewEnvironment should roll back its writes", func() {
			err := SimulateInNewEnvironment(security.SuperUserID, func(env Environment) {
				env.Pool("test.partner").Create(FieldMap{"Name": "Ghost"})
				So(env.Pool("test.partner").Search("Name", "Ghost").Len(), ShouldEqual, 1)
			})
			So(err, ShouldBeNil)
			err = SimulateInNewEnvironment(security.SuperUserID, func(env Environment) {
				So(env.Pool("test.partner").Search("Name", "Ghost").Len(), ShouldEqual, 0)
			})
			So(err, ShouldBeNil)
		})
		Convey("A panic in the closure should be returned as an error", func() {
			err := ExecuteInNewEnvironment(security.SuperUserID, func(env Environment) {
				env.Pool("test.partner").Create(FieldMap{"Unknown": "value"})
			})
			So(err, ShouldNotBeNil)
		})
		Convey("A missing required field should be refused", func() {
			err := ExecuteInNewEnvironment(security.SuperUserID, func(env Environment) {
				env.Pool("test.partner").Create(FieldMap{"Email": "noname@example.com"})
			})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAccessControlEnforcement(t *testing.T) {
	Convey("Testing access control in record operations", t, func() {
		Convey("A read-only user should be able to search but not create", func() {
			err := SimulateInNewEnvironment(testUserID, func(env Environment) {
				env.Pool("test.partner").SearchAll()
			})
			So(err, ShouldBeNil)
			err = SimulateInNewEnvironment(testUserID, func(env Environment) {
				env.Pool("test.partner").Create(FieldMap{"Name": "Forbidden"})
			})
			So(err, ShouldNotBeNil)
		})
		Convey("A user without any group should not even read", func() {
			err := SimulateInNewEnvironment(99, func(env Environment) {
				env.Pool("test.partner").SearchAll()
			})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLoadCSVDataFile(t *testing.T) {
	csvContent := "id,name,email,is_company\n" +
		"partner_big,Big Industries,contact@big.example.com,1\n" +
		"partner_small,Small Shop,,0\n"
	fileName := filepath.Join(os.TempDir(), "test.partner.csv")
	Convey("Testing CSV data import", t, func() {
		So(ioutil.WriteFile(fileName, []byte(csvContent), 0644), ShouldBeNil)
		defer os.Remove(fileName)
		Convey("Records should be created on first import", func() {
			LoadCSVDataFile(fileName)
			err := SimulateInNewEnvironment(security.SuperUserID, func(env Environment) {
				partner := env.Pool("test.partner").Search("external_id", "partner_big")
				So(partner.Len(), ShouldEqual, 1)
				So(partner.GetString("Name"), ShouldEqual, "Big Industries")
				So(partner.GetBool("IsCompany"), ShouldBeTrue)
			})
			So(err, ShouldBeNil)
		})
		Convey("Re-importing should update, not duplicate", func() {
			LoadCSVDataFile(fileName)
			updated := "id,name\npartner_big,Bigger Industries\n"
			So(ioutil.WriteFile(fileName, []byte(updated), 0644), ShouldBeNil)
			LoadCSVDataFile(fileName)
			err := SimulateInNewEnvironment(security.SuperUserID, func(env Environment) {
				partners := env.Pool("test.partner").Search("external_id", "partner_big")
				So(partners.Len(), ShouldEqual, 1)
				So(partners.GetString("Name"), ShouldEqual, "Bigger Industries")
			})
			So(err, ShouldBeNil)
		})
		Convey("A malformed line should abort the import without partial state", func() {
			malformed := "id,name,email,is_company\n" +
				"partner_good,Good Partner,good@example.com,0\n" +
				"partner_short,Only Two Fields\n" +
				"partner_after,After The Bad Line,after@example.com,0\n"
			So(ioutil.WriteFile(fileName, []byte(malformed), 0644), ShouldBeNil)
			So(func() { LoadCSVDataFile(fileName) }, ShouldPanic)
			err := SimulateInNewEnvironment(security.SuperUserID, func(env Environment) {
				So(env.Pool("test.partner").Search("external_id", "partner_good").Len(), ShouldEqual, 0)
				So(env.Pool("test.partner").Search("external_id", "partner_after").Len(), ShouldEqual, 0)
			})
			So(err, ShouldBeNil)
		})
		Convey("The model name should be derived from the file name", func() {
			So(modelNameFromFileName("/path/to/01-test.partner.csv"), ShouldEqual, "test.partner")
			So(modelNameFromFileName("test.order.csv"), ShouldEqual, "test.order")
		})
	})
}

func ExampleExecuteInNewEnvironment() {
	ExecuteInNewEnvironment(security.SuperUserID, func(env Environment) {
		partners := env.Pool("test.partner").SearchAll()
		fmt.Println(partners.Len() >= 0)
	})
	// Output: true
}
