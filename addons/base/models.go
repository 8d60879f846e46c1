// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package base

import (
	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/models/fieldtype"
	"github.com/hexya-erp/hexya-starter/src/models/security"
	"github.com/hexya-erp/hexya-starter/src/tools/b64image"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
	"github.com/hexya-erp/hexya-starter/src/tools/password"
)

var log logging.Logger

// GroupUser is the group of all authenticated internal users
var GroupUser *security.Group

// avatarSize is the maximum size in pixels of partner avatars
const avatarSize = 1024

func init() {
	log = logging.GetLogger("base")

	GroupUser = security.Registry.NewGroup("group_user", "Internal User")

	models.NewModel("res.partner",
		&models.Field{Name: "Name", Type: fieldtype.Char, Required: true},
		&models.Field{Name: "Email", Type: fieldtype.Char},
		&models.Field{Name: "Phone", Type: fieldtype.Char},
		&models.Field{Name: "IsCompany", Type: fieldtype.Boolean, Default: false},
		&models.Field{Name: "Image", Type: fieldtype.Binary},
	)
	models.NewModel("res.users",
		&models.Field{Name: "Name", Type: fieldtype.Char, Required: true},
		&models.Field{Name: "Login", Type: fieldtype.Char, Required: true},
		&models.Field{Name: "Password", Type: fieldtype.Char},
		&models.Field{Name: "Active", Type: fieldtype.Boolean, Default: true},
	)
}

// preInit installs the image resizer used when importing partner
// avatars from CSV data files.
func preInit() {
	models.SetImageResizer(func(data string) string {
		return b64image.Resize(data, avatarSize, avatarSize, true)
	})
}

// postInit creates the administrator account if it does not exist yet
func postInit() {
	err := models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
		users := env.Pool("res.users")
		if users.Search("Login", "admin").Len() > 0 {
			return
		}
		hashed, err := password.Hash("admin")
		if err != nil {
			log.Panic("Unable to hash admin password", "error", err)
		}
		users.Create(models.FieldMap{
			"Name":     "Administrator",
			"Login":    "admin",
			"Password": hashed,
		})
	})
	if err != nil {
		log.Panic("Unable to create admin user", "error", err)
	}
}

// Authenticate checks the given login and secret against the users of
// the database and returns the id of the matched user record.
func Authenticate(env models.Environment, login, secret string) (int64, bool) {
	users := env.Pool("res.users").Search("Login", login)
	if users.Len() != 1 {
		return 0, false
	}
	user := users.First()
	if !user.GetBool("Active") {
		return 0, false
	}
	if !password.Verify(secret, user.GetString("Password")) {
		return 0, false
	}
	return user.ID(), true
}
