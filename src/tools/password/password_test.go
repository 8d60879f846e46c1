// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package password

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPassword(t *testing.T) {
	Convey("Testing password hashing", t, func() {
		hash, err := Hash("secret")
		So(err, ShouldBeNil)
		So(strings.HasPrefix(hash, "$pbkdf2-sha256$"), ShouldBeTrue)
		Convey("The right password should verify", func() {
			So(Verify("secret", hash), ShouldBeTrue)
		})
		Convey("A wrong password should not verify", func() {
			So(Verify("wrong", hash), ShouldBeFalse)
		})
		Convey("A garbage hash should not verify", func() {
			So(Verify("secret", "not-a-hash"), ShouldBeFalse)
		})
		Convey("Two hashes of the same password should differ by their salt", func() {
			hash2, err := Hash("secret")
			So(err, ShouldBeNil)
			So(hash2, ShouldNotEqual, hash)
		})
	})
}
