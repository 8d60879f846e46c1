// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package server

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/hexya-erp/hexya-starter/src/menus"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
	"github.com/hexya-erp/hexya-starter/src/views"
)

func TestMain(m *testing.M) {
	viper.Set("LogLevel", "panic")
	logging.Initialize()
	os.Exit(m.Run())
}

func resetModules() {
	Modules = ModulesList{}
}

func TestModuleRegistry(t *testing.T) {
	Convey("Testing module registration", t, func() {
		resetModules()
		RegisterModule(&Module{Manifest: Manifest{Name: "base", Version: "0.1"}})
		So(Modules.Names(), ShouldResemble, []string{"base"})
		Convey("A module without name should panic", func() {
			So(func() { RegisterModule(&Module{}) }, ShouldPanic)
		})
		Convey("A duplicate module should panic", func() {
			So(func() {
				RegisterModule(&Module{Manifest: Manifest{Name: "base"}})
			}, ShouldPanic)
		})
	})
}

func TestDependencySort(t *testing.T) {
	Convey("Testing module dependency ordering", t, func() {
		Convey("Modules should be sorted after their dependencies", func() {
			resetModules()
			RegisterModule(&Module{Manifest: Manifest{Name: "sale", Depends: []string{"base"}}})
			RegisterModule(&Module{Manifest: Manifest{Name: "base"}})
			RegisterModule(&Module{Manifest: Manifest{Name: "sale_stock", Depends: []string{"sale", "stock"}}})
			RegisterModule(&Module{Manifest: Manifest{Name: "stock", Depends: []string{"base"}}})
			sorted := sortedByDependency().Names()
			So(sorted[0], ShouldEqual, "base")
			So(indexOf(sorted, "sale"), ShouldBeLessThan, indexOf(sorted, "sale_stock"))
			So(indexOf(sorted, "stock"), ShouldBeLessThan, indexOf(sorted, "sale_stock"))
		})
		Convey("An unknown dependency should panic", func() {
			resetModules()
			RegisterModule(&Module{Manifest: Manifest{Name: "sale", Depends: []string{"missing"}}})
			So(func() { sortedByDependency() }, ShouldPanic)
		})
		Convey("A dependency cycle should panic", func() {
			resetModules()
			RegisterModule(&Module{Manifest: Manifest{Name: "a", Depends: []string{"b"}}})
			RegisterModule(&Module{Manifest: Manifest{Name: "b", Depends: []string{"a"}}})
			So(func() { sortedByDependency() }, ShouldPanic)
		})
	})
}

var resourceXML = `<?xml version="1.0" encoding="utf-8"?>
<starter>
    <data>
        <view id="server_test_view" model="server.test">
            <form>
                <field name="Name"/>
            </form>
        </view>
        <menuitem id="server_test_menu" name="Server Test" model="server.test"/>
        <template id="server_test_template"><![CDATA[ok]]></template>
    </data>
</starter>
`

func TestXMLResourceLoading(t *testing.T) {
	Convey("Testing XML resource loading", t, func() {
		fileName := filepath.Join(os.TempDir(), "server_test_resources.xml")
		So(ioutil.WriteFile(fileName, []byte(resourceXML), 0644), ShouldBeNil)
		defer os.Remove(fileName)
		loadXMLResourceFile(fileName)
		Convey("Views, menus and templates should be registered", func() {
			So(views.Registry.GetByID("server_test_view"), ShouldNotBeNil)
			So(menus.Registry.GetByID("server_test_menu"), ShouldNotBeNil)
		})
		Convey("An unknown tag should panic", func() {
			badFile := filepath.Join(os.TempDir(), "server_test_bad.xml")
			bad := `<starter><data><record id="x"/></data></starter>`
			So(ioutil.WriteFile(badFile, []byte(bad), 0644), ShouldBeNil)
			defer os.Remove(badFile)
			So(func() { loadXMLResourceFile(badFile) }, ShouldPanic)
		})
	})
}

func TestACLLoading(t *testing.T) {
	Convey("Testing ACL file loading", t, func() {
		Convey("A malformed line should panic instead of truncating the file", func() {
			badACL := "id,name,model_id,group_id,perm_read,perm_write,perm_create,perm_unlink\n" +
				"broken,line\n"
			fileName := filepath.Join(os.TempDir(), "server_test_bad_acl.csv")
			So(ioutil.WriteFile(fileName, []byte(badACL), 0644), ShouldBeNil)
			defer os.Remove(fileName)
			So(func() { loadACLFile(fileName) }, ShouldPanic)
		})
		Convey("Unexpected headers should panic", func() {
			badHeaders := "id,name,model\n"
			fileName := filepath.Join(os.TempDir(), "server_test_bad_headers.csv")
			So(ioutil.WriteFile(fileName, []byte(badHeaders), 0644), ShouldBeNil)
			defer os.Remove(fileName)
			So(func() { loadACLFile(fileName) }, ShouldPanic)
		})
	})
}

func TestWebRoutes(t *testing.T) {
	Convey("Testing base web routes", t, func() {
		resetModules()
		RegisterModule(&Module{Manifest: Manifest{Name: "base", Version: "0.1", Summary: "Base module"}})
		srv := GetServer()
		Convey("/web/health should answer ok", func() {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/web/health", nil)
			srv.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "ok")
		})
		Convey("/web/modules should list the registered modules", func() {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/web/modules", nil)
			srv.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"name":"base"`)
		})
		Convey("/web/views/:id should render the view arch", func() {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/web/views/server_test_view", nil)
			srv.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				So(strings.TrimSpace(w.Body.String()), ShouldStartWith, "<form")
			} else {
				// view not loaded when this test runs in isolation
				So(w.Code, ShouldEqual, http.StatusNotFound)
			}
		})
		Convey("/web/views/:id should 404 on unknown views", func() {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/web/views/nope", nil)
			srv.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
