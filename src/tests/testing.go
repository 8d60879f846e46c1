// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package tests provides the test harness for module functional
// tests. It boots a throwaway database, loads the registered modules
// with their demo data and exposes helpers such as a mock external
// API server.
package tests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/server"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var dbFile string

// RunTests initializes the database, runs the tests given by m and
// tears the database down.
//
// It is meant to be used for modules testing. Initialize your module's
// tests with:
//
//     import (
//         "testing"
//         "github.com/hexya-erp/hexya-starter/src/tests"
//     )
//
//     func TestMain(m *testing.M) {
//         tests.RunTests(m, "my_module", nil)
//     }
func RunTests(m *testing.M, moduleName string, preHookFnct func()) {
	var res int
	defer func() {
		TearDownTests(moduleName)
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(res)
	}()
	InitializeTests(moduleName)
	if preHookFnct != nil {
		preHookFnct()
	}
	res = m.Run()
}

// InitializeTests initializes a database for the tests of the given
// module and loads all registered modules with their demo data.
// You probably want to use RunTests instead.
func InitializeTests(moduleName string) {
	fmt.Printf("Initializing tests for module %s\n", moduleName)
	viper.Set("LogLevel", "panic")
	if os.Getenv("STARTER_LOG") != "" {
		viper.Set("LogLevel", "info")
		viper.Set("LogStdout", true)
	}
	if os.Getenv("STARTER_DEBUG") != "" {
		viper.Set("Debug", true)
		viper.Set("LogLevel", "debug")
		viper.Set("LogStdout", true)
	}
	logging.Initialize()

	driver := os.Getenv("STARTER_DB_DRIVER")
	connStr := os.Getenv("STARTER_DB_CONNSTR")
	if driver == "" {
		driver = "sqlite3"
		dbFile = filepath.Join(os.TempDir(), fmt.Sprintf("starter_%s_tests.db", moduleName))
		os.Remove(dbFile)
		connStr = dbFile
	}
	models.DBConnect(driver, connStr)
	models.BootStrap()
	server.LoadModules(true)
}

// TearDownTests tears down the tests of the given module
func TearDownTests(moduleName string) {
	models.DBClose()
	if dbFile != "" && os.Getenv("STARTER_KEEP_TEST_DB") == "" {
		os.Remove(dbFile)
	}
	fmt.Printf("Tearing down tests for module %s\n", moduleName)
}

// SampleRecord returns the demo record of the given model bearing the
// given external id, as loaded from the modules' demo CSV files.
func SampleRecord(env models.Environment, modelName, externalID string) *models.RecordCollection {
	return env.Pool(modelName).Search("external_id", externalID)
}

// MockExternalAPI returns a test http server that mimics the external
// scheduling API consumed by example modules. The caller must close
// the returned server.
//
// Endpoints:
//     POST /schedule        answers with a confirmation payload
//     GET  /status/:ref     answers with a canned status
func MockExternalAPI() *httptest.Server {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/schedule", func(c *gin.Context) {
		var req struct {
			Reference string `json:"reference"`
			Date      string `json:"date"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"scheduled": true,
			"reference": req.Reference,
			"date":      req.Date,
		})
	})
	engine.GET("/status/:ref", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"reference": c.Param("ref"),
			"status":    "confirmed",
		})
	})
	return httptest.NewServer(engine)
}
