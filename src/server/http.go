// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package server

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/hexya-erp/hexya-starter/src/menus"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
	"github.com/hexya-erp/hexya-starter/src/tools/xmlutils"
	"github.com/hexya-erp/hexya-starter/src/views"
)

// A Server is the http server of the application.
// It wraps a gin.Engine.
type Server struct {
	*gin.Engine
}

var starterServer *Server

// GetServer returns the http server of the application, creating it
// if needed. Modules add their own routes in their PostInit hook.
func GetServer() *Server {
	if starterServer == nil {
		PreInit()
	}
	return starterServer
}

// PreInit creates the http server with its middleware and base routes
func PreInit() {
	if !viper.GetBool("Debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.LogForGin(logging.GetLogger("http")))
	store := sessions.NewCookieStore([]byte(viper.GetString("Server.SessionKey")))
	engine.Use(sessions.Sessions("starter-session", store))
	if viper.GetBool("Debug") {
		pprof.Register(engine)
	}
	starterServer = &Server{engine}
	registerBaseRoutes(starterServer)
}

// registerBaseRoutes adds the routes exposing the loaded modules,
// menus and views.
func registerBaseRoutes(srv *Server) {
	web := srv.Group("/web")
	web.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	web.GET("/modules", func(c *gin.Context) {
		res := make([]gin.H, len(Modules))
		for i, mod := range Modules {
			res[i] = gin.H{
				"name":     mod.Name,
				"version":  mod.Version,
				"category": mod.Category,
				"summary":  mod.Summary,
				"depends":  mod.Depends,
			}
		}
		c.JSON(http.StatusOK, res)
	})
	web.GET("/menus", func(c *gin.Context) {
		res := make([]gin.H, 0)
		for _, menu := range menus.Registry.All() {
			res = append(res, gin.H{
				"id":       menu.ID,
				"name":     menu.Name,
				"model":    menu.Model,
				"sequence": menu.Sequence,
			})
		}
		c.JSON(http.StatusOK, res)
	})
	web.GET("/views/:id", func(c *gin.Context) {
		view := views.Registry.GetByID(c.Param("id"))
		if view == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
			return
		}
		arch, err := xmlutils.ElementToXML(view.Arch)
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusOK, "application/xml", arch)
	})
}

// StartServer runs the http server on the given address.
// This function blocks.
func StartServer(address string) {
	log.Info("Starting http server", "address", address)
	if err := GetServer().Run(address); err != nil {
		log.Panic("Error while running http server", "error", err)
	}
}
