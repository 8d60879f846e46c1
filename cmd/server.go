// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hexya-erp/hexya-starter/src/models"
	"github.com/hexya-erp/hexya-starter/src/server"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the demo server",
	Long: `Start the demo web server with all registered modules loaded.
The database schema is synchronized before the modules are loaded.`,
	Run: func(cmd *cobra.Command, args []string) {
		StartServer()
	},
}

// StartServer starts the demo server. It is meant to be called from a
// main package which blank-imports all the wanted addon modules.
func StartServer() {
	logging.Initialize()
	log = logging.GetLogger("init")
	models.DBConnect(viper.GetString("DB.Driver"), viper.GetString("DB.ConnStr"))
	models.BootStrap()
	server.LoadModules(viper.GetBool("Demo"))
	address := fmt.Sprintf("%s:%s", viper.GetString("Server.Interface"), viper.GetString("Server.Port"))
	server.StartServer(address)
}

func init() {
	serverCmd.PersistentFlags().StringP("interface", "i", "", "Interface on which the server should listen. Empty string is all interfaces")
	viper.BindPFlag("Server.Interface", serverCmd.PersistentFlags().Lookup("interface"))
	serverCmd.PersistentFlags().StringP("port", "p", "8080", "Port on which the server should listen.")
	viper.BindPFlag("Server.Port", serverCmd.PersistentFlags().Lookup("port"))
	serverCmd.PersistentFlags().Bool("demo", false, "Load the demo data of the modules")
	viper.BindPFlag("Demo", serverCmd.PersistentFlags().Lookup("demo"))
	StarterCmd.AddCommand(serverCmd)
}
