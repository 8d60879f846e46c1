// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package cmd provides the hexya-starter commander.
package cmd

import (
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var log logging.Logger

// StarterCmd is the base 'hexya-starter' command of the commander
var StarterCmd = &cobra.Command{
	Use:   "hexya-starter",
	Short: "Hexya starter kit for module developers",
	Long: `Hexya starter kit for module developers.
It ships a demo server, an example addon module and the development
utilities needed to write new modules.`,
}

func init() {
	log = logging.GetLogger("init")
	cobra.OnInitialize(initConfig)

	StarterCmd.PersistentFlags().StringP("config", "c", "", "Alternate configuration file to read. Defaults to $HOME/.hexya-starter/")
	viper.BindPFlag("ConfigFileName", StarterCmd.PersistentFlags().Lookup("config"))

	StarterCmd.PersistentFlags().StringP("log-level", "L", "info", "Log level. Should be one of 'debug', 'info', 'warn', 'error' or 'crit'")
	viper.BindPFlag("LogLevel", StarterCmd.PersistentFlags().Lookup("log-level"))
	StarterCmd.PersistentFlags().String("log-file", "", "File to which the log will be written")
	viper.BindPFlag("LogFile", StarterCmd.PersistentFlags().Lookup("log-file"))
	StarterCmd.PersistentFlags().BoolP("log-stdout", "o", false, "Enable stdout logging. Use for development or debugging.")
	viper.BindPFlag("LogStdout", StarterCmd.PersistentFlags().Lookup("log-stdout"))
	StarterCmd.PersistentFlags().Bool("debug", false, "Enable server debug mode for development")
	viper.BindPFlag("Debug", StarterCmd.PersistentFlags().Lookup("debug"))

	StarterCmd.PersistentFlags().String("db-driver", "sqlite3", "Database driver to use ('sqlite3' or 'postgres')")
	viper.BindPFlag("DB.Driver", StarterCmd.PersistentFlags().Lookup("db-driver"))
	StarterCmd.PersistentFlags().String("db-connstr", "starter.db", "Database connection string. A file name for sqlite3, a DSN for postgres")
	viper.BindPFlag("DB.ConnStr", StarterCmd.PersistentFlags().Lookup("db-connstr"))
}

func initConfig() {
	cfgFile := viper.GetString("ConfigFileName")
	if runtime.GOOS != "windows" {
		viper.AddConfigPath("/etc/hexya-starter")
	}

	osUser, err := user.Current()
	if err != nil {
		log.Panic("Unable to retrieve current user", "error", err)
	}
	viper.AddConfigPath(filepath.Join(osUser.HomeDir, ".hexya-starter"))
	viper.AddConfigPath(".")

	viper.SetConfigName("hexya-starter")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err = viper.ReadInConfig(); err != nil {
		log.Warn("Error while loading configuration file", "error", err)
	}
}
