// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
)

// moduleDirs are the standard directories of an addon module
var moduleDirs = []string{"resources", "security", "demo"}

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Module development utilities",
	Long:  `Utilities for addon module development.`,
}

var moduleNewCmd = &cobra.Command{
	Use:   "new MODULE_NAME",
	Short: "Scaffold a new addon module",
	Long: `Scaffold a new addon module in the current directory: the module
declaration file, the standard resource directories and an empty access
rights file. Run this command from your addons directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "You must specify a module name.")
			os.Exit(1)
		}
		if err := scaffoldModule(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// scaffoldModule creates the directory layout and declaration file of
// a new module with the given name.
func scaffoldModule(moduleName string) error {
	for _, dir := range moduleDirs {
		if err := os.MkdirAll(filepath.Join(moduleName, dir), 0755); err != nil {
			return err
		}
	}
	aclFile := filepath.Join(moduleName, "security", "ir.model.access.csv")
	aclHeader := "id,name,model_id,group_id,perm_read,perm_write,perm_create,perm_unlink\n"
	if err := writeFileFromTemplate(aclFile, template.Must(template.New("").Parse(aclHeader)), nil); err != nil {
		return err
	}
	data := struct {
		ModuleName string
	}{
		ModuleName: moduleName,
	}
	return writeFileFromTemplate(filepath.Join(moduleName, fmt.Sprintf("000%s.go", moduleName)), moduleGoTmpl, data)
}

// writeFileFromTemplate executes the given template with the given data
// and writes the result to the given file. Existing files are not
// overwritten.
func writeFileFromTemplate(fileName string, tmpl *template.Template, data interface{}) error {
	if _, err := os.Stat(fileName); err == nil {
		return fmt.Errorf("%s already exists", fileName)
	}
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

func init() {
	StarterCmd.AddCommand(moduleCmd)
	moduleCmd.AddCommand(moduleNewCmd)
}

var moduleGoTmpl = template.Must(template.New("").Parse(`// Package {{ .ModuleName }} is an addon module.
package {{ .ModuleName }}

import (
	"path/filepath"
	"runtime"

	"github.com/hexya-erp/hexya-starter/src/server"

	// Module dependencies
	_ "github.com/hexya-erp/hexya-starter/addons/base"
)

const (
	// NAME of the module
	NAME string = "{{ .ModuleName }}"
	// VERSION of the module
	VERSION string = "0.1"
)

func init() {
	_, file, _, _ := runtime.Caller(0)
	server.RegisterModule(&server.Module{
		Manifest: server.Manifest{
			Name:    NAME,
			Version: VERSION,
			Depends: []string{"base"},
			Data: []string{
				"security/ir.model.access.csv",
			},
		},
		Dir: filepath.Dir(file),
	})
}
`))
