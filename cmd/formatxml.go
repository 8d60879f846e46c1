// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexya-erp/hexya-starter/src/tools/xmlutils"
)

var formatXMLCmd = &cobra.Command{
	Use:   "format-xml FILE [FILE...]",
	Short: "Reformat XML resource files",
	Long: `Reformat the given XML files in place: 4-space indentation, no
blank lines and a single canonical XML declaration. Files with a '.csv'
extension are skipped. A file that cannot be parsed is left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Usage()
			os.Exit(1)
		}
		errs := xmlutils.FormatFiles(args)
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		if len(errs) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	StarterCmd.AddCommand(formatXMLCmd)
}
