// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// format-xml reformats XML resource files in place.
//
// Usage: format-xml FILE [FILE...]
//
// Each file is rewritten with 4-space indentation, no blank lines and a
// single canonical XML declaration. Files with a '.csv' extension are
// skipped. A file that cannot be parsed is left untouched and reported
// on stderr. The exit status is 0 if all XML files were formatted, 1
// otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/hexya-erp/hexya-starter/src/tools/xmlutils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: format-xml FILE [FILE...]")
		os.Exit(1)
	}
	errs := xmlutils.FormatFiles(os.Args[1:])
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}
