// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package main

import (
	"github.com/hexya-erp/hexya-starter/cmd"

	// Addon modules of this project
	_ "github.com/hexya-erp/hexya-starter/addons/base"
	_ "github.com/hexya-erp/hexya-starter/addons/royaltextiles"
)

func main() {
	cmd.StarterCmd.Execute()
}
