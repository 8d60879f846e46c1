// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package exceptions defines the error types used across hexya-starter.
package exceptions

import "fmt"

// UserError is an error that is meant to be displayed to the end user.
// Debug holds additional data for the developer.
type UserError struct {
	Message string
	Debug   string
}

// Error method for the UserError type.
// Returns the message.
func (u UserError) Error() string {
	return fmt.Sprintf("%s\n----------------------------------\n%s", u.Message, u.Debug)
}
