// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package models

import (
	"github.com/jmoiron/sqlx"
	// PostgreSQL driver
	_ "github.com/lib/pq"
	// SQLite driver, used by default and in tests
	_ "github.com/mattn/go-sqlite3"

	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var (
	db     *sqlx.DB
	driver string
)

// DBConnect connects the model layer to the database with the given
// driver ("postgres" or "sqlite3") and connection string. It panics on
// connection failure.
func DBConnect(drv, connStr string) {
	db = sqlx.MustConnect(drv, connStr)
	driver = drv
	log.Info("Connected to database", "driver", drv)
}

// DBClose closes the connection to the database
func DBClose() {
	if db != nil {
		db.Close()
		db = nil
	}
}

// An Environment wraps a database transaction and the user on behalf
// of whom the operations are performed. All model operations go
// through an Environment.
type Environment struct {
	cr  *sqlx.Tx
	uid int64
}

// Cr returns the transaction of this Environment
func (env Environment) Cr() *sqlx.Tx {
	return env.cr
}

// Uid returns the user id of this Environment
func (env Environment) Uid() int64 {
	return env.uid
}

// Pool returns an empty RecordCollection for the given model
func (env Environment) Pool(modelName string) *RecordCollection {
	return &RecordCollection{
		env:   env,
		model: Registry.MustGet(modelName),
	}
}

// ExecuteInNewEnvironment executes the given fnct in a new Environment
// within a new transaction and commits it on success. In case fnct
// panics, the transaction is rolled back and the panic data is
// returned as an error.
func ExecuteInNewEnvironment(uid int64, fnct func(Environment)) (rError error) {
	env := Environment{cr: db.MustBegin(), uid: uid}
	defer func() {
		if r := recover(); r != nil {
			env.cr.Rollback()
			rError = logging.LogPanicData(r)
			return
		}
		rError = env.cr.Commit()
	}()
	fnct(env)
	return
}

// SimulateInNewEnvironment executes the given fnct in a new
// Environment within a new transaction and rolls it back afterwards,
// whether fnct succeeded or not. This is mainly useful in tests.
func SimulateInNewEnvironment(uid int64, fnct func(Environment)) (rError error) {
	env := Environment{cr: db.MustBegin(), uid: uid}
	defer func() {
		env.cr.Rollback()
		if r := recover(); r != nil {
			rError = logging.LogPanicData(r)
		}
	}()
	fnct(env)
	return
}
