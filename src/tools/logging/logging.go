// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package logging provides the structured logger used by all
// hexya-starter components. It is a thin wrapper around Uber's zap
// library, configured through viper.
package logging

import (
	"errors"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/hexya-erp/hexya-starter/src/tools/exceptions"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// log is the base logger of the starter kit
var log = &zapLogger{}

// A Logger writes logs to a handler
type Logger interface {
	// Panic logs an error level message then panics
	Panic(msg string, ctx ...interface{})
	// Error logs an error level message
	Error(msg string, ctx ...interface{})
	// Warn logs a warning level message
	Warn(msg string, ctx ...interface{})
	// Info logs an information level message
	Info(msg string, ctx ...interface{})
	// Debug logs a debug level message. This may be very verbose
	Debug(msg string, ctx ...interface{})
	// New returns a child logger with the given context
	New(ctx ...interface{}) Logger
	// Sync the logger cache
	Sync() error
}

// zapLogger is an implementation of Logger using Uber's zap library.
//
// Child loggers created before Initialize is called are bound lazily
// to the base zap logger through their parent chain.
type zapLogger struct {
	zap    *zap.SugaredLogger
	ctx    []interface{}
	parent *zapLogger
}

// Panic logs an error level message then panics
func (l *zapLogger) Panic(msg string, ctx ...interface{}) {
	if l.checkParent() {
		l.zap.Errorw(msg, ctx...)
	}
	panicData := msg + "\n"
	for i := 0; i+1 < len(ctx); i += 2 {
		panicData += fmt.Sprintf("\t%v : %v\n", ctx[i], ctx[i+1])
	}
	panic(panicData)
}

// Error logs an error level message
func (l *zapLogger) Error(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Errorw(msg, ctx...)
}

// Warn logs a warning level message
func (l *zapLogger) Warn(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Warnw(msg, ctx...)
}

// Info logs an information level message
func (l *zapLogger) Info(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Infow(msg, ctx...)
}

// Debug logs a debug level message. This may be very verbose
func (l *zapLogger) Debug(msg string, ctx ...interface{}) {
	if !l.checkParent() {
		return
	}
	l.zap.Debugw(msg, ctx...)
}

// Sync the logger cache
func (l *zapLogger) Sync() error {
	if !l.checkParent() {
		return errors.New("syncing a non-initialized logger")
	}
	return l.zap.Sync()
}

// New returns a child logger with the given context
func (l *zapLogger) New(ctx ...interface{}) Logger {
	return &zapLogger{
		ctx:    ctx,
		parent: l,
	}
}

// checkParent recursively looks for an ancestor with a valid zap logger
// backend. If one is found, all children zap loggers are instantiated
// and checkParent returns true. Otherwise, it returns false.
func (l *zapLogger) checkParent() bool {
	if l.zap != nil {
		return true
	}
	if l.parent == nil {
		return false
	}
	l.parent.checkParent()
	if l.parent.zap != nil {
		l.zap = l.parent.zap.With(l.ctx...)
		return true
	}
	return false
}

// Initialize starts the base logger used by all hexya-starter components
func Initialize() {
	logConfig := zap.NewProductionConfig()
	if viper.GetBool("Debug") {
		logConfig = zap.NewDevelopmentConfig()
	}
	logLevel := zap.NewAtomicLevel()
	err := logLevel.UnmarshalText([]byte(viper.GetString("LogLevel")))
	if err != nil {
		fmt.Printf("error while reading log level. Falling back to info. Error: %s\n", err.Error())
		logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logConfig.Level = logLevel

	var outputPaths []string
	if viper.GetBool("LogStdout") {
		outputPaths = append(outputPaths, "stdout")
	}
	if path := viper.GetString("LogFile"); path != "" {
		outputPaths = append(outputPaths, path)
	}
	logConfig.OutputPaths = outputPaths

	plainLog, err := logConfig.Build()
	if err != nil {
		panic(err)
	}
	log.zap = plainLog.Sugar()
}

// GetLogger returns a context logger for the given module
func GetLogger(moduleName string) Logger {
	return log.New("module", moduleName)
}

// LogPanicData logs the given panic data and returns an error with
// the panic message. The full data is dumped at debug level.
func LogPanicData(panicData interface{}) error {
	msg := fmt.Sprintf("%v", panicData)
	log.Error("hexya-starter panicked", "msg", msg)
	log.Debug("panic data", "dump", spew.Sdump(panicData))
	return exceptions.UserError{
		Message: msg,
		Debug:   spew.Sdump(panicData),
	}
}

// LogForGin returns a gin.HandlerFunc (middleware) that logs requests
// using the given Logger.
//
// Requests with errors are logged with Error(), other requests with Info().
func LogForGin(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		ctxLogger := logger.New(
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", path,
			"ip", c.ClientIP(),
			"latency", latency,
			"user-agent", c.Request.UserAgent(),
		)
		if len(c.Errors) > 0 {
			ctxLogger.Error(c.Errors.String())
			return
		}
		ctxLogger.Info("request completed")
	}
}
