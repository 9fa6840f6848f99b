package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const logLevelEnv = "IMAGE_SCRIPT_LOG_LEVEL"

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var debugLog = log.New(io.Discard, "DEBUG ", logFlags)

// setupLogging sends the standard logger to stderr, since stdout carries
// script progress or the MCP protocol. Debug lines are written only when
// debug is set or the log level environment variable is "debug". It reports
// whether debug logging is on.
func setupLogging(debug bool) bool {
	log.SetOutput(os.Stderr)
	log.SetFlags(logFlags)

	if !debug && os.Getenv(logLevelEnv) != "debug" {
		debugLog.SetOutput(io.Discard)
		return false
	}
	debugLog.SetOutput(os.Stderr)
	return true
}

func debugf(format string, args ...any) {
	debugLog.Output(2, fmt.Sprintf(format, args...))
}
