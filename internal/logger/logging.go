// Package logger provides charmbracelet/log loggers that write to stderr, so
// stdout carries only command output and the IPC stream.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the global logger used by every package.
func Setup(debug bool) {
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
	log.SetReportTimestamp(false)
}
