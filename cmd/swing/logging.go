package main

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const loggerName = "swing"

// configureLogging sets the commonlog verbosity. Output goes to stderr
// unless path names a log file.
func configureLogging(verbosity int, path string) {
	var logPath *string
	if path != "" {
		logPath = &path
	}
	commonlog.Configure(verbosity, logPath)
}

func logger() commonlog.Logger {
	return commonlog.GetLogger(loggerName)
}
