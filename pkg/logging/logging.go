package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide structured logger
var Logger = New(os.Stderr)

// New creates a logger writing to w
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "portfolio",
	})
}

// SetDebug toggles debug output on the process logger
func SetDebug(enabled bool) {
	if enabled {
		Logger.SetLevel(log.DebugLevel)
		return
	}
	Logger.SetLevel(log.InfoLevel)
}
