package escapify

import (
	"log"
	"os"
)

// Logger is the package logger. The library is quiet except for the
// splitter, which reports when it is forced to break inside a fenced block
// or hard-split an oversized line.
var Logger = log.New(os.Stderr, "[escapify] ", log.LstdFlags)

// SetLogger replaces the package logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
