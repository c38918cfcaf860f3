package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of the document layout.
var ProgressLogger = log.New(os.Stdout, "pagelayer.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like unsupported
// transform functions on a stacking layer
var WarningLogger = log.New(os.Stdout, "pagelayer.warning: ", log.Lmsgprefix)
