package testutils

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/pagelayer/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// CapturedLogs redirects the package loggers to an in-memory
// buffer, until one of its Assert methods is called.
type CapturedLogs struct {
	buf               *bytes.Buffer
	progress, warning io.Writer
}

// CaptureLogs starts capturing the output of the [logger] package.
func CaptureLogs() *CapturedLogs {
	out := CapturedLogs{
		buf:      new(bytes.Buffer),
		progress: logger.ProgressLogger.Writer(),
		warning:  logger.WarningLogger.Writer(),
	}
	logger.ProgressLogger.SetOutput(out.buf)
	logger.WarningLogger.SetOutput(out.buf)
	return &out
}

func (c *CapturedLogs) restore() {
	logger.ProgressLogger.SetOutput(c.progress)
	logger.WarningLogger.SetOutput(c.warning)
}

// Logs stops the capture and returns the recorded lines.
func (c *CapturedLogs) Logs() []string {
	c.restore()
	s := strings.TrimSuffix(c.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// AssertNoLogs stops the capture and fails if any line was recorded.
func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got (%d):\n %s", len(logs), strings.Join(logs, "\n"))
	}
}
