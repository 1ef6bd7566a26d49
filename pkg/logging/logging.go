package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface shared by all gpusync components. It is a
// thin view over logrus so tests can substitute silenced loggers.
type Logger interface {
	logrus.FieldLogger
	Writer() *io.PipeWriter
}

// NewDiscard returns a Logger that drops all output. Intended for tests.
func NewDiscard() Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
