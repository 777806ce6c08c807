package advisor

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// restyLogger forwards resty's log output to an hclog.Logger.
type restyLogger struct {
	log hclog.Logger
}

func newRestyLogger(log hclog.Logger) *restyLogger {
	return &restyLogger{log: log}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
