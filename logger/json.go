package logger

import (
	"github.com/sirupsen/logrus"
)

type jsonFormatter struct {
	disableTimestamp bool
	timestampFormat  string
	fmt              *logrus.JSONFormatter
}

func (f *jsonFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if f.fmt == nil {
		f.fmt = &logrus.JSONFormatter{
			DisableHTMLEscape: true,
			DisableTimestamp:  f.disableTimestamp,
			TimestampFormat:   f.timestampFormat,
		}
	}
	return f.fmt.Format(entry)
}
