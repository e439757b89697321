package driver

import "github.com/sirupsen/logrus"

type driverLogger struct {
	logger logrus.FieldLogger
}

// NewDriverLogger adapts a logrus logger to the aws.Logger interface used by the SDK
func NewDriverLogger(l logrus.FieldLogger) driverLogger {
	return driverLogger{logger: l}
}

// Log logs the parameters to the preconfigured logger.
func (l driverLogger) Log(args ...interface{}) {
	l.logger.Debugln(args...)
}
