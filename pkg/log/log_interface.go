package log

import "go.uber.org/zap"

// ILogger is the leveled logging surface shared by the global helpers and
// child loggers returned from With.
type ILogger interface {
	Info(args ...any)
	Infof(format string, args ...any)
	Infow(msg string, keysAndValues ...any)

	Debug(args ...any)
	Debugf(format string, args ...any)
	Debugw(msg string, keysAndValues ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnw(msg string, keysAndValues ...any)

	Error(args ...any)
	Errorf(format string, args ...any)
	Errorw(msg string, keysAndValues ...any)
}

var _ ILogger = (*zap.SugaredLogger)(nil)
