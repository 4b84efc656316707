package sensor

import (
	"fmt"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// NotifyLoggers sends a formatted log message to all attached loggers, enhancing traceability and debugging.
//
// Parameters:
//   - level: The log level of the message.
//   - format: The format string for the log message.
//   - args: Additional arguments to be formatted into the message.
func (s *Sensor) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()

	if len(loggers) == 0 {
		return
	}

	msg := fmt.Sprintf(format, args...)
	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if logger.GetLevel() <= level {
			switch level {
			case types.DebugLevel:
				logger.Debug(msg)
			case types.InfoLevel:
				logger.Info(msg)
			case types.WarnLevel:
				logger.Warn(msg)
			case types.ErrorLevel:
				logger.Error(msg)
			case types.DPanicLevel:
				logger.DPanic(msg)
			case types.PanicLevel:
				logger.Panic(msg)
			case types.FatalLevel:
				logger.Fatal(msg)
			}
		}
	}
}
