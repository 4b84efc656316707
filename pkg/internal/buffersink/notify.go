package buffersink

import (
	"fmt"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// ConnectLogger registers loggers for the sink.
func (b *BufferSink) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	b.loggersLock.Lock()
	b.loggers = append(b.loggers, loggers...)
	b.loggersLock.Unlock()
}

// NotifyLoggers sends a formatted log message to all attached loggers at a
// specified log level.
func (b *BufferSink) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	b.loggersLock.Lock()
	loggers := append([]types.Logger(nil), b.loggers...)
	b.loggersLock.Unlock()

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
