package stream

import (
	"fmt"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// NotifyLoggers sends a formatted log message to all attached loggers at a
// specified log level.
func (s *Streamer) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	loggers := s.snapshotLoggers()
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

func (s *Streamer) notifyStart() {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnStreamStart(s.componentMetadata)
	}
}

func (s *Streamer) notifyStop() {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnStreamStop(s.componentMetadata)
	}
}

func (s *Streamer) notifyRestart() {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnStreamRestart(s.componentMetadata)
	}
}

func (s *Streamer) notifyFrame(frame types.Frame) {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnFrame(s.componentMetadata, frame)
	}
	for _, meter := range s.snapshotMeters() {
		meter.ObserveFrame(frame)
	}
}

func (s *Streamer) notifySubmitError(err error, frame types.Frame) {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnSubmitError(s.componentMetadata, err, frame)
	}
}

func (s *Streamer) notifyCancel(frame types.Frame) {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnCancel(s.componentMetadata, frame)
	}
}

func (s *Streamer) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()
	return loggers
}

func (s *Streamer) snapshotSensors() []types.FrameSensor {
	s.sensorsLock.Lock()
	sensors := append([]types.FrameSensor(nil), s.sensors...)
	s.sensorsLock.Unlock()
	return sensors
}

func (s *Streamer) snapshotMeters() []types.FrameMeter {
	s.metersLock.Lock()
	meters := append([]types.FrameMeter(nil), s.meters...)
	s.metersLock.Unlock()
	return meters
}
