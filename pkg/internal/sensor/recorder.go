package sensor

import "github.com/joeydtaylor/meander/pkg/internal/types"

// RegisterOnRecordWrite registers callbacks for trace write events.
func (s *Sensor) RegisterOnRecordWrite(callback ...func(types.ComponentMetadata, types.Frame)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnRecordWrite = append(s.OnRecordWrite, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnRecordWrite invokes registered trace write callbacks.
func (s *Sensor) InvokeOnRecordWrite(c types.ComponentMetadata, frame types.Frame) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnRecordWrite) {
		if cb == nil {
			continue
		}
		cb(c, frame)
	}
}

// RegisterOnRecordFlush registers callbacks for trace flush events.
func (s *Sensor) RegisterOnRecordFlush(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnRecordFlush = append(s.OnRecordFlush, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnRecordFlush invokes registered trace flush callbacks.
func (s *Sensor) InvokeOnRecordFlush(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnRecordFlush) {
		if cb == nil {
			continue
		}
		cb(c)
	}
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: InvokeOnRecordFlush, target: %v => Trace flushed", s.componentMetadata, c)
}

// RegisterOnRecordError registers callbacks for trace failure events.
func (s *Sensor) RegisterOnRecordError(callback ...func(types.ComponentMetadata, error)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnRecordError = append(s.OnRecordError, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnRecordError invokes registered trace failure callbacks.
func (s *Sensor) InvokeOnRecordError(c types.ComponentMetadata, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnRecordError) {
		if cb == nil {
			continue
		}
		cb(c, err)
	}
	s.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: InvokeOnRecordError, target: %v, error: %v => Trace operation failed", s.componentMetadata, c, err)
}
