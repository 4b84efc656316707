package sensor

import "github.com/joeydtaylor/meander/pkg/internal/types"

// RegisterOnStreamStart registers callbacks for stream start events.
func (s *Sensor) RegisterOnStreamStart(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnStreamStart = append(s.OnStreamStart, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnStreamStart invokes registered stream start callbacks.
func (s *Sensor) InvokeOnStreamStart(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnStreamStart) {
		if cb == nil {
			continue
		}
		cb(c)
	}
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: InvokeOnStreamStart, target: %v => Stream started", s.componentMetadata, c)
}

// RegisterOnStreamStop registers callbacks for stream stop events.
func (s *Sensor) RegisterOnStreamStop(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnStreamStop = append(s.OnStreamStop, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnStreamStop invokes registered stream stop callbacks.
func (s *Sensor) InvokeOnStreamStop(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnStreamStop) {
		if cb == nil {
			continue
		}
		cb(c)
	}
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: InvokeOnStreamStop, target: %v => Stream stopped", s.componentMetadata, c)
}

// RegisterOnStreamRestart registers callbacks for stream restart events.
func (s *Sensor) RegisterOnStreamRestart(callback ...func(types.ComponentMetadata)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnStreamRestart = append(s.OnStreamRestart, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnStreamRestart invokes registered stream restart callbacks.
func (s *Sensor) InvokeOnStreamRestart(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnStreamRestart) {
		if cb == nil {
			continue
		}
		cb(c)
	}
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: InvokeOnStreamRestart, target: %v => Stream restarted", s.componentMetadata, c)
}

// RegisterOnFrame registers callbacks invoked for every emitted frame.
func (s *Sensor) RegisterOnFrame(callback ...func(types.ComponentMetadata, types.Frame)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnFrame = append(s.OnFrame, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnFrame invokes registered per-frame callbacks.
func (s *Sensor) InvokeOnFrame(c types.ComponentMetadata, frame types.Frame) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnFrame) {
		if cb == nil {
			continue
		}
		cb(c, frame)
	}
}

// RegisterOnSubmitError registers callbacks for output submission failures.
func (s *Sensor) RegisterOnSubmitError(callback ...func(types.ComponentMetadata, error, types.Frame)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnSubmitError = append(s.OnSubmitError, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnSubmitError invokes registered submission failure callbacks.
func (s *Sensor) InvokeOnSubmitError(c types.ComponentMetadata, err error, frame types.Frame) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnSubmitError) {
		if cb == nil {
			continue
		}
		cb(c, err, frame)
	}
	s.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: InvokeOnSubmitError, target: %v, error: %v => Output rejected frame %d", s.componentMetadata, c, err, frame.Seq)
}

// RegisterOnCancel registers callbacks for context cancellation events.
func (s *Sensor) RegisterOnCancel(callback ...func(types.ComponentMetadata, types.Frame)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnCancel = append(s.OnCancel, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnCancel invokes registered cancellation callbacks.
func (s *Sensor) InvokeOnCancel(c types.ComponentMetadata, frame types.Frame) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnCancel) {
		if cb == nil {
			continue
		}
		cb(c, frame)
	}
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: InvokeOnCancel, target: %v => Stream cancelled at frame %d", s.componentMetadata, c, frame.Seq)
}
