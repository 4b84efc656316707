// Package sensor provides options for configuring Sensor components.
//
// This file defines various options that can be used to customize the behavior and settings of Sensor components
// within a streaming setup. These options allow users to add loggers and meters, and to register callbacks for
// specific events such as OnStreamStart, OnFrame, or OnSubmitError.
package sensor

import (
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Sensor.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Sensor for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.FrameSensor] that, when called with a Sensor component,
//	connects the specified logger(s) to the Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.ConnectLogger(logger...)
	}
}

// WithMeter creates an option to connect one or more meters to a Sensor.
//
// Parameters:
//   - meter: One or more meter instances that should receive the standard counting callbacks.
//
// Returns:
//
//	A function conforming to types.Option[types.FrameSensor] that, when called with a Sensor component,
//	connects the specified meter(s) to the Sensor.
func WithMeter(meter ...types.FrameMeter) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.ConnectMeter(meter...)
	}
}

// WithComponentMetadata creates an option to override a Sensor's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.SetComponentMetadata(name, id)
	}
}

// WithOnStreamStartFunc creates an option to register a callback for the OnStreamStart event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnStreamStart event.
//
// Returns:
//
//	A function conforming to types.Option[types.FrameSensor] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnStreamStart event.
func WithOnStreamStartFunc(callback ...func(c types.ComponentMetadata)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnStreamStart(callback...)
	}
}

// WithOnStreamStopFunc creates an option to register a callback for the OnStreamStop event.
func WithOnStreamStopFunc(callback ...func(c types.ComponentMetadata)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnStreamStop(callback...)
	}
}

// WithOnStreamRestartFunc creates an option to register a callback for the OnStreamRestart event.
func WithOnStreamRestartFunc(callback ...func(c types.ComponentMetadata)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnStreamRestart(callback...)
	}
}

// WithOnFrameFunc creates an option to register a callback for the OnFrame event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnFrame event, each accepting
//     the emitting component's metadata and the frame itself.
//
// Returns:
//
//	A function conforming to types.Option[types.FrameSensor] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnFrame event.
func WithOnFrameFunc(callback ...func(c types.ComponentMetadata, frame types.Frame)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnFrame(callback...)
	}
}

// WithOnSubmitErrorFunc creates an option to register a callback for the OnSubmitError event.
//
// Parameters:
//   - callback: One or more callback functions to be registered for the OnSubmitError event, each accepting
//     the component's metadata, the error, and the rejected frame.
//
// Returns:
//
//	A function conforming to types.Option[types.FrameSensor] that, when called with a Sensor component,
//	registers the specified callback(s) for the OnSubmitError event.
func WithOnSubmitErrorFunc(callback ...func(c types.ComponentMetadata, err error, frame types.Frame)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnSubmitError(callback...)
	}
}

// WithOnCancelFunc creates an option to register a callback for the OnCancel event.
func WithOnCancelFunc(callback ...func(c types.ComponentMetadata, frame types.Frame)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnCancel(callback...)
	}
}

// WithOnRecordWriteFunc creates an option to register a callback for the OnRecordWrite event.
func WithOnRecordWriteFunc(callback ...func(c types.ComponentMetadata, frame types.Frame)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnRecordWrite(callback...)
	}
}

// WithOnRecordFlushFunc creates an option to register a callback for the OnRecordFlush event.
func WithOnRecordFlushFunc(callback ...func(c types.ComponentMetadata)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnRecordFlush(callback...)
	}
}

// WithOnRecordErrorFunc creates an option to register a callback for the OnRecordError event.
func WithOnRecordErrorFunc(callback ...func(c types.ComponentMetadata, err error)) types.Option[types.FrameSensor] {
	return func(s types.FrameSensor) {
		s.RegisterOnRecordError(callback...)
	}
}
