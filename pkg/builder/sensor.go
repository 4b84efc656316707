package builder

import (
	"github.com/joeydtaylor/meander/pkg/internal/sensor"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

type ComponentMetadata = types.ComponentMetadata

type FrameSensor = types.FrameSensor

// NewSensor creates a sensor that observes streamer and trace writer activity
// through registered callbacks.
func NewSensor(options ...types.Option[types.FrameSensor]) types.FrameSensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.FrameSensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithMeter connects one or more meters fed by the sensed activity.
func SensorWithMeter(meter ...types.FrameMeter) types.Option[types.FrameSensor] {
	return sensor.WithMeter(meter...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata(name string, id string) types.Option[types.FrameSensor] {
	return sensor.WithComponentMetadata(name, id)
}

// SensorWithOnStreamStartFunc registers a callback for the OnStreamStart event.
func SensorWithOnStreamStartFunc(callback ...func(c ComponentMetadata)) types.Option[types.FrameSensor] {
	return sensor.WithOnStreamStartFunc(callback...)
}

// SensorWithOnStreamStopFunc registers a callback for the OnStreamStop event.
func SensorWithOnStreamStopFunc(callback ...func(c ComponentMetadata)) types.Option[types.FrameSensor] {
	return sensor.WithOnStreamStopFunc(callback...)
}

// SensorWithOnStreamRestartFunc registers a callback for the OnStreamRestart event.
func SensorWithOnStreamRestartFunc(callback ...func(c ComponentMetadata)) types.Option[types.FrameSensor] {
	return sensor.WithOnStreamRestartFunc(callback...)
}

// SensorWithOnFrameFunc registers a callback for the OnFrame event.
func SensorWithOnFrameFunc(callback ...func(c ComponentMetadata, frame Frame)) types.Option[types.FrameSensor] {
	return sensor.WithOnFrameFunc(callback...)
}

// SensorWithOnSubmitErrorFunc registers a callback for the OnSubmitError event.
func SensorWithOnSubmitErrorFunc(callback ...func(c ComponentMetadata, err error, frame Frame)) types.Option[types.FrameSensor] {
	return sensor.WithOnSubmitErrorFunc(callback...)
}

// SensorWithOnCancelFunc registers a callback for the OnCancel event.
func SensorWithOnCancelFunc(callback ...func(c ComponentMetadata, frame Frame)) types.Option[types.FrameSensor] {
	return sensor.WithOnCancelFunc(callback...)
}

// SensorWithOnRecordWriteFunc registers a callback for the OnRecordWrite event.
func SensorWithOnRecordWriteFunc(callback ...func(c ComponentMetadata, frame Frame)) types.Option[types.FrameSensor] {
	return sensor.WithOnRecordWriteFunc(callback...)
}

// SensorWithOnRecordFlushFunc registers a callback for the OnRecordFlush event.
func SensorWithOnRecordFlushFunc(callback ...func(c ComponentMetadata)) types.Option[types.FrameSensor] {
	return sensor.WithOnRecordFlushFunc(callback...)
}

// SensorWithOnRecordErrorFunc registers a callback for the OnRecordError event.
func SensorWithOnRecordErrorFunc(callback ...func(c ComponentMetadata, err error)) types.Option[types.FrameSensor] {
	return sensor.WithOnRecordErrorFunc(callback...)
}
