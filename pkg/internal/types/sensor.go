package types

// FrameSensor observes the activity of streamers and trace writers through
// registered callbacks. Components invoke the matching hook at each lifecycle
// transition or per-frame event; sensors never participate in the data path.
type FrameSensor interface {
	RegisterOnStreamStart(callback ...func(c ComponentMetadata))
	InvokeOnStreamStart(c ComponentMetadata)

	RegisterOnStreamStop(callback ...func(c ComponentMetadata))
	InvokeOnStreamStop(c ComponentMetadata)

	RegisterOnStreamRestart(callback ...func(c ComponentMetadata))
	InvokeOnStreamRestart(c ComponentMetadata)

	// RegisterOnFrame registers a callback invoked for every frame a streamer
	// emits. This is particularly useful for real-time monitoring and
	// processing feedback.
	RegisterOnFrame(callback ...func(c ComponentMetadata, frame Frame))
	InvokeOnFrame(c ComponentMetadata, frame Frame)

	// RegisterOnSubmitError registers a callback invoked when a connected
	// output rejects a frame, allowing for immediate and custom error
	// handling strategies.
	RegisterOnSubmitError(callback ...func(c ComponentMetadata, err error, frame Frame))
	InvokeOnSubmitError(c ComponentMetadata, err error, frame Frame)

	// RegisterOnCancel registers a callback invoked when a stream is cut short
	// by context cancellation. This allows for custom actions based on
	// cancellation scenarios.
	RegisterOnCancel(callback ...func(c ComponentMetadata, frame Frame))
	InvokeOnCancel(c ComponentMetadata, frame Frame)

	RegisterOnRecordWrite(callback ...func(c ComponentMetadata, frame Frame))
	InvokeOnRecordWrite(c ComponentMetadata, frame Frame)

	RegisterOnRecordFlush(callback ...func(c ComponentMetadata))
	InvokeOnRecordFlush(c ComponentMetadata)

	// RegisterOnRecordError registers a callback invoked when a trace writer
	// fails to encode, flush, or finalize.
	RegisterOnRecordError(callback ...func(c ComponentMetadata, err error))
	InvokeOnRecordError(c ComponentMetadata, err error)

	// ConnectLogger attaches one or more loggers to the sensor, used to record
	// significant events and states within the observed components.
	ConnectLogger(...Logger)

	// ConnectMeter attaches one or more meters. Registered meters are fed the
	// standard counting callbacks so sensed activity shows up in metrics
	// without extra wiring.
	ConnectMeter(meter ...FrameMeter)

	GetMeters() []FrameMeter

	// NotifyLoggers sends a formatted log message to all attached loggers at a specified log level.
	NotifyLoggers(level LogLevel, format string, args ...interface{})

	// GetComponentMetadata retrieves metadata about the sensor, including identifiers like name and ID,
	// useful for logging and monitoring purposes.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata sets the metadata for the sensor, such as its name and ID.
	SetComponentMetadata(name string, id string)
}
