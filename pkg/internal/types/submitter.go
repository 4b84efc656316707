package types

import "context"

// FrameSubmitter defines the operations required for components that accept
// frames from a streamer. This interface is designed to handle outgoing data
// operations, ensuring that frames can be handed to sinks such as in-memory
// buffers or trace writers efficiently and reliably.
type FrameSubmitter interface {
	// Submit hands one frame to the component. This method handles the
	// logistics of data submission, including error handling, depending on
	// the implementation. Context is used to manage timeouts and cancellations.
	Submit(ctx context.Context, frame Frame) error

	// ConnectLogger attaches one or more Logger instances to the submitter. These loggers
	// are used to output logs that are useful for monitoring the submission process and diagnosing issues.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a formatted log message to all attached loggers at a specified log level.
	NotifyLoggers(level LogLevel, format string, args ...interface{})

	// GetComponentMetadata retrieves the metadata associated with the submitter, including identifiers
	// such as name and ID, which are useful for logging, monitoring, and managing configurations dynamically.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata configures specific metadata fields such as name and ID for the submitter.
	SetComponentMetadata(name string, id string)
}
