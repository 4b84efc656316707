package meter

import "github.com/joeydtaylor/meander/pkg/internal/types"

// WithLogger creates an option to add a logger to a Meter.
func WithLogger(logger ...types.Logger) types.Option[types.FrameMeter] {
	return func(m types.FrameMeter) {
		m.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to override the meter's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.FrameMeter] {
	return func(m types.FrameMeter) {
		m.SetComponentMetadata(name, id)
	}
}
