package buffersink

import "github.com/joeydtaylor/meander/pkg/internal/types"

// WithCapacity sets how many frames the sink retains before dropping the
// oldest. Zero or negative means unbounded.
func WithCapacity(n int) types.Option[*BufferSink] {
	return func(b *BufferSink) {
		if n < 0 {
			n = 0
		}
		b.capacity = n
	}
}

// WithLogger registers loggers for the sink.
func WithLogger(l ...types.Logger) types.Option[*BufferSink] {
	return func(b *BufferSink) {
		b.ConnectLogger(l...)
	}
}

// WithComponentMetadata overrides the sink's name and id.
func WithComponentMetadata(name string, id string) types.Option[*BufferSink] {
	return func(b *BufferSink) {
		b.SetComponentMetadata(name, id)
	}
}
