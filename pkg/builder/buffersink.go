package builder

import (
	"github.com/joeydtaylor/meander/pkg/internal/buffersink"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

type BufferSink = buffersink.BufferSink

// DefaultBufferSinkCapacity is the frame capacity a buffer sink uses when
// none is configured.
const DefaultBufferSinkCapacity = buffersink.DefaultCapacity

// NewBufferSink creates an in-memory frame sink. At capacity it drops the
// oldest frame to admit the newest.
func NewBufferSink(options ...types.Option[*buffersink.BufferSink]) *buffersink.BufferSink {
	return buffersink.NewBufferSink(options...)
}

// BufferSinkWithCapacity bounds the number of retained frames. Zero keeps
// every frame.
func BufferSinkWithCapacity(n int) types.Option[*buffersink.BufferSink] {
	return buffersink.WithCapacity(n)
}

// BufferSinkWithLogger adds a logger to the buffer sink.
func BufferSinkWithLogger(loggers ...types.Logger) types.Option[*buffersink.BufferSink] {
	return buffersink.WithLogger(loggers...)
}

// BufferSinkWithComponentMetadata adds component metadata overrides.
func BufferSinkWithComponentMetadata(name string, id string) types.Option[*buffersink.BufferSink] {
	return buffersink.WithComponentMetadata(name, id)
}
