// Package buffersink provides an in-memory frame sink for demos and tests.
// A BufferSink accepts frames from a streamer and retains the most recent
// ones up to a fixed capacity, dropping the oldest beyond it.
package buffersink

import (
	"sync"

	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/joeydtaylor/meander/pkg/internal/utils"
)

// DefaultCapacity bounds a BufferSink when no explicit capacity is
// configured.
const DefaultCapacity = 4096

// BufferSink collects submitted frames in memory. Bounded sinks keep the most
// recent frames; capacity zero or below means unbounded. Safe for concurrent
// use.
type BufferSink struct {
	componentMetadata types.ComponentMetadata

	mu       sync.Mutex
	frames   []types.Frame
	head     int // index of the oldest frame once the ring has wrapped
	capacity int
	dropped  uint64

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewBufferSink constructs a BufferSink with the default capacity and applies
// options.
func NewBufferSink(options ...types.Option[*BufferSink]) *BufferSink {
	b := &BufferSink{
		componentMetadata: types.ComponentMetadata{
			Type: "BUFFER_SINK",
			ID:   utils.GenerateUniqueHash(),
		},
		capacity: DefaultCapacity,
		loggers:  make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	return b
}
