package buffersink

import (
	"context"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// Submit stores one frame. A cancelled context rejects the frame; otherwise
// Submit never fails. Once a bounded sink is full, each new frame overwrites
// the oldest retained one.
func (b *BufferSink) Submit(ctx context.Context, frame types.Frame) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	b.mu.Lock()
	if b.capacity > 0 && len(b.frames) >= b.capacity {
		b.frames[b.head] = frame
		b.head = (b.head + 1) % b.capacity
		b.dropped++
	} else {
		b.frames = append(b.frames, frame)
	}
	b.mu.Unlock()

	return nil
}
