package buffersink

import (
	"encoding/json"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// Frames returns the retained frames in submission order, oldest first.
func (b *BufferSink) Frames() []types.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]types.Frame, 0, len(b.frames))
	out = append(out, b.frames[b.head:]...)
	out = append(out, b.frames[:b.head]...)
	return out
}

// Len reports how many frames the sink currently retains.
func (b *BufferSink) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.frames)
}

// Dropped reports how many frames were evicted to make room for newer ones.
func (b *BufferSink) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Capacity returns the configured retention bound; zero means unbounded.
func (b *BufferSink) Capacity() int {
	return b.capacity
}

// Reset discards all retained frames and clears the drop counter.
func (b *BufferSink) Reset() {
	b.mu.Lock()
	b.frames = nil
	b.head = 0
	b.dropped = 0
	b.mu.Unlock()
}

// LoadAsJSONArray returns the retained frames marshalled as one JSON array.
func (b *BufferSink) LoadAsJSONArray() ([]byte, error) {
	return json.Marshal(b.Frames())
}

// GetComponentMetadata returns the sink's metadata.
func (b *BufferSink) GetComponentMetadata() types.ComponentMetadata {
	return b.componentMetadata
}

// SetComponentMetadata updates the sink's name and id.
func (b *BufferSink) SetComponentMetadata(name string, id string) {
	b.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: b.componentMetadata.Type}
}
