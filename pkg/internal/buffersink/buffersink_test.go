package buffersink_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/joeydtaylor/meander/pkg/internal/buffersink"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

func frame(seq int) types.Frame {
	return types.Frame{Seq: seq, T: float64(seq) * 0.5, Values: []float64{float64(seq)}}
}

func TestBufferSinkCollectsFramesInOrder(t *testing.T) {
	ctx := context.Background()
	b := buffersink.NewBufferSink()

	for i := 0; i < 10; i++ {
		if err := b.Submit(ctx, frame(i)); err != nil {
			t.Fatalf("Submit error at %d: %v", i, err)
		}
	}

	if got := b.Len(); got != 10 {
		t.Fatalf("expected Len 10, got %d", got)
	}
	if got := b.Dropped(); got != 0 {
		t.Fatalf("expected no drops, got %d", got)
	}
	for i, f := range b.Frames() {
		if f.Seq != i {
			t.Fatalf("expected Seq %d at position %d, got %d", i, i, f.Seq)
		}
	}
}

func TestBufferSinkDropsOldestAtCapacity(t *testing.T) {
	ctx := context.Background()
	b := buffersink.NewBufferSink(buffersink.WithCapacity(4))

	for i := 0; i < 10; i++ {
		if err := b.Submit(ctx, frame(i)); err != nil {
			t.Fatalf("Submit error at %d: %v", i, err)
		}
	}

	if got := b.Len(); got != 4 {
		t.Fatalf("expected Len 4, got %d", got)
	}
	if got := b.Dropped(); got != 6 {
		t.Fatalf("expected 6 dropped frames, got %d", got)
	}

	frames := b.Frames()
	for i, f := range frames {
		want := 6 + i
		if f.Seq != want {
			t.Fatalf("expected Seq %d at position %d, got %d", want, i, f.Seq)
		}
	}
}

func TestBufferSinkZeroCapacityIsUnbounded(t *testing.T) {
	ctx := context.Background()
	b := buffersink.NewBufferSink(buffersink.WithCapacity(0))

	if got := b.Capacity(); got != 0 {
		t.Fatalf("expected capacity 0, got %d", got)
	}
	for i := 0; i < 20; i++ {
		if err := b.Submit(ctx, frame(i)); err != nil {
			t.Fatalf("Submit error at %d: %v", i, err)
		}
	}
	if got := b.Len(); got != 20 {
		t.Fatalf("expected Len 20, got %d", got)
	}
	if got := b.Dropped(); got != 0 {
		t.Fatalf("expected no drops, got %d", got)
	}
}

func TestBufferSinkRejectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := buffersink.NewBufferSink()
	if err := b.Submit(ctx, frame(0)); err == nil {
		t.Fatalf("expected Submit to reject a canceled context")
	}
	if got := b.Len(); got != 0 {
		t.Fatalf("expected empty buffer, got Len %d", got)
	}
}

func TestBufferSinkReset(t *testing.T) {
	ctx := context.Background()
	b := buffersink.NewBufferSink(buffersink.WithCapacity(2))

	for i := 0; i < 5; i++ {
		if err := b.Submit(ctx, frame(i)); err != nil {
			t.Fatalf("Submit error at %d: %v", i, err)
		}
	}
	b.Reset()

	if got := b.Len(); got != 0 {
		t.Fatalf("expected Len 0 after Reset, got %d", got)
	}
	if got := b.Dropped(); got != 0 {
		t.Fatalf("expected Dropped 0 after Reset, got %d", got)
	}

	if err := b.Submit(ctx, frame(42)); err != nil {
		t.Fatalf("Submit error after Reset: %v", err)
	}
	frames := b.Frames()
	if len(frames) != 1 || frames[0].Seq != 42 {
		t.Fatalf("expected a single frame with Seq 42 after Reset, got %v", frames)
	}
}

func TestBufferSinkLoadAsJSONArray(t *testing.T) {
	ctx := context.Background()
	b := buffersink.NewBufferSink()

	want := []types.Frame{frame(0), frame(1), frame(2)}
	for _, f := range want {
		if err := b.Submit(ctx, f); err != nil {
			t.Fatalf("Submit error: %v", err)
		}
	}

	data, err := b.LoadAsJSONArray()
	if err != nil {
		t.Fatalf("LoadAsJSONArray error: %v", err)
	}

	var got []types.Frame
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Seq != want[i].Seq || got[i].T != want[i].T {
			t.Fatalf("frame %d mismatch: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
