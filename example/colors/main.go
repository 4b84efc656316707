package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/meander/pkg/builder"
)

// toByte scales a unit value to an 8-bit channel, clamping the open upper
// bound so 1.0 maps to 255.
func toByte(v float64) int {
	n := int(v * 256)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	// Three dimensions, one per color channel. Every run draws a new palette.
	m := builder.SampleMeander(3, builder.NewAutoSeededRandomSource())

	frames := builder.EnvIntOr("MEANDER_COLOR_FRAMES", 64)
	sink := builder.NewBufferSink(builder.BufferSinkWithCapacity(frames))

	streamer := builder.NewStreamer(ctx,
		builder.StreamerWithCurve(m),
		builder.StreamerWithOutput(sink),
		builder.StreamerWithTimeStep(0.02),
		builder.StreamerWithInterval(25*time.Millisecond),
		builder.StreamerWithFrameLimit(uint64(frames)),
		builder.StreamerWithLogger(logger),
		builder.StreamerWithComponentMetadata("color-streamer", "colors-1"),
	)

	if err := streamer.Start(ctx); err != nil {
		fmt.Printf("Error starting streamer: %v\n", err)
		return
	}
	for streamer.IsStarted() {
		select {
		case <-ctx.Done():
		case <-time.After(10 * time.Millisecond):
		}
	}
	_ = streamer.Stop()

	fmt.Println("Wandering palette:")
	for _, frame := range sink.Frames() {
		r := toByte(frame.Values[0])
		g := toByte(frame.Values[1])
		b := toByte(frame.Values[2])
		fmt.Printf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
	}
	fmt.Println()
	fmt.Printf("%d frames, 3 channels, values held inside [0, 1]\n", sink.Len())
}
