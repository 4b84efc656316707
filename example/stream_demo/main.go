package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/meander/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	meter := builder.NewMeter(
		builder.MeterWithComponentMetadata("stream-meter", "meter-1"),
	)

	sensor := builder.NewSensor(
		builder.SensorWithMeter(meter),
		builder.SensorWithOnStreamStartFunc(func(c builder.ComponentMetadata) {
			fmt.Printf("Stream started: %s\n", c.ID)
		}),
		builder.SensorWithOnStreamStopFunc(func(c builder.ComponentMetadata) {
			fmt.Printf("Stream stopped: %s\n", c.ID)
		}),
	)

	m := builder.SampleMeander(4, builder.NewAutoSeededRandomSource())
	sink := builder.NewBufferSink(builder.BufferSinkWithCapacity(1024))

	streamer := builder.NewStreamer(ctx,
		builder.StreamerWithCurve(m),
		builder.StreamerWithOutput(sink),
		builder.StreamerWithTimeStep(builder.EnvFloatOr("MEANDER_DT", builder.DefaultTimeStep)),
		builder.StreamerWithInterval(5*time.Millisecond),
		builder.StreamerWithSensor(sensor),
		builder.StreamerWithLogger(logger),
	)

	if err := streamer.Start(ctx); err != nil {
		fmt.Printf("Error starting streamer: %v\n", err)
		return
	}

	<-ctx.Done()
	_ = streamer.Stop()

	fmt.Println("Stream Summary:")
	fmt.Printf("  frames emitted:  %d\n", meter.GetMetricCount(string(builder.MetricStreamFrameCount)))
	fmt.Printf("  submit errors:   %d\n", meter.GetMetricCount(string(builder.MetricStreamSubmitErrorCount)))
	fmt.Printf("  frame rate:      %.1f/s\n", meter.FrameRate())

	if envelope, ok := meter.GetEnvelope(); ok {
		for d := range envelope.Min {
			fmt.Printf("  dim %d bounds:    [%.4f, %.4f]\n", d, envelope.Min[d], envelope.Max[d])
		}
	}

	if host, err := meter.HostSnapshot(); err == nil {
		fmt.Printf("  host cpu:        %.1f%%\n", host.CPUPercent)
		fmt.Printf("  host mem:        %.1f%%\n", host.MemUsedPercent)
		fmt.Printf("  goroutines:      %d\n", host.NumGoroutine)
	}

	output, err := sink.LoadAsJSONArray()
	if err != nil {
		fmt.Printf("Error converting output to JSON: %v\n", err)
		return
	}
	fmt.Printf("  buffered frames: %d (%d bytes as JSON)\n", sink.Len(), len(output))
}
