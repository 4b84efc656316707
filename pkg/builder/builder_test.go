package builder_test

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/joeydtaylor/meander/pkg/builder"
)

func TestSampledCurvesAreDeterministicPerSeed(t *testing.T) {
	a := builder.SampleMeander(3, builder.NewRandomSource(42))
	b := builder.SampleMeander(3, builder.NewRandomSource(42))

	for _, tt := range []float64{0, 0.1, 1.5, 100, 12345.678} {
		va := a.Evaluate(tt)
		vb := b.Evaluate(tt)
		for d := range va {
			if math.Float64bits(va[d]) != math.Float64bits(vb[d]) {
				t.Fatalf("equal seeds diverged at t=%v dim %d: %v vs %v", tt, d, va[d], vb[d])
			}
			if va[d] < 0 || va[d] > 1 {
				t.Fatalf("value out of [0, 1] at t=%v dim %d: %v", tt, d, va[d])
			}
		}
	}
}

func TestStreamedFramesMatchTimeStepCursor(t *testing.T) {
	ctx := context.Background()

	const (
		dims  = 2
		dt    = 0.05
		limit = 64
	)
	m := builder.SampleMeander(dims, builder.NewRandomSource(7))

	sink := builder.NewBufferSink(builder.BufferSinkWithCapacity(0))
	s := builder.NewStreamer(ctx,
		builder.StreamerWithCurve(m),
		builder.StreamerWithOutput(sink),
		builder.StreamerWithTimeStep(dt),
		builder.StreamerWithFrameLimit(limit),
	)

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && s.IsStarted() {
		time.Sleep(time.Millisecond)
	}
	if s.IsStarted() {
		t.Fatalf("streamer did not finish before deadline")
	}

	steps := m.TimeSteps(dt)
	frames := sink.Frames()
	if len(frames) != limit {
		t.Fatalf("expected %d frames, got %d", limit, len(frames))
	}
	for i, frame := range frames {
		want := steps.Next()
		if frame.Seq != i {
			t.Fatalf("expected Seq %d, got %d", i, frame.Seq)
		}
		for d := range want {
			if math.Float64bits(frame.Values[d]) != math.Float64bits(want[d]) {
				t.Fatalf("stream and cursor disagree at frame %d dim %d: %v vs %v", i, d, frame.Values[d], want[d])
			}
		}
	}
}

func TestRecordAndReplayTrace(t *testing.T) {
	ctx := context.Background()

	m := builder.SampleMeander(3, builder.NewRandomSource(99))

	var trace bytes.Buffer
	w, err := builder.NewTraceWriter(&trace,
		builder.TraceWriterWithFormat(builder.NewGobFormat()),
		builder.TraceWriterWithCompression(builder.COMPRESS_ZSTD),
	)
	if err != nil {
		t.Fatalf("NewTraceWriter error: %v", err)
	}

	sink := builder.NewBufferSink()
	s := builder.NewStreamer(ctx,
		builder.StreamerWithCurve(m),
		builder.StreamerWithOutput(sink, w),
		builder.StreamerWithTimeStep(0.01),
		builder.StreamerWithFrameLimit(32),
	)

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && s.IsStarted() {
		time.Sleep(time.Millisecond)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("trace writer Close error: %v", err)
	}

	r, err := builder.NewTraceReader(&trace,
		builder.TraceReaderWithFormat(builder.NewGobFormat()),
		builder.TraceReaderWithCompression(builder.COMPRESS_ZSTD),
	)
	if err != nil {
		t.Fatalf("NewTraceReader error: %v", err)
	}
	replayed, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}

	live := sink.Frames()
	if len(replayed) != len(live) {
		t.Fatalf("expected %d replayed frames, got %d", len(live), len(replayed))
	}
	for i := range live {
		if replayed[i].Seq != live[i].Seq || math.Float64bits(replayed[i].T) != math.Float64bits(live[i].T) {
			t.Fatalf("replay header mismatch at %d: %+v vs %+v", i, replayed[i], live[i])
		}
		for d := range live[i].Values {
			if math.Float64bits(replayed[i].Values[d]) != math.Float64bits(live[i].Values[d]) {
				t.Fatalf("replay value mismatch at frame %d dim %d", i, d)
			}
		}
	}
}

func TestAnalyzeSpectrumFindsOscillatorFrequency(t *testing.T) {
	u, err := builder.NewUnitSinusoid(2.5, 0)
	if err != nil {
		t.Fatalf("NewUnitSinusoid error: %v", err)
	}

	const (
		sampleRate = 64.0
		n          = 1024
	)
	samples := builder.TraceSamples(u, 1/sampleRate, n)
	info := builder.AnalyzeSpectrum(samples, sampleRate)

	if math.Abs(info.DominantFrequency-2.5) > sampleRate/n {
		t.Fatalf("expected dominant frequency near 2.5 Hz, got %v", info.DominantFrequency)
	}
}
