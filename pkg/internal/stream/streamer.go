// Package stream drives a clocked walk over a curve and pushes the resulting
// frames into connected sinks. A Streamer owns the clock the core curve model
// deliberately does not: it evaluates the curve at a fixed time step per frame
// and, independently, paces emission against the wall clock.
//
// Two pacing modes exist. With an interval configured, one frame is emitted
// per tick of a wall-clock ticker. With no interval, frames are emitted as
// fast as the connected outputs accept them until the frame limit is reached
// or the context is cancelled. Curve time and wall-clock time are independent
// axes: the nth frame always carries curve time n·dt regardless of pacing.
//
// Configuration is frozen at Start; mutating methods panic once the streamer
// is running. Loggers are the exception and may be attached at any time.
package stream

import (
	"context"
	"sync"
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/joeydtaylor/meander/pkg/internal/utils"
)

// DefaultTimeStep is the curve-time increment per frame used when no explicit
// time step is configured.
const DefaultTimeStep = 0.01

// Streamer walks a curve at a fixed time step and submits each frame to every
// connected output in order.
type Streamer struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	componentMetadata types.ComponentMetadata

	configLock sync.Mutex
	curve      types.VectorEvaluator
	outputs    []types.FrameSubmitter
	dt         float64
	interval   time.Duration
	frameLimit uint64

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.FrameSensor
	sensorsLock sync.Mutex
	meters      []types.FrameMeter
	metersLock  sync.Mutex

	started  int32
	stopOnce sync.Once
	stopLock sync.Mutex
}

// NewStreamer constructs a Streamer with defaults and applies options. The
// context bounds the streamer's whole lifetime; each Start additionally takes
// its own run context.
func NewStreamer(ctx context.Context, options ...types.Option[types.Streamer]) types.Streamer {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithCancel(ctx)

	s := &Streamer{
		ctx:    ctx,
		cancel: cancel,
		componentMetadata: types.ComponentMetadata{
			Type: "STREAMER",
			ID:   utils.GenerateUniqueHash(),
		},
		outputs: make([]types.FrameSubmitter, 0),
		loggers: make([]types.Logger, 0),
		sensors: make([]types.FrameSensor, 0),
		meters:  make([]types.FrameMeter, 0),
		dt:      DefaultTimeStep,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}
