package stream

import (
	"context"
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// emitFrames runs the evaluation loop until the frame limit is reached or the
// context is cancelled. Curve time advances by multiplication, not
// accumulation, so frame n carries exactly float64(n) * dt.
func (s *Streamer) emitFrames(ctx context.Context) {
	s.configLock.Lock()
	curve := s.curve
	dt := s.dt
	interval := s.interval
	limit := s.frameLimit
	outputs := append([]types.FrameSubmitter(nil), s.outputs...)
	s.configLock.Unlock()

	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}

	for seq := uint64(0); limit == 0 || seq < limit; seq++ {
		frame := frameAt(curve, seq, dt)

		if ticker != nil {
			select {
			case <-ctx.Done():
				s.notifyCancel(frame)
				return
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			s.notifyCancel(frame)
			return
		}

		s.submitFrame(ctx, outputs, frame)
		if ctx.Err() != nil {
			s.notifyCancel(frame)
			return
		}
		s.notifyFrame(frame)
	}

	s.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: emitFrames, frames: %d => Frame limit reached", s.componentMetadata, limit)
}

// submitFrame hands one frame to every connected output in order. A rejecting
// output does not stop delivery to the remaining outputs.
func (s *Streamer) submitFrame(ctx context.Context, outputs []types.FrameSubmitter, frame types.Frame) {
	for _, out := range outputs {
		if err := out.Submit(ctx, frame); err != nil {
			s.notifySubmitError(err, frame)
			s.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: submitFrame, target: %v, error: %v => Output rejected frame %d", s.componentMetadata, out.GetComponentMetadata(), err, frame.Seq)
		}
	}
}

func frameAt(curve types.VectorEvaluator, seq uint64, dt float64) types.Frame {
	t := float64(seq) * dt
	return types.Frame{Seq: int(seq), T: t, Values: curve.Evaluate(t)}
}
