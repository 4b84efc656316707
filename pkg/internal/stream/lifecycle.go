package stream

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// Start begins the clocked evaluation loop. It returns an error if the
// streamer is already running or has no curve connected.
func (s *Streamer) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return fmt.Errorf("streamer already started")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		atomic.StoreInt32(&s.started, 0)
		return err
	}

	s.configLock.Lock()
	curve := s.curve
	s.configLock.Unlock()
	if curve == nil {
		atomic.StoreInt32(&s.started, 0)
		return fmt.Errorf("streamer has no curve connected")
	}

	s.stopLock.Lock()
	s.stopOnce = sync.Once{}
	s.stopLock.Unlock()

	s.notifyStart()

	s.configLock.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	runCtx := s.ctx
	s.configLock.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.emitFrames(runCtx)
	}()

	go func() {
		s.wg.Wait()
		_ = s.Stop()
	}()

	s.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Start => Streamer started", s.componentMetadata)
	return nil
}

// Stop halts the evaluation loop and waits for it to exit.
func (s *Streamer) Stop() error {
	s.stopLock.Lock()
	defer s.stopLock.Unlock()

	s.stopOnce.Do(func() {
		if atomic.CompareAndSwapInt32(&s.started, 1, 0) {
			s.notifyStop()
			s.configLock.Lock()
			cancel := s.cancel
			s.configLock.Unlock()
			if cancel != nil {
				cancel()
			}
			s.wg.Wait()
			s.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Stop => Streamer stopped", s.componentMetadata)
		}
	})
	return nil
}

// Restart stops the streamer and starts it again from step zero.
func (s *Streamer) Restart(ctx context.Context) error {
	if err := s.Stop(); err != nil {
		return fmt.Errorf("failed to stop streamer during restart: %w", err)
	}

	s.notifyRestart()
	return s.Start(ctx)
}
