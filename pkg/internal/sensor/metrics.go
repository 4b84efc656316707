package sensor

import "github.com/joeydtaylor/meander/pkg/internal/types"

func (s *Sensor) snapshotMeters() []types.FrameMeter {
	s.metersLock.Lock()
	meters := append([]types.FrameMeter(nil), s.meters...)
	s.metersLock.Unlock()
	return meters
}

func (s *Sensor) incrementMeterCounters(metric string) {
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(metric)
	}
}

func (s *Sensor) decrementMeterCounters(metric string) {
	for _, m := range s.snapshotMeters() {
		m.DecrementCount(metric)
	}
}

func (s *Sensor) observeFrameOnMeters(frame types.Frame) {
	for _, m := range s.snapshotMeters() {
		m.ObserveFrame(frame)
	}
}

func (s *Sensor) startMeterTimers(metric string) {
	for _, m := range s.snapshotMeters() {
		m.StartTimer(metric)
	}
}

func (s *Sensor) stopMeterTimers(metric string) {
	for _, m := range s.snapshotMeters() {
		m.StopTimer(metric)
	}
}
