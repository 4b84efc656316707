package stream

import "github.com/joeydtaylor/meander/pkg/internal/types"

// ConnectCurve sets the curve the streamer walks.
// Panics if called after Start.
func (s *Streamer) ConnectCurve(curve types.VectorEvaluator) {
	s.requireNotStarted("ConnectCurve")

	s.configLock.Lock()
	s.curve = curve
	s.configLock.Unlock()

	if curve != nil {
		s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: ConnectCurve, dims: %d => Connected curve", s.componentMetadata, curve.Dims())
	}
}

// ConnectOutput registers frame sinks for the streamer.
// Panics if called after Start.
func (s *Streamer) ConnectOutput(outputs ...types.FrameSubmitter) {
	s.requireNotStarted("ConnectOutput")

	if len(outputs) == 0 {
		return
	}

	n := 0
	for _, out := range outputs {
		if out != nil {
			outputs[n] = out
			n++
		}
	}
	if n == 0 {
		return
	}
	outputs = outputs[:n]

	s.configLock.Lock()
	s.outputs = append(s.outputs, outputs...)
	s.configLock.Unlock()

	for _, out := range outputs {
		s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: ConnectOutput, target: %v => Connected output", s.componentMetadata, out.GetComponentMetadata())
	}
}

// ConnectLogger registers loggers for the streamer. Loggers may be attached
// at any time, including while the streamer is running.
func (s *Streamer) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	s.loggersLock.Lock()
	s.loggers = append(s.loggers, loggers...)
	s.loggersLock.Unlock()
}

// ConnectSensor registers sensors for the streamer.
// Panics if called after Start.
func (s *Streamer) ConnectSensor(sensors ...types.FrameSensor) {
	s.requireNotStarted("ConnectSensor")

	if len(sensors) == 0 {
		return
	}

	n := 0
	for _, sn := range sensors {
		if sn != nil {
			sensors[n] = sn
			n++
		}
	}
	if n == 0 {
		return
	}
	sensors = sensors[:n]

	s.sensorsLock.Lock()
	s.sensors = append(s.sensors, sensors...)
	s.sensorsLock.Unlock()

	for _, sn := range sensors {
		s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: ConnectSensor, target: %v => Connected sensor", s.componentMetadata, sn.GetComponentMetadata())
	}
}

// ConnectMeter registers meters fed directly with every emitted frame.
// Panics if called after Start.
func (s *Streamer) ConnectMeter(meters ...types.FrameMeter) {
	s.requireNotStarted("ConnectMeter")

	if len(meters) == 0 {
		return
	}

	n := 0
	for _, m := range meters {
		if m != nil {
			meters[n] = m
			n++
		}
	}
	if n == 0 {
		return
	}
	meters = meters[:n]

	s.metersLock.Lock()
	s.meters = append(s.meters, meters...)
	s.metersLock.Unlock()

	for _, m := range meters {
		s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: ConnectMeter, target: %v => Connected meter", s.componentMetadata, m.GetComponentMetadata())
	}
}
