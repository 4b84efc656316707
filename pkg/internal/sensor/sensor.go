package sensor

import (
	"sync"

	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/joeydtaylor/meander/pkg/internal/utils"
)

// Sensor provides callback hooks for component telemetry.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnStreamStart   []func(types.ComponentMetadata)
	OnStreamStop    []func(types.ComponentMetadata)
	OnStreamRestart []func(types.ComponentMetadata)
	OnFrame         []func(types.ComponentMetadata, types.Frame)
	OnSubmitError   []func(types.ComponentMetadata, error, types.Frame)
	OnCancel        []func(types.ComponentMetadata, types.Frame)
	OnRecordWrite   []func(types.ComponentMetadata, types.Frame)
	OnRecordFlush   []func(types.ComponentMetadata)
	OnRecordError   []func(types.ComponentMetadata, error)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
	meters       []types.FrameMeter
	metersLock   sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.FrameSensor]) types.FrameSensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range s.decorateCallbacks(options...) {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

// decorateCallbacks appends the standard meter-feeding callbacks after the
// caller's options so connected meters track sensed activity automatically.
func (s *Sensor) decorateCallbacks(options ...types.Option[types.FrameSensor]) []types.Option[types.FrameSensor] {
	options = append(
		options,
		WithOnStreamStartFunc(func(c types.ComponentMetadata) {
			s.incrementMeterCounters(types.MetricStreamRunningCount)
			s.startMeterTimers(types.MetricProcessDuration)
		}),
		WithOnStreamStopFunc(func(c types.ComponentMetadata) {
			s.decrementMeterCounters(types.MetricStreamRunningCount)
			s.stopMeterTimers(types.MetricProcessDuration)
		}),
		WithOnStreamRestartFunc(func(c types.ComponentMetadata) {
			s.incrementMeterCounters(types.MetricStreamRestartCount)
		}),
		WithOnFrameFunc(func(c types.ComponentMetadata, frame types.Frame) {
			s.observeFrameOnMeters(frame)
		}),
		WithOnSubmitErrorFunc(func(c types.ComponentMetadata, err error, frame types.Frame) {
			s.incrementMeterCounters(types.MetricStreamSubmitErrorCount)
		}),
		WithOnCancelFunc(func(c types.ComponentMetadata, frame types.Frame) {
			s.incrementMeterCounters(types.MetricStreamCancelCount)
		}),
		WithOnRecordWriteFunc(func(c types.ComponentMetadata, frame types.Frame) {
			s.incrementMeterCounters(types.MetricRecorderWriteCount)
		}),
		WithOnRecordFlushFunc(func(c types.ComponentMetadata) {
			s.incrementMeterCounters(types.MetricRecorderFlushCount)
		}),
		WithOnRecordErrorFunc(func(c types.ComponentMetadata, err error) {
			s.incrementMeterCounters(types.MetricRecorderErrorCount)
		}),
	)
	return options
}
