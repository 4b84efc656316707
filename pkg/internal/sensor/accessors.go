package sensor

import "github.com/joeydtaylor/meander/pkg/internal/types"

// GetComponentMetadata returns the sensor's metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	defer s.metadataLock.Unlock()
	return s.componentMetadata
}

// GetMeters returns the currently connected meters.
func (s *Sensor) GetMeters() []types.FrameMeter {
	return s.snapshotMeters()
}

// SetComponentMetadata updates the sensor's name and id.
func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	oldMetadata := s.componentMetadata
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
	newMetadata := s.componentMetadata
	s.metadataLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: SetComponentMetadata, old: %v, new: %v => Component metadata updated", newMetadata, oldMetadata, newMetadata)
}
