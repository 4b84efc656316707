package meter

import "github.com/joeydtaylor/meander/pkg/internal/types"

// GetComponentMetadata returns the meter's metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

// SetComponentMetadata updates the meter's name and id.
func (m *Meter) SetComponentMetadata(name string, id string) {
	oldMetadata := m.componentMetadata
	m.componentMetadata.Name = name
	m.componentMetadata.ID = id
	m.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: SetComponentMetadata, old: %v, new: %v => Component metadata updated", m.componentMetadata, oldMetadata, m.componentMetadata)
}
