package adapter

import (
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// Workspace supplies the project folders opened by the host environment.
type Workspace interface {
	// Folders returns the configured project roots in priority order.
	Folders() []m.Path
}

// StaticWorkspace is a Workspace backed by a fixed list of folders.
type StaticWorkspace []m.Path

// NewStaticWorkspace builds a StaticWorkspace, dropping empty entries.
func NewStaticWorkspace(folders ...string) StaticWorkspace {
	ws := make(StaticWorkspace, 0, len(folders))
	for _, folder := range folders {
		if folder == "" {
			continue
		}

		ws = append(ws, m.Path(folder))
	}

	return ws
}

// Folders implements Workspace.
func (w StaticWorkspace) Folders() []m.Path {
	return w
}
