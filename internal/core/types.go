package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Editor is implemented by sims that support interactive cell editing.
// Toggle flips a single cell; Clear kills the whole field.
type Editor interface {
	ToggleCell(x, y int) error
	Clear()
}

// Pauser is implemented by sims that own their running/paused state.
type Pauser interface {
	Running() bool
	Pause()
	Resume()
}

// Snapshotter is implemented by sims whose state can be persisted to and
// restored from a file. A failed Restore must leave the state unchanged.
type Snapshotter interface {
	Snapshot(path string) error
	Restore(path string) error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
