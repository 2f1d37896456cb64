package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the rendering and input collaborators consume.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Automaton extends Sim with the controls of a concurrently stepped board.
type Automaton interface {
	Sim
	Start()
	Stop()
	Running() bool
	Spawn(x, y, radius int)
	ClearAll()
	Generation() int64
	Population() int64
	Status() string
}
