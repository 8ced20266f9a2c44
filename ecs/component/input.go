package component

// Input stores per-frame input state for an entity. The *Pressed fields are
// rising edges and are true for one frame only.
type Input struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool

	PrimaryPressed   bool
	SecondaryPressed bool
	InteractPressed  bool

	// CursorX and CursorY are the pointer in world coordinates.
	CursorX   float64
	CursorY   float64
	HasCursor bool
}

var InputComponent = NewComponent[Input]()
