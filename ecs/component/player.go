package component

type Player struct {
	MoveSpeed    float64
	JumpSpeed    float64
	CoyoteFrames int

	Grounded    bool
	GroundGrace int
}

var PlayerComponent = NewComponent[Player]()
