package session

// Action is a logical player input. The front end maps physical keys onto
// these; values outside the defined set are ignored.
type Action uint8

const (
	MoveLeft Action = iota + 1
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Hold
)

// Actions lists every defined action.
var Actions = [...]Action{MoveLeft, MoveRight, SoftDrop, Rotate, HardDrop, Hold}
