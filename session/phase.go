package session

//go:generate go run golang.org/x/tools/cmd/stringer -type=Phase,Action,EventKind

// Phase is the lifecycle state of a Session.
type Phase uint8

const (
	NotStarted Phase = iota
	Playing
	GameOver
)
