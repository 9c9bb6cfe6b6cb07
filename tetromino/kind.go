package tetromino

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind

// Kind identifies one of the seven piece shapes. None marks the absence of a
// piece, e.g. an empty hold slot.
type Kind uint8

const (
	None Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every playable kind in catalog order.
var Kinds = [...]Kind{I, O, T, S, Z, J, L}

// KindCount is the number of playable kinds.
const KindCount = len(Kinds)

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= L
}
