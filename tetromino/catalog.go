package tetromino

// spawnShapes holds the rotation-0 matrix of every kind. Matrix sizes are
// fixed here and never inferred from data at runtime.
var spawnShapes = [...]Shape{
	I: {Size: 4, Cells: [MaxSize][MaxSize]bool{
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	}},
	O: {Size: 2, Cells: [MaxSize][MaxSize]bool{
		{true, true},
		{true, true},
	}},
	T: {Size: 3, Cells: [MaxSize][MaxSize]bool{
		{false, true, false},
		{true, true, true},
		{false, false, false},
	}},
	S: {Size: 3, Cells: [MaxSize][MaxSize]bool{
		{false, true, true},
		{true, true, false},
		{false, false, false},
	}},
	Z: {Size: 3, Cells: [MaxSize][MaxSize]bool{
		{true, true, false},
		{false, true, true},
		{false, false, false},
	}},
	J: {Size: 3, Cells: [MaxSize][MaxSize]bool{
		{true, false, false},
		{true, true, true},
		{false, false, false},
	}},
	L: {Size: 3, Cells: [MaxSize][MaxSize]bool{
		{false, false, true},
		{true, true, true},
		{false, false, false},
	}},
}

// orientations caches all four clockwise rotations of every kind.
var orientations [len(spawnShapes)][4]Shape

func init() {
	for _, kind := range Kinds {
		shape := spawnShapes[kind]
		for rotation := range 4 {
			orientations[kind][rotation] = shape
			shape = shape.Rotate()
		}
	}
}

// Orientation returns the matrix of kind after the given number of clockwise
// quarter turns. Invalid kinds yield an empty shape.
func Orientation(kind Kind, rotation int) Shape {
	if !kind.Valid() {
		return Shape{}
	}
	return orientations[kind][((rotation%4)+4)%4]
}

// Preview returns the spawn orientation of kind, as drawn in next and hold
// panes.
func Preview(kind Kind) Shape {
	return Orientation(kind, 0)
}
