package templates

// Builtin returns a small library of hand-designed rooms for the
// board sizes GenerateSolvable is most often asked for. These are not
// derived from any reference puzzle; they exist only to give the
// generator a non-empty interior to start from instead of open floor.
func Builtin() *Library {
	lib := New()

	// A single central pillar, usable by any 7x7 or larger board.
	lib.Add(Template{
		Width: 7, Height: 7, Weight: 10,
		Walls: []Cell{{Row: 3, Col: 3}},
	})

	// A short divider wall splitting a 9x9 room into two bays.
	lib.Add(Template{
		Width: 9, Height: 9, Weight: 10,
		Walls: []Cell{
			{Row: 3, Col: 4}, {Row: 4, Col: 4}, {Row: 5, Col: 4},
		},
	})

	// An offset L-shaped nook in a 9x9 room.
	lib.Add(Template{
		Width: 9, Height: 9, Weight: 5,
		Walls: []Cell{
			{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 2},
		},
	})

	return lib
}
