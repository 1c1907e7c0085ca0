package entity

// Mark is the symbol a player places on the board.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	// NoMark is the content of an empty cell.
	NoMark Mark = ""
)

// Valid reports whether the mark is one of the two player marks.
func (that Mark) Valid() bool {
	return that == MarkX || that == MarkO
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return NoMark
	}
}

func (that Mark) String() string {
	if that == NoMark {
		return "-"
	}
	return string(that)
}
