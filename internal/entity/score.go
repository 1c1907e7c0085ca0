package entity

// ScoreTally counts the rounds won by each mark. The zero value is an empty tally.
type ScoreTally struct {
	x int
	o int
}

// Add records one round won by mark. Anything but X or O is ignored.
func (that *ScoreTally) Add(mark Mark) {
	switch mark {
	case MarkX:
		that.x++
	case MarkO:
		that.o++
	}
}

func (that ScoreTally) Get(mark Mark) int {
	switch mark {
	case MarkX:
		return that.x
	case MarkO:
		return that.o
	default:
		return 0
	}
}

// Max returns the highest win count of either mark.
func (that ScoreTally) Max() int {
	return max(that.x, that.o)
}

// Leader returns X when X is strictly ahead, otherwise O.
func (that ScoreTally) Leader() Mark {
	if that.x > that.o {
		return MarkX
	}
	return MarkO
}

// Trailer is always the opponent of Leader.
func (that ScoreTally) Trailer() Mark {
	return that.Leader().Opponent()
}
