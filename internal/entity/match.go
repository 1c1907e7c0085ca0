package entity

// RoundResult describes how a round ended. Winner is NoMark for a scratch.
type RoundResult struct {
	Round  int
	Winner Mark
	Moves  int
}

func (that RoundResult) IsScratch() bool {
	return that.Winner == NoMark
}

// MatchState is the mutable state of one match. It is owned by a single control loop.
type MatchState struct {
	Board     *Board
	Turn      Mark
	Moves     int
	Round     int
	Score     ScoreTally
	Scratches int
	LastRound *RoundResult
}

func NewMatchState() *MatchState {
	return &MatchState{
		Board: NewBoard(),
	}
}

// StartRound replaces the board and hands the first move to first.
func (that *MatchState) StartRound(first Mark) {
	that.Board = NewBoard()
	that.Turn = first
	that.Moves = 0
	that.Round++
}

// Advance passes the turn to the other mark after an applied move.
func (that *MatchState) Advance() {
	that.Turn = that.Turn.Opponent()
	that.Moves++
}

// RecordWin closes the current round with winner.
func (that *MatchState) RecordWin(winner Mark) RoundResult {
	that.Score.Add(winner)
	return that.closeRound(winner)
}

// RecordScratch closes the current round as a draw.
func (that *MatchState) RecordScratch() RoundResult {
	that.Scratches++
	return that.closeRound(NoMark)
}

func (that *MatchState) closeRound(winner Mark) RoundResult {
	result := RoundResult{
		Round:  that.Round,
		Winner: winner,
		Moves:  that.Moves,
	}
	that.LastRound = &result

	return result
}

// IsFinished reports whether either mark has reached outOf round wins.
func (that *MatchState) IsFinished(outOf int) bool {
	return that.Score.Max() >= outOf
}
