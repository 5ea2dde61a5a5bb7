package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

// GameRecord is the stored history of one game session.
type GameRecord struct {
	ID     string `json:"id"`
	Moves  []int  `json:"moves"`
	Winner string `json:"winner,omitempty"`
	Status string `json:"status"`
}

func NewGameRecord(id string) *GameRecord {
	return &GameRecord{
		ID:     id,
		Moves:  []int{},
		Status: StatusOngoing,
	}
}

// Update - replaces the move list and derives status and winner from board.
func (that *GameRecord) Update(moves []int, board Board) {
	that.Moves = append([]int{}, moves...)

	switch status, winner := board.TerminalStatus(); status {
	// one player wins
	case Win:
		that.Winner = winner.String()
		that.Status = StatusFinished
	// tie
	case Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
	// game continue
	default:
		that.Winner = ""
		that.Status = StatusOngoing
	}
}

func (that *GameRecord) IsFinished() bool {
	return that.Status == StatusFinished
}
