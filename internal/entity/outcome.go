package entity

import "fmt"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusTie        Status = "tie"
	StatusWin        Status = "win"
)

// Outcome is in progress, a tie, or a win; Winner is set only for a win.
type Outcome struct {
	Status Status `json:"status"`
	Winner Side   `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Tie() Outcome {
	return Outcome{Status: StatusTie}
}

func Win(side Side) Outcome {
	return Outcome{Status: StatusWin, Winner: side}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusTie || that.Status == StatusWin
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("%s team wins!", that.Winner)
	case StatusTie:
		return "tie game!"
	default:
		return "in progress"
	}
}
