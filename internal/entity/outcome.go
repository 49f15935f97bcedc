package entity

type OutcomeKind int

const (
	OutcomeWin OutcomeKind = iota + 1
	OutcomeTie
	OutcomeCancelled
)

// Outcome is how a game ended. Winner is only meaningful for OutcomeWin.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player
	Board  Board
}

func (that OutcomeKind) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeTie:
		return "tie"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
