package entity

type IntentKind int

const (
	IntentMove IntentKind = iota + 1
	IntentStop
	IntentParseFailure
)

// Intent is one line of player input, already interpreted.
// Move is set for IntentMove, Err for IntentParseFailure.
type Intent struct {
	Kind IntentKind
	Move Move
	Err  error
}

func MoveIntent(row, col int) Intent {
	return Intent{Kind: IntentMove, Move: Move{Row: row, Col: col}}
}

func StopIntent() Intent {
	return Intent{Kind: IntentStop}
}

func ParseFailure(err error) Intent {
	return Intent{Kind: IntentParseFailure, Err: err}
}
