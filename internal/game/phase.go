package game

// Phase is the engine's lifecycle state.
type Phase string

const (
	PhaseAwaitingNames  Phase = "AWAITING_NAMES"
	PhaseSelectingGenre Phase = "SELECTING_GENRE"
	PhaseInProgress     Phase = "IN_PROGRESS"
	PhaseGameOver       Phase = "GAME_OVER"
)

func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo reports whether the engine may move from p to target.
func (p Phase) CanTransitionTo(target Phase) bool {
	switch p {
	case PhaseAwaitingNames:
		return target == PhaseSelectingGenre || target == PhaseInProgress
	case PhaseSelectingGenre:
		return target == PhaseInProgress || target == PhaseAwaitingNames
	case PhaseInProgress:
		return target == PhaseGameOver || target == PhaseAwaitingNames
	case PhaseGameOver:
		return target == PhaseAwaitingNames
	}
	return false
}
