package game

// EventKind identifies what happened in the engine.
type EventKind int

const (
	EventStarted EventKind = iota
	EventGuessAccepted
	EventGuessRejected
	EventGameOver
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventGuessAccepted:
		return "guess_accepted"
	case EventGuessRejected:
		return "guess_rejected"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	}
	return "unknown"
}

// Reason explains a guess outcome.
type Reason int

const (
	ReasonAccepted Reason = iota
	ReasonDuplicate
	ReasonNoConnection
	ReasonCapExhausted
)

func (r Reason) String() string {
	switch r {
	case ReasonAccepted:
		return "accepted"
	case ReasonDuplicate:
		return "already guessed"
	case ReasonNoConnection:
		return "no shared contributor"
	case ReasonCapExhausted:
		return "every shared contributor is used up"
	}
	return "unknown"
}

// Cause explains why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseTimeout
	CauseGenreTarget
)

func (c Cause) String() string {
	switch c {
	case CauseTimeout:
		return "time ran out"
	case CauseGenreTarget:
		return "genre target reached"
	}
	return "none"
}

// Outcome is the result of one SubmitGuess call.
type Outcome struct {
	Accepted    bool
	Reason      Reason
	Title       string
	Connections []string
	GameOver    bool

	// Round and Next are the round after the guess and the player to
	// move next.
	Round int
	Next  int
}

// Event is published to subscribers after every state change.
type Event struct {
	Kind        EventKind
	Round       int
	Player      string // player who acted; winner for EventGameOver
	Active      int    // player to move after the event
	Title       string
	Reason      Reason
	Connections []string
	Cause       Cause
}
