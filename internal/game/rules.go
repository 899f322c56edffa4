package game

// Rules are the tunable limits of a game.
type Rules struct {
	UsageCap    int // times one player may be credited with a contributor
	WindowSize  int // movies kept in the rolling chain
	GenreTarget int // accepted movies of the chosen genre needed to win
}

// DefaultRules returns the standard limits.
func DefaultRules() Rules {
	return Rules{
		UsageCap:    3,
		WindowSize:  5,
		GenreTarget: 5,
	}
}

func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.UsageCap <= 0 {
		r.UsageCap = d.UsageCap
	}
	if r.WindowSize <= 0 {
		r.WindowSize = d.WindowSize
	}
	if r.GenreTarget <= 0 {
		r.GenreTarget = d.GenreTarget
	}
	return r
}
