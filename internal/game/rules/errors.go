package rules

import "errors"

var (
	// ErrQuit signals that the decision provider asked to end the session.
	// It unwinds battle and exploration loops; it never exits the process.
	ErrQuit = errors.New("session terminated by player")

	// ErrProtocolViolation is returned when a decision provider keeps
	// answering outside the offered choices.
	ErrProtocolViolation = errors.New("decision provider returned too many invalid selections")

	// ErrMaxHealthNotRaised is returned when a max health change would not
	// increase the current maximum. The character is left untouched.
	ErrMaxHealthNotRaised = errors.New("max health cannot be decreased")

	// ErrBattlePending is returned when exploration is asked to continue
	// before the outcome of its last encounter was reported.
	ErrBattlePending = errors.New("battle outcome not reported")

	// ErrExplorationOver is returned when a finished zone is explored again.
	ErrExplorationOver = errors.New("exploration is over")
)
