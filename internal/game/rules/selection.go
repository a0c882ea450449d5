package rules

import "fmt"

// MaxInvalidSelections is the number of consecutive invalid answers tolerated
// for a single decision point before the provider is considered broken.
const MaxInvalidSelections = 3

// Select requests a value from ask until valid accepts it.
//
// Every rejected answer is reported to invalid with its 1-based attempt
// number. Errors from ask (including ErrQuit) are returned unchanged. After
// MaxInvalidSelections rejections Select gives up with ErrProtocolViolation.
func Select[T any](decision string, ask func() (T, error), valid func(T) bool, invalid func(InvalidChoice)) (T, error) {
	var zero T
	for attempt := 1; attempt <= MaxInvalidSelections; attempt++ {
		value, err := ask()
		if err != nil {
			return zero, err
		}
		if valid(value) {
			return value, nil
		}
		if invalid != nil {
			invalid(InvalidChoice{Decision: decision, Attempt: attempt})
		}
	}
	return zero, fmt.Errorf("%s: %w", decision, ErrProtocolViolation)
}
