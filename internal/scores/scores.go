// Package scores defines the high-score contract shared by the session layer
// and the storage backends.
package scores

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultKeep is the number of scores a store retains.
const DefaultKeep = 10

// ErrInvalidScore is returned for a result that cannot be stored.
var ErrInvalidScore = errors.New("invalid score")

// Score is one finished session.
type Score struct {
	Name       string
	Experience int
	BattlesWon int
	RecordedAt time.Time
}

// Recorder stores session results and lists the best ones. Scores are
// ranked by experience, highest first; ties keep the earlier result first.
type Recorder interface {
	RecordResult(ctx context.Context, name string, experience, battlesWon int) error
	Top(ctx context.Context, n int) ([]Score, error)
}

// Normalize validates a result before it is stored and returns the trimmed
// hero name.
func Normalize(name string, experience, battlesWon int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidScore)
	}
	if experience < 0 {
		return "", fmt.Errorf("%w: negative experience %d", ErrInvalidScore, experience)
	}
	if battlesWon < 0 {
		return "", fmt.Errorf("%w: negative battles won %d", ErrInvalidScore, battlesWon)
	}
	return name, nil
}

// Medal returns the podium marker for a 1-based rank.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}
