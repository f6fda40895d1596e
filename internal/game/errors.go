package game

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or incomplete role assignment. The
// session is untouched when one is returned.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid role assignment: " + strings.Join(e.Problems, "; ")
}

// StateConflictError reports a command that is illegal for the session's
// current status or phase. The session is left byte-identical.
type StateConflictError struct {
	Current   string
	Requested string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("state conflict: cannot %s while %s", e.Requested, e.Current)
}

// TargetNotFoundError reports an intent or lookup naming a player or
// game that does not exist. A merely dead target is not an error; it is
// silently dropped at resolution.
type TargetNotFoundError struct {
	GameID   string
	PlayerID string
}

func (e *TargetNotFoundError) Error() string {
	if e.PlayerID == "" {
		return fmt.Sprintf("game %s not found", e.GameID)
	}
	return fmt.Sprintf("player %s not found in game %s", e.PlayerID, e.GameID)
}
