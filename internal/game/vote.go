package game

import (
	"fmt"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

// VoteResult is the outcome of the town's day elimination.
type VoteResult struct {
	// DeadPlayerID is the eliminated player, if any.
	DeadPlayerID string
	// Message is the public log line for the day's outcome.
	Message string
	// Winner is set when the elimination itself decides the game
	// (a voted-out Jester wins outright).
	Winner string
}

// ResolveDayVote applies the single recorded vote, if one was queued.
// This models the host recording the town's consensus, not individual
// ballots, so no tie-break exists. A vote naming a dead or unknown
// player is dropped silently and the day ends without an elimination.
func ResolveDayVote(intents model.IntentSet, bundle *model.GameBundle) VoteResult {
	in, ok := intents.Get(model.ActionVote)
	if ok {
		if target := bundle.PlayerByID(in.TargetID); target != nil && target.IsAlive {
			return VoteResult{
				DeadPlayerID: target.ID,
				Message:      fmt.Sprintf("%s was voted out.", target.Name),
				Winner:       VoteOutWinner(target),
			}
		}
	}
	return VoteResult{Message: "No one was eliminated."}
}
