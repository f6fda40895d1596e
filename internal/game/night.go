package game

import (
	"fmt"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

// Investigation is the detective's private result. It is never written
// to the public log; the caller delivers it to the host view only.
type Investigation struct {
	TargetID   string `json:"target_player_id"`
	TargetName string `json:"target_name"`
	Role       string `json:"role"`
}

// NightResult is the deterministic outcome of one night's intents.
type NightResult struct {
	// DeadPlayerID is the player killed this night, if any.
	DeadPlayerID string
	// Messages are public log lines, in order.
	Messages []string
	// Investigation is the private detective result, if one was queued.
	Investigation *Investigation
}

// ResolveNight resolves the queued night intents against the current
// players. At most one intent of each kind exists. Intents naming a dead
// or unknown player are dropped silently. When kill and save name the
// same living player, survival wins and the foiled attempt is logged
// without exposing the doctor.
func ResolveNight(intents model.IntentSet, bundle *model.GameBundle) NightResult {
	var res NightResult

	aliveTarget := func(k model.ActionKind) *model.Player {
		in, ok := intents.Get(k)
		if !ok {
			return nil
		}
		p := bundle.PlayerByID(in.TargetID)
		if p == nil || !p.IsAlive {
			return nil
		}
		return p
	}

	killTarget := aliveTarget(model.ActionKill)
	saveTarget := aliveTarget(model.ActionSave)

	if killTarget != nil {
		if saveTarget != nil && saveTarget.ID == killTarget.ID {
			res.Messages = append(res.Messages, fmt.Sprintf("Mafia tried to kill %s.", killTarget.Name))
		} else {
			res.DeadPlayerID = killTarget.ID
			res.Messages = append(res.Messages, fmt.Sprintf("%s was killed during the night.", killTarget.Name))
		}
	}

	if target := aliveTarget(model.ActionInvestigate); target != nil {
		role := target.RoleName()
		if role == "" {
			role = "Unknown"
		}
		res.Investigation = &Investigation{
			TargetID:   target.ID,
			TargetName: target.Name,
			Role:       role,
		}
	}

	return res
}
