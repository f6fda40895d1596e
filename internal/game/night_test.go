package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

func role(name string) *string { return &name }

func nightBundle() *model.GameBundle {
	return &model.GameBundle{
		Game: &model.Game{ID: "g1", Status: model.GameActive, Phase: model.PhaseNight, Round: 1},
		Players: []*model.Player{
			{ID: "pa", Name: "Alice", Role: role(RoleMafia), IsAlive: true},
			{ID: "pb", Name: "Bob", Role: role(RoleDoctor), IsAlive: true},
			{ID: "pc", Name: "Cara", Role: role(RoleDetective), IsAlive: true},
			{ID: "pd", Name: "Dan", Role: role(RoleVillager), IsAlive: true},
			{ID: "pe", Name: "Eve", Role: role(RoleVillager), IsAlive: true},
		},
	}
}

func intents(list ...model.ActionIntent) model.IntentSet {
	set := make(model.IntentSet)
	for _, in := range list {
		set.Put(in)
	}
	return set
}

func TestResolveNight_KillApplies(t *testing.T) {
	res := ResolveNight(intents(
		model.ActionIntent{Kind: model.ActionKill, TargetID: "pd"},
	), nightBundle())

	assert.Equal(t, "pd", res.DeadPlayerID)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Dan was killed during the night.", res.Messages[0])
	assert.Nil(t, res.Investigation)
}

func TestResolveNight_SaveBeatsKill(t *testing.T) {
	res := ResolveNight(intents(
		model.ActionIntent{Kind: model.ActionKill, TargetID: "pd"},
		model.ActionIntent{Kind: model.ActionSave, TargetID: "pd"},
	), nightBundle())

	assert.Empty(t, res.DeadPlayerID)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Mafia tried to kill Dan.", res.Messages[0])
}

func TestResolveNight_SaveMismatchNoEffect(t *testing.T) {
	res := ResolveNight(intents(
		model.ActionIntent{Kind: model.ActionKill, TargetID: "pd"},
		model.ActionIntent{Kind: model.ActionSave, TargetID: "pe"},
	), nightBundle())

	assert.Equal(t, "pd", res.DeadPlayerID)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Dan was killed during the night.", res.Messages[0])
}

func TestResolveNight_SaveAloneIsSilent(t *testing.T) {
	res := ResolveNight(intents(
		model.ActionIntent{Kind: model.ActionSave, TargetID: "pd"},
	), nightBundle())

	assert.Empty(t, res.DeadPlayerID)
	assert.Empty(t, res.Messages)
}

func TestResolveNight_DeadTargetDroppedSilently(t *testing.T) {
	bundle := nightBundle()
	bundle.Players[3].IsAlive = false // Dan

	res := ResolveNight(intents(
		model.ActionIntent{Kind: model.ActionKill, TargetID: "pd"},
	), bundle)

	assert.Empty(t, res.DeadPlayerID)
	assert.Empty(t, res.Messages)
}

func TestResolveNight_UnknownTargetDroppedSilently(t *testing.T) {
	res := ResolveNight(intents(
		model.ActionIntent{Kind: model.ActionKill, TargetID: "ghost"},
	), nightBundle())

	assert.Empty(t, res.DeadPlayerID)
	assert.Empty(t, res.Messages)
}

func TestResolveNight_InvestigationIsPrivate(t *testing.T) {
	res := ResolveNight(intents(
		model.ActionIntent{Kind: model.ActionInvestigate, TargetID: "pa"},
	), nightBundle())

	require.NotNil(t, res.Investigation)
	assert.Equal(t, "pa", res.Investigation.TargetID)
	assert.Equal(t, "Alice", res.Investigation.TargetName)
	assert.Equal(t, RoleMafia, res.Investigation.Role)
	// Nothing about the investigation reaches the public log.
	assert.Empty(t, res.Messages)
}

func TestResolveNight_NoIntents(t *testing.T) {
	res := ResolveNight(intents(), nightBundle())

	assert.Empty(t, res.DeadPlayerID)
	assert.Empty(t, res.Messages)
	assert.Nil(t, res.Investigation)
}

func TestResolveDayVote_Elimination(t *testing.T) {
	res := ResolveDayVote(intents(
		model.ActionIntent{Kind: model.ActionVote, TargetID: "pa"},
	), nightBundle())

	assert.Equal(t, "pa", res.DeadPlayerID)
	assert.Equal(t, "Alice was voted out.", res.Message)
	assert.Empty(t, res.Winner)
}

func TestResolveDayVote_NoVote(t *testing.T) {
	res := ResolveDayVote(intents(), nightBundle())

	assert.Empty(t, res.DeadPlayerID)
	assert.Equal(t, "No one was eliminated.", res.Message)
}

func TestResolveDayVote_JesterWins(t *testing.T) {
	bundle := nightBundle()
	bundle.Players[4].Role = role(RoleJester) // Eve

	res := ResolveDayVote(intents(
		model.ActionIntent{Kind: model.ActionVote, TargetID: "pe"},
	), bundle)

	assert.Equal(t, "pe", res.DeadPlayerID)
	assert.Equal(t, TeamJester, res.Winner)
}

func TestResolveDayVote_DeadTargetDropped(t *testing.T) {
	bundle := nightBundle()
	bundle.Players[0].IsAlive = false

	res := ResolveDayVote(intents(
		model.ActionIntent{Kind: model.ActionVote, TargetID: "pa"},
	), bundle)

	assert.Empty(t, res.DeadPlayerID)
	assert.Equal(t, "No one was eliminated.", res.Message)
}
