package game

import (
	"strings"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

const (
	RoleMafia     = "Mafia"
	RoleVillager  = "Villager"
	RoleDoctor    = "Doctor"
	RoleDetective = "Detective"
	RoleJester    = "Jester"
)

const (
	TeamVillagers = "Villagers"
	TeamMafia     = "Mafia"
	TeamJester    = "Jester"
)

func isMafia(p *model.Player) bool {
	return strings.EqualFold(p.RoleName(), RoleMafia)
}

// CountMafia counts living mafia-aligned players.
func CountMafia(players []*model.Player) int {
	n := 0
	for _, p := range players {
		if p.IsAlive && isMafia(p) {
			n++
		}
	}
	return n
}

// CountNonMafia counts living players outside the mafia.
func CountNonMafia(players []*model.Player) int {
	n := 0
	for _, p := range players {
		if p.IsAlive && !isMafia(p) {
			n++
		}
	}
	return n
}

// DetermineWinner returns the winning team, or "" while the game is
// still undecided. Villagers win when no mafia remain; mafia win once
// they match or outnumber everyone else.
func DetermineWinner(players []*model.Player) string {
	mafia := CountMafia(players)
	others := CountNonMafia(players)
	if mafia == 0 {
		return TeamVillagers
	}
	if mafia >= others {
		return TeamMafia
	}
	return ""
}

// VoteOutWinner returns the team that wins outright when the given
// player is voted out during the day. Only the Jester profits from its
// own elimination.
func VoteOutWinner(p *model.Player) string {
	if strings.EqualFold(p.RoleName(), RoleJester) {
		return TeamJester
	}
	return ""
}
