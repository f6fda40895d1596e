package game

import (
	"fmt"
	"sort"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

// RoleAssignment pairs one player with one role.
type RoleAssignment struct {
	PlayerID string `json:"playerId"`
	Role     string `json:"role"`
}

// ValidateAssignment checks a proposed player->role mapping against the
// configured per-role seat counts. It accepts only if every player
// appears exactly once, every configured role receives exactly its
// count, and no player lands on a zero-count role. On failure it returns
// a ValidationError naming each mismatch.
func ValidateAssignment(players []*model.Player, counts model.RoleCounts, assignments []RoleAssignment) error {
	var problems []string

	known := make(map[string]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
	}

	seen := make(map[string]bool, len(assignments))
	assigned := make(map[string]int)
	for _, a := range assignments {
		if !known[a.PlayerID] {
			problems = append(problems, fmt.Sprintf("unknown player %s", a.PlayerID))
			continue
		}
		if seen[a.PlayerID] {
			problems = append(problems, fmt.Sprintf("player %s assigned more than once", a.PlayerID))
			continue
		}
		seen[a.PlayerID] = true
		assigned[a.Role]++
	}

	for _, p := range players {
		if !seen[p.ID] {
			problems = append(problems, fmt.Sprintf("player %s has no role", p.ID))
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total != len(players) {
		problems = append(problems, fmt.Sprintf("configured seats %d do not match player count %d", total, len(players)))
	}

	// Stable order so the failure message is deterministic.
	roles := make([]string, 0, len(counts)+len(assigned))
	for role := range counts {
		roles = append(roles, role)
	}
	for role := range assigned {
		if _, ok := counts[role]; !ok {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)

	for _, role := range roles {
		want := counts[role]
		got := assigned[role]
		if want != got {
			problems = append(problems, fmt.Sprintf("role %s: configured %d, assigned %d", role, want, got))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
