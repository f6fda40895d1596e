package model

import "time"

// GameStatus is the lifecycle state of a game night.
type GameStatus string

const (
	GamePending  GameStatus = "pending"
	GameActive   GameStatus = "active"
	GameFinished GameStatus = "finished"
)

// GamePhase is the active alternating phase of a running game.
type GamePhase string

const (
	PhaseDay   GamePhase = "day"
	PhaseNight GamePhase = "night"
)

// StatusOrder maps a status to its position in the one-way lifecycle.
func StatusOrder(s GameStatus) int {
	switch s {
	case GameActive:
		return 1
	case GameFinished:
		return 2
	}
	return 0
}

// PhaseOrder maps a phase to its position within a round: the day comes
// before the night that shares its round number.
func PhaseOrder(p GamePhase) int {
	if p == PhaseNight {
		return 1
	}
	return 0
}

// Game represents one hosted game night. WinningTeam is nil until the
// game finishes.
type Game struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	HostID      string     `json:"hostId" bson:"hostId"`
	Status      GameStatus `json:"status" bson:"status"`
	Phase       GamePhase  `json:"phase" bson:"phase"`
	Round       int        `json:"round" bson:"round"`
	WinningTeam *string    `json:"winningTeam,omitempty" bson:"winningTeam,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// RoleCounts is the host's role configuration: role name -> seat count.
type RoleCounts map[string]int

// GameBundle is one game's full in-memory state as loaded for a single
// serialized command: the game row, its players and its log history.
type GameBundle struct {
	Game    *Game
	Players []*Player
	Logs    []*LogEntry
}

// PlayerByID returns the player with the given id, or nil.
func (b *GameBundle) PlayerByID(id string) *Player {
	for _, p := range b.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
