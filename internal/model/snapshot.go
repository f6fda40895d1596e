package model

// Snapshot is the flat wire form pushed to viewers after every
// authoritative mutation. Field names are fixed; consumers must ignore
// unknown fields.
type Snapshot struct {
	Event       string           `json:"event"`
	GameID      string           `json:"game_id"`
	Status      GameStatus       `json:"status"`
	Phase       GamePhase        `json:"phase"`
	Round       int              `json:"round"`
	WinningTeam *string          `json:"winning_team,omitempty"`
	Players     []SnapshotPlayer `json:"players"`
	Logs        []SnapshotLog    `json:"logs"`
}

type SnapshotPlayer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     *string `json:"role,omitempty"`
	IsAlive  bool    `json:"is_alive"`
	Avatar   string  `json:"avatar,omitempty"`
	FriendID *string `json:"friend_id,omitempty"`
}

type SnapshotLog struct {
	ID        string    `json:"id"`
	Round     int       `json:"round"`
	Phase     GamePhase `json:"phase"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
}

// BuildSnapshot flattens a bundle into its wire form. Logs are emitted in
// canonical order.
func BuildSnapshot(event string, b *GameBundle) Snapshot {
	snap := Snapshot{
		Event:       event,
		GameID:      b.Game.ID,
		Status:      b.Game.Status,
		Phase:       b.Game.Phase,
		Round:       b.Game.Round,
		WinningTeam: b.Game.WinningTeam,
		Players:     make([]SnapshotPlayer, 0, len(b.Players)),
		Logs:        make([]SnapshotLog, 0, len(b.Logs)),
	}
	for _, p := range b.Players {
		snap.Players = append(snap.Players, SnapshotPlayer{
			ID:       p.ID,
			Name:     p.Name,
			Role:     p.Role,
			IsAlive:  p.IsAlive,
			Avatar:   p.Avatar,
			FriendID: p.FriendID,
		})
	}
	logs := make([]*LogEntry, len(b.Logs))
	copy(logs, b.Logs)
	SortLogs(logs)
	for _, l := range logs {
		snap.Logs = append(snap.Logs, SnapshotLog{
			ID:        l.ID,
			Round:     l.Round,
			Phase:     l.Phase,
			Message:   l.Message,
			Timestamp: l.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		})
	}
	return snap
}

// FresherThan reports whether s carries strictly newer state than other.
// Delivery is at-least-once, so viewers compare by (status, round, phase,
// log length) rather than receipt order; stale or duplicate snapshots
// must be discarded.
func (s Snapshot) FresherThan(other Snapshot) bool {
	if a, b := StatusOrder(s.Status), StatusOrder(other.Status); a != b {
		return a > b
	}
	if s.Round != other.Round {
		return s.Round > other.Round
	}
	if a, b := PhaseOrder(s.Phase), PhaseOrder(other.Phase); a != b {
		return a > b
	}
	return len(s.Logs) > len(other.Logs)
}
