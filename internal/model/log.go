package model

import (
	"sort"
	"time"
)

// LogEntry is one line of a game's append-only history. Seq is assigned
// under the session lock and is monotonic within a game, so the canonical
// order (Round, day-before-night, Seq) survives out-of-order persistence.
type LogEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	GameID    string    `json:"gameId" bson:"gameId"`
	Seq       int       `json:"seq" bson:"seq"`
	Round     int       `json:"round" bson:"round"`
	Phase     GamePhase `json:"phase" bson:"phase"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// SortLogs orders entries by round, then phase (day before night), then
// sequence. Storage arrival time plays no part.
func SortLogs(logs []*LogEntry) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Round != logs[j].Round {
			return logs[i].Round < logs[j].Round
		}
		pi, pj := PhaseOrder(logs[i].Phase), PhaseOrder(logs[j].Phase)
		if pi != pj {
			return pi < pj
		}
		return logs[i].Seq < logs[j].Seq
	})
}

// NextSeq returns the sequence number for the next entry of a game.
func NextSeq(logs []*LogEntry) int {
	max := 0
	for _, l := range logs {
		if l.Seq > max {
			max = l.Seq
		}
	}
	return max + 1
}
