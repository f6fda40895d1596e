package model

// ActionKind identifies a host-queued action. Night kinds are kill, save
// and investigate; vote is the day elimination.
type ActionKind string

const (
	ActionKill        ActionKind = "kill"
	ActionSave        ActionKind = "save"
	ActionInvestigate ActionKind = "investigate"
	ActionVote        ActionKind = "vote"
)

// NightKind reports whether the kind belongs to the night phase.
func (k ActionKind) NightKind() bool {
	switch k {
	case ActionKill, ActionSave, ActionInvestigate:
		return true
	}
	return false
}

// Valid reports whether the kind is one the engine understands.
func (k ActionKind) Valid() bool {
	return k.NightKind() || k == ActionVote
}

// ActionIntent is an ephemeral, per-phase intent: at most one live intent
// of each kind per game, last submission wins. Intents are consumed and
// discarded atomically when the phase ends.
type ActionIntent struct {
	Kind     ActionKind `json:"kind"`
	TargetID string     `json:"targetPlayerId"`
}

// IntentSet holds the live intents for the current phase of one game.
type IntentSet map[ActionKind]ActionIntent

// Put records an intent, replacing any earlier one of the same kind.
func (s IntentSet) Put(in ActionIntent) { s[in.Kind] = in }

// Get returns the live intent of a kind, if any.
func (s IntentSet) Get(k ActionKind) (ActionIntent, bool) {
	in, ok := s[k]
	return in, ok
}

// Clear discards every queued intent.
func (s IntentSet) Clear() {
	for k := range s {
		delete(s, k)
	}
}
