package model

import "time"

// Player represents a participant in a game night. Role stays nil until
// the host assigns roles; once the game is active every player has one.
type Player struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	GameID   string    `json:"gameId" bson:"gameId"`
	Name     string    `json:"name" bson:"name"`
	Role     *string   `json:"role,omitempty" bson:"role,omitempty"`
	IsAlive  bool      `json:"isAlive" bson:"isAlive"`
	Avatar   string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	FriendID *string   `json:"friendId,omitempty" bson:"friendId,omitempty"`
	JoinedAt time.Time `json:"joinedAt" bson:"joinedAt"`
}

// RoleName returns the assigned role or "" when unassigned.
func (p *Player) RoleName() string {
	if p.Role == nil {
		return ""
	}
	return *p.Role
}
