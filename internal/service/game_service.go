package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prakashgyan/mafiamanagerirl/internal/cache"
	"github.com/prakashgyan/mafiamanagerirl/internal/game"
	"github.com/prakashgyan/mafiamanagerirl/internal/model"
	"github.com/prakashgyan/mafiamanagerirl/internal/repository"
)

// ErrNotOwner is returned when a host touches a game it does not own.
var ErrNotOwner = errors.New("not permitted for this game")

var animalAvatars = []string{
	"🦊", "🐻", "🐼", "🦁", "🐯", "🐮", "🐸", "🐵", "🐶", "🐱",
	"🦄", "🦉", "🦜", "🦇", "🐢", "🐙", "🐳", "🐬", "🦕", "🦓",
}

func randomAnimalAvatar() string {
	return animalAvatars[rand.Intn(len(animalAvatars))]
}

// session is the in-process authority for one game: a lock serializing
// the host's command stream and the ephemeral intents of the current
// phase. Everything durable lives in the repositories.
type session struct {
	mu      sync.Mutex
	intents model.IntentSet
}

// GameService owns the phase state machine and the resolution pipeline.
// All mutation of one game is serialized through its session entry, so a
// rejected transition leaves state untouched even under concurrent host
// requests.
type GameService struct {
	gameRepo    repository.GameRepo
	playerRepo  repository.PlayerRepo
	logRepo     repository.LogRepo
	friendRepo  repository.FriendRepo
	snapshots   cache.SnapshotCache
	broadcaster Broadcaster

	mu       sync.Mutex
	sessions map[string]*session
}

// NewGameService creates a new game service
func NewGameService(
	gameRepo repository.GameRepo,
	playerRepo repository.PlayerRepo,
	logRepo repository.LogRepo,
	friendRepo repository.FriendRepo,
	snapshots cache.SnapshotCache,
) *GameService {
	return &GameService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		logRepo:    logRepo,
		friendRepo: friendRepo,
		snapshots:  snapshots,
		sessions:   make(map[string]*session),
	}
}

// SetBroadcaster injects the WebSocket hub.
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func (s *GameService) session(gameID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[gameID]
	if !ok {
		sess = &session{intents: make(model.IntentSet)}
		s.sessions[gameID] = sess
	}
	return sess
}

func (s *GameService) loadBundle(ctx context.Context, gameID, hostID string) (*model.GameBundle, error) {
	g, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if g == nil {
		return nil, &game.TargetNotFoundError{GameID: gameID}
	}
	if g.HostID != hostID {
		return nil, ErrNotOwner
	}

	players, err := s.playerRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	logs, err := s.logRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load logs: %w", err)
	}

	return &model.GameBundle{Game: g, Players: players, Logs: logs}, nil
}

// publish caches the snapshot and fans it out to every subscriber.
// It runs after the durable writes succeeded; the snapshot is an
// immutable value, so a slow delivery can never observe a newer
// mutation racing through shared state.
func (s *GameService) publish(ctx context.Context, event string, bundle *model.GameBundle) model.Snapshot {
	snap := model.BuildSnapshot(event, bundle)
	if s.snapshots != nil {
		if err := s.snapshots.Set(ctx, snap); err != nil {
			log.Printf("Failed to cache snapshot for game %s: %v", snap.GameID, err)
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToViewers(snap.GameID, snap)
	}
	return snap
}

func newLogEntry(bundle *model.GameBundle, round int, phase model.GamePhase, message string) *model.LogEntry {
	entry := &model.LogEntry{
		ID:        uuid.New().String(),
		GameID:    bundle.Game.ID,
		Seq:       model.NextSeq(bundle.Logs),
		Round:     round,
		Phase:     phase,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	bundle.Logs = append(bundle.Logs, entry)
	return entry
}

// NewPlayer describes one seat of a new game.
type NewPlayer struct {
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar,omitempty"`
	FriendID *string `json:"friendId,omitempty"`
}

// CreateGame creates a pending game with its initial player list. Seats
// referencing a roster friend take the friend's name and image.
func (s *GameService) CreateGame(ctx context.Context, hostID string, seats []NewPlayer) (model.Snapshot, error) {
	g := &model.Game{
		ID:        uuid.New().String(),
		HostID:    hostID,
		Status:    model.GamePending,
		Phase:     model.PhaseDay,
		Round:     1,
		CreatedAt: time.Now().UTC(),
	}

	bundle := &model.GameBundle{Game: g}
	for _, seat := range seats {
		name := strings.TrimSpace(seat.Name)
		avatar := strings.TrimSpace(seat.Avatar)
		var friendID *string

		if seat.FriendID != nil {
			friend, err := s.friendRepo.GetForUser(ctx, *seat.FriendID, hostID)
			if err != nil {
				return model.Snapshot{}, fmt.Errorf("failed to look up friend: %w", err)
			}
			if friend == nil {
				return model.Snapshot{}, &game.ValidationError{Problems: []string{"invalid friend selection"}}
			}
			name = strings.TrimSpace(friend.Name)
			if avatar == "" {
				avatar = friend.Image
			}
			friendID = &friend.ID
		}

		if name == "" {
			continue
		}
		if avatar == "" {
			avatar = randomAnimalAvatar()
		}

		bundle.Players = append(bundle.Players, &model.Player{
			ID:       uuid.New().String(),
			GameID:   g.ID,
			Name:     name,
			IsAlive:  true,
			Avatar:   avatar,
			FriendID: friendID,
			JoinedAt: time.Now().UTC(),
		})
	}

	if err := s.gameRepo.Create(ctx, g); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to create game: %w", err)
	}
	for _, p := range bundle.Players {
		if err := s.playerRepo.Create(ctx, p); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to create player: %w", err)
		}
	}

	log.Printf("Game %s created by host %s with %d players", g.ID, hostID, len(bundle.Players))
	return s.publish(ctx, "game_created", bundle), nil
}

// GetGame returns the current snapshot of a game owned by hostID.
func (s *GameService) GetGame(ctx context.Context, gameID, hostID string) (model.Snapshot, error) {
	bundle, err := s.loadBundle(ctx, gameID, hostID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.BuildSnapshot("state", bundle), nil
}

// ListGames returns the host's games, newest first, optionally filtered
// by status.
func (s *GameService) ListGames(ctx context.Context, hostID string, status model.GameStatus) ([]*model.Game, error) {
	return s.gameRepo.ListByHost(ctx, hostID, status)
}

// AssignRoles validates and persists a complete player->role mapping
// against the supplied role configuration. Nothing is persisted on a
// validation failure.
func (s *GameService) AssignRoles(ctx context.Context, gameID, hostID string, counts model.RoleCounts, assignments []game.RoleAssignment) (model.Snapshot, error) {
	sess := s.session(gameID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	bundle, err := s.loadBundle(ctx, gameID, hostID)
	if err != nil {
		return model.Snapshot{}, err
	}
	if bundle.Game.Status != model.GamePending {
		return model.Snapshot{}, stateConflict(bundle.Game, "assign roles")
	}

	if err := game.ValidateAssignment(bundle.Players, counts, assignments); err != nil {
		return model.Snapshot{}, err
	}

	for _, a := range assignments {
		p := bundle.PlayerByID(a.PlayerID)
		role := a.Role
		p.Role = &role
		if err := s.playerRepo.Update(ctx, p); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to save role for player %s: %w", p.ID, err)
		}
	}

	return s.publish(ctx, "roles_assigned", bundle), nil
}

// Start moves a pending game with a complete role assignment to
// active/day/round 1.
func (s *GameService) Start(ctx context.Context, gameID, hostID string) (model.Snapshot, error) {
	sess := s.session(gameID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	bundle, err := s.loadBundle(ctx, gameID, hostID)
	if err != nil {
		return model.Snapshot{}, err
	}
	if bundle.Game.Status != model.GamePending {
		return model.Snapshot{}, stateConflict(bundle.Game, "start")
	}
	for _, p := range bundle.Players {
		if p.Role == nil {
			return model.Snapshot{}, &game.ValidationError{
				Problems: []string{fmt.Sprintf("player %s has no role", p.Name)},
			}
		}
	}

	bundle.Game.Status = model.GameActive
	bundle.Game.Phase = model.PhaseDay
	bundle.Game.Round = 1
	entry := newLogEntry(bundle, 1, model.PhaseDay, "Game started")

	if err := s.logRepo.Append(ctx, entry); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to append log: %w", err)
	}
	if err := s.gameRepo.Update(ctx, bundle.Game); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to save game: %w", err)
	}

	log.Printf("Game %s started", gameID)
	return s.publish(ctx, "game_started", bundle), nil
}

// QueueAction records a host-submitted intent for the current phase.
// Night kinds are legal only at night, vote only by day. Resubmitting a
// kind before the phase ends overwrites the earlier intent.
func (s *GameService) QueueAction(ctx context.Context, gameID, hostID string, kind model.ActionKind, targetID string) (model.Snapshot, error) {
	sess := s.session(gameID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	bundle, err := s.loadBundle(ctx, gameID, hostID)
	if err != nil {
		return model.Snapshot{}, err
	}
	if bundle.Game.Status != model.GameActive {
		return model.Snapshot{}, stateConflict(bundle.Game, "queue "+string(kind))
	}
	if !kind.Valid() {
		return model.Snapshot{}, &game.ValidationError{Problems: []string{fmt.Sprintf("unsupported action type %q", kind)}}
	}
	if kind.NightKind() != (bundle.Game.Phase == model.PhaseNight) {
		return model.Snapshot{}, stateConflict(bundle.Game, "queue "+string(kind))
	}
	if bundle.PlayerByID(targetID) == nil {
		return model.Snapshot{}, &game.TargetNotFoundError{GameID: gameID, PlayerID: targetID}
	}

	sess.intents.Put(model.ActionIntent{Kind: kind, TargetID: targetID})
	return model.BuildSnapshot("action_queued", bundle), nil
}

// EndPhase resolves the ending phase, appends its log entries, clears
// the queued intents and flips to the target phase. Night->day advances
// the round; day->night keeps it, so a night shares its round number
// with the preceding day.
func (s *GameService) EndPhase(ctx context.Context, gameID, hostID string, target model.GamePhase) (model.Snapshot, error) {
	sess := s.session(gameID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	bundle, err := s.loadBundle(ctx, gameID, hostID)
	if err != nil {
		return model.Snapshot{}, err
	}
	g := bundle.Game
	if g.Status != model.GameActive {
		return model.Snapshot{}, stateConflict(g, "end phase")
	}
	if target != model.PhaseDay && target != model.PhaseNight {
		return model.Snapshot{}, &game.ValidationError{Problems: []string{fmt.Sprintf("unknown phase %q", target)}}
	}
	if target == g.Phase {
		return model.Snapshot{}, stateConflict(g, "end phase into "+string(target))
	}

	endingRound, endingPhase := g.Round, g.Phase
	firstNew := len(bundle.Logs)
	var dirty []*model.Player
	var investigation *game.Investigation

	// 1. Resolve the ending phase.
	if endingPhase == model.PhaseNight {
		res := game.ResolveNight(sess.intents, bundle)
		if res.DeadPlayerID != "" {
			p := bundle.PlayerByID(res.DeadPlayerID)
			p.IsAlive = false
			dirty = append(dirty, p)
		}
		for _, msg := range res.Messages {
			newLogEntry(bundle, endingRound, endingPhase, msg)
		}
		investigation = res.Investigation
	} else {
		res := game.ResolveDayVote(sess.intents, bundle)
		if res.DeadPlayerID != "" {
			p := bundle.PlayerByID(res.DeadPlayerID)
			p.IsAlive = false
			dirty = append(dirty, p)
		}
		newLogEntry(bundle, endingRound, endingPhase, res.Message)
		if res.Winner != "" {
			// A voted-out Jester ends the game on the spot; no flip.
			winner := res.Winner
			g.Status = model.GameFinished
			g.WinningTeam = &winner
			newLogEntry(bundle, endingRound, endingPhase, fmt.Sprintf("Game ended. %s win!", winner))
		}
	}

	// 2. Flip phase; night->day advances the round.
	if g.Status == model.GameActive {
		g.Phase = target
		if endingPhase == model.PhaseNight && target == model.PhaseDay {
			g.Round++
		}
		newLogEntry(bundle, g.Round, g.Phase,
			fmt.Sprintf("Phase switched to %s %d", capitalize(string(g.Phase)), g.Round))

		// 3. Win detection on the post-resolution board.
		if winner := game.DetermineWinner(bundle.Players); winner != "" {
			g.Status = model.GameFinished
			g.WinningTeam = &winner
			newLogEntry(bundle, g.Round, g.Phase, fmt.Sprintf("Game ended. %s win!", winner))
		}
	}

	// 4. Persist, then clear intents. A failed write leaves the durable
	// state and the queued intents as they were before the call.
	for _, p := range dirty {
		if err := s.playerRepo.Update(ctx, p); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to save player %s: %w", p.ID, err)
		}
	}
	for _, entry := range bundle.Logs[firstNew:] {
		if err := s.logRepo.Append(ctx, entry); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to append log: %w", err)
		}
	}
	if err := s.gameRepo.Update(ctx, g); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to save game: %w", err)
	}

	sess.intents.Clear()

	if investigation != nil && s.broadcaster != nil {
		s.broadcaster.BroadcastToHost(gameID, investigationMessage{
			Event:         "investigation_result",
			GameID:        gameID,
			Investigation: *investigation,
		})
	}

	event := "phase_changed"
	if g.Status == model.GameFinished {
		event = "game_finished"
	}
	return s.publish(ctx, event, bundle), nil
}

// Finish ends an active game with a host-declared winner. Terminal.
func (s *GameService) Finish(ctx context.Context, gameID, hostID, winningTeam string) (model.Snapshot, error) {
	sess := s.session(gameID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	bundle, err := s.loadBundle(ctx, gameID, hostID)
	if err != nil {
		return model.Snapshot{}, err
	}
	g := bundle.Game
	if g.Status != model.GameActive {
		return model.Snapshot{}, stateConflict(g, "finish")
	}

	g.Status = model.GameFinished
	g.WinningTeam = &winningTeam
	entry := newLogEntry(bundle, g.Round, g.Phase, fmt.Sprintf("Game finished manually. Winner: %s", winningTeam))

	if err := s.logRepo.Append(ctx, entry); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to append log: %w", err)
	}
	if err := s.gameRepo.Update(ctx, g); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to save game: %w", err)
	}

	sess.intents.Clear()

	log.Printf("Game %s finished, winner %s", gameID, winningTeam)
	return s.publish(ctx, "game_finished", bundle), nil
}

func stateConflict(g *model.Game, requested string) *game.StateConflictError {
	return &game.StateConflictError{
		Current:   fmt.Sprintf("status=%s phase=%s", g.Status, g.Phase),
		Requested: requested,
	}
}

type investigationMessage struct {
	Event  string `json:"event"`
	GameID string `json:"game_id"`
	game.Investigation
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
