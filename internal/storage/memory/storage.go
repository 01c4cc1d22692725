package memory

import (
	"context"
	"sync"

	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions         map[model.SessionID]*model.Session
	userNameIndex    map[string]model.SessionID
	players          map[model.PlayerID]*model.Player
	playerNameIndex  map[string]model.PlayerID
	games            map[model.GameID]*model.Game
	gamesByPlayer    map[model.PlayerID]map[model.GameID]struct{}
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:        make(map[model.SessionID]*model.Session),
		userNameIndex:   make(map[string]model.SessionID),
		players:         make(map[model.PlayerID]*model.Player),
		playerNameIndex: make(map[string]model.PlayerID),
		games:           make(map[model.GameID]*model.Game),
		gamesByPlayer:   make(map[model.PlayerID]map[model.GameID]struct{}),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.ID] = &cp
	s.userNameIndex[session.UserName] = session.ID
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *Storage) GetSessionByUserName(ctx context.Context, userName string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.userNameIndex[userName]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop a stale name index entry on rename
	if existing, ok := s.players[player.ID]; ok && existing.Name != player.Name {
		delete(s.playerNameIndex, existing.Name)
	}

	cp := *player
	s.players[player.ID] = &cp
	s.playerNameIndex[player.Name] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *player
	return &cp, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.playerNameIndex[name]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *player
	return &cp, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		cp := *player
		players = append(players, &cp)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[id]; ok {
		delete(s.playerNameIndex, player.Name)
	}
	delete(s.players, id)
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *game
	s.games[game.ID] = &cp
	if _, ok := s.gamesByPlayer[game.PlayerID]; !ok {
		s.gamesByPlayer[game.PlayerID] = make(map[model.GameID]struct{})
	}
	s.gamesByPlayer[game.PlayerID][game.ID] = struct{}{}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	cp := *game
	return &cp, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, game := range s.games {
		cp := *game
		games = append(games, &cp)
	}
	return games, nil
}

func (s *Storage) ListGamesByPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.gamesByPlayer[playerID]
	games := make([]*model.Game, 0, len(ids))
	for id := range ids {
		if game, ok := s.games[id]; ok {
			cp := *game
			games = append(games, &cp)
		}
	}
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game, ok := s.games[id]; ok {
		delete(s.gamesByPlayer[game.PlayerID], id)
	}
	delete(s.games, id)
	return nil
}

func (s *Storage) DeleteGamesByPlayer(ctx context.Context, playerID model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.gamesByPlayer[playerID] {
		delete(s.games, id)
	}
	delete(s.gamesByPlayer, playerID)
	return nil
}
