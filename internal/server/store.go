package server

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Store holds every running game. All mutation funnels through UpdateGame
// so each transition is one atomic read-modify-write under the store lock;
// no operation spans more than one game.
type Store struct {
	mu           sync.Mutex
	nextID       int
	nextPlayerID int
	games        map[string]*Game
}

func NewStore() *Store {
	return &Store{
		nextID:       1,
		nextPlayerID: 1,
		games:        make(map[string]*Game),
	}
}

func (s *Store) CreateGame(name, team1Name, team2Name, ownerName string, turnSeconds, winningScore int) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("game-%d", s.nextID)
	s.nextID++
	ownerID := s.nextPlayerID
	s.nextPlayerID++
	game := &Game{
		ID:           id,
		JoinCode:     newJoinCode(),
		Name:         name,
		OwnerID:      ownerID,
		OwnerName:    ownerName,
		Team1Name:    team1Name,
		Team2Name:    team2Name,
		CurrentTeam:  team1,
		TurnSeconds:  turnSeconds,
		WinningScore: winningScore,
		Status:       statusWaiting,
		TurnState:    turnIdle,
	}
	s.games[id] = game
	return game
}

func (s *Store) findLocked(idOrCode string) (*Game, bool) {
	if game, ok := s.games[idOrCode]; ok {
		return game, true
	}
	for _, candidate := range s.games {
		if candidate.JoinCode == idOrCode {
			return candidate, true
		}
	}
	return nil, false
}

// GetGame resolves a game by id or join code. The returned pointer is read
// without further locking by snapshot projections, which tolerate a stale
// view.
func (s *Store) GetGame(idOrCode string) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(idOrCode)
}

func (s *Store) UpdateGame(idOrCode string, update func(game *Game) error) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.findLocked(idOrCode)
	if !ok {
		return nil, errGameNotFound
	}
	if err := update(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Store) UpdateGameID(game *Game, newID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game.ID == newID {
		return
	}
	delete(s.games, game.ID)
	game.ID = newID
	s.games[newID] = game
}

// JoinTeam adds a player to one of the two teams while the game is still
// waiting. Turn order is the join order within that team. The owner's name
// claims the player id reserved at creation time.
func (s *Store) JoinTeam(idOrCode, name string, team, maxPerTeam int) (*Game, *Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.findLocked(idOrCode)
	if !ok {
		return nil, nil, errGameNotFound
	}
	if team != team1 && team != team2 {
		return nil, nil, errInvalidTeam
	}
	if game.Status != statusWaiting {
		return nil, nil, errGameStarted
	}
	for i := range game.Players {
		if strings.EqualFold(game.Players[i].Name, name) {
			return nil, nil, errAlreadyJoined
		}
	}
	onTeam := 0
	for i := range game.Players {
		if game.Players[i].Team == team {
			onTeam++
		}
	}
	if maxPerTeam > 0 && onTeam >= maxPerTeam {
		return nil, nil, errTeamFull
	}

	id := s.nextPlayerID
	if strings.EqualFold(name, game.OwnerName) {
		id = game.OwnerID
	} else {
		s.nextPlayerID++
	}
	player := Player{
		ID:        id,
		Name:      name,
		Team:      team,
		TurnOrder: onTeam + 1,
	}
	game.Players = append(game.Players, player)
	return game, &game.Players[len(game.Players)-1], nil
}

func (s *Store) FindPlayer(game *Game, playerID int) (*Player, bool) {
	return findPlayer(game, playerID)
}

// ResetWords marks every word in the game's batch unguessed again, for a
// fresh round over the same pool.
func (s *Store) ResetWords(idOrCode string) (*Game, error) {
	return s.UpdateGame(idOrCode, func(game *Game) error {
		for i := range game.Words {
			game.Words[i].Guessed = false
			game.Words[i].GuessedByTeam = 0
		}
		return nil
	})
}

func (s *Store) ListGameSummaries() []GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]GameSummary, 0, len(s.games))
	for _, game := range s.games {
		list = append(list, GameSummary{
			ID:       game.ID,
			JoinCode: game.JoinCode,
			Status:   game.Status,
			Players:  len(game.Players),
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return gameSortKey(list[i].ID) < gameSortKey(list[j].ID)
	})
	return list
}

func gameSortKey(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0
	}
	value, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return value
}
