package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"word-rush/internal/db"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// The persist* helpers write through to Postgres when a connection exists
// and are no-ops otherwise, so the server (and the tests) can run entirely
// in memory.

func (s *Server) persistGame(game *Game) error {
	if s.db == nil {
		return nil
	}
	record := db.Game{
		JoinCode:     game.JoinCode,
		Name:         game.Name,
		OwnerID:      game.OwnerID,
		OwnerName:    game.OwnerName,
		Team1Name:    game.Team1Name,
		Team2Name:    game.Team2Name,
		CurrentTeam:  game.CurrentTeam,
		TurnSeconds:  game.TurnSeconds,
		WinningScore: game.WinningScore,
		Status:       game.Status,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return err
	}
	game.DBID = record.ID
	newID := fmt.Sprintf("game-%d", record.ID)
	if game.ID != newID {
		s.store.UpdateGameID(game, newID)
	}
	return s.persistEvent(game, "game_created", EventPayload{
		GameID:   game.ID,
		JoinCode: game.JoinCode,
	})
}

func (s *Server) persistPlayer(game *Game, player *Player) error {
	if s.db == nil {
		return nil
	}
	if player.DBID != 0 {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
		if game.DBID == 0 {
			return errGameNotFound
		}
	}
	record := db.Player{
		GameID:    game.DBID,
		Name:      player.Name,
		Team:      player.Team,
		TurnOrder: player.TurnOrder,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		if isUniqueViolation(err) {
			existing, lookupErr := s.findPlayerDBID(game.DBID, player.Name)
			if lookupErr == nil && existing != 0 {
				player.DBID = existing
				return nil
			}
		}
		return err
	}
	player.DBID = record.ID
	return s.persistEvent(game, "player_joined", EventPayload{
		PlayerName: player.Name,
		PlayerID:   player.ID,
		Team:       player.Team,
	})
}

func (s *Server) findPlayerDBID(gameDBID uint, name string) (uint, error) {
	var record db.Player
	if err := s.db.Where("game_id = ? AND name = ?", gameDBID, name).First(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

// persistWordBatch stores the words materialized at game start.
func (s *Server) persistWordBatch(game *Game) error {
	if s.db == nil {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	}
	if game.DBID == 0 {
		return errGameNotFound
	}
	for i := range game.Words {
		entry := &game.Words[i]
		if entry.DBID != 0 {
			continue
		}
		record := db.GameWord{
			GameID: game.DBID,
			Text:   entry.Text,
		}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
			return err
		}
		entry.DBID = record.ID
	}
	return nil
}

// persistGameState writes the mutable turn and score columns after a
// transition.
func (s *Server) persistGameState(game *Game) error {
	if s.db == nil {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	}
	if game.DBID == 0 {
		return errGameNotFound
	}
	updates := map[string]any{
		"team1_score":       game.Team1Score,
		"team2_score":       game.Team2Score,
		"current_team":      game.CurrentTeam,
		"actor_index_team1": game.ActorIndexTeam1,
		"actor_index_team2": game.ActorIndexTeam2,
		"status":            game.Status,
		"current_word":      game.CurrentWord,
		"turn_started_at":   game.TurnStartedAt,
		"winner":            game.Winner,
	}
	return s.db.Model(&db.Game{}).Where("id = ?", game.DBID).Updates(updates).Error
}

func (s *Server) persistWordGuessed(game *Game, word string, team int) error {
	if s.db == nil {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	}
	if game.DBID == 0 {
		return errGameNotFound
	}
	updates := map[string]any{
		"guessed":         true,
		"guessed_by_team": team,
	}
	return s.db.Model(&db.GameWord{}).
		Where("game_id = ? AND text = ?", game.DBID, word).
		Updates(updates).Error
}

func (s *Server) persistEvent(game *Game, eventType string, payload EventPayload) error {
	if s.db == nil {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	}
	if game.DBID == 0 {
		return errGameNotFound
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.Event{
		GameID:   game.DBID,
		PlayerID: s.resolveEventPlayerID(game, payload),
		Type:     eventType,
		Payload:  datatypes.JSON(data),
	}
	return s.db.Create(&event).Error
}

func (s *Server) loadEvents(gameDBID uint) ([]map[string]any, error) {
	var records []db.Event
	if err := s.db.Where("game_id = ?", gameDBID).Order("created_at asc").Find(&records).Error; err != nil {
		return nil, err
	}
	events := make([]map[string]any, 0, len(records))
	for _, record := range records {
		events = append(events, map[string]any{
			"id":         record.ID,
			"type":       record.Type,
			"player_id":  record.PlayerID,
			"created_at": record.CreatedAt,
			"payload":    record.Payload,
		})
	}
	return events, nil
}

func (s *Server) resolveEventPlayerID(game *Game, payload EventPayload) *uint {
	if payload.PlayerID <= 0 {
		return nil
	}
	player, found := s.store.FindPlayer(game, payload.PlayerID)
	if found && player.DBID != 0 {
		value := player.DBID
		return &value
	}
	return nil
}

func (s *Server) ensureGameDBID(game *Game) error {
	if s.db == nil || game.DBID != 0 {
		return nil
	}
	var record db.Game
	if err := s.db.Where("join_code = ?", game.JoinCode).First(&record).Error; err != nil {
		return nil
	}
	game.DBID = record.ID
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
