package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"
)

type createGameRequest struct {
	OwnerName string `json:"owner_name"`
	Name      string `json:"name"`
	Team1Name string `json:"team1_name"`
	Team2Name string `json:"team2_name"`
}

type joinRequest struct {
	Name string `json:"name"`
	Team int    `json:"team"`
}

type playerRequest struct {
	PlayerID int `json:"player_id"`
}

type endTurnRequest struct {
	PlayerID     int `json:"player_id"`
	RevokePoints int `json:"revoke_points"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	if !s.enforceRateLimit(w, r, "create") {
		return
	}
	var req createGameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "owner_name, name and team names are required")
		return
	}
	ownerName, err := validateName(req.OwnerName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	gameName, err := validateGameName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	team1Name, err := validateTeamName(req.Team1Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	team2Name, err := validateTeamName(req.Team2Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	game := s.store.CreateGame(gameName, team1Name, team2Name, ownerName,
		s.cfg.TurnDurationSeconds, s.cfg.WinningScore)
	if err := s.persistGame(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create game")
		return
	}
	log.Printf("game created game_id=%s join_code=%s owner_id=%d", game.ID, game.JoinCode, game.OwnerID)
	s.sessions.SetPlayer(w, r, ownerName, game.OwnerID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"game_id":   game.ID,
		"join_code": game.JoinCode,
		"owner_id":  game.OwnerID,
	})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	summaries := s.store.ListGameSummaries()
	list := make([]map[string]any, 0, len(summaries))
	for _, summary := range summaries {
		list = append(list, map[string]any{
			"game_id":   summary.ID,
			"join_code": summary.JoinCode,
			"status":    summary.Status,
			"players":   summary.Players,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": list})
}

func (s *Server) handleGameSubroutes(w http.ResponseWriter, r *http.Request) {
	gameID, action, ok := parseGamePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method == http.MethodGet {
		switch action {
		case "":
			s.handleGetGame(w, r, gameID)
		case "events":
			s.handleEvents(w, r, gameID)
		default:
			http.NotFound(w, r)
		}
		return
	}
	switch action {
	case "join":
		s.handleJoinTeam(w, r, gameID)
	case "start":
		s.handleStartGame(w, r, gameID)
	case "turn/start":
		s.handleStartTurn(w, r, gameID)
	case "turn/correct":
		s.handleMarkCorrect(w, r, gameID)
	case "turn/skip":
		s.handleSkipWord(w, r, gameID)
	case "turn/end":
		s.handleEndTurn(w, r, gameID)
	case "end":
		s.handleEndGame(w, r, gameID)
	default:
		http.NotFound(w, r)
	}
}

func parseGamePath(path string) (string, string, bool) {
	trimmed := strings.TrimPrefix(path, "/api/games/")
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return "", "", false
	}
	parts := strings.Split(trimmed, "/")
	switch len(parts) {
	case 1:
		return parts[0], "", true
	case 2:
		return parts[0], parts[1], true
	case 3:
		if parts[1] != "turn" {
			return "", "", false
		}
		return parts[0], "turn/" + parts[2], true
	default:
		return "", "", false
	}
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request, gameID string) {
	game, ok := s.store.GetGame(gameID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	viewerID := 0
	if raw := r.URL.Query().Get("player_id"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			viewerID = value
		}
	}
	if viewerID == 0 {
		_, viewerID = s.sessions.GetPlayer(w, r)
	}
	writeJSON(w, http.StatusOK, snapshot(game, viewerID))
}

func (s *Server) handleJoinTeam(w http.ResponseWriter, r *http.Request, gameID string) {
	if !s.enforceRateLimit(w, r, "join") {
		return
	}
	var req joinRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "name and team are required")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	game, player, err := s.store.JoinTeam(gameID, name, req.Team, s.cfg.MaxPlayersPerTeam)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.persistPlayer(game, player); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to join game")
		return
	}
	log.Printf("player joined game_id=%s player_id=%d team=%d order=%d", game.ID, player.ID, player.Team, player.TurnOrder)
	s.sessions.SetPlayer(w, r, name, player.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"game_id":    game.ID,
		"join_code":  game.JoinCode,
		"player_id":  player.ID,
		"team":       player.Team,
		"turn_order": player.TurnOrder,
	})
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request, gameID string) {
	if !s.enforceRateLimit(w, r, "start") {
		return
	}
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	catalog := s.catalogWords()
	game, err := s.store.UpdateGame(gameID, func(game *Game) error {
		return startGame(game, req.PlayerID, catalog, s.cfg.WordsPerGame)
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.persistWordBatch(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start game")
		return
	}
	if err := s.persistGameState(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start game")
		return
	}
	if err := s.persistEvent(game, "game_started", EventPayload{
		PlayerID: req.PlayerID,
		Status:   game.Status,
		Count:    len(game.Words),
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start game")
		return
	}
	log.Printf("game started game_id=%s words=%d", game.ID, len(game.Words))
	writeJSON(w, http.StatusOK, snapshot(game, req.PlayerID))
}

func (s *Server) handleStartTurn(w http.ResponseWriter, r *http.Request, gameID string) {
	if !s.enforceRateLimit(w, r, "turn_start") {
		return
	}
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	var result startTurnResult
	game, err := s.store.UpdateGame(gameID, func(game *Game) error {
		var innerErr error
		result, innerErr = startTurn(game, req.PlayerID)
		return innerErr
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.persistGameState(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start turn")
		return
	}
	if result.Finished {
		if err := s.persistEvent(game, "game_finished", EventPayload{
			Status: game.Status,
			Winner: game.Winner,
		}); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to start turn")
			return
		}
		log.Printf("game finished game_id=%s winner=%d reason=words_exhausted", game.ID, game.Winner)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": game.Status,
			"winner": game.Winner,
		})
		return
	}
	if err := s.persistEvent(game, "turn_started", EventPayload{
		PlayerID: req.PlayerID,
		Team:     game.CurrentTeam,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start turn")
		return
	}
	log.Printf("turn started game_id=%s player_id=%d team=%d", game.ID, req.PlayerID, game.CurrentTeam)
	writeJSON(w, http.StatusOK, map[string]any{
		"word":     result.Word,
		"duration": result.Duration,
	})
}

func (s *Server) handleMarkCorrect(w http.ResponseWriter, r *http.Request, gameID string) {
	if !s.enforceRateLimit(w, r, "correct") {
		return
	}
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	guessedWord := ""
	guessedTeam := 0
	var result correctResult
	game, err := s.store.UpdateGame(gameID, func(game *Game) error {
		guessedWord = game.CurrentWord
		guessedTeam = game.CurrentTeam
		var innerErr error
		result, innerErr = markCorrect(game, req.PlayerID)
		return innerErr
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.persistWordGuessed(game, guessedWord, guessedTeam); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record word")
		return
	}
	if err := s.persistGameState(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record word")
		return
	}
	if err := s.persistEvent(game, "word_guessed", EventPayload{
		PlayerID: req.PlayerID,
		Team:     guessedTeam,
		Word:     guessedWord,
		Score:    result.Score,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record word")
		return
	}
	log.Printf("word guessed game_id=%s player_id=%d team=%d score=%d", game.ID, req.PlayerID, guessedTeam, result.Score)

	if result.GameOver {
		if err := s.persistEvent(game, "game_finished", EventPayload{
			Status: game.Status,
			Winner: result.Winner,
		}); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to record word")
			return
		}
		log.Printf("game finished game_id=%s winner=%d reason=winning_score", game.ID, result.Winner)
		writeJSON(w, http.StatusOK, map[string]any{
			"score":  result.Score,
			"status": game.Status,
			"winner": result.Winner,
		})
		return
	}
	if result.NoMoreWords {
		writeJSON(w, http.StatusOK, map[string]any{
			"score":         result.Score,
			"no_more_words": true,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"score": result.Score,
		"word":  result.NextWord,
	})
}

func (s *Server) handleSkipWord(w http.ResponseWriter, r *http.Request, gameID string) {
	if !s.enforceRateLimit(w, r, "skip") {
		return
	}
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	skipped := ""
	var word string
	game, err := s.store.UpdateGame(gameID, func(game *Game) error {
		skipped = game.CurrentWord
		var innerErr error
		word, innerErr = skipWord(game, req.PlayerID)
		return innerErr
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.persistGameState(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to skip word")
		return
	}
	if err := s.persistEvent(game, "word_skipped", EventPayload{
		PlayerID: req.PlayerID,
		Word:     skipped,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to skip word")
		return
	}
	log.Printf("word skipped game_id=%s player_id=%d", game.ID, req.PlayerID)
	writeJSON(w, http.StatusOK, map[string]any{"word": word})
}

func (s *Server) handleEndTurn(w http.ResponseWriter, r *http.Request, gameID string) {
	if !s.enforceRateLimit(w, r, "turn_end") {
		return
	}
	var req endTurnRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	if req.RevokePoints < 0 {
		writeError(w, http.StatusBadRequest, "revoke_points must not be negative")
		return
	}
	var result endTurnResult
	game, err := s.store.UpdateGame(gameID, func(game *Game) error {
		var innerErr error
		result, innerErr = endTurn(game, req.PlayerID, req.RevokePoints)
		return innerErr
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.persistGameState(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end turn")
		return
	}
	if err := s.persistEvent(game, "turn_ended", EventPayload{
		PlayerID: req.PlayerID,
		Revoked:  result.Revoked,
		NextTeam: result.NextTeam,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end turn")
		return
	}
	log.Printf("turn ended game_id=%s player_id=%d revoked=%d next_team=%d", game.ID, req.PlayerID, result.Revoked, result.NextTeam)
	writeJSON(w, http.StatusOK, map[string]any{"next_team": result.NextTeam})
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request, gameID string) {
	if !s.enforceRateLimit(w, r, "end") {
		return
	}
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	game, err := s.store.UpdateGame(gameID, func(game *Game) error {
		return endGame(game, req.PlayerID)
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.persistGameState(game); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end game")
		return
	}
	if err := s.persistEvent(game, "game_finished", EventPayload{
		PlayerID: req.PlayerID,
		Status:   game.Status,
		Winner:   game.Winner,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end game")
		return
	}
	log.Printf("game ended game_id=%s winner=%d reason=owner", game.ID, game.Winner)
	writeJSON(w, http.StatusOK, snapshot(game, req.PlayerID))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request, gameID string) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "events not available")
		return
	}
	game, ok := s.store.GetGame(gameID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load game")
			return
		}
	}
	records, err := s.loadEvents(game.DBID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load events")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game_id": game.ID,
		"events":  records,
	})
}
