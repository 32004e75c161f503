package server

// snapshot projects game state for one viewer. The current word is the only
// redacted field: everyone but the current actor sees null, which is all
// the anti-cheat this design attempts.
func snapshot(game *Game, viewerID int) map[string]any {
	actorID := 0
	actorName := ""
	if actor, ok := currentActor(game); ok {
		actorID = actor.ID
		actorName = actor.Name
	}

	var word any
	if game.CurrentWord != "" && viewerID == actorID {
		word = game.CurrentWord
	}

	var turnStartedAt any
	if game.TurnStartedAt != nil {
		turnStartedAt = game.TurnStartedAt
	}

	return map[string]any{
		"game_id":   game.ID,
		"join_code": game.JoinCode,
		"name":      game.Name,
		"status":    game.Status,
		"owner_id":  game.OwnerID,
		"teams": []map[string]any{
			teamPayload(game, team1, game.Team1Name, game.Team1Score),
			teamPayload(game, team2, game.Team2Name, game.Team2Score),
		},
		"current_team":    game.CurrentTeam,
		"turn_state":      game.TurnState,
		"current_actor":   actorID,
		"actor_name":      actorName,
		"current_word":    word,
		"turn_started_at": turnStartedAt,
		"turn_seconds":    game.TurnSeconds,
		"winning_score":   game.WinningScore,
		"words_remaining": unguessedCount(game),
		"winner":          game.Winner,
	}
}

func teamPayload(game *Game, team int, name string, score int) map[string]any {
	players := teamPlayers(game, team)
	list := make([]map[string]any, 0, len(players))
	for _, player := range players {
		list = append(list, map[string]any{
			"player_id":  player.ID,
			"name":       player.Name,
			"turn_order": player.TurnOrder,
		})
	}
	return map[string]any{
		"team":    team,
		"name":    name,
		"score":   score,
		"players": list,
	}
}
