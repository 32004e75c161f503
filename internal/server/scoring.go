package server

// addPoint grants one point to the team and reports whether the winning
// score was reached.
func addPoint(game *Game, team int) (int, bool) {
	score := 0
	if team == team2 {
		game.Team2Score++
		score = game.Team2Score
	} else {
		game.Team1Score++
		score = game.Team1Score
	}
	return score, score >= game.WinningScore
}

// revokePoints claws back points granted during a turn whose timer expired
// mid-guess. Scores never go below zero; the returned value is what was
// actually removed.
func revokePoints(game *Game, team, amount int) int {
	if amount <= 0 {
		return 0
	}
	score := &game.Team1Score
	if team == team2 {
		score = &game.Team2Score
	}
	if amount > *score {
		amount = *score
	}
	*score -= amount
	return amount
}

func teamScore(game *Game, team int) int {
	if team == team2 {
		return game.Team2Score
	}
	return game.Team1Score
}

// leadingTeam reports which team is ahead, 0 on a tie.
func leadingTeam(game *Game) int {
	switch {
	case game.Team1Score > game.Team2Score:
		return team1
	case game.Team2Score > game.Team1Score:
		return team2
	default:
		return 0
	}
}
