package server

import "sort"

// teamPlayers returns the team's roster in turn order.
func teamPlayers(game *Game, team int) []Player {
	players := make([]Player, 0, len(game.Players))
	for _, player := range game.Players {
		if player.Team == team {
			players = append(players, player)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].TurnOrder < players[j].TurnOrder
	})
	return players
}

func actorIndex(game *Game, team int) int {
	if team == team2 {
		return game.ActorIndexTeam2
	}
	return game.ActorIndexTeam1
}

// currentActor computes the player responsible for acting on the current
// team's turn: players[counter mod len]. Round-robin falls out of the
// counter incrementing by one each time the team's turn ends.
func currentActor(game *Game) (Player, bool) {
	players := teamPlayers(game, game.CurrentTeam)
	if len(players) == 0 {
		return Player{}, false
	}
	index := actorIndex(game, game.CurrentTeam) % len(players)
	return players[index], true
}

func advanceRotation(game *Game, team int) {
	if team == team2 {
		game.ActorIndexTeam2++
		return
	}
	game.ActorIndexTeam1++
}
