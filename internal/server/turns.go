package server

import "time"

// The turn engine. Every function here runs inside a Store.UpdateGame
// closure, so a whole transition is one atomic step per game.

type startTurnResult struct {
	Word     string
	Duration int
	Finished bool
	Winner   int
}

type correctResult struct {
	Score       int
	GameOver    bool
	Winner      int
	NoMoreWords bool
	NextWord    string
}

type endTurnResult struct {
	NextTeam int
	Revoked  int
}

// startGame moves waiting → playing: both teams must be populated, the word
// batch is materialized, team 1 acts first with both rotation counters at
// zero.
func startGame(game *Game, playerID int, catalog []string, wordsPerGame int) error {
	if playerID != game.OwnerID {
		return errNotOwner
	}
	if game.Status != statusWaiting {
		return errGameStarted
	}
	if len(teamPlayers(game, team1)) == 0 || len(teamPlayers(game, team2)) == 0 {
		return errNoPlayersOnTeam
	}
	materializeWords(game, catalog, wordsPerGame)
	game.Status = statusPlaying
	game.CurrentTeam = team1
	game.ActorIndexTeam1 = 0
	game.ActorIndexTeam2 = 0
	game.TurnState = turnIdle
	return nil
}

// startTurn assigns a word to the current actor and starts the clock. An
// exhausted pool is not an error: it ends the game with the leading team as
// winner.
func startTurn(game *Game, playerID int) (startTurnResult, error) {
	if game.Status != statusPlaying {
		return startTurnResult{}, errGameNotPlaying
	}
	if game.TurnState != turnIdle {
		return startTurnResult{}, errTurnInProgress
	}
	actor, ok := currentActor(game)
	if !ok {
		return startTurnResult{}, errNoPlayersOnTeam
	}
	if actor.ID != playerID {
		return startTurnResult{}, errNotYourTurn
	}
	word, ok := drawNext(game)
	if !ok {
		finishGame(game, leadingTeam(game))
		return startTurnResult{Finished: true, Winner: game.Winner}, nil
	}
	now := timeNowUTC()
	game.CurrentWord = word
	game.TurnStartedAt = &now
	game.TurnState = turnActing
	return startTurnResult{Word: word, Duration: game.TurnSeconds}, nil
}

// markCorrect records a guessed word for the acting team. The next word is
// drawn automatically; when none remain the actor must end the turn.
func markCorrect(game *Game, playerID int) (correctResult, error) {
	if game.Status != statusPlaying {
		return correctResult{}, errGameNotPlaying
	}
	if game.CurrentWord == "" {
		return correctResult{}, errNoActiveWord
	}
	actor, ok := currentActor(game)
	if !ok {
		return correctResult{}, errNoPlayersOnTeam
	}
	if actor.ID != playerID {
		return correctResult{}, errNotYourTurn
	}

	markGuessed(game, game.CurrentWord, game.CurrentTeam)
	score, won := addPoint(game, game.CurrentTeam)
	if won {
		finishGame(game, game.CurrentTeam)
		return correctResult{Score: score, GameOver: true, Winner: game.CurrentTeam}, nil
	}
	next, ok := drawNext(game)
	if !ok {
		game.CurrentWord = ""
		game.TurnState = turnAwaitingNext
		return correctResult{Score: score, NoMoreWords: true}, nil
	}
	game.CurrentWord = next
	return correctResult{Score: score, NextWord: next}, nil
}

// skipWord swaps the current word for a different unguessed one, no score
// change.
func skipWord(game *Game, playerID int) (string, error) {
	if game.Status != statusPlaying {
		return "", errGameNotPlaying
	}
	if game.TurnState == turnIdle {
		return "", errNoActiveWord
	}
	actor, ok := currentActor(game)
	if !ok {
		return "", errNoPlayersOnTeam
	}
	if actor.ID != playerID {
		return "", errNotYourTurn
	}
	word, ok := drawExcluding(game, game.CurrentWord)
	if !ok {
		return "", errNoAlternative
	}
	game.CurrentWord = word
	game.TurnState = turnActing
	return word, nil
}

// endTurn hands play to the other team. The caller reports how many points
// to revoke for words in flight when the countdown expired; the clamp in
// revokePoints keeps scores non-negative.
func endTurn(game *Game, playerID, revoke int) (endTurnResult, error) {
	if game.Status != statusPlaying {
		return endTurnResult{}, errGameNotPlaying
	}
	if _, ok := findPlayer(game, playerID); !ok {
		return endTurnResult{}, errPlayerNotFound
	}
	endedTeam := game.CurrentTeam
	revoked := revokePoints(game, endedTeam, revoke)
	game.CurrentWord = ""
	game.TurnStartedAt = nil
	game.TurnState = turnIdle
	advanceRotation(game, endedTeam)
	game.CurrentTeam = otherTeam(endedTeam)
	return endTurnResult{NextTeam: game.CurrentTeam, Revoked: revoked}, nil
}

func endGame(game *Game, playerID int) error {
	if playerID != game.OwnerID {
		return errNotOwner
	}
	if game.Status == statusFinished {
		return errGameNotPlaying
	}
	finishGame(game, leadingTeam(game))
	return nil
}

// finishGame is terminal: no transition leaves finished.
func finishGame(game *Game, winner int) {
	game.Status = statusFinished
	game.Winner = winner
	game.CurrentWord = ""
	game.TurnStartedAt = nil
	game.TurnState = turnIdle
}

func findPlayer(game *Game, playerID int) (*Player, bool) {
	for i := range game.Players {
		if game.Players[i].ID == playerID {
			return &game.Players[i], true
		}
	}
	return nil, false
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
