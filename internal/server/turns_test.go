package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playingGame(winningScore int, words ...string) *Game {
	game := &Game{
		ID:           "game-1",
		OwnerID:      1,
		OwnerName:    "Ada",
		Status:       statusPlaying,
		CurrentTeam:  team1,
		TurnState:    turnIdle,
		TurnSeconds:  60,
		WinningScore: winningScore,
		Players: []Player{
			{ID: 1, Name: "Ada", Team: 1, TurnOrder: 1},
			{ID: 2, Name: "Ben", Team: 2, TurnOrder: 1},
		},
	}
	for _, word := range words {
		game.Words = append(game.Words, WordEntry{Text: word})
	}
	return game
}

func TestStartGameGuards(t *testing.T) {
	game := playingGame(3, "anchor")
	game.Status = statusWaiting

	err := startGame(game, 2, []string{"anchor"}, 10)
	assert.ErrorIs(t, err, errNotOwner)

	game.Players = game.Players[:1]
	err = startGame(game, 1, []string{"anchor"}, 10)
	assert.ErrorIs(t, err, errNoPlayersOnTeam)

	game.Players = append(game.Players, Player{ID: 2, Name: "Ben", Team: 2, TurnOrder: 1})
	require.NoError(t, startGame(game, 1, []string{"anchor", "bridge"}, 10))
	assert.Equal(t, statusPlaying, game.Status)
	assert.Equal(t, team1, game.CurrentTeam)
	assert.Len(t, game.Words, 2)

	err = startGame(game, 1, []string{"anchor"}, 10)
	assert.ErrorIs(t, err, errGameStarted)
}

func TestStartTurnAssignsWordToActorOnly(t *testing.T) {
	game := playingGame(3, "anchor")

	_, err := startTurn(game, 2)
	assert.ErrorIs(t, err, errNotYourTurn)

	result, err := startTurn(game, 1)
	require.NoError(t, err)
	assert.Equal(t, "anchor", result.Word)
	assert.Equal(t, 60, result.Duration)
	assert.Equal(t, turnActing, game.TurnState)
	require.NotNil(t, game.TurnStartedAt)

	_, err = startTurn(game, 1)
	assert.ErrorIs(t, err, errTurnInProgress)
}

func TestStartTurnExhaustedPoolFinishesGame(t *testing.T) {
	game := playingGame(3)
	game.Team1Score = 2
	game.Team2Score = 1

	result, err := startTurn(game, 1)
	require.NoError(t, err)
	assert.True(t, result.Finished)
	assert.Equal(t, team1, result.Winner)
	assert.Equal(t, statusFinished, game.Status)

	_, err = startTurn(game, 1)
	assert.ErrorIs(t, err, errGameNotPlaying)
}

func TestMarkCorrectRequiresActiveWord(t *testing.T) {
	game := playingGame(3, "anchor")

	_, err := markCorrect(game, 1)
	assert.ErrorIs(t, err, errNoActiveWord)
}

func TestMarkCorrectDrawsNextWord(t *testing.T) {
	game := playingGame(5, "anchor", "bridge")
	_, err := startTurn(game, 1)
	require.NoError(t, err)

	first := game.CurrentWord
	result, err := markCorrect(game, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.NotEqual(t, first, result.NextWord)
	assert.Equal(t, turnActing, game.TurnState)

	result, err = markCorrect(game, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.True(t, result.NoMoreWords)
	assert.Equal(t, turnAwaitingNext, game.TurnState)
	assert.Equal(t, "", game.CurrentWord)

	_, err = markCorrect(game, 1)
	assert.ErrorIs(t, err, errNoActiveWord)
}

func TestMarkCorrectWinningScoreFinishesGame(t *testing.T) {
	game := playingGame(3, "anchor", "bridge", "cactus", "dolphin")
	_, err := startTurn(game, 1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		result, err := markCorrect(game, 1)
		require.NoError(t, err)
		assert.False(t, result.GameOver)
	}
	result, err := markCorrect(game, 1)
	require.NoError(t, err)
	assert.True(t, result.GameOver)
	assert.Equal(t, team1, result.Winner)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, statusFinished, game.Status)
	assert.Equal(t, "", game.CurrentWord)

	_, err = markCorrect(game, 1)
	assert.ErrorIs(t, err, errGameNotPlaying)
	_, err = startTurn(game, 1)
	assert.ErrorIs(t, err, errGameNotPlaying)
}

func TestSkipWordSwapsWithoutScoring(t *testing.T) {
	game := playingGame(3, "anchor", "bridge")
	_, err := startTurn(game, 1)
	require.NoError(t, err)

	first := game.CurrentWord
	word, err := skipWord(game, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, word)
	assert.Equal(t, 0, game.Team1Score)
}

func TestSkipWordNoAlternative(t *testing.T) {
	game := playingGame(3, "anchor")
	_, err := startTurn(game, 1)
	require.NoError(t, err)

	_, err = skipWord(game, 1)
	assert.ErrorIs(t, err, errNoAlternative)
	assert.Equal(t, "anchor", game.CurrentWord)
}

func TestSkipWordRequiresTurn(t *testing.T) {
	game := playingGame(3, "anchor", "bridge")

	_, err := skipWord(game, 1)
	assert.ErrorIs(t, err, errNoActiveWord)
}

func TestEndTurnFlipsTeamAndRotates(t *testing.T) {
	game := playingGame(3, "anchor", "bridge")
	_, err := startTurn(game, 1)
	require.NoError(t, err)

	result, err := endTurn(game, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, team2, result.NextTeam)
	assert.Equal(t, team2, game.CurrentTeam)
	assert.Equal(t, 1, game.ActorIndexTeam1)
	assert.Equal(t, 0, game.ActorIndexTeam2)
	assert.Equal(t, "", game.CurrentWord)
	assert.Nil(t, game.TurnStartedAt)
	assert.Equal(t, turnIdle, game.TurnState)

	// Ending again flips back without touching scores.
	result, err = endTurn(game, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, team1, result.NextTeam)
	assert.Equal(t, 0, game.Team1Score)
	assert.Equal(t, 0, game.Team2Score)
}

func TestEndTurnRevocationFloorsAtZero(t *testing.T) {
	game := playingGame(5, "anchor", "bridge", "cactus")
	game.Team1Score = 2

	result, err := endTurn(game, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Revoked)
	assert.Equal(t, 0, game.Team1Score)
	assert.Equal(t, team2, game.CurrentTeam)

	result, err = endTurn(game, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Revoked)
	assert.Equal(t, 0, game.Team2Score)
}

func TestEndGameOwnerOnly(t *testing.T) {
	game := playingGame(3, "anchor")
	game.Team2Score = 1

	err := endGame(game, 2)
	assert.ErrorIs(t, err, errNotOwner)

	require.NoError(t, endGame(game, 1))
	assert.Equal(t, statusFinished, game.Status)
	assert.Equal(t, team2, game.Winner)

	err = endGame(game, 1)
	assert.ErrorIs(t, err, errGameNotPlaying)
}

// One player per team, winning score 3: three correct guesses end the game.
func TestSmallGameToVictory(t *testing.T) {
	game := playingGame(3, "anchor", "bridge", "cactus", "dolphin", "firefly")

	result, err := startTurn(game, 1)
	require.NoError(t, err)
	require.NotEmpty(t, result.Word)

	for i := 1; i <= 2; i++ {
		correct, err := markCorrect(game, 1)
		require.NoError(t, err)
		assert.Equal(t, i, correct.Score)
	}
	correct, err := markCorrect(game, 1)
	require.NoError(t, err)
	assert.True(t, correct.GameOver)
	assert.Equal(t, team1, correct.Winner)
	assert.Equal(t, statusFinished, game.Status)
	assert.Equal(t, 3, game.Team1Score)
}
