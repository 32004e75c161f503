package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPointDetectsWin(t *testing.T) {
	game := &Game{WinningScore: 2}

	score, won := addPoint(game, team1)
	assert.Equal(t, 1, score)
	assert.False(t, won)

	score, won = addPoint(game, team1)
	assert.Equal(t, 2, score)
	assert.True(t, won)

	score, won = addPoint(game, team2)
	assert.Equal(t, 1, score)
	assert.False(t, won)
}

func TestRevokePointsFloorsAtZero(t *testing.T) {
	game := &Game{Team1Score: 2, Team2Score: 1}

	removed := revokePoints(game, team1, 5)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, game.Team1Score)

	removed = revokePoints(game, team1, 1)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 0, game.Team1Score)

	removed = revokePoints(game, team2, 0)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, game.Team2Score)
}

func TestLeadingTeam(t *testing.T) {
	game := &Game{Team1Score: 3, Team2Score: 1}
	assert.Equal(t, team1, leadingTeam(game))

	game.Team2Score = 3
	assert.Equal(t, 0, leadingTeam(game))

	game.Team2Score = 4
	assert.Equal(t, team2, leadingTeam(game))
}
