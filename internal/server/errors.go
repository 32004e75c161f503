package server

import (
	"errors"
	"net/http"
)

var (
	errGameNotFound   = errors.New("game not found")
	errPlayerNotFound = errors.New("player not found")
	errWordNotFound   = errors.New("word not found")

	errNotOwner    = errors.New("only the game owner can do that")
	errNotYourTurn = errors.New("not your turn")

	errAlreadyJoined  = errors.New("player already joined")
	errTeamFull       = errors.New("team is full")
	errInvalidTeam    = errors.New("team must be 1 or 2")
	errGameStarted    = errors.New("game already started")
	errGameNotPlaying = errors.New("game is not in play")
	errTurnInProgress = errors.New("turn already in progress")
	errNoActiveWord   = errors.New("no active word")

	errNoPlayersOnTeam = errors.New("team has no players")
	errNoAlternative   = errors.New("no alternative word")
)

// httpStatusFor maps the error taxonomy onto response codes: absent
// resources are 404, actions reserved for the owner or current actor are
// 403, everything else is a state conflict.
func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, errGameNotFound),
		errors.Is(err, errPlayerNotFound),
		errors.Is(err, errWordNotFound):
		return http.StatusNotFound
	case errors.Is(err, errNotOwner),
		errors.Is(err, errNotYourTurn):
		return http.StatusForbidden
	default:
		return http.StatusConflict
	}
}

func respondError(w http.ResponseWriter, err error) {
	writeError(w, httpStatusFor(err), err.Error())
}
