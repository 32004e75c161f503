package server

import "time"

const (
	statusWaiting  = "waiting"
	statusPlaying  = "playing"
	statusFinished = "finished"
)

// Turn sub-state while a game is playing. Exactly one of these holds at a
// time; a non-empty CurrentWord implies turnActing.
const (
	turnIdle         = "idle"
	turnActing       = "acting"
	turnAwaitingNext = "awaiting_next"
)

const (
	team1 = 1
	team2 = 2
)

type GameSummary struct {
	ID       string
	JoinCode string
	Status   string
	Players  int
}

type Game struct {
	ID              string
	DBID            uint
	JoinCode        string
	Name            string
	OwnerID         int
	OwnerName       string
	Team1Name       string
	Team2Name       string
	Team1Score      int
	Team2Score      int
	CurrentTeam     int
	ActorIndexTeam1 int
	ActorIndexTeam2 int
	TurnSeconds     int
	WinningScore    int
	Status          string
	TurnState       string
	CurrentWord     string
	TurnStartedAt   *time.Time
	Winner          int
	Players         []Player
	Words           []WordEntry
}

type Player struct {
	ID        int
	DBID      uint
	Name      string
	Team      int
	TurnOrder int
}

// WordEntry is one word materialized for a single game.
type WordEntry struct {
	Text          string
	DBID          uint
	Guessed       bool
	GuessedByTeam int
}

func otherTeam(team int) int {
	if team == team1 {
		return team2
	}
	return team1
}
