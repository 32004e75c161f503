package db

import (
	"time"

	"gorm.io/datatypes"
)

type Game struct {
	ID              uint      `gorm:"primaryKey"`
	JoinCode        string    `gorm:"size:12;uniqueIndex;not null"`
	Name            string    `gorm:"size:64;not null"`
	OwnerID         int       `gorm:"not null"`
	OwnerName       string    `gorm:"size:64;not null"`
	Team1Name       string    `gorm:"size:64;not null"`
	Team2Name       string    `gorm:"size:64;not null"`
	Team1Score      int       `gorm:"not null;default:0"`
	Team2Score      int       `gorm:"not null;default:0"`
	CurrentTeam     int       `gorm:"not null;default:1"`
	ActorIndexTeam1 int       `gorm:"not null;default:0"`
	ActorIndexTeam2 int       `gorm:"not null;default:0"`
	TurnSeconds     int       `gorm:"not null"`
	WinningScore    int       `gorm:"not null"`
	Status          string    `gorm:"size:16;not null"`
	CurrentWord     string    `gorm:"size:64"`
	TurnStartedAt   *time.Time
	Winner          int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
	Players         []Player
	GameWords       []GameWord
	Events          []Event
}

type Player struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"index;not null;uniqueIndex:idx_players_game_name"`
	Name      string    `gorm:"size:64;not null;uniqueIndex:idx_players_game_name"`
	Team      int       `gorm:"not null"`
	TurnOrder int       `gorm:"not null"`
	JoinedAt  time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Word is the shared catalog; games sample from it without replacement.
type Word struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GameWord struct {
	ID            uint      `gorm:"primaryKey"`
	GameID        uint      `gorm:"index;not null;uniqueIndex:idx_game_words_game_text"`
	Text          string    `gorm:"size:64;not null;uniqueIndex:idx_game_words_game_text"`
	Guessed       bool      `gorm:"not null;default:false"`
	GuessedByTeam int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

type Session struct {
	ID         string    `gorm:"primaryKey;size:64"`
	PlayerName string    `gorm:"size:64"`
	PlayerID   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	GameID    uint           `gorm:"index;not null"`
	PlayerID  *uint          `gorm:"index"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
