package server

type EventPayload struct {
	GameID     string `json:"game_id,omitempty"`
	JoinCode   string `json:"join_code,omitempty"`
	PlayerName string `json:"player,omitempty"`
	PlayerID   int    `json:"player_id,omitempty"`
	Team       int    `json:"team,omitempty"`
	Word       string `json:"word,omitempty"`
	Score      int    `json:"score,omitempty"`
	Revoked    int    `json:"revoked,omitempty"`
	NextTeam   int    `json:"next_team,omitempty"`
	Winner     int    `json:"winner,omitempty"`
	Status     string `json:"status,omitempty"`
	Count      int    `json:"count,omitempty"`
}
