package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func createGame(t *testing.T, ts *httptest.Server, ownerName string) (string, int) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"owner_name": ownerName,
		"name":       "Friday Night",
		"team1_name": "Reds",
		"team2_name": "Blues",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create game: expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	payload := decodeBody(t, resp)
	gameID, _ := payload["game_id"].(string)
	ownerID, _ := payload["owner_id"].(float64)
	if gameID == "" || ownerID == 0 {
		t.Fatalf("create game: unexpected payload %#v", payload)
	}
	return gameID, int(ownerID)
}

func joinTeam(t *testing.T, ts *httptest.Server, gameID, name string, team int) int {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/join", map[string]any{
		"name": name,
		"team": team,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("join team: expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	payload := decodeBody(t, resp)
	playerID, _ := payload["player_id"].(float64)
	if playerID == 0 {
		t.Fatalf("join team: unexpected payload %#v", payload)
	}
	return int(playerID)
}
