package lichess

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchessacademy/website/src/config"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithConfig(config.LichessConfig{
		BaseUrl:     server.URL,
		ExplorerUrl: server.URL,
		UserAgent:   "test-agent",
	})
}

func TestDailyPuzzle(t *testing.T) {
	var requests int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/api/puzzle/daily", r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(`{
			"game": {"id": "abcdefgh", "pgn": "1. e4 e5", "clock": "3+0"},
			"puzzle": {"id": "xyz", "rating": 1874, "plays": 1000, "initialPly": 2, "solution": ["d8h4"], "themes": ["mateIn1"]}
		}`))
	}))

	puzzle, err := client.DailyPuzzle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", puzzle.Game.ID)
	assert.Equal(t, 1874, puzzle.Puzzle.Rating)
	assert.Equal(t, []string{"d8h4"}, puzzle.Puzzle.Solution)

	// Second call comes from the cache.
	_, err = client.DailyPuzzle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestTVChannels(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tv/channels", r.URL.Path)
		w.Write([]byte(`{
			"blitz": {"user": {"id": "grischuk", "name": "Grischuk", "title": "GM"}, "rating": 2772, "gameId": "abc123"},
			"rapid": {"user": {"id": "someone", "name": "Someone"}, "rating": 2100, "gameId": "def456"}
		}`))
	}))

	channels, err := client.TVChannels(context.Background())
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "GM", channels["blitz"].User.Title)
	assert.Equal(t, "def456", channels["rapid"].GameID)
}

func TestUserGamesNDJSON(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/games/user/drnykterstein", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("max"))
		assert.Equal(t, "application/x-ndjson", r.Header.Get("Accept"))
		w.Write([]byte(`{"id": "g1", "speed": "blitz", "winner": "white", "players": {"white": {"user": {"name": "A"}, "rating": 2800}, "black": {"user": {"name": "B"}, "rating": 2750}}}
{"id": "g2", "speed": "bullet", "winner": "black", "players": {"white": {"user": {"name": "C"}, "rating": 2700}, "black": {"user": {"name": "D"}, "rating": 2650}}}

`))
	}))

	games, err := client.UserGames(context.Background(), "drnykterstein", 10)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "g1", games[0].ID)
	assert.Equal(t, "A", games[0].Players.White.User.Name)
	assert.Equal(t, "black", games[1].Winner)
}

func TestUserStudiesNDJSON(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/study/by/coach", r.URL.Path)
		w.Write([]byte(`{"id": "s1", "name": "Endgames", "likes": 12, "chapters": [{"id": "c1", "name": "Lucena"}]}
{"id": "s2", "name": "Openings", "likes": 3}`))
	}))

	studies, err := client.UserStudies(context.Background(), "coach")
	require.NoError(t, err)
	require.Len(t, studies, 2)
	assert.Equal(t, "Endgames", studies[0].Name)
	require.Len(t, studies[0].Chapters, 1)
	assert.Equal(t, "Lucena", studies[0].Chapters[0].Name)
}

func TestOpeningStats(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/masters", r.URL.Path)
		assert.Equal(t, fen, r.URL.Query().Get("fen"))
		w.Write([]byte(`{"white": 100, "draws": 50, "black": 40, "moves": [{"uci": "e7e5", "san": "e5", "white": 60, "draws": 30, "black": 20}]}`))
	}))

	stats, err := client.OpeningStats(context.Background(), fen)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.White)
	require.Len(t, stats.Moves, 1)
	assert.Equal(t, "e5", stats.Moves[0].SAN)
}

func TestServerErrorsAreRetried(t *testing.T) {
	var requests int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"id": "magnus", "username": "Magnus"}`))
	}))

	user, err := client.User(context.Background(), "magnus")
	require.NoError(t, err)
	assert.Equal(t, "Magnus", user.Username)
	assert.Equal(t, 3, requests)
}

func TestServerErrorsGiveUpEventually(t *testing.T) {
	var requests int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.User(context.Background(), "magnus")
	assert.Error(t, err)
	assert.Equal(t, maxAttempts, requests)
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var requests int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.User(context.Background(), "ghost")
	assert.Error(t, err)
	assert.Equal(t, 1, requests)
}

func TestDecodeNDJSONBadLine(t *testing.T) {
	_, err := decodeNDJSON[Game]([]byte("{\"id\": \"ok\"}\nnot json\n"))
	assert.Error(t, err)
}
