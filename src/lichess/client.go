package lichess

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jpillora/backoff"
	"github.com/mmcdole/gofeed"
	"github.com/patrickmn/go-cache"

	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/logging"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/utils"
)

// Cache lifetimes per endpoint. TV moves fast, master openings do not.
const (
	ttlTV                = 30 * time.Second
	ttlTournaments       = 5 * time.Minute
	ttlTournamentDetails = 1 * time.Minute
	ttlGames             = 10 * time.Minute
	ttlPuzzle            = 1 * time.Hour
	ttlUser              = 1 * time.Hour
	ttlStudy             = 1 * time.Hour
	ttlBlog              = 1 * time.Hour
	ttlOpeningStats      = 24 * time.Hour
)

const maxAttempts = 3

// Client talks to the lichess.org API and the opening explorer. All
// responses are cached in memory with per-endpoint lifetimes, so page
// handlers can call these freely on every request.
type Client struct {
	baseUrl     string
	explorerUrl string
	userAgent   string
	httpClient  *http.Client
	cache       *cache.Cache
	feedParser  *gofeed.Parser
}

func NewClient() *Client {
	return NewClientWithConfig(config.Config.Lichess)
}

func NewClientWithConfig(cfg config.LichessConfig) *Client {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	return &Client{
		baseUrl:     cfg.BaseUrl,
		explorerUrl: cfg.ExplorerUrl,
		userAgent:   cfg.UserAgent,
		httpClient:  httpClient,
		cache:       cache.New(ttlBlog, 10*time.Minute),
		feedParser:  gofeed.NewParser(),
	}
}

func (c *Client) DailyPuzzle(ctx context.Context) (*Puzzle, error) {
	return getJSON[*Puzzle](ctx, c, "puzzle/daily", c.baseUrl+"/api/puzzle/daily", ttlPuzzle)
}

func (c *Client) TVChannels(ctx context.Context) (TVChannels, error) {
	return getJSON[TVChannels](ctx, c, "tv/channels", c.baseUrl+"/api/tv/channels", ttlTV)
}

func (c *Client) User(ctx context.Context, username string) (*User, error) {
	return getJSON[*User](ctx, c,
		"user/"+username,
		fmt.Sprintf("%s/api/user/%s", c.baseUrl, url.PathEscape(username)),
		ttlUser,
	)
}

// UserGames fetches a user's most recent games. The endpoint streams
// NDJSON, one game per line.
func (c *Client) UserGames(ctx context.Context, username string, max int) ([]Game, error) {
	query := url.Values{}
	query.Add("max", fmt.Sprintf("%d", max))
	query.Add("pgnInJson", "true")
	query.Add("moves", "true")
	query.Add("opening", "true")
	return getNDJSON[Game](ctx, c,
		fmt.Sprintf("games/user/%s/%d", username, max),
		fmt.Sprintf("%s/api/games/user/%s?%s", c.baseUrl, url.PathEscape(username), query.Encode()),
		ttlGames,
	)
}

func (c *Client) Tournaments(ctx context.Context) (*TournamentList, error) {
	return getJSON[*TournamentList](ctx, c, "tournament", c.baseUrl+"/api/tournament", ttlTournaments)
}

func (c *Client) TournamentDetails(ctx context.Context, tournamentID string) (*TournamentDetails, error) {
	return getJSON[*TournamentDetails](ctx, c,
		"tournament/"+tournamentID,
		fmt.Sprintf("%s/api/tournament/%s", c.baseUrl, url.PathEscape(tournamentID)),
		ttlTournamentDetails,
	)
}

func (c *Client) Study(ctx context.Context, studyID string) (*Study, error) {
	return getJSON[*Study](ctx, c,
		"study/"+studyID,
		fmt.Sprintf("%s/api/study/%s.json", c.baseUrl, url.PathEscape(studyID)),
		ttlStudy,
	)
}

// UserStudies fetches the public studies of a user, NDJSON again.
func (c *Client) UserStudies(ctx context.Context, username string) ([]Study, error) {
	return getNDJSON[Study](ctx, c,
		"study/by/"+username,
		fmt.Sprintf("%s/api/study/by/%s", c.baseUrl, url.PathEscape(username)),
		ttlStudy,
	)
}

// OpeningStats queries the masters database on the explorer host for
// the games reaching the given position.
func (c *Client) OpeningStats(ctx context.Context, fen string) (*OpeningStats, error) {
	query := url.Values{}
	query.Add("fen", fen)
	return getJSON[*OpeningStats](ctx, c,
		"masters/"+fen,
		fmt.Sprintf("%s/masters?%s", c.explorerUrl, query.Encode()),
		ttlOpeningStats,
	)
}

func getJSON[T any](ctx context.Context, c *Client, cacheKey string, fullUrl string, ttl time.Duration) (T, error) {
	var zero T
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(T), nil
	}

	body, err := c.get(ctx, fullUrl, "application/json")
	if err != nil {
		return zero, err
	}

	var result T
	err = json.Unmarshal(body, &result)
	if err != nil {
		return zero, oops.New(err, "failed to parse lichess response for %s", cacheKey)
	}

	c.cache.Set(cacheKey, result, ttl)
	return result, nil
}

func getNDJSON[T any](ctx context.Context, c *Client, cacheKey string, fullUrl string, ttl time.Duration) ([]T, error) {
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]T), nil
	}

	body, err := c.get(ctx, fullUrl, "application/x-ndjson")
	if err != nil {
		return nil, err
	}

	results, err := decodeNDJSON[T](body)
	if err != nil {
		return nil, oops.New(err, "failed to parse lichess NDJSON response for %s", cacheKey)
	}

	c.cache.Set(cacheKey, results, ttl)
	return results, nil
}

func decodeNDJSON[T any](body []byte) ([]T, error) {
	results := make([]T, 0)
	scanner := bufio.NewScanner(bytes.NewReader(body))
	// Game lines with full PGN routinely blow past the default limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var result T
		err := json.Unmarshal(line, &result)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// get performs a GET with retries. Server-side errors get retried a
// couple of times with jittered backoff; client errors do not, a 404
// will still be a 404 the second time.
func (c *Client) get(ctx context.Context, fullUrl string, accept string) ([]byte, error) {
	bo := &backoff.Backoff{
		Min:    250 * time.Millisecond,
		Max:    2 * time.Second,
		Jitter: true,
	}

	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, "GET", fullUrl, nil)
		if err != nil {
			return nil, oops.New(err, "failed to create request")
		}
		req.Header.Set("Accept", accept)
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			return nil, oops.New(err, "lichess request failed")
		}

		if res.StatusCode >= 200 && res.StatusCode < 300 {
			body, err := io.ReadAll(res.Body)
			res.Body.Close()
			if err != nil {
				return nil, oops.New(err, "failed to read lichess response body")
			}
			return body, nil
		}

		readAndClose(res)

		if res.StatusCode >= 500 && attempt < maxAttempts {
			logging.ExtractLogger(ctx).Warn().
				Int("status code", res.StatusCode).
				Str("url", fullUrl).
				Int("attempt", attempt).
				Msg("Retrying lichess request")
			err = utils.SleepContext(ctx, bo.Duration())
			if err != nil {
				return nil, err
			}
			continue
		}

		return nil, oops.New(nil, "got status %d from lichess for %s", res.StatusCode, fullUrl)
	}
}

func readAndClose(res *http.Response) {
	io.ReadAll(res.Body)
	res.Body.Close()
}
