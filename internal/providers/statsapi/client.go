package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nba-cal/internal/domain"
	"nba-cal/internal/providers"
)

// Config controls how the game-log client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches per-team game logs from the tabular stats API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchTeamGames retrieves one team's game log for a season type. Rows that
// fail to normalize are reported in the batch's Dropped list, not as errors.
func (c *Client) FetchTeamGames(ctx context.Context, season string, teamID int, seasonType domain.SeasonType) (providers.Batch, error) {
	req, err := c.buildRequest(ctx, season, teamID, seasonType)
	if err != nil {
		return providers.Batch{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Batch{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return providers.Batch{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "statsapi rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.Batch{}, fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload gameFinderResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return providers.Batch{}, decodeErr
	}

	rs, err := payload.findResultSet()
	if err != nil {
		return providers.Batch{}, err
	}

	idx := rs.columnIndex()
	var batch providers.Batch
	for _, row := range rs.RowSet {
		game, mapErr := mapRow(idx, row, season, seasonType)
		if mapErr != nil {
			batch.Dropped = append(batch.Dropped, providers.Dropped{
				Provider: providerName,
				GameID:   stringField(idx, row, colGameID),
				Reason:   mapErr.Error(),
			})
			continue
		}
		batch.Games = append(batch.Games, game)
	}
	return batch, nil
}

func (c *Client) buildRequest(ctx context.Context, season string, teamID int, seasonType domain.SeasonType) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+gameFinderPath, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("PlayerOrTeam", "T")
	q.Set("LeagueID", leagueID)
	q.Set("Season", season)
	q.Set("SeasonType", querySeasonType(seasonType))
	q.Set("TeamID", strconv.Itoa(teamID))
	req.URL.RawQuery = q.Encode()

	setStatsHeaders(req)
	return req, nil
}

// querySeasonType maps domain season types onto the upstream parameter values.
func querySeasonType(st domain.SeasonType) string {
	if st == domain.SeasonTypePlayIn {
		return "PlayIn"
	}
	return string(st)
}

func parseRetryAfter(raw string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
