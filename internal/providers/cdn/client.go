package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"nba-cal/internal/providers"
)

// Config controls how the schedule client reaches the upstream CDN.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches the full league schedule feed and maps it to domain games.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchSeason retrieves the whole season's schedule in one call. Records that
// fail to normalize are reported in the batch's Dropped list, not as errors.
func (c *Client) FetchSeason(ctx context.Context, season string) (providers.Batch, error) {
	year, err := seasonStartYear(season)
	if err != nil {
		return providers.Batch{}, err
	}

	url := c.baseURL + fmt.Sprintf(schedulePathFormat, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return providers.Batch{}, err
	}
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Batch{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.Batch{}, fmt.Errorf("cdn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scheduleResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return providers.Batch{}, decodeErr
	}

	var batch providers.Batch
	for _, month := range payload.LeagueSchedule {
		for _, raw := range month.Month.Games {
			game, mapErr := mapGame(raw, season)
			if mapErr != nil {
				batch.Dropped = append(batch.Dropped, providers.Dropped{
					Provider: providerName,
					GameID:   raw.GameID,
					Reason:   mapErr.Error(),
				})
				continue
			}
			batch.Games = append(batch.Games, game)
		}
	}
	return batch, nil
}

// seasonStartYear extracts the opening year from a season string like "2024-25".
func seasonStartYear(season string) (int, error) {
	start, _, _ := strings.Cut(season, "-")
	year, err := strconv.Atoi(start)
	if err != nil || year < 1946 {
		return 0, fmt.Errorf("cdn: invalid season %q", season)
	}
	return year, nil
}
