package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-cal/internal/domain"
)

const defaultPaceInterval = 600 * time.Millisecond

// pacedTeamLogProvider wraps a TeamLogProvider and enforces a minimum interval
// between calls. The per-team fetch loop issues one upstream query per
// (team, season type) pair, so pacing lives here rather than in the client.
type pacedTeamLogProvider struct {
	next     TeamLogProvider
	interval time.Duration
	logger   *slog.Logger
	last     time.Time
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewPacedTeamLogProvider returns a TeamLogProvider that waits out the interval
// between consecutive calls. The first call goes through immediately.
func NewPacedTeamLogProvider(next TeamLogProvider, interval time.Duration, logger *slog.Logger) TeamLogProvider {
	if interval <= 0 {
		interval = defaultPaceInterval
	}
	return &pacedTeamLogProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

func (p *pacedTeamLogProvider) FetchTeamGames(ctx context.Context, season string, teamID int, seasonType domain.SeasonType) (Batch, error) {
	if p == nil || p.next == nil {
		return Batch{}, ErrProviderUnavailable
	}

	if !p.last.IsZero() {
		if wait := p.interval - p.now().Sub(p.last); wait > 0 {
			if err := p.sleep(ctx, wait); err != nil {
				logWithProvider(ctx, p.logger, slog.LevelWarn, "paced", "paced fetch canceled")
				return Batch{}, err
			}
		}
	}
	p.last = p.now()

	return p.next.FetchTeamGames(ctx, season, teamID, seasonType)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
