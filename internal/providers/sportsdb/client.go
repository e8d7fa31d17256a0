package sportsdb

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/scores"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

// Config controls how the client reaches TheSportsDB.
type Config struct {
	BaseURL string
	Doer    providers.HTTPDoer
	Logger  *slog.Logger
}

// Client searches teams and events on TheSportsDB.
type Client struct {
	baseURL string
	doer    providers.HTTPDoer
	logger  *slog.Logger
}

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(base, "/"),
		doer:    providers.ResolveDoer(cfg.Doer),
		logger:  cfg.Logger,
	}
}

func (c *Client) Name() string { return providerName }

// SearchTeams finds teams whose name matches.
func (c *Client) SearchTeams(ctx context.Context, name string) ([]teams.SearchResult, error) {
	var resp teamsResponse
	if err := c.get(ctx, "/searchteams.php", url.Values{"t": {name}}, &resp); err != nil {
		return nil, err
	}
	return mapTeams(resp.Teams), nil
}

// SearchLeague lists every team in a league.
func (c *Client) SearchLeague(ctx context.Context, league string) ([]teams.SearchResult, error) {
	var resp teamsResponse
	if err := c.get(ctx, "/search_all_teams.php", url.Values{"l": {league}}, &resp); err != nil {
		return nil, err
	}
	return mapTeams(resp.Teams), nil
}

// FetchTeamScores returns upcoming events followed by recent results for a team.
func (c *Client) FetchTeamScores(ctx context.Context, teamID string) ([]scores.Score, error) {
	q := url.Values{"id": {teamID}}

	var next nextEventsResponse
	if err := c.get(ctx, "/eventsnext.php", q, &next); err != nil {
		return nil, err
	}
	var last lastEventsResponse
	if err := c.get(ctx, "/eventslast.php", q, &last); err != nil {
		return nil, err
	}

	out := make([]scores.Score, 0, len(next.Events)+len(last.Results))
	for _, e := range next.Events {
		out = append(out, mapUpcoming(e))
	}
	for _, e := range last.Results {
		out = append(out, mapCompleted(e))
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dest any) error {
	target := c.baseURL + path + "?" + q.Encode()
	if err := providers.GetJSON(ctx, c.doer, providerName, target, dest); err != nil {
		logging.Warn(logging.FromContext(ctx, c.logger), "sportsdb request failed",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldPath, path),
			"error", err,
		)
		return err
	}
	return nil
}
