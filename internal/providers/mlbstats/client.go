package mlbstats

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/providers"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL string
	Doer    providers.HTTPDoer
	Logger  *slog.Logger
}

// Client fetches MLB data from the Stats API and maps it to domain models.
type Client struct {
	baseURL string
	doer    providers.HTTPDoer
	logger  *slog.Logger
}

// NewClient constructs a Stats API client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: normalizeBaseURL(cfg.BaseURL),
		doer:    providers.ResolveDoer(cfg.Doer),
		logger:  cfg.Logger,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	q := url.Values{"sportId": {sportID}}
	var resp teamsResponse
	if err := c.get(ctx, "/v1/teams", q, &resp); err != nil {
		return nil, err
	}
	return mapTeams(resp.Teams), nil
}

func (c *Client) FetchSchedule(ctx context.Context, date string) ([]games.Game, error) {
	q := url.Values{
		"sportId": {sportID},
		"date":    {date},
		"hydrate": {scheduleHydrate},
	}
	var resp scheduleResponse
	if err := c.get(ctx, "/v1/schedule", q, &resp); err != nil {
		return nil, err
	}
	return mapSchedule(resp), nil
}

func (c *Client) FetchTeamSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]games.Game, error) {
	q := url.Values{
		"sportId":   {sportID},
		"teamId":    {strconv.Itoa(teamID)},
		"startDate": {startDate},
		"endDate":   {endDate},
		"hydrate":   {scheduleHydrate},
	}
	var resp scheduleResponse
	if err := c.get(ctx, "/v1/schedule", q, &resp); err != nil {
		return nil, err
	}
	return mapSchedule(resp), nil
}

func (c *Client) FetchGame(ctx context.Context, gameID int) (games.Detail, error) {
	var resp feedResponse
	if err := c.get(ctx, fmt.Sprintf("/v1.1/game/%d/feed/live", gameID), nil, &resp); err != nil {
		return games.Detail{}, err
	}
	return mapDetail(resp), nil
}

func (c *Client) FetchStandings(ctx context.Context, season string) ([]standings.Record, error) {
	q := url.Values{
		"leagueId":       {standingsLeagues},
		"season":         {season},
		"standingsTypes": {standingsType},
		"hydrate":        {standingsHydrate},
	}
	var resp standingsResponse
	if err := c.get(ctx, "/v1/standings", q, &resp); err != nil {
		return nil, err
	}
	return mapStandings(resp), nil
}

func (c *Client) FetchLeaders(ctx context.Context, def leaders.Definition, season string) (leaders.Board, error) {
	q := url.Values{
		"leaderCategories": {def.Upstream},
		"season":           {season},
		"sportId":          {sportID},
		"limit":            {strconv.Itoa(leaders.MaxLeaders)},
		"statGroup":        {string(def.Group)},
	}
	var resp leadersResponse
	if err := c.get(ctx, "/v1/stats/leaders", q, &resp); err != nil {
		return leaders.Board{}, err
	}
	return mapLeaders(resp, def, season), nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dest any) error {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	if err := providers.GetJSON(ctx, c.doer, providerName, target, dest); err != nil {
		logging.Warn(logging.FromContext(ctx, c.logger), "mlb stats request failed",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldPath, path),
			"error", err,
		)
		return err
	}
	return nil
}
