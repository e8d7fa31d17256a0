package mlbstats

import (
	"sort"
	"strconv"

	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/leaders"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/standings"
	"github.com/preston-bernstein/mlb-scoreboard-service/internal/domain/teams"
)

const unknown = "Unknown"

func mapTeams(list []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(list))
	for _, t := range list {
		out = append(out, mapTeam(t))
	}
	teams.SortByName(out)
	return out
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		League:       nameOr(t.League, unknown),
		Division:     nameOr(t.Division, unknown),
		Venue:        nameOr(t.Venue, unknown),
		LogoURL:      logoFor(t.ID),
	}
}

func mapSchedule(resp scheduleResponse) []games.Game {
	out := make([]games.Game, 0)
	for _, d := range resp.Dates {
		for _, g := range d.Games {
			out = append(out, mapGame(g, d.Date))
		}
	}
	return out
}

func mapGame(g gameResponse, scheduleDate string) games.Game {
	game := games.Game{
		ID:             g.GamePk,
		Date:           stringOr(g.OfficialDate, stringOr(scheduleDate, dateOf(g.GameDate))),
		StartTime:      g.GameDate,
		AbstractStatus: games.ParseStatus(g.Status.AbstractGameState),
		DetailedState:  stringOr(g.Status.DetailedState, g.Status.AbstractGameState),
		Venue:          nameOr(g.Venue, ""),
		HomeTeam:       mapTeamScore(g.Teams.Home),
		AwayTeam:       mapTeamScore(g.Teams.Away),
	}
	if g.Linescore != nil {
		game.Inning = g.Linescore.CurrentInning
		game.InningState = g.Linescore.InningState
	}
	return game
}

func mapTeamScore(side gameSideResponse) games.TeamScore {
	wins, losses := teamRecord(side.LeagueRecord)
	return games.TeamScore{
		ID:     side.Team.ID,
		Name:   side.Team.Name,
		Score:  intOr(side.Score, 0),
		Wins:   wins,
		Losses: losses,
	}
}

func mapDetail(f feedResponse) games.Detail {
	gd, ld := f.GameData, f.LiveData
	detail := games.Detail{
		ID:             f.GamePk,
		Date:           stringOr(gd.Datetime.OfficialDate, dateOf(gd.Datetime.DateTime)),
		StartTime:      gd.Datetime.DateTime,
		AbstractStatus: games.ParseStatus(gd.Status.AbstractGameState),
		DetailedState:  stringOr(gd.Status.DetailedState, gd.Status.AbstractGameState),
		Venue:          nameOr(gd.Venue, ""),
		Weather:        mapWeather(gd.Weather),
		Linescore:      games.Linescore{Innings: []games.Inning{}},
		CurrentPlay:    mapCurrentPlay(ld.Plays.CurrentPlay, ld.Linescore),
		Decisions:      mapDecisions(ld.Decisions),
	}

	var homeTotals, awayTotals lineResponse
	if ls := ld.Linescore; ls != nil {
		detail.Linescore = mapLinescore(*ls)
		if ls.Teams != nil {
			homeTotals, awayTotals = ls.Teams.Home, ls.Teams.Away
		}
	}
	home, away := ld.Boxscore.Teams.Home, ld.Boxscore.Teams.Away
	detail.Teams = games.DetailTeams{
		Home: mapDetailTeam(gd.Teams.Home, homeTotals, home),
		Away: mapDetailTeam(gd.Teams.Away, awayTotals, away),
	}
	detail.Pitchers = games.Pitchers{
		Home: games.PitcherSlot{Current: currentPitcher(home), Probable: mapPerson(gd.ProbablePitchers.Home)},
		Away: games.PitcherSlot{Current: currentPitcher(away), Probable: mapPerson(gd.ProbablePitchers.Away)},
	}
	return detail
}

func mapWeather(w *weatherResponse) *games.Weather {
	if w == nil || (w.Condition == "" && w.Temp == "" && w.Wind == "") {
		return nil
	}
	return &games.Weather{Condition: w.Condition, Temp: w.Temp, Wind: w.Wind}
}

func mapLinescore(ls linescoreResponse) games.Linescore {
	innings := make([]games.Inning, 0, len(ls.Innings))
	for _, in := range ls.Innings {
		innings = append(innings, games.Inning{
			Num:  in.Num,
			Home: mapLine(in.Home),
			Away: mapLine(in.Away),
		})
	}
	return games.Linescore{
		CurrentInning: ls.CurrentInning,
		InningState:   ls.InningState,
		Innings:       innings,
	}
}

func mapLine(l lineResponse) games.InningLine {
	return games.InningLine{
		Runs:   intOr(l.Runs, 0),
		Hits:   intOr(l.Hits, 0),
		Errors: intOr(l.Errors, 0),
	}
}

func mapDetailTeam(t feedTeam, totals lineResponse, box boxscoreTeam) games.DetailTeam {
	wins, losses := teamRecord(t.Record)
	return games.DetailTeam{
		ID:             t.ID,
		Name:           t.Name,
		Score:          intOr(totals.Runs, 0),
		Hits:           intOr(totals.Hits, 0),
		Errors:         intOr(totals.Errors, 0),
		Wins:           wins,
		Losses:         losses,
		CurrentBatters: mapBatters(box),
	}
}

func boxscorePlayerByID(box boxscoreTeam, id int) (boxscorePlayer, bool) {
	p, ok := box.Players["ID"+strconv.Itoa(id)]
	return p, ok
}

func mapBatters(box boxscoreTeam) []games.Batter {
	out := make([]games.Batter, 0, len(box.BattingOrder))
	for _, id := range box.BattingOrder {
		p, ok := boxscorePlayerByID(box, id)
		if !ok {
			continue
		}
		b := games.Batter{
			ID:   p.Person.ID,
			Name: p.Person.FullName,
		}
		if p.Position != nil {
			b.Position = p.Position.Abbreviation
		}
		if s := p.Stats.Batting; s != nil {
			b.Stats.Batting = games.BattingLine{
				AtBats:      s.AtBats,
				Hits:        s.Hits,
				Runs:        s.Runs,
				RBI:         s.RBI,
				BaseOnBalls: s.BaseOnBalls,
			}
		}
		b.Stats.Batting.Avg = ".000"
		if s := p.SeasonStats.Batting; s != nil {
			b.Stats.Batting.Avg = stringOr(s.Avg, ".000")
		}
		out = append(out, b)
	}
	return out
}

// currentPitcher is the last pitcher used by the team.
func currentPitcher(box boxscoreTeam) *games.Pitcher {
	if len(box.Pitchers) == 0 {
		return nil
	}
	p, ok := boxscorePlayerByID(box, box.Pitchers[len(box.Pitchers)-1])
	if !ok {
		return nil
	}
	out := &games.Pitcher{ID: p.Person.ID, Name: p.Person.FullName}
	if s := p.Stats.Pitching; s != nil {
		out.Stats = games.PitchingLine{
			InningsPitched: stringOr(s.InningsPitched, "0.0"),
			StrikeOuts:     s.StrikeOuts,
			BaseOnBalls:    s.BaseOnBalls,
			PitchesThrown:  s.PitchesThrown,
		}
	}
	out.Stats.InningsPitched = stringOr(out.Stats.InningsPitched, "0.0")
	out.Stats.ERA = "-.--"
	if s := p.SeasonStats.Pitching; s != nil {
		out.Stats.ERA = stringOr(s.ERA, "-.--")
	}
	return out
}

func mapCurrentPlay(p *playResponse, ls *linescoreResponse) *games.CurrentPlay {
	if p == nil {
		return nil
	}
	play := &games.CurrentPlay{
		Count: games.Count{
			Balls:   p.Count.Balls,
			Strikes: p.Count.Strikes,
			Outs:    p.Count.Outs,
		},
		PlayEvents:  make([]games.PlayEvent, 0, len(p.PlayEvents)),
		Description: p.Result.Description,
	}
	for _, ev := range p.PlayEvents {
		play.PlayEvents = append(play.PlayEvents, games.PlayEvent{
			Details: games.PlayDetails{Description: ev.Details.Description},
		})
	}
	if ls != nil && ls.Offense != nil {
		play.Offense = games.Offense{
			First:  mapPerson(ls.Offense.First),
			Second: mapPerson(ls.Offense.Second),
			Third:  mapPerson(ls.Offense.Third),
		}
	}
	return play
}

func mapPerson(p *person) *games.Person {
	if p == nil || p.ID == 0 {
		return nil
	}
	return &games.Person{ID: p.ID, FullName: p.FullName}
}

func mapDecisions(d *decisionsResponse) *games.Decisions {
	if d == nil {
		return nil
	}
	out := &games.Decisions{
		Winner: mapPerson(d.Winner),
		Loser:  mapPerson(d.Loser),
		Save:   mapPerson(d.Save),
	}
	if out.Winner == nil && out.Loser == nil && out.Save == nil {
		return nil
	}
	return out
}

func mapStandings(resp standingsResponse) []standings.Record {
	out := make([]standings.Record, 0, len(resp.Records))
	for _, r := range resp.Records {
		rec := standings.Record{
			League:   nameOr(r.League, unknown),
			Division: nameOr(r.Division, unknown),
			Teams:    make([]standings.TeamRow, 0, len(r.TeamRecords)),
		}
		for _, tr := range r.TeamRecords {
			rec.Teams = append(rec.Teams, mapStandingRow(tr))
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].League != out[j].League {
			return out[i].League < out[j].League
		}
		return out[i].Division < out[j].Division
	})
	standings.SortAll(out)
	return out
}

func mapStandingRow(tr teamStanding) standings.TeamRow {
	row := standings.TeamRow{
		ID:                tr.Team.ID,
		Name:              tr.Team.Name,
		Rank:              atoiOr(tr.DivisionRank, 0),
		Wins:              tr.Wins,
		Losses:            tr.Losses,
		WinningPercentage: stringOr(tr.WinningPercentage, ".000"),
		GamesBack:         stringOr(tr.GamesBack, "-"),
		HomeRecord:        winLoss(0, 0),
		AwayRecord:        winLoss(0, 0),
		Streak:            "-",
		RunDifferential:   tr.RunDifferential,
	}
	if tr.Streak != nil {
		row.Streak = stringOr(tr.Streak.StreakCode, "-")
	}
	if tr.Records != nil {
		for _, split := range tr.Records.SplitRecords {
			switch split.Type {
			case "home":
				row.HomeRecord = winLoss(split.Wins, split.Losses)
			case "away":
				row.AwayRecord = winLoss(split.Wins, split.Losses)
			}
		}
	}
	return row
}

func mapLeaders(resp leadersResponse, def leaders.Definition, season string) leaders.Board {
	board := leaders.Board{
		Category:    def.Category,
		DisplayName: def.DisplayName,
		Season:      season,
		Leaders:     []leaders.Entry{},
	}
	var picked *leaderCategory
	for i := range resp.LeagueLeaders {
		if resp.LeagueLeaders[i].LeaderCategory == def.Upstream {
			picked = &resp.LeagueLeaders[i]
			break
		}
	}
	if picked == nil && len(resp.LeagueLeaders) > 0 {
		picked = &resp.LeagueLeaders[0]
	}
	if picked == nil {
		return board
	}
	board.Season = stringOr(season, picked.Season)
	for i, l := range picked.Leaders {
		if len(board.Leaders) == leaders.MaxLeaders {
			break
		}
		entry := leaders.Entry{
			Rank:   l.Rank,
			Player: leaders.Player{ID: l.Person.ID, Name: l.Person.FullName},
			Value:  l.Value,
		}
		if entry.Rank == 0 {
			entry.Rank = i + 1
		}
		if l.Team != nil {
			entry.Team = leaders.Team{ID: l.Team.ID, Name: l.Team.Name}
		}
		board.Leaders = append(board.Leaders, entry)
	}
	return board
}
