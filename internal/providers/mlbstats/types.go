package mlbstats

type idName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type person struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	League       *idName `json:"league"`
	Division     *idName `json:"division"`
	Venue        *idName `json:"venue"`
}

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk       int                `json:"gamePk"`
	GameDate     string             `json:"gameDate"`
	OfficialDate string             `json:"officialDate"`
	Status       statusResponse     `json:"status"`
	Teams        gameTeamsResponse  `json:"teams"`
	Venue        *idName            `json:"venue"`
	Linescore    *linescoreResponse `json:"linescore"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type gameTeamsResponse struct {
	Home gameSideResponse `json:"home"`
	Away gameSideResponse `json:"away"`
}

type gameSideResponse struct {
	Team         idName          `json:"team"`
	Score        *int            `json:"score"`
	LeagueRecord *recordResponse `json:"leagueRecord"`
}

type recordResponse struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

type linescoreResponse struct {
	CurrentInning int              `json:"currentInning"`
	InningState   string           `json:"inningState"`
	Innings       []inningResponse `json:"innings"`
	Teams         *lineTotals      `json:"teams"`
	Offense       *offenseResponse `json:"offense"`
}

type inningResponse struct {
	Num  int          `json:"num"`
	Home lineResponse `json:"home"`
	Away lineResponse `json:"away"`
}

type lineResponse struct {
	Runs   *int `json:"runs"`
	Hits   *int `json:"hits"`
	Errors *int `json:"errors"`
}

type lineTotals struct {
	Home lineResponse `json:"home"`
	Away lineResponse `json:"away"`
}

type offenseResponse struct {
	First  *person `json:"first"`
	Second *person `json:"second"`
	Third  *person `json:"third"`
}

type feedResponse struct {
	GamePk   int      `json:"gamePk"`
	GameData gameData `json:"gameData"`
	LiveData liveData `json:"liveData"`
}

type gameData struct {
	Datetime struct {
		DateTime     string `json:"dateTime"`
		OfficialDate string `json:"officialDate"`
	} `json:"datetime"`
	Status           statusResponse   `json:"status"`
	Teams            feedTeams        `json:"teams"`
	Venue            *idName          `json:"venue"`
	Weather          *weatherResponse `json:"weather"`
	ProbablePitchers struct {
		Home *person `json:"home"`
		Away *person `json:"away"`
	} `json:"probablePitchers"`
}

type feedTeams struct {
	Home feedTeam `json:"home"`
	Away feedTeam `json:"away"`
}

type feedTeam struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Record *recordResponse `json:"record"`
}

type weatherResponse struct {
	Condition string `json:"condition"`
	Temp      string `json:"temp"`
	Wind      string `json:"wind"`
}

type liveData struct {
	Linescore *linescoreResponse `json:"linescore"`
	Plays     struct {
		CurrentPlay *playResponse `json:"currentPlay"`
	} `json:"plays"`
	Boxscore struct {
		Teams struct {
			Home boxscoreTeam `json:"home"`
			Away boxscoreTeam `json:"away"`
		} `json:"teams"`
	} `json:"boxscore"`
	Decisions *decisionsResponse `json:"decisions"`
}

type playResponse struct {
	Count struct {
		Balls   int `json:"balls"`
		Strikes int `json:"strikes"`
		Outs    int `json:"outs"`
	} `json:"count"`
	Result struct {
		Description string `json:"description"`
	} `json:"result"`
	PlayEvents []struct {
		Details struct {
			Description string `json:"description"`
		} `json:"details"`
	} `json:"playEvents"`
}

type boxscoreTeam struct {
	Players      map[string]boxscorePlayer `json:"players"`
	BattingOrder []int                     `json:"battingOrder"`
	Pitchers     []int                     `json:"pitchers"`
}

type boxscorePlayer struct {
	Person   person `json:"person"`
	Position *struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Stats struct {
		Batting  *battingStats  `json:"batting"`
		Pitching *pitchingStats `json:"pitching"`
	} `json:"stats"`
	SeasonStats struct {
		Batting *struct {
			Avg string `json:"avg"`
		} `json:"batting"`
		Pitching *struct {
			ERA string `json:"era"`
		} `json:"pitching"`
	} `json:"seasonStats"`
}

type battingStats struct {
	AtBats      int `json:"atBats"`
	Hits        int `json:"hits"`
	Runs        int `json:"runs"`
	RBI         int `json:"rbi"`
	BaseOnBalls int `json:"baseOnBalls"`
}

type pitchingStats struct {
	InningsPitched string `json:"inningsPitched"`
	StrikeOuts     int    `json:"strikeOuts"`
	BaseOnBalls    int    `json:"baseOnBalls"`
	PitchesThrown  int    `json:"pitchesThrown"`
}

type decisionsResponse struct {
	Winner *person `json:"winner"`
	Loser  *person `json:"loser"`
	Save   *person `json:"save"`
}

type standingsResponse struct {
	Records []standingsRecord `json:"records"`
}

type standingsRecord struct {
	League      *idName        `json:"league"`
	Division    *idName        `json:"division"`
	TeamRecords []teamStanding `json:"teamRecords"`
}

type teamStanding struct {
	Team              idName `json:"team"`
	DivisionRank      string `json:"divisionRank"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	WinningPercentage string `json:"winningPercentage"`
	GamesBack         string `json:"gamesBack"`
	RunDifferential   int    `json:"runDifferential"`
	Streak            *struct {
		StreakCode string `json:"streakCode"`
	} `json:"streak"`
	Records *struct {
		SplitRecords []splitRecord `json:"splitRecords"`
	} `json:"records"`
}

type splitRecord struct {
	Type   string `json:"type"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

type leadersResponse struct {
	LeagueLeaders []leaderCategory `json:"leagueLeaders"`
}

type leaderCategory struct {
	LeaderCategory string         `json:"leaderCategory"`
	Season         string         `json:"season"`
	Leaders        []leaderRecord `json:"leaders"`
}

type leaderRecord struct {
	Rank   int     `json:"rank"`
	Value  string  `json:"value"`
	Team   *idName `json:"team"`
	Person person  `json:"person"`
}
