package mlbstats

const (
	providerName     = "mlbstats"
	defaultBaseURL   = "https://statsapi.mlb.com/api"
	sportID          = "1"
	scheduleHydrate  = "team,linescore,venue"
	standingsHydrate = "team,league,division"
	standingsLeagues = "103,104"
	standingsType    = "regularSeason"
)
