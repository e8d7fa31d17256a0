package sportsdb

const (
	providerName   = "sportsdb"
	defaultBaseURL = "https://www.thesportsdb.com/api/v1/json/3"
)
