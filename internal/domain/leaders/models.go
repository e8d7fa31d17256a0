package leaders

import (
	"errors"
	"fmt"
)

// MaxLeaders caps the number of entries returned per category.
const MaxLeaders = 5

// ErrUnknownCategory is returned for a category outside the supported set.
var ErrUnknownCategory = errors.New("unknown leader category")

// Category is a supported leaderboard name as exposed to clients.
type Category string

const (
	CategoryHomeRuns       Category = "homeRuns"
	CategoryBattingAverage Category = "battingAverage"
	CategoryRBI            Category = "rbi"
	CategoryERA            Category = "era"
	CategoryWins           Category = "wins"
	CategoryStrikeouts     Category = "strikeouts"
)

// StatGroup is the upstream statistics group a category belongs to.
type StatGroup string

const (
	GroupHitting  StatGroup = "hitting"
	GroupPitching StatGroup = "pitching"
)

// Definition describes how a category is labelled and queried upstream.
type Definition struct {
	Category    Category
	DisplayName string
	Upstream    string
	Group       StatGroup
}

var definitions = map[Category]Definition{
	CategoryHomeRuns:       {CategoryHomeRuns, "Home Runs", "homeRuns", GroupHitting},
	CategoryBattingAverage: {CategoryBattingAverage, "Batting Average", "battingAverage", GroupHitting},
	CategoryRBI:            {CategoryRBI, "RBI", "runsBattedIn", GroupHitting},
	CategoryERA:            {CategoryERA, "ERA", "earnedRunAverage", GroupPitching},
	CategoryWins:           {CategoryWins, "Wins", "wins", GroupPitching},
	CategoryStrikeouts:     {CategoryStrikeouts, "Strikeouts", "strikeouts", GroupPitching},
}

// Lookup resolves a category name, failing with ErrUnknownCategory.
func Lookup(name string) (Definition, error) {
	def, ok := definitions[Category(name)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return def, nil
}

// Categories lists the supported categories in display order.
func Categories() []Category {
	return []Category{
		CategoryHomeRuns,
		CategoryBattingAverage,
		CategoryRBI,
		CategoryERA,
		CategoryWins,
		CategoryStrikeouts,
	}
}

// Board is the leaderboard for one category and season.
type Board struct {
	Category    Category `json:"category"`
	DisplayName string   `json:"displayName"`
	Season      string   `json:"season"`
	Leaders     []Entry  `json:"leaders"`
}

type Entry struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
	Team   Team   `json:"team"`
	Value  string `json:"value"`
}

type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
