package teams

import (
	"fmt"
	"sort"
	"strings"
)

const logoURLPattern = "https://www.mlbstatic.com/team-logos/%d.svg"

// Team is the normalized MLB team shape.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	League       string `json:"league"`
	Division     string `json:"division"`
	Venue        string `json:"venue"`
	LogoURL      string `json:"logoUrl"`
}

// SearchResult is a team match from the generic sports database.
type SearchResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	League string `json:"league"`
	Logo   string `json:"logo"`
	Sport  string `json:"sport"`
}

// LogoURL returns the public logo location for an MLB team id.
func LogoURL(id int) string {
	return fmt.Sprintf(logoURLPattern, id)
}

// SortByName orders teams alphabetically, case-insensitive, ties broken by id.
func SortByName(list []Team) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := strings.ToLower(list[i].Name), strings.ToLower(list[j].Name)
		if a != b {
			return a < b
		}
		return list[i].ID < list[j].ID
	})
}
