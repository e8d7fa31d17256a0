package games

// Detail is the box score and current play view of a single game.
// Optional sections are nil when upstream omits them.
type Detail struct {
	ID             int          `json:"id"`
	Date           string       `json:"date"`
	StartTime      string       `json:"startTime"`
	AbstractStatus Status       `json:"abstractStatus"`
	DetailedState  string       `json:"detailedState"`
	Venue          string       `json:"venue"`
	Weather        *Weather     `json:"weather"`
	Teams          DetailTeams  `json:"teams"`
	Linescore      Linescore    `json:"linescore"`
	CurrentPlay    *CurrentPlay `json:"currentPlay"`
	Pitchers       Pitchers     `json:"pitchers"`
	Decisions      *Decisions   `json:"decisions"`
}

type Weather struct {
	Condition string `json:"condition"`
	Temp      string `json:"temp"`
	Wind      string `json:"wind"`
}

type DetailTeams struct {
	Home DetailTeam `json:"home"`
	Away DetailTeam `json:"away"`
}

type DetailTeam struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Score          int      `json:"score"`
	Hits           int      `json:"hits"`
	Errors         int      `json:"errors"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	CurrentBatters []Batter `json:"currentBatters"`
}

type Batter struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Position string      `json:"position"`
	Stats    BatterStats `json:"stats"`
}

type BatterStats struct {
	Batting BattingLine `json:"batting"`
}

type BattingLine struct {
	AtBats      int    `json:"atBats"`
	Hits        int    `json:"hits"`
	Runs        int    `json:"runs"`
	RBI         int    `json:"rbi"`
	BaseOnBalls int    `json:"baseOnBalls"`
	Avg         string `json:"avg"`
}

type Linescore struct {
	CurrentInning int      `json:"currentInning"`
	InningState   string   `json:"inningState"`
	Innings       []Inning `json:"innings"`
}

type Inning struct {
	Num  int        `json:"num"`
	Home InningLine `json:"home"`
	Away InningLine `json:"away"`
}

type InningLine struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

type CurrentPlay struct {
	Count       Count       `json:"count"`
	Offense     Offense     `json:"offense"`
	PlayEvents  []PlayEvent `json:"playEvents"`
	Description string      `json:"description"`
}

type Count struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
	Outs    int `json:"outs"`
}

// Offense holds the runners on base; empty bases are nil.
type Offense struct {
	First  *Person `json:"first"`
	Second *Person `json:"second"`
	Third  *Person `json:"third"`
}

type PlayEvent struct {
	Details PlayDetails `json:"details"`
}

type PlayDetails struct {
	Description string `json:"description"`
}

type Pitchers struct {
	Home PitcherSlot `json:"home"`
	Away PitcherSlot `json:"away"`
}

type PitcherSlot struct {
	Current  *Pitcher `json:"current"`
	Probable *Person  `json:"probable"`
}

type Pitcher struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Stats PitchingLine `json:"stats"`
}

type PitchingLine struct {
	InningsPitched string `json:"inningsPitched"`
	ERA            string `json:"era"`
	StrikeOuts     int    `json:"strikeOuts"`
	BaseOnBalls    int    `json:"baseOnBalls"`
	PitchesThrown  int    `json:"pitchesThrown"`
}

type Person struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type Decisions struct {
	Winner *Person `json:"winner"`
	Loser  *Person `json:"loser"`
	Save   *Person `json:"save"`
}
