package export

import (
	"strconv"

	"github.com/tsawler/dugout/model"
)

// Column orderings are fixed so output is stable across runs.
var (
	atBatHeader = []string{
		"atbat_key", "inning", "half", "team", "pitcher",
		"description", "away_score", "home_score", "pitch_sequence",
	}
	pitchHeader = []string{
		"atbat_key", "pitch_no", "result", "pitch_type", "mph", "zone",
		"on_1b", "on_2b", "on_3b", "field_location",
		"inning", "half", "team", "pitcher",
	}
	changeHeader = []string{
		"atbat_key", "inning", "half", "team",
		"incoming", "outgoing", "description",
	}
	summaryHeader = []string{
		"away_team", "home_team", "total_atbats", "total_pitches", "total_changes",
	}
)

func atBatCells(ab model.AtBat) []string {
	return []string{
		ab.Key,
		inningCell(ab.Inning),
		string(ab.Half),
		ab.Team,
		ab.Pitcher,
		ab.Description,
		intCell(ab.AwayScore),
		intCell(ab.HomeScore),
		ab.PitchSequence,
	}
}

func pitchCells(p model.Pitch) []string {
	return []string{
		p.AtBatKey,
		intCell(p.Number),
		p.Result,
		p.Type,
		intCell(p.Velocity),
		p.Zone,
		strconv.FormatBool(p.OnFirst),
		strconv.FormatBool(p.OnSecond),
		strconv.FormatBool(p.OnThird),
		p.FieldLocation,
		inningCell(p.Inning),
		string(p.Half),
		p.Team,
		p.Pitcher,
	}
}

func changeCells(c model.PitchingChange) []string {
	return []string{
		c.AtBatKey,
		inningCell(c.Inning),
		string(c.Half),
		c.Team,
		c.Incoming,
		c.Outgoing,
		c.Description,
	}
}

// inningCell renders the unknown-inning sentinel as an empty cell.
func inningCell(inning int) string {
	if inning == 0 {
		return ""
	}
	return strconv.Itoa(inning)
}

// intCell renders a missing value as an empty cell.
func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

type atBatRecord struct {
	Key           string `json:"atbat_key"`
	Inning        int    `json:"inning"`
	Half          string `json:"half"`
	Team          string `json:"team"`
	Pitcher       string `json:"pitcher,omitempty"`
	Description   string `json:"description"`
	AwayScore     *int   `json:"away_score"`
	HomeScore     *int   `json:"home_score"`
	PitchSequence string `json:"pitch_sequence,omitempty"`
}

type pitchRecord struct {
	AtBatKey      string `json:"atbat_key"`
	Number        *int   `json:"pitch_no"`
	Result        string `json:"result"`
	Type          string `json:"pitch_type,omitempty"`
	Velocity      *int   `json:"mph"`
	Zone          string `json:"zone,omitempty"`
	OnFirst       bool   `json:"on_1b"`
	OnSecond      bool   `json:"on_2b"`
	OnThird       bool   `json:"on_3b"`
	FieldLocation string `json:"field_location,omitempty"`
	Inning        int    `json:"inning"`
	Half          string `json:"half"`
	Team          string `json:"team"`
	Pitcher       string `json:"pitcher,omitempty"`
}

type changeRecord struct {
	AtBatKey    string `json:"atbat_key"`
	Inning      int    `json:"inning"`
	Half        string `json:"half"`
	Team        string `json:"team"`
	Incoming    string `json:"incoming"`
	Outgoing    string `json:"outgoing,omitempty"`
	Description string `json:"description"`
}

// gameDocument is the single-document JSON shape.
type gameDocument struct {
	AwayTeam string          `json:"away_team"`
	HomeTeam string          `json:"home_team"`
	AtBats   []atBatRecord   `json:"atbats"`
	Pitches  []pitchRecord   `json:"pitches"`
	Changes  []changeRecord  `json:"changes"`
	Summary  summaryDocument `json:"summary"`
}

type summaryDocument struct {
	AtBatCount  int `json:"total_atbats"`
	PitchCount  int `json:"total_pitches"`
	ChangeCount int `json:"total_changes"`
}

// lineRecord is one JSONL line, tagged by record type.
type lineRecord struct {
	Record string        `json:"record"`
	AtBat  *atBatRecord  `json:"atbat,omitempty"`
	Pitch  *pitchRecord  `json:"pitch,omitempty"`
	Change *changeRecord `json:"change,omitempty"`
}

func newAtBatRecord(ab model.AtBat) atBatRecord {
	return atBatRecord{
		Key:           ab.Key,
		Inning:        ab.Inning,
		Half:          string(ab.Half),
		Team:          ab.Team,
		Pitcher:       ab.Pitcher,
		Description:   ab.Description,
		AwayScore:     ab.AwayScore,
		HomeScore:     ab.HomeScore,
		PitchSequence: ab.PitchSequence,
	}
}

func newPitchRecord(p model.Pitch) pitchRecord {
	return pitchRecord{
		AtBatKey:      p.AtBatKey,
		Number:        p.Number,
		Result:        p.Result,
		Type:          p.Type,
		Velocity:      p.Velocity,
		Zone:          p.Zone,
		OnFirst:       p.OnFirst,
		OnSecond:      p.OnSecond,
		OnThird:       p.OnThird,
		FieldLocation: p.FieldLocation,
		Inning:        p.Inning,
		Half:          string(p.Half),
		Team:          p.Team,
		Pitcher:       p.Pitcher,
	}
}

func newChangeRecord(c model.PitchingChange) changeRecord {
	return changeRecord{
		AtBatKey:    c.AtBatKey,
		Inning:      c.Inning,
		Half:        string(c.Half),
		Team:        c.Team,
		Incoming:    c.Incoming,
		Outgoing:    c.Outgoing,
		Description: c.Description,
	}
}

func newGameDocument(game *model.Game) gameDocument {
	doc := gameDocument{
		AwayTeam: game.AwayTeam,
		HomeTeam: game.HomeTeam,
		AtBats:   make([]atBatRecord, 0, len(game.AtBats)),
		Pitches:  make([]pitchRecord, 0, len(game.Pitches)),
		Changes:  make([]changeRecord, 0, len(game.Changes)),
		Summary: summaryDocument{
			AtBatCount:  len(game.AtBats),
			PitchCount:  len(game.Pitches),
			ChangeCount: len(game.Changes),
		},
	}
	for _, ab := range game.AtBats {
		doc.AtBats = append(doc.AtBats, newAtBatRecord(ab))
	}
	for _, p := range game.Pitches {
		doc.Pitches = append(doc.Pitches, newPitchRecord(p))
	}
	for _, c := range game.Changes {
		doc.Changes = append(doc.Changes, newChangeRecord(c))
	}
	return doc
}
