package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/dugout/model"
)

const (
	sheetAtBats  = "AtBats"
	sheetPitches = "Pitches"
	sheetChanges = "PitchingChanges"
	sheetSummary = "GameSummary"
)

// writeWorkbook writes all record streams plus a summary sheet to a
// single XLSX workbook. Workbook sheets always carry a header row.
func (e *Exporter) writeWorkbook(game *model.Game, destination string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetAtBats); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	for _, name := range []string{sheetPitches, sheetChanges, sheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	if err := writeSheet(f, sheetAtBats, atBatHeader, atBatSheetRows(game.AtBats)); err != nil {
		return err
	}
	if err := writeSheet(f, sheetPitches, pitchHeader, pitchSheetRows(game.Pitches)); err != nil {
		return err
	}
	if err := writeSheet(f, sheetChanges, changeHeader, changeSheetRows(game.Changes)); err != nil {
		return err
	}
	if err := writeSheet(f, sheetSummary, summaryHeader, summarySheetRows(game)); err != nil {
		return err
	}

	if err := f.SaveAs(destination); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// intValue renders a missing value as an empty cell rather than a zero.
func intValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func inningValue(inning int) any {
	if inning == 0 {
		return nil
	}
	return inning
}

func atBatSheetRows(atBats []model.AtBat) [][]any {
	rows := make([][]any, 0, len(atBats))
	for _, ab := range atBats {
		rows = append(rows, []any{
			ab.Key, inningValue(ab.Inning), string(ab.Half), ab.Team, ab.Pitcher,
			ab.Description, intValue(ab.AwayScore), intValue(ab.HomeScore), ab.PitchSequence,
		})
	}
	return rows
}

func pitchSheetRows(pitches []model.Pitch) [][]any {
	rows := make([][]any, 0, len(pitches))
	for _, p := range pitches {
		rows = append(rows, []any{
			p.AtBatKey, intValue(p.Number), p.Result, p.Type, intValue(p.Velocity), p.Zone,
			p.OnFirst, p.OnSecond, p.OnThird, p.FieldLocation,
			inningValue(p.Inning), string(p.Half), p.Team, p.Pitcher,
		})
	}
	return rows
}

func changeSheetRows(changes []model.PitchingChange) [][]any {
	rows := make([][]any, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []any{
			c.AtBatKey, inningValue(c.Inning), string(c.Half), c.Team,
			c.Incoming, c.Outgoing, c.Description,
		})
	}
	return rows
}

func summarySheetRows(game *model.Game) [][]any {
	return [][]any{{
		game.AwayTeam, game.HomeTeam,
		len(game.AtBats), len(game.Pitches), len(game.Changes),
	}}
}
