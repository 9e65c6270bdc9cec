package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tsawler/dugout/model"
)

// GameRecord is one row of the archive listing.
type GameRecord struct {
	ID       int64
	AwayTeam string
	HomeTeam string
	Source   string
	SavedAt  time.Time

	AtBatCount  int
	PitchCount  int
	ChangeCount int
}

// SaveGame archives a game and all its record streams in one transaction,
// returning the new game id. Source records where the document came from
// (a URL or file path) and may be empty.
func (s *Store) SaveGame(ctx context.Context, game *model.Game, source string) (int64, error) {
	if game == nil {
		return 0, errors.New("game is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO games (away_team, home_team, source, saved_at) VALUES (?, ?, ?, ?)`,
		game.AwayTeam,
		game.HomeTeam,
		nullableString(source),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	gameID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	for i, ab := range game.AtBats {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO atbats (
                game_id, seq, atbat_key, inning, half, team, pitcher,
                description, away_score, home_score, pitch_sequence
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			gameID, i, ab.Key, ab.Inning, string(ab.Half), ab.Team, ab.Pitcher,
			ab.Description, nullableInt(ab.AwayScore), nullableInt(ab.HomeScore), ab.PitchSequence,
		)
		if err != nil {
			return 0, fmt.Errorf("insert atbat %s: %w", ab.Key, err)
		}
	}

	for i, p := range game.Pitches {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO pitches (
                game_id, seq, atbat_key, pitch_no, result, pitch_type, mph, zone,
                on_1b, on_2b, on_3b, field_location, inning, half, team, pitcher
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			gameID, i, p.AtBatKey, nullableInt(p.Number), p.Result, p.Type,
			nullableInt(p.Velocity), p.Zone,
			boolToInt(p.OnFirst), boolToInt(p.OnSecond), boolToInt(p.OnThird),
			p.FieldLocation, p.Inning, string(p.Half), p.Team, p.Pitcher,
		)
		if err != nil {
			return 0, fmt.Errorf("insert pitch for %s: %w", p.AtBatKey, err)
		}
	}

	for i, c := range game.Changes {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO pitching_changes (
                game_id, seq, atbat_key, inning, half, team, incoming, outgoing, description
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			gameID, i, c.AtBatKey, c.Inning, string(c.Half), c.Team,
			c.Incoming, c.Outgoing, c.Description,
		)
		if err != nil {
			return 0, fmt.Errorf("insert pitching change for %s: %w", c.AtBatKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit game: %w", err)
	}
	return gameID, nil
}

// GetGame loads an archived game with its streams in saved order. Returns
// nil when no game has the given id.
func (s *Store) GetGame(ctx context.Context, id int64) (*model.Game, error) {
	var awayTeam, homeTeam string
	row := s.db.QueryRowContext(ctx, `SELECT away_team, home_team FROM games WHERE id = ?`, id)
	if err := row.Scan(&awayTeam, &homeTeam); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get game: %w", err)
	}

	game := model.NewGame(awayTeam, homeTeam)

	if err := s.loadAtBats(ctx, id, game); err != nil {
		return nil, err
	}
	if err := s.loadPitches(ctx, id, game); err != nil {
		return nil, err
	}
	if err := s.loadChanges(ctx, id, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Store) loadAtBats(ctx context.Context, gameID int64, game *model.Game) error {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT atbat_key, inning, half, team, pitcher, description,
                away_score, home_score, pitch_sequence
         FROM atbats WHERE game_id = ? ORDER BY seq`,
		gameID,
	)
	if err != nil {
		return fmt.Errorf("query atbats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ab         model.AtBat
			half       string
			away, home sql.NullInt64
		)
		if err := rows.Scan(
			&ab.Key, &ab.Inning, &half, &ab.Team, &ab.Pitcher,
			&ab.Description, &away, &home, &ab.PitchSequence,
		); err != nil {
			return fmt.Errorf("scan atbat: %w", err)
		}
		ab.Half = model.Half(half)
		ab.AwayScore = intPtr(away)
		ab.HomeScore = intPtr(home)
		game.AtBats = append(game.AtBats, ab)
	}
	return rows.Err()
}

func (s *Store) loadPitches(ctx context.Context, gameID int64, game *model.Game) error {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT atbat_key, pitch_no, result, pitch_type, mph, zone,
                on_1b, on_2b, on_3b, field_location, inning, half, team, pitcher
         FROM pitches WHERE game_id = ? ORDER BY seq`,
		gameID,
	)
	if err != nil {
		return fmt.Errorf("query pitches: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p                    model.Pitch
			number, velocity     sql.NullInt64
			half                 string
			first, second, third int
		)
		if err := rows.Scan(
			&p.AtBatKey, &number, &p.Result, &p.Type, &velocity, &p.Zone,
			&first, &second, &third, &p.FieldLocation,
			&p.Inning, &half, &p.Team, &p.Pitcher,
		); err != nil {
			return fmt.Errorf("scan pitch: %w", err)
		}
		p.Number = intPtr(number)
		p.Velocity = intPtr(velocity)
		p.Half = model.Half(half)
		p.OnFirst = first != 0
		p.OnSecond = second != 0
		p.OnThird = third != 0
		game.Pitches = append(game.Pitches, p)
	}
	return rows.Err()
}

func (s *Store) loadChanges(ctx context.Context, gameID int64, game *model.Game) error {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT atbat_key, inning, half, team, incoming, outgoing, description
         FROM pitching_changes WHERE game_id = ? ORDER BY seq`,
		gameID,
	)
	if err != nil {
		return fmt.Errorf("query pitching changes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c    model.PitchingChange
			half string
		)
		if err := rows.Scan(
			&c.AtBatKey, &c.Inning, &half, &c.Team,
			&c.Incoming, &c.Outgoing, &c.Description,
		); err != nil {
			return fmt.Errorf("scan pitching change: %w", err)
		}
		c.Half = model.Half(half)
		game.Changes = append(game.Changes, c)
	}
	return rows.Err()
}

// ListGames returns archive rows newest first, with per-stream counts.
func (s *Store) ListGames(ctx context.Context) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT g.id, g.away_team, g.home_team, g.source, g.saved_at,
                (SELECT COUNT(1) FROM atbats a WHERE a.game_id = g.id),
                (SELECT COUNT(1) FROM pitches p WHERE p.game_id = g.id),
                (SELECT COUNT(1) FROM pitching_changes c WHERE c.game_id = g.id)
         FROM games g ORDER BY g.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var (
			rec      GameRecord
			source   sql.NullString
			savedRaw string
		)
		if err := rows.Scan(
			&rec.ID, &rec.AwayTeam, &rec.HomeTeam, &source, &savedRaw,
			&rec.AtBatCount, &rec.PitchCount, &rec.ChangeCount,
		); err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		rec.Source = source.String
		if saved, err := time.Parse(time.RFC3339Nano, savedRaw); err == nil {
			rec.SavedAt = saved
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteGame removes an archived game and its streams. Returns false when
// no game had the given id.
func (s *Store) DeleteGame(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func intPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}
