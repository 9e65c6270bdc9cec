package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/dugout/model"
)

// Format represents a supported output format.
type Format int

const (
	// FormatXLSX writes a workbook with one sheet per record stream.
	FormatXLSX Format = iota
	// FormatCSV writes comma-separated files, one per record stream.
	FormatCSV
	// FormatTSV writes tab-separated files, one per record stream.
	FormatTSV
	// FormatJSON writes one JSON document holding all streams.
	FormatJSON
	// FormatJSONL writes one JSON object per line, tagged by record type.
	FormatJSONL
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	default:
		return "xlsx"
	}
}

// FileExtension returns the conventional file extension for the format.
func (f Format) FileExtension() string {
	return "." + f.String()
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	case "json":
		return FormatJSON, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	default:
		return FormatXLSX, fmt.Errorf("unknown export format %q", name)
	}
}

// Config holds exporter settings.
type Config struct {
	Format Format
	// Delimiter is used for FormatCSV; FormatTSV always uses a tab.
	Delimiter rune
	// IncludeHeader controls the header row in delimited output.
	IncludeHeader bool
	// PrettyPrint indents FormatJSON output.
	PrettyPrint bool
}

// DefaultConfig returns an exporter configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:        FormatXLSX,
		Delimiter:     ',',
		IncludeHeader: true,
	}
}

// Exporter writes game records in a configured format.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default configuration.
func NewExporter() *Exporter {
	return NewExporterWithConfig(DefaultConfig())
}

// NewExporterWithConfig creates an exporter with custom configuration.
func NewExporterWithConfig(config Config) *Exporter {
	if config.Delimiter == 0 {
		config.Delimiter = ','
	}
	return &Exporter{config: config}
}

// WriteGame writes the game to the destination path in the configured
// format. Delimited formats produce one file per record stream, derived
// from the destination name; the other formats produce a single file.
func (e *Exporter) WriteGame(game *model.Game, destination string) error {
	if game == nil {
		return fmt.Errorf("nil game")
	}

	switch e.config.Format {
	case FormatCSV, FormatTSV:
		return e.writeDelimitedFiles(game, destination)
	case FormatJSON:
		return e.writeSingleFile(destination, func(w io.Writer) error {
			return e.WriteJSON(w, game)
		})
	case FormatJSONL:
		return e.writeSingleFile(destination, func(w io.Writer) error {
			return e.WriteJSONL(w, game)
		})
	default:
		return e.writeWorkbook(game, destination)
	}
}

func (e *Exporter) writeSingleFile(destination string, write func(io.Writer) error) error {
	f, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destination, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeDelimitedFiles writes the three record streams to sibling files
// named after the destination: out.csv becomes out_atbats.csv,
// out_pitches.csv and out_changes.csv.
func (e *Exporter) writeDelimitedFiles(game *model.Game, destination string) error {
	streams := []struct {
		suffix string
		write  func(io.Writer) error
	}{
		{"atbats", func(w io.Writer) error { return e.WriteAtBats(w, game.AtBats) }},
		{"pitches", func(w io.Writer) error { return e.WritePitches(w, game.Pitches) }},
		{"changes", func(w io.Writer) error { return e.WriteChanges(w, game.Changes) }},
	}

	for _, s := range streams {
		if err := e.writeSingleFile(StreamPath(destination, s.suffix), s.write); err != nil {
			return err
		}
	}
	return nil
}

// StreamPath derives the per-stream filename for delimited output.
func StreamPath(destination, stream string) string {
	ext := filepath.Ext(destination)
	return strings.TrimSuffix(destination, ext) + "_" + stream + ext
}

// WriteAtBats writes the at-bat stream as delimited text.
func (e *Exporter) WriteAtBats(w io.Writer, atBats []model.AtBat) error {
	rows := make([][]string, 0, len(atBats))
	for _, ab := range atBats {
		rows = append(rows, atBatCells(ab))
	}
	return e.writeDelimited(w, atBatHeader, rows)
}

// WritePitches writes the pitch stream as delimited text.
func (e *Exporter) WritePitches(w io.Writer, pitches []model.Pitch) error {
	rows := make([][]string, 0, len(pitches))
	for _, p := range pitches {
		rows = append(rows, pitchCells(p))
	}
	return e.writeDelimited(w, pitchHeader, rows)
}

// WriteChanges writes the pitching-change stream as delimited text.
func (e *Exporter) WriteChanges(w io.Writer, changes []model.PitchingChange) error {
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, changeCells(c))
	}
	return e.writeDelimited(w, changeHeader, rows)
}

func (e *Exporter) writeDelimited(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = e.config.Delimiter
	if e.config.Format == FormatTSV {
		cw.Comma = '\t'
	}

	if e.config.IncludeHeader {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole game as a single JSON document.
func (e *Exporter) WriteJSON(w io.Writer, game *model.Game) error {
	enc := json.NewEncoder(w)
	if e.config.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(newGameDocument(game))
}

// WriteJSONL writes every record as its own JSON line, tagged with the
// record type so streams can be told apart downstream.
func (e *Exporter) WriteJSONL(w io.Writer, game *model.Game) error {
	enc := json.NewEncoder(w)

	for _, ab := range game.AtBats {
		rec := newAtBatRecord(ab)
		if err := enc.Encode(lineRecord{Record: "atbat", AtBat: &rec}); err != nil {
			return err
		}
	}
	for _, p := range game.Pitches {
		rec := newPitchRecord(p)
		if err := enc.Encode(lineRecord{Record: "pitch", Pitch: &rec}); err != nil {
			return err
		}
	}
	for _, c := range game.Changes {
		rec := newChangeRecord(c)
		if err := enc.Encode(lineRecord{Record: "change", Change: &rec}); err != nil {
			return err
		}
	}
	return nil
}
