package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head>
	<meta property="og:title" content="Toronto Blue Jays vs. New York Yankees - MLB Play-by-Play">
</head>
<body>
	<section>
		<h3>Top 3rd - Toronto Blue Jays</h3>
		<ul>
			<li>
				<button class="AtBatAccordion__header" id="ab1" aria-controls="ab1-pitches">
					<span class="PlayHeader__description">Springer singled to left.</span>
				</button>
				<div class="Collapse AtBatAccordion__body" id="ab1-pitches" aria-labelledby="ab1">
					<table class="PitchTable"><tbody>
						<tr>
							<td><span class="PitchCountIcon">1</span><span>Ball</span></td>
							<td>Four-seam FB</td><td>95</td><td></td><td></td><td></td>
						</tr>
					</tbody></table>
				</div>
			</li>
		</ul>
	</section>
</body>
</html>`

// writeFixture saves the fixture page and a config pointing the archive
// at the temp dir, so tests never touch the user's real files.
func writeFixture(t *testing.T) (page, config, dir string) {
	t.Helper()
	dir = t.TempDir()

	page = filepath.Join(dir, "game.html")
	if err := os.WriteFile(page, []byte(fixtureHTML), 0o644); err != nil {
		t.Fatalf("writing fixture page: %v", err)
	}

	config = filepath.Join(dir, "config.toml")
	content := "[archive]\npath = \"" + filepath.Join(dir, "archive.db") + "\"\n"
	if err := os.WriteFile(config, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
	return page, config, dir
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String()
}

func TestParseCommand_CSV(t *testing.T) {
	page, config, dir := writeFixture(t)
	dest := filepath.Join(dir, "out.csv")

	out := runCommand(t, "--config", config, "parse", page, "--format", "csv", "--out", dest)
	if !strings.Contains(out, "Wrote 1 at-bats, 1 pitches, 0 pitching changes") {
		t.Errorf("unexpected output: %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out_pitches.csv"))
	if err != nil {
		t.Fatalf("pitch stream not written: %v", err)
	}
	if !strings.Contains(string(data), "Ball") {
		t.Errorf("pitch stream missing record: %q", data)
	}
}

func TestParseCommand_SaveAndArchiveRoundTrip(t *testing.T) {
	page, config, dir := writeFixture(t)
	dest := filepath.Join(dir, "out.json")

	out := runCommand(t, "--config", config, "parse", page, "--format", "json", "--out", dest, "--save")
	if !strings.Contains(out, "Archived as game #1") {
		t.Errorf("unexpected output: %q", out)
	}

	listing := runCommand(t, "--config", config, "archive", "list")
	if !strings.Contains(listing, "Toronto Blue Jays at New York Yankees") {
		t.Errorf("archive listing missing game: %q", listing)
	}

	show := runCommand(t, "--config", config, "archive", "show", "1")
	if !strings.Contains(show, "Toronto Blue Jays at New York Yankees") {
		t.Errorf("archive show output: %q", show)
	}

	exported := filepath.Join(dir, "replay.jsonl")
	runCommand(t, "--config", config, "archive", "export", "1", "--format", "jsonl", "--out", exported)
	data, err := os.ReadFile(exported)
	if err != nil {
		t.Fatalf("archive export not written: %v", err)
	}
	if !strings.Contains(string(data), `"record":"pitch"`) {
		t.Errorf("exported archive missing pitch line: %q", data)
	}

	deleted := runCommand(t, "--config", config, "archive", "delete", "1")
	if !strings.Contains(deleted, "Deleted game #1") {
		t.Errorf("unexpected delete output: %q", deleted)
	}
}

func TestArchiveDelete_Missing(t *testing.T) {
	_, config, _ := writeFixture(t)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", config, "archive", "delete", "99"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error deleting a missing game")
	}
}

func TestSummaryCommand(t *testing.T) {
	page, config, _ := writeFixture(t)

	out := runCommand(t, "--config", config, "summary", page)
	if !strings.Contains(out, "Toronto Blue Jays at New York Yankees") {
		t.Errorf("summary output missing matchup: %q", out)
	}
	if !strings.Contains(out, "At-Bats") || !strings.Contains(out, "Inning") {
		t.Errorf("summary output missing tables: %q", out)
	}
}

func TestScrapeCommand_RejectsNonURL(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"scrape", "game.html"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for non-URL scrape source")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[output]\nformat = \"CSV\"\n\n[archive]\npath = \"" + filepath.Join(dir, "db", "a.db") + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("Format = %q, want lowercased csv", cfg.Output.Format)
	}
	if !cfg.Output.IncludeHeader {
		t.Error("IncludeHeader default lost on partial config")
	}
	if cfg.Archive.Path != filepath.Join(dir, "db", "a.db") {
		t.Errorf("Archive.Path = %q", cfg.Archive.Path)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Output.Format != "xlsx" {
		t.Errorf("Format = %q, want xlsx default", cfg.Output.Format)
	}
	if cfg.Archive.Path == "" || strings.HasPrefix(cfg.Archive.Path, "~") {
		t.Errorf("Archive.Path not expanded: %q", cfg.Archive.Path)
	}
}
