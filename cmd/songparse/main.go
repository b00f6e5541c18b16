// Command songparse extracts structured songs from songbook PDFs and
// hOCR scans, emitting ChordPro or plain text.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/tsawler/songbook"
	"github.com/tsawler/songbook/chordpro"
	"github.com/tsawler/songbook/chords"
	"github.com/tsawler/songbook/hocrrun"
	"github.com/tsawler/songbook/internal/logging"
	"github.com/tsawler/songbook/lang"
	"github.com/tsawler/songbook/model"
	"github.com/tsawler/songbook/pdfrun"
)

const version = "0.2.0"

// CLI defines the command-line interface for songparse.
var CLI struct {
	// Global flags
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogJSON  bool   `name:"log-json" help:"Emit logs as JSON"`

	Parse   ParseCmd   `cmd:"" help:"Parse a single songbook file"`
	Batch   BatchCmd   `cmd:"" help:"Parse many files concurrently"`
	Chords  ChordsCmd  `cmd:"" help:"Check whether tokens are chord symbols"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ParseCmd parses a single songbook file.
type ParseCmd struct {
	Input        string `arg:"" help:"PDF or hOCR file to parse" type:"existingfile"`
	Lang         string `default:"hr" enum:"hr,sl" help:"Language conventions (hr or sl)"`
	Config       string `help:"YAML file overriding language conventions" type:"existingfile"`
	Title        string `help:"Fallback title when the page carries none"`
	Format       string `default:"chordpro" enum:"chordpro,text" help:"Output format"`
	Out          string `short:"o" help:"Output path (default stdout)" type:"path"`
	Proportional bool   `help:"Map chords by line proportion instead of glyph widths"`
}

func (c *ParseCmd) Run() error {
	cfg, err := languageConfig(c.Lang, c.Config)
	if err != nil {
		return err
	}

	runs, err := extractRuns(c.Input)
	if err != nil {
		logging.ParseError(c.Input, err)
		return err
	}

	parser := songbook.New().Language(cfg).FallbackTitle(c.Title)
	if c.Proportional {
		parser = parser.Proportional()
	}
	song := parser.Parse(runs)
	logging.SongParsed(c.Input, song.Title, len(song.Verses), song.LineCount())

	out := render(song, c.Format)
	if c.Out == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// BatchCmd parses many files concurrently, one output file per input.
type BatchCmd struct {
	Inputs       []string `arg:"" help:"PDF or hOCR files to parse" type:"existingfile"`
	Lang         string   `default:"hr" enum:"hr,sl" help:"Language conventions (hr or sl)"`
	Config       string   `help:"YAML file overriding language conventions" type:"existingfile"`
	Format       string   `default:"chordpro" enum:"chordpro,text" help:"Output format"`
	OutDir       string   `required:"" help:"Directory for output files" type:"path"`
	Proportional bool     `help:"Map chords by line proportion instead of glyph widths"`
}

func (c *BatchCmd) Run() error {
	cfg, err := languageConfig(c.Lang, c.Config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(c.Inputs))

	for _, input := range c.Inputs {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			if err := c.parseOne(input, cfg); err != nil {
				logging.ParseError(input, err)
				errs <- fmt.Errorf("%s: %w", input, err)
			}
		}(input)
	}
	wg.Wait()
	close(errs)

	failed := 0
	for range errs {
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(c.Inputs))
	}
	logging.Info("batch_done", "files", len(c.Inputs), "out_dir", c.OutDir)
	return nil
}

func (c *BatchCmd) parseOne(input string, cfg *lang.Config) error {
	runs, err := extractRuns(input)
	if err != nil {
		return err
	}

	parser := songbook.New().Language(cfg)
	if c.Proportional {
		parser = parser.Proportional()
	}
	song := parser.Parse(runs)
	logging.SongParsed(input, song.Title, len(song.Verses), song.LineCount())

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	ext := ".cho"
	if c.Format == "text" {
		ext = ".txt"
	}
	outPath := filepath.Join(c.OutDir, base+ext)
	return os.WriteFile(outPath, []byte(render(song, c.Format)), 0644)
}

// ChordsCmd reports which of the given tokens parse as chord symbols.
type ChordsCmd struct {
	Tokens []string `arg:"" help:"Tokens to check"`
	Lang   string   `default:"hr" enum:"hr,sl" help:"Language conventions (hr or sl)"`
	Config string   `help:"YAML file overriding language conventions" type:"existingfile"`
}

func (c *ChordsCmd) Run() error {
	cfg, err := languageConfig(c.Lang, c.Config)
	if err != nil {
		return err
	}
	locator := chords.NewLocator(cfg)

	for _, token := range c.Tokens {
		if locator.IsChord(token) {
			fmt.Printf("  [chord] %s\n", token)
		} else {
			fmt.Printf("  [no]    %s\n", token)
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("songparse %s\n", version)
	return nil
}

// languageConfig resolves the effective language config: a YAML file
// when given, otherwise the built-in conventions for the code.
func languageConfig(code, path string) (*lang.Config, error) {
	if path != "" {
		return lang.Load(path)
	}
	return lang.ForCode(code)
}

// extractRuns picks the extraction collaborator by file extension.
func extractRuns(path string) ([]model.TextRun, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfrun.Extract(path, pdfrun.DefaultConfig())
	case ".hocr", ".html", ".htm", ".xml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read hocr: %w", err)
		}
		return hocrrun.Parse(data, hocrrun.DefaultConfig())
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// render serializes the song in the requested format.
func render(song model.Song, format string) string {
	if format == "text" {
		return renderText(song)
	}
	return chordpro.Export(song)
}

// renderText writes the song as aligned plain text: each verse line
// preceded by a chord line padded to the chord offsets.
func renderText(song model.Song) string {
	var sb strings.Builder
	if song.Title != "" {
		sb.WriteString(song.Title + "\n")
	}
	if song.Kapodaster != "" {
		sb.WriteString(song.Kapodaster + "\n")
	}
	for _, verse := range song.Verses {
		sb.WriteString("\n")
		if verse.Role != "" {
			sb.WriteString(verse.Role + "\n")
		}
		for _, line := range verse.Lines {
			if len(line.Chords) > 0 {
				sb.WriteString(chordRow(line) + "\n")
			}
			sb.WriteString(line.Text + "\n")
		}
	}
	for _, comment := range song.Comments {
		sb.WriteString("\n" + comment + "\n")
	}
	return sb.String()
}

// chordRow pads chord names out to their rune offsets in the lyric.
func chordRow(line model.VerseLine) string {
	var sb strings.Builder
	col := 0
	for _, chord := range line.Chords {
		for col < chord.Offset {
			sb.WriteString(" ")
			col++
		}
		sb.WriteString(chord.Name)
		col += len([]rune(chord.Name))
	}
	return sb.String()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("songparse"),
		kong.Description("Extract structured songs from songbook PDFs and hOCR scans."),
		kong.UsageOnError(),
	)

	level := logging.LevelInfo
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogJSON {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	ctx.FatalIfErrorf(ctx.Run())
}
