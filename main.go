package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vlist/app"
	"github.com/miosa/osa-vlist/config"
	"github.com/miosa/osa-vlist/internal/logging"
	"github.com/miosa/osa-vlist/style"
	"github.com/miosa/osa-vlist/ui/rows"
)

var version = "dev"

func main() {
	countFlag := flag.Int("count", 10_000, "Number of generated rows when no file is given")
	fileFlag := flag.String("file", "", "Show the blocks of this file instead of generated rows")
	keepsFlag := flag.Int("keeps", 0, "Items kept rendered at once (0 = config)")
	bufferFlag := flag.Int("buffer", -1, "Extra items rendered on each side (-1 = config)")
	sizeFlag := flag.Float64("size", 0, "Estimated rows per item before measuring (0 = config)")
	disabledFlag := flag.Bool("disabled", false, "Render every item, no windowing")
	startFlag := flag.Int("start", -1, "Initial item index")
	themeFlag := flag.String("theme", "", "Theme: "+fmt.Sprint(style.ThemeNames))
	logFlag := flag.String("log", "", "Write logs to this file")
	levelFlag := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	profileFlag := flag.String("profile", "", "Named profile for settings (~/.osa/profiles/<name>)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "V", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("osa-vlist %s\n", version)
		os.Exit(0)
	}

	if err := run(options{
		count:    *countFlag,
		file:     *fileFlag,
		keeps:    *keepsFlag,
		buffer:   *bufferFlag,
		size:     *sizeFlag,
		disabled: *disabledFlag,
		start:    *startFlag,
		theme:    *themeFlag,
		logPath:  *logFlag,
		level:    *levelFlag,
		profile:  *profileFlag,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "osa-vlist: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	count    int
	file     string
	keeps    int
	buffer   int
	size     float64
	disabled bool
	start    int
	theme    string
	logPath  string
	level    string
	profile  string
}

func run(o options) error {
	home, _ := os.UserHomeDir()
	profileDir := filepath.Join(home, ".osa")
	if o.profile != "" {
		profileDir = filepath.Join(home, ".osa", "profiles", o.profile)
	}
	cfg := config.Load(profileDir)
	if o.keeps > 0 {
		cfg.Keeps = o.keeps
		if o.buffer < 0 {
			cfg.Buffer = -1 // recommended for the new keeps
		}
	}
	if o.buffer >= 0 {
		cfg.Buffer = o.buffer
	}
	if o.size > 0 {
		cfg.EstimatedSize = o.size
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}

	var log logging.Logger = logging.Discard
	if o.logPath != "" {
		l, closer, err := logging.Open(o.logPath, logging.ParseLevel(o.level))
		if err != nil {
			return err
		}
		defer closer.Close()
		log = l
	}

	// Auto-detect terminal background before any rendering; an explicit
	// theme wins.
	if cfg.Theme == "" || !style.SetTheme(cfg.Theme) {
		if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
			style.SetTheme("dark")
		} else {
			style.SetTheme("light")
		}
	}

	opts := app.Options{
		Version:    version,
		Config:     cfg,
		Disabled:   o.disabled,
		ProfileDir: profileDir,
		Start:      o.start,
		Logger:     log,
	}
	if o.file != "" {
		rs, err := rows.Load(o.file)
		if err != nil {
			return err
		}
		opts.Source = o.file
		opts.Rows = rs
	} else {
		opts.Source = "generated"
		opts.Rows = rows.Generate(0, o.count)
		opts.Infinite = true
	}
	log.Info("starting", "source", opts.Source, "rows", len(opts.Rows),
		"keeps", cfg.Keeps, "buffer", cfg.Buffer, "theme", style.CurrentThemeName)

	if _, err := tea.NewProgram(app.New(opts)).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
