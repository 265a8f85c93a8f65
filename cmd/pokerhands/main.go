package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/internal/render"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	LogLevel string           `help:"Log level (debug, info, warn, error)"`
	Config   string           `help:"Path to HCL config file" default:"pokerhands.hcl" type:"path"`
	NoColor  bool             `help:"Disable colored output"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Classify    ClassifyCmd    `cmd:"" help:"Classify five cards into every category they realize"`
	Deal        DealCmd        `cmd:"" help:"Deal hands from a shuffled deck"`
	Hunt        HuntCmd        `cmd:"" help:"Deal until a target category turns up"`
	Frequencies FrequenciesCmd `cmd:"" help:"Estimate category frequencies by sampling"`
}

// env carries what every command needs after setup.
type env struct {
	cfg       *config.Config
	logger    *log.Logger
	unicode   bool
	logToFile bool
}

// setup loads configuration, configures rendering, and builds the logger.
// Flags win over config file values.
func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	render.Configure(g.NoColor || cfg.Display.NoColor)

	levelName := cfg.Log.Level
	if g.LogLevel != "" {
		levelName = g.LogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}

	out := io.Writer(os.Stderr)
	logToFile := false
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		logToFile = true
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	return &env{
		cfg:       cfg,
		logger:    logger,
		unicode:   cfg.Display.UnicodeSuits,
		logToFile: logToFile,
	}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Classify, deal, and hunt five-card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
