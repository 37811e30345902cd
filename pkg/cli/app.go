package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/relayrank/relayrank/pkg/logging"
	urfave "github.com/urfave/cli/v2"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatText

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [text, json, yaml]",
		Value: formatText,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.Init(false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 "relayrank",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Rank relays by reliability and freshness from a stdin feed",
		Flags: []urfave.Flag{
			debugFlag,
			formatFlag,
		},
		Before: func(c *urfave.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.Init(true)
			}

			switch f := c.String(formatFlag.Name); f {
			case "", formatText:
				outputFormat = formatText
			case formatJSON:
				outputFormat = formatJSON
			case formatYAML, "yml":
				outputFormat = formatYAML
			default:
				return fmt.Errorf("unknown output format: %s", f)
			}
			return nil
		},
		Action: cmdRank,
	}
}
