package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/linter"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:      "rules",
		Usage:     "List rules with the indexes accepted by --suppress",
		ArgsUsage: "[PATH]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: auto-discover)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := "."
			if cmd.Args().Len() > 0 {
				path = cmd.Args().First()
			}
			cfg, err := config.LoadWithOverrides(path, cmd.String("config"), nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
				return cli.Exit("", ExitConfigError)
			}
			renderRules(os.Stdout, rules.DefaultRegistry(), cfg)
			return nil
		},
	}
}

// renderRules prints the rule catalogue. Indexes are 1-based registry
// positions.
func renderRules(w io.Writer, reg *rules.Registry, cfg *config.Config) {
	enabled := linter.EnabledRuleCodes(cfg)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Code", "Name", "Level", "Category", "Enabled"})

	for i, rule := range reg.All() {
		meta := rule.Metadata()
		state := "no"
		if slices.Contains(enabled, meta.Code) {
			state = "yes"
		}
		if meta.IsExperimental {
			state += " (experimental)"
		}
		t.AppendRow(table.Row{i + 1, meta.Code, meta.Name, meta.DefaultLevel.String(), meta.Category, state})
	}

	t.Render()
}
